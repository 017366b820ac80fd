package kraken

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// AssetPair describes one tradable pair as listed by the exchange.
type AssetPair struct {
	Name     string // canonical identifier, e.g. XXBTZEUR
	Altname  string // short form, e.g. XBTEUR
	WsName   string // display form BASE/QUOTE, e.g. XBT/EUR
	Base     string // exchange asset codes, legacy prefixes included
	Quote    string
	OrderMin string
}

// Ticker is a point-in-time bid snapshot. It is fetched per request and
// never cached.
type Ticker struct {
	Pair string
	Bid  decimal.Decimal
}

// Candle is one OHLC bucket as delivered by the exchange.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	VWAP      float64
	Volume    float64
	Count     int
}

// Order is a normalized view of an exchange order. Status transitions
// (open to closed or canceled) happen exchange-side only.
type Order struct {
	ID        string
	Status    string
	Pair      string
	Side      string // buy or sell
	OrderType string // limit, market, ...
	Price     string
	Volume    string
	Cost      string
	Fee       string
	OpenedAt  time.Time
	ClosedAt  time.Time // zero for open orders
}

// Closed reports whether the order carries a close timestamp.
func (o Order) Closed() bool {
	return !o.ClosedAt.IsZero()
}

// OrderRequest is a limit order submission.
type OrderRequest struct {
	Pair   string
	Side   string
	Type   string
	Volume decimal.Decimal
	Price  decimal.Decimal
}

// OrderConfirmation is the exchange's acknowledgement of a created order.
type OrderConfirmation struct {
	TransactionID string
	Description   string
}

// stringField reads a string value out of a decoded JSON object.
func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// numeric converts a decoded JSON value to float64. Kraken mixes numbers
// and numeric strings within the same payload.
func numeric(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// timeFromUnix converts Kraken's fractional unix timestamps.
func timeFromUnix(ts float64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec)
}
