package market

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
	"github.com/cryp2bot/cryptoengine/internal/logger"
	"github.com/cryp2bot/cryptoengine/internal/pairs"
)

// quoteCurrencies is the column set for the multi-asset price table.
var quoteCurrencies = []string{"EUR", "USD", "BTC", "ETH"}

// Asymmetric price rounding: fiat quotes get 2 decimal places, everything
// else 8. This holds at every formatting boundary.
const (
	fiatPlaces   = 2
	cryptoPlaces = 8
)

// Exchange is the market data surface of the Kraken client used here.
type Exchange interface {
	Ticker(pair string) (*kraken.Ticker, error)
	OHLC(pair string, intervalMinutes int) ([]kraken.Candle, error)
}

// PairResolver resolves a user-supplied asset or pair string.
type PairResolver interface {
	Resolve(assetOrPair string) (*pairs.Pair, error)
}

// Service answers price and candle queries. It holds no state between
// calls; every query hits the exchange.
type Service struct {
	exchange Exchange
	resolver PairResolver
	log      *logger.Logger
}

func NewService(exchange Exchange, resolver PairResolver, log *logger.Logger) *Service {
	return &Service{exchange: exchange, resolver: resolver, log: log}
}

// QuoteCurrencies returns the quote column order for price tables.
func QuoteCurrencies() []string {
	out := make([]string, len(quoteCurrencies))
	copy(out, quoteCurrencies)
	return out
}

// Value fetches the current best bid for a pair or short asset code,
// rounded per the quote currency rule.
func (s *Service) Value(pairOrAsset string) (decimal.Decimal, *pairs.Pair, error) {
	pair, err := s.resolver.Resolve(pairOrAsset)
	if err != nil {
		return decimal.Zero, nil, err
	}

	ticker, err := s.exchange.Ticker(pair.Name)
	if err != nil {
		s.log.Error("ticker %s: %v", pair.Name, err)
		if kraken.IsUnknownPair(err) {
			return decimal.Zero, nil, pairs.ErrNotFound
		}
		return decimal.Zero, nil, err
	}

	return RoundByQuote(ticker.Bid, pair.Quote), pair, nil
}

// Values builds the two-level asset to quote to price table. Quotes that
// do not form a valid pair are logged and skipped, never fatal. Pairs of
// an asset quoted in itself are skipped outright.
func (s *Service) Values(assets []string) map[string]map[string]decimal.Decimal {
	out := make(map[string]map[string]decimal.Decimal, len(assets))
	for _, asset := range assets {
		asset = strings.ToUpper(strings.TrimSpace(asset))
		if asset == "" {
			continue
		}
		row := make(map[string]decimal.Decimal)
		for _, quote := range quoteCurrencies {
			if pairs.NormalizeAsset(asset) == quote {
				continue
			}
			price, _, err := s.Value(pairs.MakePair(asset, quote))
			if err != nil {
				s.log.Info("skipping %s/%s: %v", asset, quote, err)
				continue
			}
			row[quote] = price
		}
		out[asset] = row
	}
	return out
}

// OHLC fetches candles for a pair or short asset code. Candles come back
// in the exchange's order (time ascending) and are not re-sorted.
func (s *Service) OHLC(pairOrAsset string, interval Interval) ([]kraken.Candle, *pairs.Pair, error) {
	pair, err := s.resolver.Resolve(pairOrAsset)
	if err != nil {
		return nil, nil, err
	}

	candles, err := s.exchange.OHLC(pair.Name, interval.Minutes())
	if err != nil {
		s.log.Error("OHLC %s %s: %v", pair.Name, interval, err)
		if kraken.IsUnknownPair(err) {
			return nil, nil, pairs.ErrNotFound
		}
		return nil, nil, err
	}
	return candles, pair, nil
}

// RoundByQuote applies the asymmetric rounding rule to a price.
func RoundByQuote(price decimal.Decimal, quote string) decimal.Decimal {
	return price.Round(DecimalPlaces(quote))
}

// DecimalPlaces returns the display precision for a quote currency.
func DecimalPlaces(quote string) int32 {
	switch strings.ToUpper(quote) {
	case "EUR", "USD", "ZEUR", "ZUSD":
		return fiatPlaces
	}
	return cryptoPlaces
}
