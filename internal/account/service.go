package account

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
	"github.com/cryp2bot/cryptoengine/internal/logger"
	"github.com/cryp2bot/cryptoengine/internal/pairs"
)

// closedOrderWindow is the retention window for closed orders in the
// merged order view: 30 days.
const closedOrderWindow = 2592000 * time.Second

// Buy pre-flight limits.
var (
	minFiatVolume  = decimal.NewFromInt(1) // one unit of quote currency
	minAssetVolume = decimal.RequireFromString("0.002")
	limitPriceBias = decimal.RequireFromString("1.001")
)

const (
	limitPricePlaces  = 2
	assetVolumePlaces = 4
)

// Exchange is the authenticated surface of the Kraken client used here,
// plus the ticker call the buy pipeline prices against.
type Exchange interface {
	Balance() (map[string]decimal.Decimal, error)
	OpenOrders() ([]kraken.Order, error)
	ClosedOrders() ([]kraken.Order, error)
	Ticker(pair string) (*kraken.Ticker, error)
	AddOrder(req kraken.OrderRequest) (*kraken.OrderConfirmation, error)
}

// PairResolver resolves a user-supplied asset or pair string.
type PairResolver interface {
	Resolve(assetOrPair string) (*pairs.Pair, error)
}

// Service answers balance and order queries and runs the buy pipeline.
type Service struct {
	exchange Exchange
	resolver PairResolver
	log      *logger.Logger
	now      func() time.Time
}

func NewService(exchange Exchange, resolver PairResolver, log *logger.Logger) *Service {
	return &Service{
		exchange: exchange,
		resolver: resolver,
		log:      log,
		now:      time.Now,
	}
}

// Balance returns the account holdings keyed by exchange asset code,
// refreshed from the exchange on every call.
func (s *Service) Balance() (map[string]decimal.Decimal, error) {
	return s.exchange.Balance()
}

// Orders merges open orders with recently closed ones. Closed orders whose
// close time falls outside the 30 day window are dropped unless includeAll
// is set; open orders are always included. The result is ordered
// most-recent-first by open time.
func (s *Service) Orders(includeAll bool) ([]kraken.Order, error) {
	open, err := s.exchange.OpenOrders()
	if err != nil {
		return nil, err
	}
	closed, err := s.exchange.ClosedOrders()
	if err != nil {
		return nil, err
	}

	cutoff := s.now().Add(-closedOrderWindow)
	merged := make([]kraken.Order, 0, len(open)+len(closed))
	merged = append(merged, open...)
	for _, o := range closed {
		if !includeAll && o.ClosedAt.Before(cutoff) {
			continue
		}
		merged = append(merged, o)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OpenedAt.After(merged[j].OpenedAt)
	})
	return merged, nil
}

// Buy runs the pre-flight pipeline and submits a limit buy order for
// fiatVolume worth of asset. Every stage short-circuits with a
// RejectedError carrying the stage's reason; a rejection is terminal for
// the call.
func (s *Service) Buy(asset, fiatVolume, quote string) (*kraken.OrderConfirmation, error) {
	if quote == "" {
		quote = "EUR"
	}
	quote = strings.ToUpper(quote)

	pair, err := s.resolver.Resolve(pairs.MakePair(asset, quote))
	if err != nil {
		if errors.Is(err, pairs.ErrNotFound) {
			return nil, reject(RejectInvalidPair, "no %s/%s pair on the exchange", strings.ToUpper(asset), quote)
		}
		return nil, err
	}

	volume, err := decimal.NewFromString(strings.TrimSpace(fiatVolume))
	if err != nil {
		return nil, reject(RejectInvalidVolume, "volume %q is not a number", fiatVolume)
	}
	if volume.LessThan(minFiatVolume) {
		return nil, reject(RejectInvalidVolume, "volume must be at least %s %s", minFiatVolume, quote)
	}

	balances, err := s.exchange.Balance()
	if err != nil {
		return nil, err
	}
	held, ok := balanceFor(balances, quote)
	if !ok {
		return nil, reject(RejectNoBalance, "no %s balance on the account", quote)
	}
	if held.LessThan(volume) {
		return nil, reject(RejectInsufficientBalance, "%s %s held, %s requested", held, quote, volume)
	}

	ticker, err := s.exchange.Ticker(pair.Name)
	if err != nil || ticker.Bid.IsZero() {
		s.log.Error("no price for %s: %v", pair.Name, err)
		return nil, reject(RejectPriceUnavailable, "no current price for %s/%s", pair.Base, pair.Quote)
	}

	// Limit slightly above market to bias toward a fast fill while still
	// being a limit order.
	limitPrice := ticker.Bid.Mul(limitPriceBias).Round(limitPricePlaces)

	assetVolume := volume.Div(ticker.Bid).Round(assetVolumePlaces)
	if assetVolume.LessThan(minAssetVolume) {
		return nil, reject(RejectVolumeTooSmall, "computed volume %s %s is below the %s minimum", assetVolume, pair.Base, minAssetVolume)
	}

	confirmation, err := s.exchange.AddOrder(kraken.OrderRequest{
		Pair:   pair.Name,
		Side:   "buy",
		Type:   "limit",
		Volume: assetVolume,
		Price:  limitPrice,
	})
	if err != nil {
		return nil, reject(RejectOrderRejected, "%v", err)
	}

	s.log.Info("order placed: buy %s %s @ %s %s (%s)",
		assetVolume, pair.Base, limitPrice, pair.Quote, confirmation.TransactionID)
	return confirmation, nil
}

// balanceFor finds the holdings entry for a quote currency, accepting both
// the plain code and Kraken's legacy Z/X prefixed forms.
func balanceFor(balances map[string]decimal.Decimal, code string) (decimal.Decimal, bool) {
	for _, key := range []string{"Z" + code, code, "X" + code} {
		if qty, ok := balances[key]; ok {
			return qty, true
		}
	}
	return decimal.Zero, false
}
