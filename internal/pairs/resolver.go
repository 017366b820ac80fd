package pairs

import (
	"errors"
	"strings"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
	"github.com/cryp2bot/cryptoengine/internal/logger"
)

// quoteCandidates is the probe order for short asset codes. The legacy
// Z-prefixed forms come first for compatibility with older pair naming.
var quoteCandidates = []string{"ZEUR", "EUR", "ZUSD", "USD"}

// shortCodeMax is the short-code threshold: anything longer is treated as
// an already-complete pair.
const shortCodeMax = 4

// ErrNotFound means no candidate quote currency formed a valid pair.
var ErrNotFound = errors.New("pairs: no matching trading pair")

// PairLookup is the single exchange call the resolver needs.
type PairLookup interface {
	AssetPair(pair string) (*kraken.AssetPair, error)
}

// Pair is a resolved trading pair with alias-normalized display codes.
type Pair struct {
	Name    string // canonical exchange identifier, e.g. XXBTZEUR
	Altname string
	Base    string // display code, e.g. BTC
	Quote   string // display code, e.g. EUR
}

// Resolver turns asset codes and pair strings into resolved pairs.
type Resolver struct {
	lookup PairLookup
	log    *logger.Logger
}

func NewResolver(lookup PairLookup, log *logger.Logger) *Resolver {
	return &Resolver{lookup: lookup, log: log}
}

// Resolve maps a short asset code (BTC) or an explicit pair (BTCUSD) to a
// canonical trading pair. Short codes are probed against the candidate
// quote currencies in order; the first hit wins. A miss returns
// ErrNotFound, never a panic.
func (r *Resolver) Resolve(assetOrPair string) (*Pair, error) {
	input := strings.ToUpper(strings.TrimSpace(assetOrPair))
	if input == "" {
		return nil, ErrNotFound
	}

	if len(input) > shortCodeMax {
		return r.lookupPair(input)
	}

	for _, quote := range quoteCandidates {
		p, err := r.lookupPair(MakePair(input, quote))
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (r *Resolver) lookupPair(pair string) (*Pair, error) {
	info, err := r.lookup.AssetPair(pair)
	if err != nil {
		if kraken.IsUnknownPair(err) {
			r.log.Info("no asset pair for %s: %v", pair, err)
			return nil, ErrNotFound
		}
		r.log.Error("asset pair lookup %s: %v", pair, err)
		return nil, err
	}

	base, quote := SplitWsName(info.WsName)
	return &Pair{
		Name:    info.Name,
		Altname: info.Altname,
		Base:    base,
		Quote:   quote,
	}, nil
}
