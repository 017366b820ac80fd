package pairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
	"github.com/cryp2bot/cryptoengine/internal/logger"
)

type fakeLookup struct {
	known map[string]*kraken.AssetPair
	err   error
	calls []string
}

func (f *fakeLookup) AssetPair(pair string) (*kraken.AssetPair, error) {
	f.calls = append(f.calls, pair)
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.known[pair]; ok {
		return p, nil
	}
	return nil, &kraken.APIError{
		Kind:      kraken.ErrKindUnknownPair,
		Operation: "AssetPairs",
		Message:   "EQuery:Unknown asset pair",
	}
}

func TestResolveShortCodeProbesQuotesInOrder(t *testing.T) {
	lookup := &fakeLookup{known: map[string]*kraken.AssetPair{
		"BTCZUSD": {Name: "XXBTZUSD", Altname: "XBTUSD", WsName: "XBT/USD"},
	}}
	r := NewResolver(lookup, logger.NewNop())

	p, err := r.Resolve("btc")
	require.NoError(t, err)

	// ZEUR and EUR miss first, ZUSD hits, USD is never tried.
	assert.Equal(t, []string{"BTCZEUR", "BTCEUR", "BTCZUSD"}, lookup.calls)
	assert.Equal(t, "XXBTZUSD", p.Name)
	assert.Equal(t, "BTC", p.Base)
	assert.Equal(t, "USD", p.Quote)
}

func TestResolveFirstCandidateWins(t *testing.T) {
	lookup := &fakeLookup{known: map[string]*kraken.AssetPair{
		"ETHZEUR": {Name: "XETHZEUR", WsName: "ETH/EUR"},
		"ETHZUSD": {Name: "XETHZUSD", WsName: "ETH/USD"},
	}}
	r := NewResolver(lookup, logger.NewNop())

	p, err := r.Resolve("ETH")
	require.NoError(t, err)
	assert.Equal(t, []string{"ETHZEUR"}, lookup.calls)
	assert.Equal(t, "EUR", p.Quote)
}

func TestResolveLongInputIsDirectLookup(t *testing.T) {
	lookup := &fakeLookup{known: map[string]*kraken.AssetPair{
		"XXBTZEUR": {Name: "XXBTZEUR", Altname: "XBTEUR", WsName: "XBT/EUR"},
	}}
	r := NewResolver(lookup, logger.NewNop())

	p, err := r.Resolve("xxbtzeur")
	require.NoError(t, err)
	assert.Equal(t, []string{"XXBTZEUR"}, lookup.calls)
	assert.Equal(t, "BTC", p.Base)
	assert.Equal(t, "EUR", p.Quote)
}

func TestResolveMissReturnsNotFound(t *testing.T) {
	lookup := &fakeLookup{}
	r := NewResolver(lookup, logger.NewNop())

	_, err := r.Resolve("NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, lookup.calls, 4, "every quote candidate is probed before giving up")
}

func TestResolveEmptyInput(t *testing.T) {
	lookup := &fakeLookup{}
	r := NewResolver(lookup, logger.NewNop())

	_, err := r.Resolve("  ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, lookup.calls)
}

func TestResolveAbortsOnNonNotFoundError(t *testing.T) {
	authErr := &kraken.APIError{
		Kind:      kraken.ErrKindAuth,
		Operation: "AssetPairs",
		Message:   "EAPI:Invalid key",
	}
	lookup := &fakeLookup{err: authErr}
	r := NewResolver(lookup, logger.NewNop())

	_, err := r.Resolve("BTC")
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Len(t, lookup.calls, 1, "probing stops on the first hard failure")
}
