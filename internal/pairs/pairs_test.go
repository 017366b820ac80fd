package pairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAsset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"XBT", "BTC"},
		{"xbt", "BTC"},
		{"XDG", "DOGE"},
		{"ETH", "ETH"},
		{"eur", "EUR"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAsset(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeBalanceAsset(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"XXBT", "BTC"},
		{"ZEUR", "EUR"},
		{"ZUSD", "USD"},
		{"XETH", "ETH"},
		{"XXDG", "DOGE"},
		{"ADA", "ADA"},   // no prefix, untouched
		{"DOT", "DOT"},   // three chars, untouched
		{"XTZ", "XTZ"},   // X-leading three chars must not be stripped
		{"USDT", "USDT"}, // four chars without a legacy prefix
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBalanceAsset(tt.in), "input %q", tt.in)
	}
}

func TestMakePair(t *testing.T) {
	assert.Equal(t, "BTCEUR", MakePair("btc", "eur"))
	assert.Equal(t, "XXBTZEUR", MakePair(" XXBT", "ZEUR "))
}

func TestSplitWsName(t *testing.T) {
	base, quote := SplitWsName("XBT/EUR")
	assert.Equal(t, "BTC", base)
	assert.Equal(t, "EUR", quote)

	base, quote = SplitWsName("ETH/USD")
	assert.Equal(t, "ETH", base)
	assert.Equal(t, "USD", quote)

	base, quote = SplitWsName("XDG")
	assert.Equal(t, "DOGE", base)
	assert.Equal(t, "", quote)
}
