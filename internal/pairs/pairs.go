// Package pairs resolves user-supplied asset codes into canonical Kraken
// trading pairs.
package pairs

import "strings"

// assetAliases maps Kraken's legacy asset codes to their common names.
var assetAliases = map[string]string{
	"XBT": "BTC",
	"XDG": "DOGE",
}

// NormalizeAsset translates an exchange-specific legacy code (XBT) into
// the common asset code (BTC).
func NormalizeAsset(code string) string {
	code = strings.ToUpper(code)
	if alias, ok := assetAliases[code]; ok {
		return alias
	}
	return code
}

// NormalizeBalanceAsset converts a balance ledger code (XXBT, ZEUR) into a
// display code (BTC, EUR). Four-character codes carry a legacy X/Z prefix
// that is stripped first.
func NormalizeBalanceAsset(code string) string {
	code = strings.ToUpper(code)
	if len(code) == 4 && (code[0] == 'X' || code[0] == 'Z') {
		code = code[1:]
	}
	return NormalizeAsset(code)
}

// MakePair builds a pair identifier from base and quote codes. Every pair
// string in the repository is constructed here.
func MakePair(base, quote string) string {
	return strings.ToUpper(strings.TrimSpace(base)) + strings.ToUpper(strings.TrimSpace(quote))
}

// SplitWsName splits a display name of the form BASE/QUOTE and applies
// alias translation to both halves.
func SplitWsName(wsname string) (base, quote string) {
	parts := strings.SplitN(wsname, "/", 2)
	base = NormalizeAsset(parts[0])
	if len(parts) == 2 {
		quote = NormalizeAsset(parts[1])
	}
	return base, quote
}
