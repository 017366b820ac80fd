package market

import (
	"math"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
)

// HeikinAshi derives the smoothed candle sequence from raw candles. Each
// derived candle depends on the previous derived candle, so the transform
// runs strictly in sequence order. The first candle has no predecessor and
// is returned unchanged.
func HeikinAshi(candles []kraken.Candle) []kraken.Candle {
	if len(candles) == 0 {
		return nil
	}

	out := make([]kraken.Candle, len(candles))
	out[0] = candles[0]
	prev := candles[0]

	for i := 1; i < len(candles); i++ {
		c := candles[i]
		c.Open = (prev.Open + prev.Close) / 2
		c.High = math.Max(c.High, c.Open)
		c.Low = math.Min(c.Low, c.Open)
		c.Close = (c.Open + c.High + c.Low + c.Close) / 4
		out[i] = c
		prev = c
	}
	return out
}
