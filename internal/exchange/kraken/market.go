package kraken

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// AssetPair looks up a single trading pair on the asset-pairs endpoint.
// The generic Query call is used because the SDK's typed asset-pair
// response only covers a fixed set of pairs.
func (c *Client) AssetPair(pair string) (*AssetPair, error) {
	result, err := c.api.Query("AssetPairs", map[string]string{"pair": pair})
	if err != nil {
		return nil, wrapError("AssetPairs", err)
	}
	return parseAssetPairResult(result)
}

// Ticker fetches the current ticker snapshot for a pair.
func (c *Client) Ticker(pair string) (*Ticker, error) {
	result, err := c.api.Query("Ticker", map[string]string{"pair": pair})
	if err != nil {
		return nil, wrapError("Ticker", err)
	}
	return parseTickerResult(result)
}

// OHLC fetches candles for a pair at the given exchange-native interval in
// minutes. Candles are returned in the exchange's order (time ascending)
// and never re-sorted here.
func (c *Client) OHLC(pair string, intervalMinutes int) ([]Candle, error) {
	result, err := c.api.Query("OHLC", map[string]string{
		"pair":     pair,
		"interval": strconv.Itoa(intervalMinutes),
	})
	if err != nil {
		return nil, wrapError("OHLC", err)
	}
	return parseOHLCResult(result)
}

func parseAssetPairResult(result interface{}) (*AssetPair, error) {
	entries, ok := result.(map[string]interface{})
	if !ok || len(entries) == 0 {
		return nil, &APIError{Kind: ErrKindUnknownPair, Operation: "AssetPairs", Message: "empty asset pair result"}
	}
	for name, raw := range entries {
		info, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		return &AssetPair{
			Name:     name,
			Altname:  stringField(info, "altname"),
			WsName:   stringField(info, "wsname"),
			Base:     stringField(info, "base"),
			Quote:    stringField(info, "quote"),
			OrderMin: stringField(info, "ordermin"),
		}, nil
	}
	return nil, &APIError{Kind: ErrKindUnknownPair, Operation: "AssetPairs", Message: "no asset pair entry in result"}
}

func parseTickerResult(result interface{}) (*Ticker, error) {
	entries, ok := result.(map[string]interface{})
	if !ok || len(entries) == 0 {
		return nil, &APIError{Kind: ErrKindUnknownPair, Operation: "Ticker", Message: "empty ticker result"}
	}
	for name, raw := range entries {
		info, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		// "b" is [price, wholeLotVolume, lotVolume]; the bid price leads.
		bids, ok := info["b"].([]interface{})
		if !ok || len(bids) == 0 {
			continue
		}
		bidStr, ok := bids[0].(string)
		if !ok {
			continue
		}
		bid, err := decimal.NewFromString(bidStr)
		if err != nil {
			return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "Ticker", Message: "unparsable bid price " + bidStr}
		}
		return &Ticker{Pair: name, Bid: bid}, nil
	}
	return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "Ticker", Message: "no bid price in ticker result"}
}

func parseOHLCResult(result interface{}) ([]Candle, error) {
	entries, ok := result.(map[string]interface{})
	if !ok || len(entries) == 0 {
		return nil, &APIError{Kind: ErrKindUnknownPair, Operation: "OHLC", Message: "empty OHLC result"}
	}
	for name, raw := range entries {
		if name == "last" {
			continue
		}
		rows, ok := raw.([]interface{})
		if !ok {
			continue
		}
		candles := make([]Candle, 0, len(rows))
		for _, r := range rows {
			row, ok := r.([]interface{})
			if !ok || len(row) < 8 {
				continue
			}
			// [time, open, high, low, close, vwap, volume, count]
			candles = append(candles, Candle{
				Timestamp: time.Unix(int64(numeric(row[0])), 0),
				Open:      numeric(row[1]),
				High:      numeric(row[2]),
				Low:       numeric(row[3]),
				Close:     numeric(row[4]),
				VWAP:      numeric(row[5]),
				Volume:    numeric(row[6]),
				Count:     int(numeric(row[7])),
			})
		}
		return candles, nil
	}
	return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "OHLC", Message: "no candle rows in result"}
}
