package kraken

import (
	"strconv"

	krakenapi "github.com/Beldur/kraken-go-api-client"
	"github.com/shopspring/decimal"
)

// Balance fetches the account holdings keyed by exchange asset code
// (ZEUR, XXBT, ...). The generic Query call is used because the SDK's
// typed balance response is a fixed struct and cannot represent arbitrary
// assets.
func (c *Client) Balance() (map[string]decimal.Decimal, error) {
	result, err := c.api.Query("Balance", map[string]string{})
	if err != nil {
		return nil, wrapError("Balance", err)
	}

	entries, ok := result.(map[string]interface{})
	if !ok {
		return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "Balance", Message: "unexpected balance payload"}
	}
	return parseBalanceEntries(entries)
}

func parseBalanceEntries(entries map[string]interface{}) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(entries))
	for asset, raw := range entries {
		qtyStr, ok := raw.(string)
		if !ok {
			return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "Balance", Message: "unexpected quantity type for " + asset}
		}
		qty, err := decimal.NewFromString(qtyStr)
		if err != nil {
			return nil, &APIError{Kind: ErrKindRequestFailed, Operation: "Balance", Message: "unparsable quantity " + qtyStr + " for " + asset}
		}
		balances[asset] = qty
	}
	return balances, nil
}

// OpenOrders lists the account's currently open orders.
func (c *Client) OpenOrders() ([]Order, error) {
	resp, err := c.api.OpenOrders(map[string]string{})
	if err != nil {
		return nil, wrapError("OpenOrders", err)
	}

	orders := make([]Order, 0, len(resp.Open))
	for id, o := range resp.Open {
		orders = append(orders, convertOrder(id, o))
	}
	return orders, nil
}

// ClosedOrders lists the account's closed orders as reported by the
// exchange; retention filtering happens in the account service.
func (c *Client) ClosedOrders() ([]Order, error) {
	resp, err := c.api.ClosedOrders(map[string]string{})
	if err != nil {
		return nil, wrapError("ClosedOrders", err)
	}

	orders := make([]Order, 0, len(resp.Closed))
	for id, o := range resp.Closed {
		orders = append(orders, convertOrder(id, o))
	}
	return orders, nil
}

func convertOrder(id string, o krakenapi.Order) Order {
	return Order{
		ID:        id,
		Status:    o.Status,
		Pair:      o.Description.AssetPair,
		Side:      o.Description.Type,
		OrderType: o.Description.OrderType,
		Price:     o.Description.PrimaryPrice,
		Volume:    o.Volume,
		Cost:      strconv.FormatFloat(o.Cost, 'f', -1, 64),
		Fee:       strconv.FormatFloat(o.Fee, 'f', -1, 64),
		OpenedAt:  timeFromUnix(o.OpenTime),
		ClosedAt:  timeFromUnix(o.CloseTime),
	}
}
