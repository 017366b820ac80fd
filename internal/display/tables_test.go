package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
)

func TestPriceTable(t *testing.T) {
	var buf bytes.Buffer
	prices := map[string]map[string]decimal.Decimal{
		"BTC": {
			"EUR": decimal.RequireFromString("60000.12"),
			"BTC": decimal.RequireFromString("1"),
		},
	}

	PriceTable(&buf, []string{"BTC"}, []string{"EUR", "USD", "BTC"}, prices)
	out := buf.String()

	assert.Contains(t, out, "60000.12")
	assert.Contains(t, out, "1.00000000", "crypto quotes keep eight places")
	assert.Contains(t, out, missingCell, "missing USD price renders as a dash")
	assert.Contains(t, out, "Currency")
}

func TestBalanceTable(t *testing.T) {
	var buf bytes.Buffer
	eur := decimal.RequireFromString("1250.50")
	rows := []BalanceRow{
		{Asset: "BTC", Quantity: decimal.RequireFromString("0.5"), EURValue: &eur},
		{Asset: "EUR", Quantity: decimal.RequireFromString("100")},
	}

	BalanceTable(&buf, rows)
	out := buf.String()

	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "1250.50")
	assert.Contains(t, out, missingCell, "rows without a valuation get a dash")
}

func TestOrdersTable(t *testing.T) {
	var buf bytes.Buffer
	orders := []kraken.Order{
		{
			ID:        "OABC-123",
			Status:    "open",
			Pair:      "XBTEUR",
			Side:      "buy",
			OrderType: "limit",
			Price:     "100.10",
			Volume:    "0.5",
			OpenedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	OrdersTable(&buf, orders)
	out := buf.String()

	assert.Contains(t, out, "OABC-123")
	assert.Contains(t, out, "2024-06-01 12:00:00")
	assert.Contains(t, out, missingCell, "open orders have no close time")
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, missingCell, formatTime(time.Time{}))
	assert.Equal(t, "2024-06-01 12:00:00", formatTime(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)))
}
