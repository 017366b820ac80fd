package display

import (
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"

	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
	"github.com/cryp2bot/cryptoengine/internal/market"
)

// missingCell marks table cells with no value.
const missingCell = "-"

const timeFormat = "2006-01-02 15:04:05"

// orderHeaders is the column set for the order table and the xlsx export.
var orderHeaders = []string{
	"Order ID", "Status", "Pair", "Type", "Order Type",
	"Price", "Volume", "Cost", "Fee", "Open Time", "Close Time",
}

// PriceTable renders the multi-asset price table with one column per
// quote currency.
func PriceTable(out io.Writer, assets []string, quotes []string, prices map[string]map[string]decimal.Decimal) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)

	header := table.Row{"Currency"}
	for _, q := range quotes {
		header = append(header, q)
	}
	t.AppendHeader(header)

	for _, asset := range assets {
		row := table.Row{asset}
		for _, q := range quotes {
			if p, ok := prices[asset][q]; ok {
				row = append(row, p.StringFixed(market.DecimalPlaces(q)))
			} else {
				row = append(row, missingCell)
			}
		}
		t.AppendRow(row)
	}
	t.Render()
}

// BalanceRow is one line of the balance table. EURValue is nil when no EUR
// price could be resolved for the asset.
type BalanceRow struct {
	Asset    string
	Quantity decimal.Decimal
	EURValue *decimal.Decimal
}

// BalanceTable renders account holdings with their EUR valuation.
func BalanceTable(out io.Writer, rows []BalanceRow) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Currency", "Balance", "EUR"})

	for _, r := range rows {
		eur := missingCell
		if r.EURValue != nil {
			eur = r.EURValue.StringFixed(2)
		}
		t.AppendRow(table.Row{r.Asset, r.Quantity.String(), eur})
	}
	t.Render()
}

// OrdersTable renders the merged order view, most recent first.
func OrdersTable(out io.Writer, orders []kraken.Order) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)

	header := table.Row{}
	for _, h := range orderHeaders {
		header = append(header, h)
	}
	t.AppendHeader(header)

	for _, o := range orders {
		t.AppendRow(table.Row{
			o.ID, o.Status, o.Pair, o.Side, o.OrderType,
			o.Price, o.Volume, o.Cost, o.Fee,
			formatTime(o.OpenedAt), formatTime(o.ClosedAt),
		})
	}
	t.Render()
}

func formatTime(ts time.Time) string {
	if ts.IsZero() {
		return missingCell
	}
	return ts.Format(timeFormat)
}
