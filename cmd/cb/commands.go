package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cryp2bot/cryptoengine/internal/account"
	"github.com/cryp2bot/cryptoengine/internal/display"
	"github.com/cryp2bot/cryptoengine/internal/market"
	"github.com/cryp2bot/cryptoengine/internal/pairs"
)

func (a *app) runValue(args []string) error {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: cb value PAIR")
	}

	price, pair, err := a.market.Value(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to retrieve ticker information for %s", strings.ToUpper(fs.Arg(0)))
	}

	fmt.Println(price.StringFixed(market.DecimalPlaces(pair.Quote)))
	return nil
}

func (a *app) runValues(args []string) error {
	fs := flag.NewFlagSet("values", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: cb values CURRENCY[,CURRENCY...]")
	}

	var assets []string
	for _, c := range strings.Split(fs.Arg(0), ",") {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			assets = append(assets, c)
		}
	}
	if len(assets) == 0 {
		return errors.New("no currencies given")
	}

	prices := a.market.Values(assets)
	display.PriceTable(os.Stdout, assets, market.QuoteCurrencies(), prices)
	return nil
}

func (a *app) runChart(args []string) error {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	var interval string
	fs.StringVar(&interval, "interval", "1w", "candle interval: 1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w, 2w")
	fs.StringVar(&interval, "i", "1w", "shorthand for -interval")
	var volume, heikinAshi bool
	fs.BoolVar(&volume, "volume", false, "show the volume pane")
	fs.BoolVar(&volume, "v", false, "shorthand for -volume")
	fs.BoolVar(&heikinAshi, "heikin-ashi", false, "smooth candles with the Heikin-Ashi transform")
	fs.BoolVar(&heikinAshi, "ha", false, "shorthand for -heikin-ashi")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: cb chart PAIR [-interval 1w] [-volume] [-heikin-ashi]")
	}
	pairArg := fs.Arg(0)
	if fs.NArg() > 1 {
		// flags are accepted after the pair argument too
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}

	// Reject bad intervals before anything goes on the wire.
	iv, err := market.ParseInterval(interval)
	if err != nil {
		return err
	}

	candles, pair, err := a.market.OHLC(pairArg, iv)
	if err != nil {
		return fmt.Errorf("failed to retrieve OHLC data for %s", strings.ToUpper(pairArg))
	}
	if heikinAshi {
		candles = market.HeikinAshi(candles)
	}

	title := fmt.Sprintf("%s/%s %s", pair.Base, pair.Quote, iv)
	return display.Chart(os.Stdout, candles, display.ChartOptions{
		Title:      title,
		ShowVolume: volume,
	})
}

func (a *app) runBalance(args []string) error {
	fs := flag.NewFlagSet("balance", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	balances, err := a.account.Balance()
	if err != nil {
		a.log.Error("balance: %v", err)
		return errors.New("failed to retrieve account balance")
	}

	assets := make([]string, 0, len(balances))
	for asset := range balances {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	rows := make([]display.BalanceRow, 0, len(assets))
	for _, asset := range assets {
		qty := balances[asset]
		if qty.IsZero() {
			continue
		}

		name := pairs.NormalizeBalanceAsset(asset)
		row := display.BalanceRow{Asset: name, Quantity: qty}
		if name != "EUR" {
			if value, _, err := a.market.Value(name); err == nil {
				eur := qty.Mul(value).Round(2)
				row.EURValue = &eur
			}
		}
		rows = append(rows, row)
	}

	display.BalanceTable(os.Stdout, rows)
	return nil
}

func (a *app) runOrders(args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	var all bool
	fs.BoolVar(&all, "all", false, "include orders closed more than 30 days ago")
	fs.BoolVar(&all, "a", false, "shorthand for -all")
	xlsxPath := fs.String("xlsx", "", "also export the table to an xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	orders, err := a.account.Orders(all)
	if err != nil {
		a.log.Error("orders: %v", err)
		return errors.New("failed to retrieve orders")
	}

	display.OrdersTable(os.Stdout, orders)

	if *xlsxPath != "" {
		if err := display.WriteOrdersXLSX(orders, *xlsxPath); err != nil {
			return err
		}
		display.Success(fmt.Sprintf("Orders exported to %s.", *xlsxPath))
	}
	return nil
}

func (a *app) runBuy(args []string) error {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 || fs.NArg() > 3 {
		return errors.New("usage: cb buy ASSET VOLUME [CURRENCY]")
	}
	quote := "EUR"
	if fs.NArg() == 3 {
		quote = fs.Arg(2)
	}

	confirmation, err := a.account.Buy(fs.Arg(0), fs.Arg(1), quote)
	if err != nil {
		var rejected *account.RejectedError
		if errors.As(err, &rejected) {
			return fmt.Errorf("failed to create order: %s", rejected.Message)
		}
		a.log.Error("buy: %v", err)
		return errors.New("failed to create order")
	}

	display.Success(fmt.Sprintf("Order created successfully (%s).", confirmation.TransactionID))
	return nil
}
