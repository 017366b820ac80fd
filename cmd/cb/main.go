package main

import (
	"fmt"
	"os"

	"github.com/cryp2bot/cryptoengine/internal/account"
	"github.com/cryp2bot/cryptoengine/internal/config"
	"github.com/cryp2bot/cryptoengine/internal/display"
	"github.com/cryp2bot/cryptoengine/internal/exchange/kraken"
	"github.com/cryp2bot/cryptoengine/internal/logger"
	"github.com/cryp2bot/cryptoengine/internal/market"
	"github.com/cryp2bot/cryptoengine/internal/pairs"
)

// app wires the services behind the subcommands.
type app struct {
	log     *logger.Logger
	market  *market.Service
	account *account.Service
}

func newApp(cfg *config.Config, log *logger.Logger) *app {
	client := kraken.NewClient(kraken.Config{
		APIKey:    cfg.Kraken.APIKey,
		APISecret: cfg.Kraken.APISecret,
		Timeout:   cfg.Timeout,
	})
	resolver := pairs.NewResolver(client, log)

	return &app{
		log:     log,
		market:  market.NewService(client, resolver, log),
		account: account.NewService(client, resolver, log),
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	command, args := os.Args[1], os.Args[2:]

	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	cfg := config.Load()

	// Credentials are checked once, before any command logic runs.
	if requiresCredentials(command) {
		if err := cfg.ValidateCredentials(); err != nil {
			display.Failure(err.Error())
			os.Exit(1)
		}
	}

	log, err := logger.New(cfg.LogFile)
	if err != nil {
		display.Failure(fmt.Sprintf("cannot open log file: %v", err))
		os.Exit(1)
	}
	defer log.Close()

	a := newApp(cfg, log)

	var runErr error
	switch command {
	case "value":
		runErr = a.runValue(args)
	case "values":
		runErr = a.runValues(args)
	case "chart":
		runErr = a.runChart(args)
	case "balance":
		runErr = a.runBalance(args)
	case "orders":
		runErr = a.runOrders(args)
	case "buy":
		runErr = a.runBuy(args)
	default:
		display.Failure(fmt.Sprintf("unknown command %q", command))
		printUsage()
		os.Exit(2)
	}

	if runErr != nil {
		log.Error("%s: %v", command, runErr)
		display.Failure(runErr.Error())
		log.Close()
		os.Exit(1)
	}
}

func requiresCredentials(command string) bool {
	switch command {
	case "balance", "orders", "buy":
		return true
	}
	return false
}

func printUsage() {
	fmt.Fprint(os.Stderr, `cb - Kraken command line client

Usage:
  cb value PAIR                   show the current bid price for a pair or asset
  cb values CURRENCIES            price table for comma-separated assets
  cb chart PAIR [flags]           terminal candlestick chart
      -interval 1m|5m|15m|30m|1h|4h|1d|1w|2w   (default 1w)
      -volume                     show the volume pane
      -heikin-ashi                smooth candles (alias -ha)
  cb balance                      account balances with EUR valuation
  cb orders [-all] [-xlsx FILE]   open and recently closed orders
  cb buy ASSET VOLUME [CURRENCY]  place a limit buy order (default quote EUR)

Credentials are read from KRAKEN_API_KEY and KRAKEN_API_SECRET
(a .env file in the working directory is honored).
`)
}
