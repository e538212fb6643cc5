package main

import (
	"context"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-launcher/exchange"
	"go-currency-launcher/frankfurter"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	logger = level.NewFilter(logger, level.AllowInfo())

	rateService := frankfurter.NewService()
	rateService = frankfurter.NewLoggingService(log.With(logger, "component", "frankfurter_rest"), rateService)
	rateService = frankfurter.NewIdentityService(rateService)
	rateService = frankfurter.NewLoggingService(log.With(logger, "component", "frankfurter_identity"), rateService)

	convertService := exchange.NewService(rateService)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	cli := NewCLI(os.Stdout, os.Stderr, convertService, log.With(logger, "component", "cli"))
	os.Exit(cli.Run(context.Background(), os.Args[1:]))
}
