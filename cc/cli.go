package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	launcher "go-currency-launcher"
	"go-currency-launcher/card"
	"go-currency-launcher/exchange"
	"go-currency-launcher/query"
)

const usage = "Error: No conversion parameters provided. Usage: cc [amount] [from_currency] [to_currency]"

// CLI answers one launcher query
type CLI struct {
	out       io.Writer
	errOut    io.Writer
	converter exchange.Service
	logger    log.Logger
}

// NewCLI constructs a CLI writing result documents to out and usage errors to errOut
func NewCLI(out io.Writer, errOut io.Writer, converter exchange.Service, logger log.Logger) CLI {
	return CLI{
		out:       out,
		errOut:    errOut,
		converter: converter,
		logger:    logger,
	}
}

// Run answers the query formed by joining args and returns the process exit code.
// Only a missing query is a hard failure; every other outcome is a document on out.
func (c CLI) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(c.errOut, usage)
		return 1
	}

	doc := c.answer(ctx, strings.Join(args, " "))

	if err := card.Write(c.out, doc); err != nil {
		level.Error(c.logger).Log("msg", "writing result", "err", err)
		return 1
	}
	return 0
}

func (c CLI) answer(ctx context.Context, input string) card.Document {
	request, err := query.Parse(input)
	if err != nil {
		level.Error(c.logger).Log("msg", "parse error", "input", input, "err", err)
		return card.Failure(launcher.Request{}, err)
	}

	ex, err := c.converter.Convert(ctx, request)
	if err != nil {
		level.Error(c.logger).Log("msg", "conversion failed", "from", request.From, "to", request.To, "err", err)
		return card.Failure(request, err)
	}

	return card.Success(ex)
}
