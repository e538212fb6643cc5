package frankfurter

import (
	"context"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	launcher "go-currency-launcher"
)

// loggingService decorates a frankfurter.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Rate(ctx context.Context, from launcher.Currency, to launcher.Currency) (quote launcher.Quote, err error) {
	defer func(begin time.Time) {
		level.Info(s.logger).Log(
			"method", "rate",
			"from", from,
			"to", to,
			"rate", quote.Rate,
			"date", quote.Date,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rate(ctx, from, to)
}
