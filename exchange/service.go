package exchange

import (
	"context"
	"fmt"
	"math"

	launcher "go-currency-launcher"
	"go-currency-launcher/frankfurter"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, request launcher.Request) (launcher.Exchanged, error)
}

// service converts using rates from a frankfurter.Service
type service struct {
	// rateService to look up the exchange rate of a request
	rateService frankfurter.Service
}

// NewService constructs a valid Service
func NewService(s frankfurter.Service) Service {
	return &service{
		rateService: s,
	}
}

// Convert computes a conversion from one currency to another with the current exchange rate,
// along with the inverse rate.
func (s *service) Convert(ctx context.Context, request launcher.Request) (launcher.Exchanged, error) {
	quote, err := s.rateService.Rate(ctx, request.From, request.To)
	if err != nil {
		return launcher.Exchanged{}, fmt.Errorf("convert from [%v]: %w", request.From, err)
	}

	return Apply(request, quote)
}

// Apply applies quote to request. A rate that is not a positive finite number is an error,
// so the inverse is never the result of dividing by zero.
func Apply(request launcher.Request, quote launcher.Quote) (launcher.Exchanged, error) {
	rate := float64(quote.Rate)
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return launcher.Exchanged{}, launcher.GenericError(
			fmt.Sprintf("invalid exchange rate %v from %v to %v", rate, request.From, request.To), nil)
	}

	return launcher.Exchanged{
		Request: request,
		Rate:    quote.Rate,
		Inverse: launcher.Rate(1 / rate),
		Amount:  launcher.Amount(float64(request.Amount) * rate),
		Date:    quote.Date,
	}, nil
}
