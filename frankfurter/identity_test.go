package frankfurter

import (
	"context"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"

	launcher "go-currency-launcher"
)

type mock struct {
	count int
	quote launcher.Quote
	err   error
}

func (m *mock) Rate(_ context.Context, _ launcher.Currency, _ launcher.Currency) (launcher.Quote, error) {
	m.count++
	return m.quote, m.err
}

func TestIdentityService_SameCurrency(t *testing.T) {
	var underlyingService mock
	s := NewIdentityService(&underlyingService)

	for _, pair := range [][2]launcher.Currency{{"USD", "USD"}, {"usd", "USD"}, {"Eur", "eUR"}} {
		quote, err := s.Rate(context.Background(), pair[0], pair[1])
		assert.NoError(t, err)
		assert.Equal(t, launcher.Quote{Rate: 1, Date: "Today"}, quote)
	}
	assert.Equal(t, 0, underlyingService.count)
}

func TestIdentityService_DifferentCurrency(t *testing.T) {
	underlyingService := mock{quote: launcher.Quote{Rate: 0.5, Date: "2024-01-15"}}
	s := NewIdentityService(&underlyingService)

	quote, err := s.Rate(context.Background(), "USD", "GBP")

	assert.NoError(t, err)
	assert.Equal(t, underlyingService.quote, quote)
	assert.Equal(t, 1, underlyingService.count)
}

func TestLoggingService_PassesThrough(t *testing.T) {
	underlyingService := mock{err: launcher.UnsupportedCurrencyError("XYZ")}
	s := NewLoggingService(log.NewNopLogger(), &underlyingService)

	_, err := s.Rate(context.Background(), "USD", "XYZ")

	assert.Equal(t, underlyingService.err, err)
	assert.Equal(t, 1, underlyingService.count)
}
