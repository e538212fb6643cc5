package launcher

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExchanged_Text(t *testing.T) {
	ex := Exchanged{
		Request: Request{Amount: 100, From: "USD", To: "CHF"},
		Rate:    0.91,
		Inverse: 1 / 0.91,
		Amount:  91,
		Date:    "2024-01-15",
	}

	assert.Equal(t, "100.00 USD → 91.00 CHF", ex.Title())
	assert.Equal(t, "91.00 CHF", ex.Result())
	assert.Equal(t, "100.00 USD = 91.00 CHF\nExchange Rate: 1 USD = 0.910000 CHF", ex.CopyText())
	assert.NotContains(t, ex.CopyText(), ex.Date)
}

func TestError_As(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    Kind
		message string
	}{
		{"parse", ParseError("bad input", nil), KindParse, "bad input"},
		{"status", StatusError(500), KindNetwork, "HTTP Error: 500 Internal Server Error"},
		{"network", NetworkError("decoding json", errors.New("boom")), KindNetwork, "decoding json: boom"},
		{"unsupported", UnsupportedCurrencyError("XYZ"), KindUnsupportedCurrency, "Currency 'XYZ' not supported or not found"},
		{"generic", GenericError("", errors.New("oops")), KindGeneric, "oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("convert: %w", tt.err)

			var e *Error
			assert.True(t, errors.As(wrapped, &e))
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestStatusError_Code(t *testing.T) {
	err := StatusError(404)
	assert.Equal(t, 404, err.StatusCode)
	assert.Equal(t, KindNetwork, err.Kind)
}
