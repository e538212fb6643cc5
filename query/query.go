// Package query parses launcher queries such as "100 usd in chf".
package query

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	launcher "go-currency-launcher"
)

// Usage the message returned for any query that does not match the grammar
const Usage = "Invalid format. Use: cc [amount] [from_currency] [to_currency] or cc [amount] [from_currency] in [to_currency]"

var pattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+([a-zA-Z]{3,4})(?:\s+in)?\s+([a-zA-Z]{3,4})$`)

var validate = validator.New()

// request mirrors launcher.Request with validation rules
type request struct {
	Amount float64 `validate:"gte=0"`
	From   string  `validate:"required,alpha,min=3,max=4,uppercase"`
	To     string  `validate:"required,alpha,min=3,max=4,uppercase"`
}

// Parse turns a raw query into a Request. The whole trimmed input must match
// "<amount> <code> [in] <code>"; codes are upper-cased.
func Parse(raw string) (launcher.Request, error) {
	m := pattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return launcher.Request{}, launcher.ParseError(Usage, nil)
	}

	d, err := decimal.NewFromString(m[1])
	if err != nil {
		return launcher.Request{}, launcher.ParseError("Invalid amount", err)
	}
	amount, _ := d.Float64()
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return launcher.Request{}, launcher.ParseError("Invalid amount", fmt.Errorf("amount %v out of range", m[1]))
	}

	r := request{
		Amount: amount,
		From:   strings.ToUpper(m[2]),
		To:     strings.ToUpper(m[3]),
	}
	if err := validate.Struct(r); err != nil {
		return launcher.Request{}, launcher.ParseError(Usage, err)
	}

	return launcher.Request{
		Amount: launcher.Amount(r.Amount),
		From:   launcher.Currency(r.From),
		To:     launcher.Currency(r.To),
	}, nil
}
