package launcher

import "fmt"

// Currency a currency code
type Currency string

// Amount a monetary amount
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps a currency code to the rate from some base currency
type Rates map[Currency]Rate

// Request a parsed conversion query. Codes are always upper-case.
type Request struct {
	Amount Amount
	From   Currency
	To     Currency
}

// Quote a rate valid for a given date label
type Quote struct {
	Rate Rate
	// Date is the service's YYYY-MM-DD date, or "Today" for identity conversions
	Date string
}

// Exchanged the result of applying a Quote to a Request
type Exchanged struct {
	Request Request
	Rate    Rate
	Inverse Rate
	Amount  Amount
	Date    string
}

// Title one-line summary, e.g. "100.00 USD → 91.00 CHF"
func (e Exchanged) Title() string {
	return fmt.Sprintf("%.2f %v → %.2f %v", e.Request.Amount, e.Request.From, e.Amount, e.Request.To)
}

// Result the converted amount with its currency, e.g. "91.00 CHF"
func (e Exchanged) Result() string {
	return fmt.Sprintf("%.2f %v", e.Amount, e.Request.To)
}

// CopyText the text placed on the clipboard by the copy action.
// It does not mention the date.
func (e Exchanged) CopyText() string {
	return fmt.Sprintf("%.2f %v = %.2f %v\nExchange Rate: 1 %v = %.6f %v",
		e.Request.Amount, e.Request.From,
		e.Amount, e.Request.To,
		e.Request.From, e.Rate, e.Request.To,
	)
}
