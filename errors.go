package launcher

import (
	"fmt"
	"net/http"
)

// Kind identifies which failure template an Error renders as
type Kind int

const (
	KindGeneric Kind = iota
	KindParse
	KindNetwork
	KindUnsupportedCurrency
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindNetwork:
		return "network"
	case KindUnsupportedCurrency:
		return "unsupported_currency"
	default:
		return "generic"
	}
}

// Error a conversion failure. Every error leaving the pipeline is, or wraps, an *Error;
// anything else is treated as KindGeneric.
type Error struct {
	Kind Kind
	// Currency the code the rate service did not know, for KindUnsupportedCurrency
	Currency Currency
	// StatusCode the HTTP status for KindNetwork failures caused by a bad response, otherwise 0
	StatusCode int
	Msg        string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ParseError input did not match the query grammar
func ParseError(msg string, err error) *Error {
	return &Error{Kind: KindParse, Msg: msg, Err: err}
}

// NetworkError the rate service could not be reached or returned an unusable body
func NetworkError(msg string, err error) *Error {
	return &Error{Kind: KindNetwork, Msg: msg, Err: err}
}

// StatusError the rate service answered with a non-success status
func StatusError(code int) *Error {
	return &Error{
		Kind:       KindNetwork,
		StatusCode: code,
		Msg:        fmt.Sprintf("HTTP Error: %d %s", code, http.StatusText(code)),
	}
}

// UnsupportedCurrencyError the rate service has no rate for currency
func UnsupportedCurrencyError(currency Currency) *Error {
	return &Error{
		Kind:     KindUnsupportedCurrency,
		Currency: currency,
		Msg:      fmt.Sprintf("Currency '%v' not supported or not found", currency),
	}
}

// GenericError any other conversion failure
func GenericError(msg string, err error) *Error {
	return &Error{Kind: KindGeneric, Msg: msg, Err: err}
}
