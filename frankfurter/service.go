package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	launcher "go-currency-launcher"
)

const ApiUrlBase = "https://api.frankfurter.dev/v1"

// Service looks up the current rate between two currencies
type Service interface {
	Rate(ctx context.Context, from launcher.Currency, to launcher.Currency) (launcher.Quote, error)
}

// table the body of a /latest response
type table struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// tableSchema rejects bodies that would decode into a partially filled table
var tableSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["base", "date", "rates"],
	"properties": {
		"base": {"type": "string"},
		"date": {"type": "string"},
		"rates": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		}
	}
}`)

// service Frankfurter REST API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a Service for the public Frankfurter API.
func NewService() Service {
	return NewServiceWithURL(ApiUrlBase)
}

// NewServiceWithURL constructs a Service for a Frankfurter-compatible API at baseURL.
func NewServiceWithURL(baseURL string) Service {
	return &service{
		url:    strings.TrimRight(baseURL, "/"),
		client: http.Client{},
	}
}

// Rate loads the latest rate from one currency to another.
func (s *service) Rate(ctx context.Context, from launcher.Currency, to launcher.Currency) (launcher.Quote, error) {
	from = launcher.Currency(strings.ToUpper(string(from)))
	to = launcher.Currency(strings.ToUpper(string(to)))

	query := url.Values{}
	query.Set("base", string(from))
	query.Set("symbols", string(to))
	u := fmt.Sprintf("%v/latest?%v", s.url, query.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return launcher.Quote{}, launcher.GenericError("building http request", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return launcher.Quote{}, launcher.NetworkError("http get", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return launcher.Quote{}, launcher.StatusError(httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return launcher.Quote{}, launcher.NetworkError("reading json", err)
	}

	response, err := decode(bytes)
	if err != nil {
		return launcher.Quote{}, err
	}

	rate, ok := response.Rates[string(to)]
	if !ok {
		return launcher.Quote{}, launcher.UnsupportedCurrencyError(to)
	}

	return launcher.Quote{Rate: launcher.Rate(rate), Date: response.Date}, nil
}

// decode validates and decodes a /latest response body
func decode(bytes []byte) (table, error) {
	result, err := gojsonschema.Validate(tableSchema, gojsonschema.NewBytesLoader(bytes))
	if err != nil {
		return table{}, launcher.NetworkError("decoding json", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return table{}, launcher.NetworkError("decoding json", fmt.Errorf("unexpected response: %v", strings.Join(errs, "; ")))
	}

	var response table
	if err := json.Unmarshal(bytes, &response); err != nil {
		return table{}, launcher.NetworkError("decoding json", err)
	}
	return response, nil
}
