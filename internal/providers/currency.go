package providers

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const CurrencyBaseURL = "https://api.apilayer.com/exchangerates_data"

type CurrencyAPIService interface {
	BaseURL() string
	GetRates(ctx context.Context, base string) (*CurrencyRatesResponse, error)
}

// CurrencyRatesResponse holds how many units of each currency one unit of Base
// buys.
type CurrencyRatesResponse struct {
	Success bool               `json:"success"`
	Base    string             `json:"base"`
	Date    string             `json:"date"`
	Rates   map[string]float64 `json:"rates"`
	Error   struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}

type CurrencyClient struct {
	Client
}

func NewCurrencyClient(apiKey string, httpClient *http.Client) *CurrencyClient {
	return &CurrencyClient{Client: newClient(CurrencyBaseURL, apiKey, httpClient)}
}

func (c *CurrencyClient) GetRates(ctx context.Context, base string) (*CurrencyRatesResponse, error) {
	endpoint := c.buildURL("latest", url.Values{
		"base": {strings.ToUpper(base)},
	})

	var resp CurrencyRatesResponse
	ok, err := c.request(ctx, endpoint, &resp)
	if err != nil || !ok {
		return nil, err
	}

	// the provider reports some failures with a 200 and success=false
	if !resp.Success {
		log.Warn().
			Int("code", resp.Error.Code).
			Str("type", resp.Error.Type).
			Msg("currency provider rejected the request")
		return nil, nil
	}

	return &resp, nil
}
