package providers

import (
	"context"
	"net/http"
	"net/url"
)

const CountryBaseURL = "https://api.apilayer.com/geo"

type CountryAPIService interface {
	BaseURL() string
	GetCountry(ctx context.Context, name string) (*CountryResponse, error)
}

type CountryResponse struct {
	Name       string     `json:"name"`
	Alpha2Code string     `json:"alpha2code"`
	Capital    string     `json:"capital"`
	Subregion  string     `json:"subregion"`
	Area       float64    `json:"area"`
	LatLng     []float64  `json:"latlng"`
	Population int64      `json:"population"`
	Timezones  []string   `json:"timezones"`
	Languages  []Language `json:"languages"`
	Currencies []Currency `json:"currencies"`
}

type Language struct {
	ISO639_1   string `json:"iso639_1"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Latitude and Longitude read the provider's [lat, lng] pair.
func (r *CountryResponse) Latitude() float64 {
	if len(r.LatLng) < 1 {
		return 0
	}
	return r.LatLng[0]
}

func (r *CountryResponse) Longitude() float64 {
	if len(r.LatLng) < 2 {
		return 0
	}
	return r.LatLng[1]
}

type CountryClient struct {
	Client
}

func NewCountryClient(apiKey string, httpClient *http.Client) *CountryClient {
	return &CountryClient{Client: newClient(CountryBaseURL, apiKey, httpClient)}
}

// GetCountry looks a country up by name and returns the first match.
func (c *CountryClient) GetCountry(ctx context.Context, name string) (*CountryResponse, error) {
	endpoint := c.buildURL("country/name/"+url.PathEscape(name), nil)

	var matches []CountryResponse
	ok, err := c.request(ctx, endpoint, &matches)
	if err != nil || !ok || len(matches) == 0 {
		return nil, err
	}

	return &matches[0], nil
}
