package providers

import (
	"context"
	"net/http"
	"net/url"
)

const WeatherBaseURL = "https://api.openweathermap.org/data/2.5"

type WeatherAPIService interface {
	BaseURL() string
	GetWeather(ctx context.Context, city, countryCode string) (*WeatherResponse, error)
}

type WeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Timezone int    `json:"timezone"`
	Dt       int64  `json:"dt"`
	Name     string `json:"name"`
}

// Description is the text of the first reported weather condition.
func (r *WeatherResponse) Description() string {
	if len(r.Weather) == 0 {
		return ""
	}
	return r.Weather[0].Description
}

type WeatherClient struct {
	Client
}

func NewWeatherClient(apiKey string, httpClient *http.Client) *WeatherClient {
	return &WeatherClient{Client: newClient(WeatherBaseURL, apiKey, httpClient)}
}

// GetWeather returns current conditions in metric units. countryCode narrows
// the city lookup and may be empty.
func (c *WeatherClient) GetWeather(ctx context.Context, city, countryCode string) (*WeatherResponse, error) {
	location := city
	if countryCode != "" {
		location += "," + countryCode
	}

	endpoint := c.buildURL("weather", url.Values{
		"q":     {location},
		"units": {"metric"},
		"lang":  {"ru"},
		"appid": {c.apiKey},
	})

	var resp WeatherResponse
	ok, err := c.request(ctx, endpoint, &resp)
	if err != nil || !ok {
		return nil, err
	}

	return &resp, nil
}
