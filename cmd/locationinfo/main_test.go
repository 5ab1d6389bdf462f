package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"ulascansenturk/location-info/config"
	"ulascansenturk/location-info/internal/providers"
	"ulascansenturk/location-info/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providerStub answers for every provider host on one server.
func providerStub(t *testing.T, newsStatus int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/geo/country/name/"):
			if r.URL.Path != "/geo/country/name/Russia" {
				json.NewEncoder(w).Encode([]interface{}{})
				return
			}
			json.NewEncoder(w).Encode([]map[string]interface{}{{
				"name":       "Russia",
				"alpha2code": "RU",
				"capital":    "Moscow",
				"subregion":  "Eastern Europe",
				"area":       17124442.0,
				"latlng":     []float64{60, 100},
				"population": 146599183,
				"languages":  []map[string]string{{"name": "Russian", "native_name": "Русский"}},
				"currencies": []map[string]string{{"code": "RUB"}, {"code": "USD"}},
			}})
		case r.URL.Path == "/data/2.5/weather":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"main":       map[string]interface{}{"temp": 1.5},
				"weather":    []map[string]string{{"description": "ясно"}},
				"visibility": 10000,
				"wind":       map[string]interface{}{"speed": 3},
				"timezone":   10800,
				"dt":         1700000000,
			})
		case r.URL.Path == "/exchangerates_data/latest":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"base":    "RUB",
				"rates":   map[string]float64{"USD": 0.0125},
			})
		case r.URL.Path == "/v2/everything":
			if newsStatus != http.StatusOK {
				w.WriteHeader(newsStatus)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "ok",
				"articles": []map[string]interface{}{
					{"source": map[string]string{"name": "Lenta"}, "title": "Headline one"},
					{"source": map[string]string{"name": "RBC"}, "title": "Headline two"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

type rewriteTransport struct {
	target *url.URL
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = rt.target.Scheme
	req.URL.Host = rt.target.Host
	req.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

func stubClient(t *testing.T, server *httptest.Server) *http.Client {
	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	return providers.NewHTTPClient(providers.HTTPClientOptions{
		Timeout: 2 * time.Second,
		Base:    &rewriteTransport{target: target},
	})
}

func testConfig(country string) *config.Config {
	return &config.Config{
		ServiceName:       "location-info",
		ApilayerAPIKey:    "apilayer",
		OpenWeatherAPIKey: "owm",
		NewsAPIKey:        "news",
		CurrencyBase:      "RUB",
		Country:           country,
	}
}

func TestRun(t *testing.T) {
	server := providerStub(t, http.StatusOK)
	defer server.Close()

	var out strings.Builder
	err := run(context.Background(), testConfig("Russia"), stubClient(t, server), &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Информация о стране")
	assert.Contains(t, text, "Russian (Русский)")
	assert.Contains(t, text, "146.599.183")
	assert.Contains(t, text, "RUB = 1.00 руб., USD = 80.00 руб.")
	assert.Contains(t, text, "1.5 °C")
	assert.Contains(t, text, "UTC+3")
	assert.Contains(t, text, "15.11.2023 01:13")
	assert.Contains(t, text, "Новости")
	assert.Less(t, strings.Index(text, "Headline one"), strings.Index(text, "Headline two"))
}

func TestRunWithoutNews(t *testing.T) {
	server := providerStub(t, http.StatusTooManyRequests)
	defer server.Close()

	var out strings.Builder
	err := run(context.Background(), testConfig("Russia"), stubClient(t, server), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Информация о погоде")
	assert.Contains(t, out.String(), "\nНовости\n")
	assert.NotContains(t, out.String(), "Источник")
}

func TestRunUnknownCountry(t *testing.T) {
	server := providerStub(t, http.StatusOK)
	defer server.Close()

	var out strings.Builder
	err := run(context.Background(), testConfig("Atlantis"), stubClient(t, server), &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrCountryNotFound)
	assert.Empty(t, out.String())
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger := newLogger(&config.Config{LogLevel: "nonsense"})
	assert.Equal(t, "info", logger.GetLevel().String())
}
