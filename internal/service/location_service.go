package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/location-info/internal/model"
	"ulascansenturk/location-info/internal/providers"
)

const (
	DefaultCurrencyBase = "RUB"
	maxNewsItems        = 3
)

var (
	ErrEmptyCountry    = errors.New("country cannot be empty")
	ErrCountryNotFound = errors.New("country not found")
	ErrWeatherNotFound = errors.New("weather not found")
)

type Query struct {
	Country string
	// City defaults to the capital of Country.
	City string
}

type LocationService interface {
	Collect(ctx context.Context, query Query) (*model.LocationInfo, error)
}

type locationService struct {
	countryAPI   providers.CountryAPIService
	weatherAPI   providers.WeatherAPIService
	currencyAPI  providers.CurrencyAPIService
	newsAPI      providers.NewsAPIService
	currencyBase string
}

func NewLocationService(
	countryAPI providers.CountryAPIService,
	weatherAPI providers.WeatherAPIService,
	currencyAPI providers.CurrencyAPIService,
	newsAPI providers.NewsAPIService,
	currencyBase string,
) LocationService {
	if currencyBase == "" {
		currencyBase = DefaultCurrencyBase
	}

	return &locationService{
		countryAPI:   countryAPI,
		weatherAPI:   weatherAPI,
		currencyAPI:  currencyAPI,
		newsAPI:      newsAPI,
		currencyBase: strings.ToUpper(currencyBase),
	}
}

// Collect queries the providers one after another and merges their answers.
// Country and weather are required; missing rates or news leave their
// sections empty.
func (s *locationService) Collect(ctx context.Context, query Query) (*model.LocationInfo, error) {
	if strings.TrimSpace(query.Country) == "" {
		return nil, ErrEmptyCountry
	}

	country, err := s.countryAPI.GetCountry(ctx, query.Country)
	if err != nil {
		return nil, fmt.Errorf("failed to get country %q: %w", query.Country, err)
	}
	if country == nil {
		return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, query.Country)
	}

	city := query.City
	if city == "" {
		city = country.Capital
	}

	weather, err := s.weatherAPI.GetWeather(ctx, city, country.Alpha2Code)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather for %q: %w", city, err)
	}
	if weather == nil {
		return nil, fmt.Errorf("%w: %s", ErrWeatherNotFound, city)
	}

	rates, err := s.currencyAPI.GetRates(ctx, s.currencyBase)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency rates: %w", err)
	}
	if rates == nil {
		log.Warn().Str("base", s.currencyBase).Msg("currency rates unavailable, rendering without them")
	}

	news, err := s.newsAPI.GetNews(ctx, country.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get news for %q: %w", country.Name, err)
	}
	if news == nil {
		log.Warn().Str("country", country.Name).Msg("news unavailable, rendering without them")
	}

	return &model.LocationInfo{
		Location:      toLocation(country),
		Weather:       toWeather(weather),
		CurrencyBase:  s.currencyBase,
		CurrencyRates: s.toCurrencyRates(country.Currencies, rates),
		News:          toNews(news),
	}, nil
}

func toLocation(c *providers.CountryResponse) *model.Location {
	languages := make([]model.Language, 0, len(c.Languages))
	for _, lang := range c.Languages {
		languages = append(languages, model.Language{
			Name:       lang.Name,
			NativeName: lang.NativeName,
		})
	}

	return &model.Location{
		Name:       c.Name,
		Capital:    c.Capital,
		Subregion:  c.Subregion,
		Area:       c.Area,
		Latitude:   c.Latitude(),
		Longitude:  c.Longitude(),
		Population: c.Population,
		Languages:  languages,
	}
}

func toWeather(w *providers.WeatherResponse) *model.Weather {
	return &model.Weather{
		Temp:        w.Main.Temp,
		Description: w.Description(),
		Visibility:  w.Visibility,
		WindSpeed:   w.Wind.Speed,
		Timezone:    w.Timezone,
		Dt:          w.Dt,
	}
}

// toCurrencyRates converts "units per one base unit" into "base units per one
// unit" for each currency of the country, keeping the country's order.
func (s *locationService) toCurrencyRates(currencies []providers.Currency, rates *providers.CurrencyRatesResponse) model.CurrencyRates {
	if rates == nil {
		return nil
	}

	result := make(model.CurrencyRates, 0, len(currencies))
	for _, currency := range currencies {
		code := strings.ToUpper(currency.Code)
		if code == s.currencyBase {
			result = append(result, model.CurrencyRate{Code: code, Rate: 1})
			continue
		}

		rate, ok := rates.Rates[code]
		if !ok || rate <= 0 {
			log.Debug().Str("code", code).Msg("no rate for currency")
			continue
		}

		result = append(result, model.CurrencyRate{Code: code, Rate: 1 / rate})
	}

	return result
}

func toNews(resp *providers.NewsResponse) []model.NewsItem {
	if resp == nil {
		return nil
	}

	items := make([]model.NewsItem, 0, len(resp.Articles))
	for _, article := range resp.Articles {
		if len(items) == maxNewsItems {
			break
		}
		items = append(items, model.NewsItem{
			Source:      article.Source.Name,
			Author:      article.Author,
			Title:       article.Title,
			Description: article.Description,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			Content:     article.Content,
		})
	}

	return items
}
