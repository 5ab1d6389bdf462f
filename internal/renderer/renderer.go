package renderer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"ulascansenturk/location-info/internal/model"
	"ulascansenturk/location-info/internal/table"
)

// ErrMalformedInput is returned when the location info lacks a section the
// report needs.
var ErrMalformedInput = errors.New("malformed location info")

const (
	headerName  = "Характеристика"
	headerValue = "Значение"

	newsNameWidth  = 50
	newsValueWidth = 120

	localTimeLayout = "02.01.2006 15:04"

	defaultCurrencyBase = "RUB"
)

// German locale groups digits with '.'.
var populationPrinter = message.NewPrinter(language.German)

type Renderer struct {
	info *model.LocationInfo
}

func NewRenderer(info *model.LocationInfo) *Renderer {
	return &Renderer{info: info}
}

// Render returns the country, weather and time report and, separately, the
// news report. Output depends only on the location info.
func (r *Renderer) Render() (string, string, error) {
	if err := r.validate(); err != nil {
		return "", "", err
	}

	var sb strings.Builder

	sb.WriteString("Информация о стране\n")
	sb.WriteString(r.locationTable().String())

	sb.WriteString("\n\nИнформация о погоде\n")
	sb.WriteString(r.weatherTable().String())

	sb.WriteString("\n\nИнформация о времени\n")
	sb.WriteString(r.timeTable().String())
	sb.WriteString("\n")

	return sb.String(), r.formatNews(), nil
}

func (r *Renderer) validate() error {
	switch {
	case r.info == nil:
		return fmt.Errorf("%w: location info is nil", ErrMalformedInput)
	case r.info.Location == nil:
		return fmt.Errorf("%w: location is missing", ErrMalformedInput)
	case r.info.Weather == nil:
		return fmt.Errorf("%w: weather is missing", ErrMalformedInput)
	}
	return nil
}

func (r *Renderer) locationTable() *table.Table {
	location := r.info.Location

	t := table.New(headerName, headerValue)
	t.AddRow("Страна", location.Name)
	t.AddRow("Столица", location.Capital)
	t.AddRow("Регион", location.Subregion)
	t.AddRow("Площадь", formatFloat(location.Area)+" кв. км.")
	t.AddRow("Широта", formatFloat(location.Latitude))
	t.AddRow("Долгота", formatFloat(location.Longitude))
	t.AddRow("Языки", formatLanguages(location.Languages))
	t.AddRow("Население", formatPopulation(location.Population))
	t.AddRow("Курсы валют", formatCurrencyRates(r.info.CurrencyRates, r.info.CurrencyBase))

	return t
}

func (r *Renderer) weatherTable() *table.Table {
	weather := r.info.Weather

	t := table.New(headerName, headerValue)
	t.AddRow("Температура", formatFloat(weather.Temp)+" °C")
	t.AddRow("Описание", weather.Description)
	t.AddRow("Видимость", strconv.Itoa(weather.Visibility)+" м.")
	t.AddRow("Скорость ветра", formatFloat(weather.WindSpeed)+" м/с")

	return t
}

func (r *Renderer) timeTable() *table.Table {
	weather := r.info.Weather

	t := table.New(headerName, headerValue)
	t.AddRow("Часовой пояс", formatUTCOffset(weather.Timezone))
	t.AddRow("Местное время", formatLocalTime(weather.Dt, weather.Timezone))

	return t
}

func (r *Renderer) formatNews() string {
	var sb strings.Builder
	sb.WriteString("\nНовости\n")

	for _, item := range r.info.News {
		t := table.New(headerName, headerValue)
		t.SetMaxWidth(0, newsNameWidth)
		t.SetMaxWidth(1, newsValueWidth)
		t.SetAlign(1, table.AlignLeft)

		t.AddRow("Источник", deref(item.Source))
		t.AddRow("Автор", deref(item.Author))
		t.AddRow("Название", deref(item.Title))
		t.AddRow("Описание", deref(item.Description))
		t.AddRow("Ссылка", deref(item.URL))
		t.AddRow("Дата публикации", deref(item.PublishedAt))
		t.AddRow("Текст", deref(item.Content))

		sb.WriteString(t.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatLanguages(languages []model.Language) string {
	parts := make([]string, 0, len(languages))
	for _, lang := range languages {
		parts = append(parts, fmt.Sprintf("%s (%s)", lang.Name, lang.NativeName))
	}
	return strings.Join(parts, ", ")
}

func formatPopulation(population int64) string {
	return populationPrinter.Sprintf("%d", population)
}

// formatCurrencyRates rounds half-up to two places and labels amounts with
// the base currency.
func formatCurrencyRates(rates model.CurrencyRates, base string) string {
	unit := currencyUnit(base)

	parts := make([]string, 0, len(rates))
	for _, rate := range rates {
		rounded := decimal.NewFromFloat(rate.Rate).StringFixed(2)
		parts = append(parts, fmt.Sprintf("%s = %s %s", rate.Code, rounded, unit))
	}
	return strings.Join(parts, ", ")
}

func currencyUnit(base string) string {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" || base == defaultCurrencyBase {
		return "руб."
	}
	return base
}

// formatUTCOffset shows whole hours, rounded down.
func formatUTCOffset(timezone int) string {
	hours := timezone / 3600
	if timezone < 0 && timezone%3600 != 0 {
		hours--
	}

	if hours < 0 {
		return fmt.Sprintf("UTC-%d", -hours)
	}
	return fmt.Sprintf("UTC+%d", hours)
}

// formatLocalTime renders dt shifted by timezone. The shift is already applied,
// so the result is printed as UTC and does not depend on the host zone.
func formatLocalTime(dt int64, timezone int) string {
	return time.Unix(dt+int64(timezone), 0).UTC().Format(localTimeLayout)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
