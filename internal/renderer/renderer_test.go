package renderer

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/location-info/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func newsItem(n string) model.NewsItem {
	return model.NewsItem{
		Source:      strPtr("Source " + n),
		Author:      strPtr("Author " + n),
		Title:       strPtr("Title " + n),
		Description: strPtr("Description " + n),
		URL:         strPtr("https://example.com/" + n),
		PublishedAt: strPtr("2024-01-0" + n + "T10:00:00Z"),
		Content:     strPtr("Content " + n),
	}
}

func sampleInfo() *model.LocationInfo {
	return &model.LocationInfo{
		Location: &model.Location{
			Name:       "Russia",
			Capital:    "Moscow",
			Subregion:  "Eastern Europe",
			Area:       17124442,
			Latitude:   60,
			Longitude:  100,
			Population: 146599183,
			Languages: []model.Language{
				{Name: "Russian", NativeName: "Русский"},
			},
		},
		Weather: &model.Weather{
			Temp:        -3.5,
			Description: "небольшой снег",
			Visibility:  10000,
			WindSpeed:   4.2,
			Timezone:    10800,
			Dt:          1700000000,
		},
		CurrencyRates: model.CurrencyRates{
			{Code: "RUB", Rate: 1},
			{Code: "USD", Rate: 90.909},
		},
		News: []model.NewsItem{newsItem("1"), newsItem("2"), newsItem("3")},
	}
}

type RendererTestSuite struct {
	suite.Suite
	info *model.LocationInfo
}

func (s *RendererTestSuite) SetupTest() {
	s.info = sampleInfo()
}

func (s *RendererTestSuite) TestRenderReport() {
	report, _, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	s.True(strings.HasPrefix(report, "Информация о стране\n+"))
	s.Contains(report, "\n\nИнформация о погоде\n+")
	s.Contains(report, "\n\nИнформация о времени\n+")
	s.True(strings.HasSuffix(report, "+\n"))

	for _, want := range []string{
		"Russia",
		"Moscow",
		"Eastern Europe",
		"17124442 кв. км.",
		"Russian (Русский)",
		"146.599.183",
		"RUB = 1.00 руб., USD = 90.91 руб.",
		"-3.5 °C",
		"небольшой снег",
		"10000 м.",
		"4.2 м/с",
		"UTC+3",
		"15.11.2023 01:13",
	} {
		s.Contains(report, want)
	}
}

func (s *RendererTestSuite) TestRenderRowOrder() {
	report, _, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	labels := []string{
		"Страна", "Столица", "Регион", "Площадь", "Широта", "Долгота",
		"Языки", "Население", "Курсы валют",
		"Температура", "Описание", "Видимость", "Скорость ветра",
		"Часовой пояс", "Местное время",
	}

	last := -1
	for _, label := range labels {
		idx := strings.Index(report, label)
		s.Greater(idx, last, label)
		last = idx
	}
}

func (s *RendererTestSuite) TestWeatherRowsUseWeatherFields() {
	s.info.Location.Subregion = "Subregion marker"
	s.info.Location.Area = 123

	report, _, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	s.NotContains(report, "Subregion marker м.")
	s.NotContains(report, "123 м/с")
}

func (s *RendererTestSuite) TestRenderNews() {
	_, news, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	s.True(strings.HasPrefix(news, "\nНовости\n+"))
	s.Equal(3, strings.Count(news, "Источник"), news)

	last := -1
	for _, n := range []string{"1", "2", "3"} {
		item := newsItem(n)
		for _, field := range []*string{
			item.Source, item.Author, item.Title, item.Description,
			item.URL, item.PublishedAt, item.Content,
		} {
			s.Contains(news, *field)
		}

		idx := strings.Index(news, "Title "+n)
		s.Greater(idx, last)
		last = idx
	}

	for _, label := range []string{
		"Источник", "Автор", "Название", "Описание", "Ссылка", "Дата публикации", "Текст",
	} {
		s.Equal(3, strings.Count(news, label), label)
	}
}

func (s *RendererTestSuite) TestRenderNewsWrapsLongContent() {
	long := strings.Repeat("слово ", 60)
	s.info.News = []model.NewsItem{{Content: strPtr(long)}}

	_, news, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	for _, line := range strings.Split(news, "\n") {
		s.LessOrEqual(len([]rune(line)), 1+newsNameWidth+3+newsValueWidth+2, line)
	}
	s.Equal(60, strings.Count(news, "слово"))
}

func (s *RendererTestSuite) TestRenderNewsWideCharacters() {
	title := "東京オリンピック 🎉 news"
	s.info.News = []model.NewsItem{{
		Source: strPtr("NHK"),
		Title:  strPtr(title),
	}}

	_, news, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)
	s.Contains(news, title)

	var rows []string
	for _, line := range strings.Split(news, "\n") {
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "|") {
			rows = append(rows, line)
		}
	}
	s.Require().NotEmpty(rows)

	width := runewidth.StringWidth(rows[0])
	for _, line := range rows {
		s.Equal(width, runewidth.StringWidth(line), line)
	}
}

func (s *RendererTestSuite) TestRenderNilNewsFields() {
	s.info.News = []model.NewsItem{{Title: strPtr("Only title")}}

	_, news, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	s.Contains(news, "Only title")
	s.NotContains(news, "<nil>")
	s.Equal(1, strings.Count(news, "Источник"))
}

func (s *RendererTestSuite) TestRenderEmptyCollections() {
	s.info.Location.Languages = nil
	s.info.CurrencyRates = nil
	s.info.News = nil

	report, news, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	s.Contains(report, "Языки")
	s.Contains(report, "Курсы валют")
	s.Equal("\nНовости\n", news)
}

func (s *RendererTestSuite) TestRenderLabelsRatesWithBase() {
	s.info.CurrencyBase = "USD"
	s.info.CurrencyRates = model.CurrencyRates{
		{Code: "RUB", Rate: 0.01},
		{Code: "USD", Rate: 1},
	}

	report, _, err := NewRenderer(s.info).Render()
	s.Require().NoError(err)

	s.Contains(report, "RUB = 0.01 USD, USD = 1.00 USD")
	s.NotContains(report, "руб.")
}

func (s *RendererTestSuite) TestRenderIsIdempotent() {
	r := NewRenderer(s.info)

	report1, news1, err := r.Render()
	s.Require().NoError(err)
	report2, news2, err := r.Render()
	s.Require().NoError(err)

	s.Equal(report1, report2)
	s.Equal(news1, news2)
}

func (s *RendererTestSuite) TestRenderMalformedInput() {
	tests := []struct {
		name string
		info *model.LocationInfo
		want string
	}{
		{name: "nil info", info: nil, want: "location info is nil"},
		{name: "no location", info: &model.LocationInfo{Weather: &model.Weather{}}, want: "location is missing"},
		{name: "no weather", info: &model.LocationInfo{Location: &model.Location{}}, want: "weather is missing"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			report, news, err := NewRenderer(tt.info).Render()
			s.Require().Error(err)
			s.ErrorIs(err, ErrMalformedInput)
			s.Contains(err.Error(), tt.want)
			s.Empty(report)
			s.Empty(news)
		})
	}
}

func TestRendererSuite(t *testing.T) {
	suite.Run(t, new(RendererTestSuite))
}

func TestFormatPopulation(t *testing.T) {
	assert.Equal(t, "1.000.000", formatPopulation(1000000))
	assert.Equal(t, "1.234.567", formatPopulation(1234567))
	assert.Equal(t, "999", formatPopulation(999))
	assert.Equal(t, "0", formatPopulation(0))
}

func TestFormatCurrencyRates(t *testing.T) {
	assert.Equal(t, "USD = 12.35 руб.", formatCurrencyRates(model.CurrencyRates{{Code: "USD", Rate: 12.345}}, "RUB"))
	assert.Equal(t, "USD = 12.34 руб.", formatCurrencyRates(model.CurrencyRates{{Code: "USD", Rate: 12.344}}, ""))
	assert.Equal(t, "EUR = 100.00 руб., CNY = 12.50 руб.", formatCurrencyRates(model.CurrencyRates{
		{Code: "EUR", Rate: 100},
		{Code: "CNY", Rate: 12.5},
	}, "rub"))
	assert.Equal(t, "", formatCurrencyRates(nil, "RUB"))
}

func TestFormatCurrencyRatesNonRubleBase(t *testing.T) {
	got := formatCurrencyRates(model.CurrencyRates{
		{Code: "RUB", Rate: 0.01},
		{Code: "USD", Rate: 1},
	}, "USD")

	assert.Equal(t, "RUB = 0.01 USD, USD = 1.00 USD", got)
	assert.NotContains(t, got, "руб.")
}

func TestFormatLanguages(t *testing.T) {
	assert.Equal(t, "Russian (Русский)", formatLanguages([]model.Language{{Name: "Russian", NativeName: "Русский"}}))
	assert.Equal(t, "German (Deutsch), French (français)", formatLanguages([]model.Language{
		{Name: "German", NativeName: "Deutsch"},
		{Name: "French", NativeName: "français"},
	}))
	assert.Equal(t, "", formatLanguages(nil))
}

func TestFormatUTCOffset(t *testing.T) {
	assert.Equal(t, "UTC+3", formatUTCOffset(10800))
	assert.Equal(t, "UTC+0", formatUTCOffset(0))
	assert.Equal(t, "UTC+5", formatUTCOffset(19800))
	assert.Equal(t, "UTC-5", formatUTCOffset(-18000))
	assert.Equal(t, "UTC-4", formatUTCOffset(-12600))
}

func TestFormatLocalTime(t *testing.T) {
	require.Equal(t, "15.11.2023 01:13", formatLocalTime(1700000000, 10800))
	require.Equal(t, "14.11.2023 22:13", formatLocalTime(1700000000, 0))
}
