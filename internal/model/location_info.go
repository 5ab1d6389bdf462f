package model

type Language struct {
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

type Location struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Subregion  string     `json:"subregion"`
	Area       float64    `json:"area"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Population int64      `json:"population"`
	Languages  []Language `json:"languages"`
}

type Weather struct {
	Temp        float64 `json:"temp"`
	Description string  `json:"description"`
	Visibility  int     `json:"visibility"`
	WindSpeed   float64 `json:"wind_speed"`
	// Timezone is the shift from UTC in seconds.
	Timezone int `json:"timezone"`
	// Dt is the observation time as a unix timestamp.
	Dt int64 `json:"dt"`
}

// CurrencyRate is the amount of the base currency paid for one unit of Code.
type CurrencyRate struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// CurrencyRates keeps insertion order, which is the order rates are rendered in.
type CurrencyRates []CurrencyRate

// NewsItem mirrors one upstream article. Every field may be missing upstream.
type NewsItem struct {
	Source      *string `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	PublishedAt *string `json:"publishedAt"`
	Content     *string `json:"content"`
}

// LocationInfo is the merged snapshot of all provider data for one query.
// It is built once by the service and only read afterwards.
type LocationInfo struct {
	Location *Location `json:"location"`
	Weather  *Weather  `json:"weather"`
	// CurrencyBase is the code CurrencyRates are quoted in, RUB when empty.
	CurrencyBase  string        `json:"currency_base"`
	CurrencyRates CurrencyRates `json:"currency_rates"`
	News          []NewsItem    `json:"news"`
}
