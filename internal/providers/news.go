package providers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const (
	NewsBaseURL        = "https://newsapi.org/v2"
	DefaultNewsCountry = "Russia"
	newsPageSize       = 3
)

type NewsAPIService interface {
	BaseURL() string
	GetNews(ctx context.Context, country string) (*NewsResponse, error)
}

type NewsResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}

type NewsArticle struct {
	Source struct {
		ID   *string `json:"id"`
		Name *string `json:"name"`
	} `json:"source"`
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	PublishedAt *string `json:"publishedAt"`
	Content     *string `json:"content"`
}

type NewsClient struct {
	Client
}

func NewNewsClient(apiKey string, httpClient *http.Client) *NewsClient {
	return &NewsClient{Client: newClient(NewsBaseURL, apiKey, httpClient)}
}

// GetNews returns the latest articles mentioning country. A nil response
// with a nil error means the provider had nothing for this query.
func (c *NewsClient) GetNews(ctx context.Context, country string) (*NewsResponse, error) {
	if country == "" {
		country = DefaultNewsCountry
	}

	endpoint := c.buildURL("everything", url.Values{
		"q":        {country},
		"sortBy":   {"publishedAt"},
		"pageSize": {strconv.Itoa(newsPageSize)},
		"apiKey":   {c.apiKey},
	})

	var resp NewsResponse
	ok, err := c.request(ctx, endpoint, &resp)
	if err != nil || !ok {
		return nil, err
	}

	return &resp, nil
}
