package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

const apiKeyHeader = "apikey"

// Client is the part every provider client shares: a fixed root URL, the
// provider API key and the HTTP client requests go through.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newClient(baseURL, apiKey string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(HTTPClientOptions{})
	}

	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) GetHTTPClient() *http.Client {
	return c.client
}

func (c *Client) buildURL(path string, query url.Values) string {
	endpoint := strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	return endpoint
}

// request GETs endpoint and decodes a 200 body into out.
//
// A non-200 status or a failed round trip yields (false, nil): the provider had
// no answer, and so does a body that times out mid-read. Errors are returned
// only for a malformed 200 body, a request that cannot be built, or a
// cancelled ctx.
func (c *Client) request(ctx context.Context, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}

		log.Warn().
			Err(redactError(err)).
			Str("url", redactURL(req.URL)).
			Msg("provider request failed")
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("host", req.URL.Host).
			Str("path", req.URL.Path).
			Msg("provider returned non-OK status")
		return false, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}

		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			log.Warn().
				Err(redactError(err)).
				Str("url", redactURL(req.URL)).
				Msg("provider response timed out")
			return false, nil
		}

		return false, fmt.Errorf("%s returned malformed JSON: %w", req.URL.Host, err)
	}

	return true, nil
}
