package providers

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const defaultHTTPTimeout = 10 * time.Second

// query parameters that carry credentials and never reach the logs
var secretParams = []string{"apiKey", "appid", "access_key"}

type HTTPClientOptions struct {
	Timeout time.Duration
	Logger  *zerolog.Logger

	// Tracing wraps the transport with OpenTelemetry instrumentation.
	Tracing bool
	// TracerProvider records the client spans, the global provider when nil.
	TracerProvider trace.TracerProvider
	// Base is the innermost transport, http.DefaultTransport when nil.
	Base http.RoundTripper
}

// NewHTTPClient builds the client shared by all providers. Every request goes
// through the logging transport and, when enabled, the otelhttp transport.
func NewHTTPClient(opts HTTPClientOptions) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultHTTPTimeout
	}

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	var transport http.RoundTripper = NewLoggingTransport(opts.Base, logger)
	if opts.Tracing {
		otelOpts := []otelhttp.Option{
			otelhttp.WithPropagators(propagation.NewCompositeTextMapPropagator(
				propagation.TraceContext{},
				propagation.Baggage{},
			)),
		}
		if opts.TracerProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithTracerProvider(opts.TracerProvider))
		}
		transport = otelhttp.NewTransport(transport, otelOpts...)
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}
}

type loggingTransport struct {
	next   http.RoundTripper
	logger zerolog.Logger
}

// NewLoggingTransport emits a debug event when a request starts and when it
// ends.
func NewLoggingTransport(next http.RoundTripper, logger zerolog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	target := redactURL(req.URL)
	t.logger.Debug().Str("method", req.Method).Str("url", target).Msg("request started")

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.logger.Debug().Err(err).
			Str("method", req.Method).
			Str("url", target).
			Dur("duration", elapsed).
			Msg("request failed")
		return nil, err
	}

	t.logger.Debug().
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("duration", elapsed).
		Msg("request finished")

	return resp, nil
}

// redactError strips the request URL, and the credentials in it, from errors
// returned by http.Client.
func redactError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	redacted := *u
	query := redacted.Query()
	for _, param := range secretParams {
		if query.Has(param) {
			query.Set(param, "***")
		}
	}
	redacted.RawQuery = query.Encode()

	return redacted.String()
}
