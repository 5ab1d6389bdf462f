package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"ulascansenturk/location-info/config"
	"ulascansenturk/location-info/internal/providers"
	"ulascansenturk/location-info/internal/renderer"
	"ulascansenturk/location-info/internal/service"
	"ulascansenturk/location-info/internal/tracing"
)

const (
	tracerName      = "ulascansenturk/location-info"
	shutdownTimeout = 5 * time.Second
)

func main() {
	flags := pflag.NewFlagSet("locationinfo", pflag.ExitOnError)
	flags.String("country", "Russia", "country to report on")
	flags.String("city", "", "city for the weather report, the capital by default")
	flags.String("log-level", "info", "log level")
	flags.Int32("timeout", 30, "timeout for the whole run, in seconds")
	flags.Bool("tracing", false, "instrument provider requests with OpenTelemetry")
	_ = flags.Parse(os.Args[1:])

	conf, err := config.LoadConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(conf)
	log.Logger = logger

	if err := conf.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	var tp *sdktrace.TracerProvider
	if conf.TracingEnabled {
		// spans go to stderr next to the logs, stdout carries the report
		tp, err = tracing.Setup(conf.ServiceName, os.Stderr)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to set up tracing")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), conf.HTTPTimeoutDuration())
	defer cancel()

	handleSignals(cancel)

	httpClient := providers.NewHTTPClient(providers.HTTPClientOptions{
		Timeout: conf.HTTPTimeoutDuration(),
		Tracing: conf.TracingEnabled,
		Logger:  &logger,
	})

	runErr := run(ctx, conf, httpClient, os.Stdout)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
		logger.Warn().Err(err).Msg("failed to flush traces")
	}

	if runErr != nil {
		logger.Error().Err(runErr).Str("country", conf.Country).Msg("failed to build report")
		shutdownCancel()
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, httpClient *http.Client, out io.Writer) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "location-report")
	defer span.End()

	locationService := service.NewLocationService(
		providers.NewCountryClient(conf.ApilayerAPIKey, httpClient),
		providers.NewWeatherClient(conf.OpenWeatherAPIKey, httpClient),
		providers.NewCurrencyClient(conf.ApilayerAPIKey, httpClient),
		providers.NewNewsClient(conf.NewsAPIKey, httpClient),
		conf.CurrencyBase,
	)

	info, err := locationService.Collect(ctx, service.Query{
		Country: conf.Country,
		City:    conf.City,
	})
	if err != nil {
		if errors.Is(err, service.ErrCountryNotFound) || errors.Is(err, service.ErrWeatherNotFound) {
			return fmt.Errorf("no data for this query: %w", err)
		}
		return err
	}

	report, news, err := renderer.NewRenderer(info).Render()
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if _, err := fmt.Fprintln(out, report); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, news)
	return err
}

func newLogger(conf *config.Config) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	// stdout carries the report
	var w io.Writer = os.Stderr
	if conf.IsDevelopment() {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return zerolog.New(w).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

func handleSignals(cancel context.CancelFunc) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		s := <-sig
		log.Warn().Str("signal", s.String()).Msg("interrupted, aborting")
		cancel()
	}()
}
