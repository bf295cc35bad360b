package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/cetteup/gmdirectory/cmd/gmdirectory/internal/config"
	"github.com/cetteup/gmdirectory/cmd/gmdirectory/internal/handler"
	"github.com/cetteup/gmdirectory/cmd/gmdirectory/internal/options"
	"github.com/cetteup/gmdirectory/internal/chesscom"
	"github.com/cetteup/gmdirectory/internal/metrics"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

var (
	buildVersion = "development"
	buildCommit  = "uncommitted"
	buildTime    = "unknown"
)

func main() {
	version := fmt.Sprintf("gmdirectory %s (%s) built at %s", buildVersion, buildCommit, buildTime)
	opts := options.Init()

	// Print version and exit
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    !opts.ColorizeLogs,
		TimeFormat: time.RFC3339,
	})
	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("config", opts.ConfigPath).
			Msg("Failed to read config file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)
	client := chesscom.NewClient(cfg.API.BaseURL, cfg.API.Timeout).
		WithUserAgent(cfg.API.UserAgent).
		WithTransport(m.InstrumentTransport(nil))
	h := handler.NewHandler(client, m.ElapsedStreams)

	crs := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echo.WrapMiddleware(crs.Handler))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		// Event streams stay open for as long as the client is connected
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Path(), "/elapsed")
		},
		Timeout: requestTimeout,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogError:     true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogUserAgent: true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Err(v.Error).
				Str("id", v.RequestID).
				Str("remote", v.RemoteIP).
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Str("latency", v.Latency.Truncate(time.Millisecond).String()).
				Str("agent", v.UserAgent).
				Msg("request")

			return nil
		},
	}))

	api := e.Group("/api")
	api.GET("/players", h.HandleListPlayers)
	api.GET("/players/:username", h.HandleGetPlayer)
	api.GET("/players/:username/elapsed", h.HandleStreamElapsed)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Open event streams would otherwise block the shutdown until it times out
	e.Server.RegisterOnShutdown(h.CloseStreams)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("address", opts.ListenAddr).
			Str("upstream", cfg.API.BaseURL).
			Msg("Starting server")
		if err2 := e.Start(opts.ListenAddr); err2 != nil && !errors.Is(err2, http.ErrServerClosed) {
			return err2
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil {
		log.Fatal().
			Err(err).
			Msg("Server failed")
	}
}
