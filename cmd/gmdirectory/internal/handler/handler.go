package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/gmdirectory/internal/chesscom"
	"github.com/cetteup/gmdirectory/internal/detail"
	"github.com/cetteup/gmdirectory/internal/domain/player"
	"github.com/cetteup/gmdirectory/internal/trace"
)

const (
	directoryFailureMessage = "Failed to load grandmasters. Please try again later."
)

type client interface {
	ListTitledPlayers(ctx context.Context) ([]string, error)
	GetPlayerDetails(ctx context.Context, username string) (player.Detail, error)
	GetCountryDetails(ctx context.Context, countryRef string) (player.Country, error)
}

type Handler struct {
	client client

	// Number of currently open elapsed time streams
	streams prometheus.Gauge

	closing   chan struct{}
	closeOnce sync.Once
}

func NewHandler(client client, streams prometheus.Gauge) *Handler {
	return &Handler{
		client:  client,
		streams: streams,
		closing: make(chan struct{}),
	}
}

// CloseStreams End all open elapsed time streams, other requests are not affected.
// Streams requested afterwards end right after their headers are sent.
func (h *Handler) CloseStreams() {
	h.closeOnce.Do(func() {
		close(h.closing)
	})
}

// loadView Load a fresh detail view, translating a failed load into an HTTP error
func (h *Handler) loadView(ctx context.Context, username string) (*detail.View, error) {
	view := detail.NewView(h.client, username)
	if err := view.Load(ctx); err != nil {
		var fetchErr *chesscom.FetchError
		if errors.As(err, &fetchErr) {
			log.Debug().
				Str(trace.LogUsername, username).
				Str(trace.LogURL, fetchErr.URL()).
				Int(trace.LogStatusCode, fetchErr.StatusCode()).
				Msg("Upstream rejected player details request")
			if fetchErr.StatusCode() == http.StatusNotFound {
				return nil, echo.NewHTTPError(http.StatusNotFound, view.Message()).SetInternal(err)
			}
		}
		return nil, echo.NewHTTPError(http.StatusBadGateway, view.Message()).SetInternal(err)
	}

	return view, nil
}
