package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/gmdirectory/internal/trace"
)

const (
	eventElapsed = "elapsed"
)

// HandleStreamElapsed Stream the time since the player was last online as server-sent events, one per second.
// The stream lasts as long as the client stays connected.
func (h *Handler) HandleStreamElapsed(c echo.Context) error {
	params := struct {
		Username string `param:"username" validate:"required"`
	}{}
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(fmt.Errorf("failed to bind request parameters: %w", err))
	}

	if err := validator.New().StructCtx(c.Request().Context(), params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(fmt.Errorf("invalid parameters: %w", err))
	}

	view, err := h.loadView(c.Request().Context(), params.Username)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	updates := make(chan string)
	stop, ok := view.WatchElapsed(ctx, func(s string) {
		select {
		case updates <- s:
		case <-ctx.Done():
		}
	})
	defer func() {
		cancel()
		stop()
	}()

	if !ok {
		// Nothing to count from
		return c.NoContent(http.StatusNoContent)
	}

	h.streams.Inc()
	defer h.streams.Dec()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	log.Debug().
		Str(trace.LogUsername, params.Username).
		Msg("Streaming elapsed time")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.closing:
			return nil
		case s := <-updates:
			if _, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", eventElapsed, s); err != nil {
				// Client is gone
				return nil
			}
			res.Flush()
		}
	}
}
