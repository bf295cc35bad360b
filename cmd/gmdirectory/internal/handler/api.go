package handler

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/gmdirectory/internal/directory"
	"github.com/cetteup/gmdirectory/internal/trace"
)

func (h *Handler) HandleListPlayers(c echo.Context) error {
	params := struct {
		Search string `query:"search" validate:"max=100"`
		Page   int    `query:"page" validate:"gte=1"`
	}{
		Page: 1,
	}
	if err := c.Bind(&params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(fmt.Errorf("failed to bind request parameters: %w", err))
	}

	if err := validator.New().StructCtx(c.Request().Context(), params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(fmt.Errorf("invalid parameters: %w", err))
	}

	// Fetched on every request, the list is never cached
	usernames, err := h.client.ListTitledPlayers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, directoryFailureMessage).SetInternal(err)
	}

	page := directory.ComputePage(usernames, params.Search, params.Page)

	log.Debug().
		Str(trace.LogSearch, params.Search).
		Int(trace.LogPage, params.Page).
		Int("matches", page.TotalMatches).
		Msg("Computed directory page")

	return c.JSON(http.StatusOK, EncodeDirectoryPage(page))
}

func (h *Handler) HandleGetPlayer(c echo.Context) error {
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

	return c.JSON(http.StatusOK, EncodePlayer(view.Snapshot()))
}
