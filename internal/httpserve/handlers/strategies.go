package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/db"
	"github.com/ortobahn/ortobahn/internal/db/queries"
	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

// HandleStrategyCreate attaches a new posting strategy to a client.
func HandleStrategyCreate(c echo.Context, a *server.App) error {
	clientID := c.Param("id")

	client, err := queries.GetClientByID(a.DB, clientID)
	if err != nil {
		return sendError(c, err)
	}
	if client == nil {
		return echo.NewHTTPError(http.StatusNotFound, "client not found")
	}

	strategy := &db.Strategy{ClientID: clientID}
	if strategy.Title, err = cleanFormValue(c, "title"); err != nil {
		return sendError(c, err)
	}
	if strategy.Cadence, err = cleanFormValue(c, "cadence"); err != nil {
		return sendError(c, err)
	}
	if strategy.Channels, err = cleanFormValue(c, "channels"); err != nil {
		return sendError(c, err)
	}
	if strategy.Notes, err = cleanFormValue(c, "notes"); err != nil {
		return sendError(c, err)
	}

	if strategy.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "strategy title is required")
	}

	created, err := queries.CreateStrategy(a.DB, strategy)
	if err != nil {
		return sendError(c, err)
	}

	logger.Info("Strategy created", "strategy_id", created.ID, "client_id", clientID)
	return c.Redirect(http.StatusSeeOther, "/clients/"+clientID)
}

// HandleStrategyDelete removes a strategy and returns to its client page.
func HandleStrategyDelete(c echo.Context, a *server.App) error {
	strategyID := c.Param("id")

	strategy, err := queries.GetStrategyByID(a.DB, strategyID)
	if err != nil {
		return sendError(c, err)
	}
	if strategy == nil {
		return echo.NewHTTPError(http.StatusNotFound, "strategy not found")
	}

	if err := queries.DeleteStrategy(a.DB, strategyID); err != nil {
		return sendError(c, err)
	}

	logger.Info("Strategy deleted", "strategy_id", strategyID)
	return c.Redirect(http.StatusSeeOther, "/clients/"+strategy.ClientID)
}
