package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/db"
	"github.com/ortobahn/ortobahn/internal/db/queries"
	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
	"github.com/ortobahn/ortobahn/pkg/sanitize"
)

// cleanFormValue strips any markup from a submitted form field.
func cleanFormValue(c echo.Context, name string) (string, error) {
	return sanitize.SanitizeHTML(c.FormValue(name))
}

// RenderClientList shows all clients with their subscription state.
func RenderClientList(c echo.Context, a *server.App) error {
	clients, err := queries.ListClients(a.DB)
	if err != nil {
		return sendError(c, err)
	}

	return renderPage(c, a, http.StatusOK, "clients.gohtml", map[string]interface{}{
		"Title":   "Clients",
		"Clients": clients,
	})
}

// HandleClientCreate creates a client from the form submission.
func HandleClientCreate(c echo.Context, a *server.App) error {
	client := &db.Client{}
	var err error
	if client.Name, err = cleanFormValue(c, "name"); err != nil {
		return sendError(c, err)
	}
	if client.Email, err = cleanFormValue(c, "email"); err != nil {
		return sendError(c, err)
	}
	if client.Company, err = cleanFormValue(c, "company"); err != nil {
		return sendError(c, err)
	}
	if client.Notes, err = cleanFormValue(c, "notes"); err != nil {
		return sendError(c, err)
	}

	if client.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client name is required")
	}

	created, err := queries.CreateClient(a.DB, client)
	if err != nil {
		return sendError(c, err)
	}

	logger.Info("Client created", "client_id", created.ID, "name", created.Name)
	return c.Redirect(http.StatusSeeOther, "/clients/"+created.ID)
}

// RenderClientDetail shows one client with its strategies and posts.
func RenderClientDetail(c echo.Context, a *server.App) error {
	clientID := c.Param("id")

	client, err := queries.GetClientByID(a.DB, clientID)
	if err != nil {
		return sendError(c, err)
	}
	if client == nil {
		return echo.NewHTTPError(http.StatusNotFound, "client not found")
	}

	strategies, err := queries.ListStrategiesByClient(a.DB, clientID)
	if err != nil {
		return sendError(c, err)
	}
	posts, err := queries.ListPostsByClient(a.DB, clientID)
	if err != nil {
		return sendError(c, err)
	}

	return renderPage(c, a, http.StatusOK, "client_detail.gohtml", map[string]interface{}{
		"Title":      client.Name,
		"Client":     client,
		"Strategies": strategies,
		"Posts":      posts,
	})
}

// HandleClientUpdate updates the editable client fields. The Stripe
// subscription fields are only ever written by the billing webhook.
func HandleClientUpdate(c echo.Context, a *server.App) error {
	clientID := c.Param("id")

	client, err := queries.GetClientByID(a.DB, clientID)
	if err != nil {
		return sendError(c, err)
	}
	if client == nil {
		return echo.NewHTTPError(http.StatusNotFound, "client not found")
	}

	if client.Name, err = cleanFormValue(c, "name"); err != nil {
		return sendError(c, err)
	}
	if client.Email, err = cleanFormValue(c, "email"); err != nil {
		return sendError(c, err)
	}
	if client.Company, err = cleanFormValue(c, "company"); err != nil {
		return sendError(c, err)
	}
	if client.Notes, err = cleanFormValue(c, "notes"); err != nil {
		return sendError(c, err)
	}

	if client.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client name is required")
	}

	if err := queries.UpdateClient(a.DB, client); err != nil {
		return sendError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/clients/"+clientID)
}

// HandleClientDelete removes a client and its strategies and posts.
func HandleClientDelete(c echo.Context, a *server.App) error {
	clientID := c.Param("id")

	if err := queries.DeleteClient(a.DB, clientID); err != nil {
		return sendError(c, err)
	}

	logger.Info("Client deleted", "client_id", clientID)
	return c.Redirect(http.StatusSeeOther, "/clients")
}
