package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ortobahn/ortobahn/internal/db"
	"github.com/ortobahn/ortobahn/internal/db/queries"
	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

// datetime-local inputs submit without seconds or zone.
const scheduledForLayout = "2006-01-02T15:04"

// HandlePostCreate creates a post for a client. A post with a schedule
// starts out scheduled, one without starts as a draft.
func HandlePostCreate(c echo.Context, a *server.App) error {
	clientID := c.Param("id")

	client, err := queries.GetClientByID(a.DB, clientID)
	if err != nil {
		return sendError(c, err)
	}
	if client == nil {
		return echo.NewHTTPError(http.StatusNotFound, "client not found")
	}

	post := &db.Post{ClientID: clientID, Status: db.PostStatusDraft}
	if post.Title, err = cleanFormValue(c, "title"); err != nil {
		return sendError(c, err)
	}
	if post.Body, err = cleanFormValue(c, "body"); err != nil {
		return sendError(c, err)
	}
	if post.Channel, err = cleanFormValue(c, "channel"); err != nil {
		return sendError(c, err)
	}

	if post.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "post title is required")
	}

	if raw := c.FormValue("scheduled_for"); raw != "" {
		scheduledFor, err := time.Parse(scheduledForLayout, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid scheduled_for value")
		}
		post.ScheduledFor = scheduledFor.UTC().Format(time.RFC3339)
		post.Status = db.PostStatusScheduled
	}

	created, err := queries.CreatePost(a.DB, post)
	if err != nil {
		return sendError(c, err)
	}

	logger.Info("Post created", "post_id", created.ID, "client_id", clientID, "status", created.Status)
	return c.Redirect(http.StatusSeeOther, "/clients/"+clientID)
}

// HandlePostPublish marks a post as published.
func HandlePostPublish(c echo.Context, a *server.App) error {
	postID := c.Param("id")

	post, err := queries.GetPostByID(a.DB, postID)
	if err != nil {
		return sendError(c, err)
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	if err := queries.UpdatePostStatus(a.DB, postID, db.PostStatusPublished); err != nil {
		return sendError(c, err)
	}

	logger.Info("Post published", "post_id", postID)
	return c.Redirect(http.StatusSeeOther, "/clients/"+post.ClientID)
}

// HandlePostDelete removes a post and returns to its client page.
func HandlePostDelete(c echo.Context, a *server.App) error {
	postID := c.Param("id")

	post, err := queries.GetPostByID(a.DB, postID)
	if err != nil {
		return sendError(c, err)
	}
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "post not found")
	}

	if err := queries.DeletePost(a.DB, postID); err != nil {
		return sendError(c, err)
	}

	logger.Info("Post deleted", "post_id", postID)
	return c.Redirect(http.StatusSeeOther, "/clients/"+post.ClientID)
}
