package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/ortobahn/ortobahn/internal/db/queries"
	"github.com/ortobahn/ortobahn/internal/server"
	"github.com/ortobahn/ortobahn/pkg/logger"
)

// Stripe sends at most a few KB per event.
const maxWebhookBody = 65536

// HandleStripeWebhook receives subscription lifecycle events from Stripe,
// verifies the signature, deduplicates redeliveries by event id and writes
// the subscription fields onto the matching client record.
func HandleStripeWebhook(c echo.Context, a *server.App) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read request body")
	}

	event, err := webhook.ConstructEvent(payload, c.Request().Header.Get("Stripe-Signature"), a.Config.Stripe.WebhookSecret)
	if err != nil {
		logger.Warn("Rejected webhook with invalid signature", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signature")
	}

	seen, err := queries.GetStripeEvent(a.DB, event.ID)
	if err != nil {
		return sendError(c, err)
	}
	if seen != nil {
		logger.Info("Skipping redelivered webhook event", "event_id", event.ID)
		return c.NoContent(http.StatusOK)
	}

	if strings.HasPrefix(string(event.Type), "customer.subscription.") {
		if err := applySubscriptionEvent(a, event); err != nil {
			return sendError(c, err)
		}
	} else {
		logger.Debug("Ignoring unhandled webhook event type", "event_type", event.Type)
	}

	// Recorded only after the event applied cleanly, so a failed delivery
	// stays unrecorded and the Stripe retry is processed instead of being
	// skipped as a redelivery.
	if _, err := queries.RecordStripeEvent(a.DB, event.ID, string(event.Type)); err != nil {
		return sendError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// applySubscriptionEvent copies the subscription state from the event onto
// the client bound to the Stripe customer. Events for customers we do not
// know are acknowledged and dropped so Stripe stops retrying them.
func applySubscriptionEvent(a *server.App, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return err
	}

	if sub.Customer == nil {
		logger.Warn("Subscription event without customer", "event_id", event.ID)
		return nil
	}

	client, err := queries.GetClientByCustomerID(a.DB, sub.Customer.ID)
	if err != nil {
		return err
	}
	if client == nil {
		logger.Warn("No client for Stripe customer", "customer_id", sub.Customer.ID, "event_id", event.ID)
		return nil
	}

	var plan string
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
		plan = sub.Items.Data[0].Price.ID
	}

	status := string(sub.Status)
	if event.Type == "customer.subscription.deleted" {
		status = string(stripe.SubscriptionStatusCanceled)
	}

	if err := queries.UpdateClientSubscription(a.DB, client.ID, sub.Customer.ID, sub.ID, status, plan); err != nil {
		return err
	}

	logger.Info("Updated client subscription",
		"client_id", client.ID,
		"customer_id", sub.Customer.ID,
		"subscription_id", sub.ID,
		"status", status,
		"plan", plan,
	)
	return nil
}
