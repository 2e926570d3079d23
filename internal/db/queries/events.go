package queries

import (
	"database/sql"

	"github.com/ortobahn/ortobahn/internal/db"
)

// EventQueries contains all SQL queries for webhook event bookkeeping
type EventQueries struct {
	InsertEvent string
	GetEvent    string
}

// NewEventQueries returns a new instance of EventQueries
func NewEventQueries() *EventQueries {
	return &EventQueries{
		InsertEvent: "INSERT OR IGNORE INTO stripe_events (id, type, received_at) VALUES (?, ?, ?)",
		GetEvent:    "SELECT id, type, received_at FROM stripe_events WHERE id = ?",
	}
}

// RecordStripeEvent records an externally-sourced event id. It returns true
// when the event is new and false when the same id was recorded before,
// regardless of the type it was recorded with. Webhook redeliveries must not
// be processed twice.
func RecordStripeEvent(database *sql.DB, eventID, eventType string) (bool, error) {
	result, err := db.ExecWithRetry(database, NewEventQueries().InsertEvent, eventID, eventType, nowUTC())
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// GetStripeEvent returns a recorded event, or (nil, nil) when the id is unknown.
func GetStripeEvent(database *sql.DB, eventID string) (*db.StripeEvent, error) {
	event := &db.StripeEvent{}
	err := database.QueryRow(NewEventQueries().GetEvent, eventID).Scan(
		&event.ID, &event.Type, &event.ReceivedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return event, nil
}
