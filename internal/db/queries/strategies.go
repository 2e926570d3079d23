package queries

import (
	"database/sql"

	"github.com/ortobahn/ortobahn/internal/db"
)

// StrategyQueries contains all SQL queries for strategy operations
type StrategyQueries struct {
	InsertStrategy         string
	GetStrategyByID        string
	ListStrategiesByClient string
	UpdateStrategy         string
	DeleteStrategy         string
}

// NewStrategyQueries returns a new instance of StrategyQueries
func NewStrategyQueries() *StrategyQueries {
	return &StrategyQueries{
		InsertStrategy: `INSERT INTO strategies (id, client_id, title, cadence, channels, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		GetStrategyByID: `SELECT id, client_id, title, cadence, channels, notes, created_at, updated_at
			FROM strategies WHERE id = ?`,
		ListStrategiesByClient: `SELECT id, client_id, title, cadence, channels, notes, created_at, updated_at
			FROM strategies WHERE client_id = ? ORDER BY created_at`,
		UpdateStrategy: `UPDATE strategies SET title = ?, cadence = ?, channels = ?, notes = ?, updated_at = ?
			WHERE id = ?`,
		DeleteStrategy: "DELETE FROM strategies WHERE id = ?",
	}
}

// CreateStrategy creates a new posting strategy for a client
func CreateStrategy(database *sql.DB, strategy *db.Strategy) (*db.Strategy, error) {
	if strategy.ID == "" {
		strategy.ID = generateUUID()
	}
	strategy.CreatedAt = nowUTC()
	strategy.UpdatedAt = strategy.CreatedAt

	_, err := db.ExecWithRetry(database,
		NewStrategyQueries().InsertStrategy,
		strategy.ID, strategy.ClientID, strategy.Title, strategy.Cadence,
		strategy.Channels, strategy.Notes, strategy.CreatedAt, strategy.UpdatedAt,
	)

	return strategy, err
}

// GetStrategyByID gets a strategy by ID. Returns (nil, nil) when not found.
func GetStrategyByID(database *sql.DB, strategyID string) (*db.Strategy, error) {
	strategy := &db.Strategy{}
	err := database.QueryRow(NewStrategyQueries().GetStrategyByID, strategyID).Scan(
		&strategy.ID, &strategy.ClientID, &strategy.Title, &strategy.Cadence,
		&strategy.Channels, &strategy.Notes, &strategy.CreatedAt, &strategy.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return strategy, nil
}

// ListStrategiesByClient returns the strategies attached to a client
func ListStrategiesByClient(database *sql.DB, clientID string) ([]db.Strategy, error) {
	rows, err := db.QueryWithRetry(database, NewStrategyQueries().ListStrategiesByClient, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var strategies []db.Strategy
	for rows.Next() {
		var strategy db.Strategy
		if err := rows.Scan(
			&strategy.ID, &strategy.ClientID, &strategy.Title, &strategy.Cadence,
			&strategy.Channels, &strategy.Notes, &strategy.CreatedAt, &strategy.UpdatedAt,
		); err != nil {
			return nil, err
		}
		strategies = append(strategies, strategy)
	}

	return strategies, rows.Err()
}

// UpdateStrategy updates the editable fields of a strategy
func UpdateStrategy(database *sql.DB, strategy *db.Strategy) error {
	strategy.UpdatedAt = nowUTC()
	_, err := db.ExecWithRetry(database,
		NewStrategyQueries().UpdateStrategy,
		strategy.Title, strategy.Cadence, strategy.Channels, strategy.Notes,
		strategy.UpdatedAt, strategy.ID,
	)
	return err
}

// DeleteStrategy removes a strategy from the database
func DeleteStrategy(database *sql.DB, strategyID string) error {
	_, err := db.ExecWithRetry(database, NewStrategyQueries().DeleteStrategy, strategyID)
	return err
}
