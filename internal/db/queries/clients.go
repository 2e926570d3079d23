package queries

import (
	"database/sql"

	"github.com/ortobahn/ortobahn/internal/db"
)

// ClientQueries contains all SQL queries for client operations
type ClientQueries struct {
	InsertClient             string
	GetClientByID            string
	GetClientByCustomerID    string
	ListClients              string
	UpdateClient             string
	UpdateClientSubscription string
	DeleteClient             string
}

// NewClientQueries returns a new instance of ClientQueries
func NewClientQueries() *ClientQueries {
	return &ClientQueries{
		InsertClient: `INSERT INTO clients (id, name, email, company, notes,
			stripe_customer_id, stripe_subscription_id, subscription_status, subscription_plan,
			created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		GetClientByID: `SELECT id, name, email, company, notes,
			stripe_customer_id, stripe_subscription_id, subscription_status, subscription_plan,
			created_at, updated_at FROM clients WHERE id = ?`,
		GetClientByCustomerID: `SELECT id, name, email, company, notes,
			stripe_customer_id, stripe_subscription_id, subscription_status, subscription_plan,
			created_at, updated_at FROM clients WHERE stripe_customer_id = ?`,
		ListClients: `SELECT id, name, email, company, notes,
			stripe_customer_id, stripe_subscription_id, subscription_status, subscription_plan,
			created_at, updated_at FROM clients ORDER BY name COLLATE NOCASE`,
		UpdateClient: `UPDATE clients SET name = ?, email = ?, company = ?, notes = ?,
			updated_at = ? WHERE id = ?`,
		UpdateClientSubscription: `UPDATE clients SET stripe_customer_id = ?,
			stripe_subscription_id = ?, subscription_status = ?, subscription_plan = ?,
			updated_at = ? WHERE id = ?`,
		DeleteClient: "DELETE FROM clients WHERE id = ?",
	}
}

// CreateClient creates a new client in the database
func CreateClient(database *sql.DB, client *db.Client) (*db.Client, error) {
	if client.ID == "" {
		client.ID = generateUUID()
	}
	client.CreatedAt = nowUTC()
	client.UpdatedAt = client.CreatedAt

	_, err := db.ExecWithRetry(database,
		NewClientQueries().InsertClient,
		client.ID, client.Name, client.Email, client.Company, client.Notes,
		client.StripeCustomerID, client.StripeSubscriptionID,
		client.SubscriptionStatus, client.SubscriptionPlan,
		client.CreatedAt, client.UpdatedAt,
	)

	return client, err
}

// GetClientByID gets a client from the database by ID.
// Returns (nil, nil) when no client matches.
func GetClientByID(database *sql.DB, clientID string) (*db.Client, error) {
	return scanClientRow(database.QueryRow(NewClientQueries().GetClientByID, clientID))
}

// GetClientByCustomerID looks up the client bound to a Stripe customer.
// Returns (nil, nil) when no client has that customer id.
func GetClientByCustomerID(database *sql.DB, customerID string) (*db.Client, error) {
	return scanClientRow(database.QueryRow(NewClientQueries().GetClientByCustomerID, customerID))
}

func scanClientRow(row *sql.Row) (*db.Client, error) {
	client := &db.Client{}
	err := row.Scan(
		&client.ID, &client.Name, &client.Email, &client.Company, &client.Notes,
		&client.StripeCustomerID, &client.StripeSubscriptionID,
		&client.SubscriptionStatus, &client.SubscriptionPlan,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ListClients returns all clients ordered by name
func ListClients(database *sql.DB) ([]db.Client, error) {
	rows, err := db.QueryWithRetry(database, NewClientQueries().ListClients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []db.Client
	for rows.Next() {
		var client db.Client
		if err := rows.Scan(
			&client.ID, &client.Name, &client.Email, &client.Company, &client.Notes,
			&client.StripeCustomerID, &client.StripeSubscriptionID,
			&client.SubscriptionStatus, &client.SubscriptionPlan,
			&client.CreatedAt, &client.UpdatedAt,
		); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}

	return clients, rows.Err()
}

// UpdateClient updates the editable fields of a client
func UpdateClient(database *sql.DB, client *db.Client) error {
	client.UpdatedAt = nowUTC()
	_, err := db.ExecWithRetry(database,
		NewClientQueries().UpdateClient,
		client.Name, client.Email, client.Company, client.Notes,
		client.UpdatedAt, client.ID,
	)
	return err
}

// UpdateClientSubscription stores the Stripe billing fields against a client
func UpdateClientSubscription(database *sql.DB, clientID, customerID, subscriptionID, status, plan string) error {
	_, err := db.ExecWithRetry(database,
		NewClientQueries().UpdateClientSubscription,
		customerID, subscriptionID, status, plan, nowUTC(), clientID,
	)
	return err
}

// DeleteClient removes a client together with its strategies and posts.
func DeleteClient(database *sql.DB, clientID string) error {
	tx, err := database.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM posts WHERE client_id = ?", clientID); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM strategies WHERE client_id = ?", clientID); err != nil {
		return err
	}
	if _, err := tx.Exec(NewClientQueries().DeleteClient, clientID); err != nil {
		return err
	}

	return tx.Commit()
}
