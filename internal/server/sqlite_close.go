package server

import "fmt"

// CloseDB closes the database connection.
func CloseDB(a *App) error {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
