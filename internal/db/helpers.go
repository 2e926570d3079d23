package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ortobahn/ortobahn/pkg/logger"
)

// ExecWithRetry performs a database execution with retry logic for handling locked database
func ExecWithRetry(db *sql.DB, query string, args ...interface{}) (sql.Result, error) {
	var result sql.Result
	var err error
	maxRetries := 10
	retryDelay := 200 * time.Millisecond

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err = db.Exec(query, args...)
		if err == nil {
			return result, nil
		}

		if isLockedErr(err) {
			logger.Debug("Database locked, retrying operation",
				"attempt", attempt,
				"max_retries", maxRetries,
				"query", query)
			time.Sleep(retryDelay)
			// Increase delay for next retry (exponential backoff)
			retryDelay *= 2
			continue
		}

		// If it's not a locking error, return immediately
		return nil, err
	}

	return nil, fmt.Errorf("max retries exceeded: %w", err)
}

// QueryWithRetry performs a database query with retry logic for handling locked database
func QueryWithRetry(db *sql.DB, query string, args ...interface{}) (*sql.Rows, error) {
	var rows *sql.Rows
	var err error
	maxRetries := 10
	retryDelay := 200 * time.Millisecond

	for attempt := 1; attempt <= maxRetries; attempt++ {
		rows, err = db.Query(query, args...)
		if err == nil {
			return rows, nil
		}

		if isLockedErr(err) {
			logger.Debug("Database locked, retrying operation",
				"attempt", attempt,
				"max_retries", maxRetries,
				"query", query)
			time.Sleep(retryDelay)
			retryDelay *= 2
			continue
		}

		return nil, err
	}

	return nil, fmt.Errorf("max retries exceeded: %w", err)
}

func isLockedErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "database is locked")
}
