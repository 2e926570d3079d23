package queries

import (
	"time"

	"github.com/google/uuid"
)

func generateUUID() string {
	return uuid.New().String()
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
