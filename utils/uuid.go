package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// NewIdempotencyKey returns a fresh key for one charge attempt. Keys are never reused.
func NewIdempotencyKey() string {
	return "pay-" + uuid.NewString()
}
