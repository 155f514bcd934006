package utils

import "github.com/google/uuid"

// NewSessionID returns a time-ordered UUID (v7), or a random v4 if the clock
// source fails.
func NewSessionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
