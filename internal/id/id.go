// Package id generates unique identifiers for request correlation.
package id

import "github.com/google/uuid"

// NewID returns a new random identifier.
func NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
