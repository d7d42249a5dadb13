package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates identifiers for new entities.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator issues time ordered UUIDv7 values so new rows sort by creation.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	value, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return value.String(), nil
}
