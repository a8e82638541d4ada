package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates row identifiers.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return v.String(), nil
}

// Valid reports whether raw parses as a UUID. Used to reject garbage ids before hitting storage.
func Valid(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}
