package utils

import "github.com/google/uuid"

// UUIDGenerator produces the opaque tokens used for sessions and password
// resets. Tokens are UUIDv7 strings; guessing one is infeasible.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
