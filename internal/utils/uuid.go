package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. IDs are UUIDv7 so they sort
// by creation time in the logs; when the v7 source fails a random v4 is
// used instead.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
