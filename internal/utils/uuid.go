package utils

import "github.com/google/uuid"

// LocalIDPrefix marks ids generated on the device for queued requests.
const LocalIDPrefix = "local_"

// UUIDGenerator produces time-ordered unique ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random UUIDv4 if the clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// LocalID returns a fresh "local_<uuid>" id. UUIDv7 sorts by creation time
// like the "local_<timestamp>" ids it replaces, but cannot collide when two
// requests are queued in the same millisecond.
func (g *UUIDGenerator) LocalID() string {
	return LocalIDPrefix + g.Generate()
}
