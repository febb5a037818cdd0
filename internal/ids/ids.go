// Package ids generates the ad-hoc channel names and short user ids used by
// the session endpoints. Handlers take a Generator so tests can pin the
// values.
package ids

import "github.com/google/uuid"

type Generator interface {
	// Channel returns a fresh random channel name, prefixed when prefix is
	// non-empty.
	Channel(prefix string) string
	// ShortID returns a short random user id.
	ShortID() string
}

type UUIDGenerator struct{}

var _ Generator = UUIDGenerator{}

func (UUIDGenerator) Channel(prefix string) string {
	name := uuid.NewString()
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

func (UUIDGenerator) ShortID() string {
	return uuid.NewString()[:8]
}
