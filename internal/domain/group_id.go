package domain

import (
	"errors"

	"github.com/google/uuid"
)

type GroupID struct {
	value uuid.UUID
}

var ErrInvalidGroupID = errors.New("invalid group ID: must be valid UUIDv7")

func GroupIDFromString(s string) (GroupID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GroupID{}, ErrInvalidGroupID
	}

	if id.Version() != 7 {
		return GroupID{}, ErrInvalidGroupID
	}

	return GroupID{value: id}, nil
}

func (g GroupID) String() string {
	return g.value.String()
}

func (g GroupID) IsZero() bool {
	return g.value == uuid.Nil
}

func (g GroupID) Equals(other GroupID) bool {
	return g.value == other.value
}
