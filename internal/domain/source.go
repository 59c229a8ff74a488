package domain

import "fmt"

// Source distinguishes a personal reminder, a per-member fan-out copy of a
// group reminder, and the canonical record kept under the group itself.
type Source string

const (
	SourcePersonal       Source = "personal"
	SourceGroup          Source = "group"
	SourceGroupCanonical Source = "group-canonical"
)

func NewSource(s string) (Source, error) {
	switch s {
	case string(SourcePersonal), string(SourceGroup), string(SourceGroupCanonical):
		return Source(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidSource, s)
	}
}
