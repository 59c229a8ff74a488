package domain

type Priority int

const (
	MinPriority     Priority = 1
	MaxPriority     Priority = 5
	DefaultPriority Priority = 3
)

func NewPriority(p int) (Priority, error) {
	if p == 0 {
		return DefaultPriority, nil
	}

	if p < int(MinPriority) || p > int(MaxPriority) {
		return 0, ErrInvalidPriority
	}

	return Priority(p), nil
}

func (p Priority) Int() int {
	return int(p)
}
