package domain

import "fmt"

type Category string

const (
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryChore    Category = "chore"
)

// DefaultCategory applies to manually created tasks that omit a category.
// Tasks materialized by the auto-scheduler use CategoryWork.
const DefaultCategory = CategoryStudy

func NewCategory(c string) (Category, error) {
	if c == "" {
		return DefaultCategory, nil
	}

	switch c {
	case string(CategoryStudy), string(CategoryWork), string(CategoryPersonal), string(CategoryChore):
		return Category(c), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidCategory, c)
	}
}
