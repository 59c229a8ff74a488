package app

type CreateTaskInput struct {
	UserID   string
	Name     string
	Category string
	Date     string
	Start    string
	End      string
}

type ListTasksInput struct {
	UserID string
}

type MoveTaskInput struct {
	ID    string
	Date  string
	Start string
	End   string
}

type DeleteTaskInput struct {
	ID string
}
