package app

type CreateReminderInput struct {
	UserID          string
	Title           string
	DueDate         string
	EstimateMinutes int
	Priority        int
}

type CreateGroupReminderInput struct {
	GroupID         string
	CreatorID       string
	MemberIDs       []string
	Title           string
	DueDate         string
	EstimateMinutes int
	Priority        int
}

type ListRemindersInput struct {
	UserID          string
	SchedulableOnly bool
}

type CompleteReminderInput struct {
	ID string
}

type ReopenReminderInput struct {
	ID string
}

type DeleteReminderInput struct {
	ID string
}
