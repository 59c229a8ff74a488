package handler

type CreateReminderRequest struct {
	Title           string `json:"title" binding:"required"`
	DueDate         string `json:"due_date"`
	EstimateMinutes int    `json:"estimate_minutes" binding:"gte=0"`
	Priority        int    `json:"priority" binding:"gte=0,lte=5"`
}

type CreateGroupReminderRequest struct {
	MemberIDs       []string `json:"member_ids" binding:"required,min=1,dive,uuid"`
	Title           string   `json:"title" binding:"required"`
	DueDate         string   `json:"due_date"`
	EstimateMinutes int      `json:"estimate_minutes" binding:"gte=0"`
	Priority        int      `json:"priority" binding:"gte=0,lte=5"`
}

type ListRemindersRequest struct {
	SchedulableOnly bool `form:"schedulable"`
}
