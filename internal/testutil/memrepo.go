package testutil

import (
	"context"
	"sync"

	"github.com/Riloax/weekplanner/internal/domain"
)

// MemReminderRepository is an in-memory domain.ReminderRepository for tests
// and local wiring. Insertion order is preserved so stable-sort guarantees
// can be asserted. Err fields inject failures per operation.
type MemReminderRepository struct {
	mu        sync.Mutex
	reminders []*domain.Reminder

	SaveErr   error
	FindErr   error
	UpdateErr error
	ClearErr  error
}

func NewMemReminderRepository() *MemReminderRepository {
	return &MemReminderRepository{}
}

func (r *MemReminderRepository) Save(_ context.Context, reminder *domain.Reminder) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reminders = append(r.reminders, reminder)

	return nil
}

func (r *MemReminderRepository) FindByID(_ context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rem := range r.reminders {
		if rem.ID().Equals(id) {
			return rem, nil
		}
	}

	return nil, domain.ErrReminderNotFound
}

func (r *MemReminderRepository) FindByUser(_ context.Context, userID domain.UserID) ([]*domain.Reminder, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.Reminder

	for _, rem := range r.reminders {
		if rem.UserID().Equals(userID) && rem.Source() != domain.SourceGroupCanonical {
			result = append(result, rem)
		}
	}

	return result, nil
}

func (r *MemReminderRepository) FindSchedulable(ctx context.Context, userID domain.UserID) ([]*domain.Reminder, error) {
	all, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var result []*domain.Reminder

	for _, rem := range all {
		if rem.Schedulable() {
			result = append(result, rem)
		}
	}

	return result, nil
}

func (r *MemReminderRepository) Update(_ context.Context, reminder *domain.Reminder) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rem := range r.reminders {
		if rem.ID().Equals(reminder.ID()) {
			r.reminders[i] = reminder

			return nil
		}
	}

	return domain.ErrReminderNotFound
}

func (r *MemReminderRepository) Delete(_ context.Context, id domain.ReminderID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rem := range r.reminders {
		if rem.ID().Equals(id) {
			r.reminders = append(r.reminders[:i], r.reminders[i+1:]...)

			return nil
		}
	}

	return domain.ErrReminderNotFound
}

func (r *MemReminderRepository) ClearEventLink(_ context.Context, taskID domain.TaskID) (int64, error) {
	if r.ClearErr != nil {
		return 0, r.ClearErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var cleared int64

	for _, rem := range r.reminders {
		if rem.EventLink().Equals(taskID) {
			rem.ClearLink()
			cleared++
		}
	}

	return cleared, nil
}

func (r *MemReminderRepository) SchedulableUserIDs(_ context.Context) ([]domain.UserID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{})

	var ids []domain.UserID

	for _, rem := range r.reminders {
		if !rem.Schedulable() || rem.Source() == domain.SourceGroupCanonical {
			continue
		}

		key := rem.UserID().String()
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		ids = append(ids, rem.UserID())
	}

	return ids, nil
}

func (r *MemReminderRepository) WithTx(_ context.Context, fn func(repo domain.ReminderRepository) error) error {
	return fn(r)
}

// All returns every stored reminder, canonical records included.
func (r *MemReminderRepository) All() []*domain.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*domain.Reminder(nil), r.reminders...)
}

// MemTaskRepository is the in-memory counterpart for tasks.
type MemTaskRepository struct {
	mu    sync.Mutex
	tasks []*domain.Task

	SaveErr   error
	FindErr   error
	UpdateErr error
}

func NewMemTaskRepository() *MemTaskRepository {
	return &MemTaskRepository{}
}

func (r *MemTaskRepository) Save(_ context.Context, task *domain.Task) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)

	return nil
}

func (r *MemTaskRepository) FindByID(_ context.Context, id domain.TaskID) (*domain.Task, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID().Equals(id) {
			return t, nil
		}
	}

	return nil, domain.ErrTaskNotFound
}

func (r *MemTaskRepository) FindByUser(_ context.Context, userID domain.UserID) ([]*domain.Task, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.Task

	for _, t := range r.tasks {
		if t.UserID().Equals(userID) {
			result = append(result, t)
		}
	}

	return result, nil
}

func (r *MemTaskRepository) Update(_ context.Context, task *domain.Task) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID().Equals(task.ID()) {
			r.tasks[i] = task

			return nil
		}
	}

	return domain.ErrTaskNotFound
}

func (r *MemTaskRepository) Delete(_ context.Context, id domain.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID().Equals(id) {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)

			return nil
		}
	}

	return domain.ErrTaskNotFound
}

func (r *MemTaskRepository) WithTx(_ context.Context, fn func(repo domain.TaskRepository) error) error {
	return fn(r)
}

// All returns every stored task.
func (r *MemTaskRepository) All() []*domain.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]*domain.Task(nil), r.tasks...)
}
