package cron

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	cronlib "github.com/robfig/cron/v3"

	"github.com/Riloax/weekplanner/internal/app"
	"github.com/Riloax/weekplanner/internal/domain"
)

const runTimeout = 5 * time.Minute

// Runner triggers the automatic scheduling pass for every user with a
// schedulable backlog, once a day at a configured local time.
type Runner struct {
	cron         *cronlib.Cron
	useCase      app.ScheduleUseCase
	reminderRepo domain.ReminderRepository
}

func NewRunner(loc *time.Location, useCase app.ScheduleUseCase, reminderRepo domain.ReminderRepository) *Runner {
	return &Runner{
		cron:         cronlib.New(cronlib.WithLocation(loc), cronlib.WithSeconds()),
		useCase:      useCase,
		reminderRepo: reminderRepo,
	}
}

// ScheduleDailyRun registers the scheduling pass at the given HH:MM time.
func (r *Runner) ScheduleDailyRun(at string) (cronlib.EntryID, error) {
	spec, err := buildDailySpec(at)
	if err != nil {
		return 0, err
	}

	return r.cron.AddFunc(spec, r.runAll)
}

func (r *Runner) Start() {
	r.cron.Start()
}

// Stop halts the cron loop and waits for a running pass to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Runner) runAll() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	started := time.Now()

	userIDs, err := r.reminderRepo.SchedulableUserIDs(ctx)
	if err != nil {
		slog.Error("daily scheduling pass aborted, failed to list users",
			"error", err,
		)

		return
	}

	var placed, unplaced, failed int

	for _, userID := range userIDs {
		output, err := r.useCase.AutoSchedule(ctx, app.AutoScheduleInput{
			UserID: userID.String(),
		})
		if err != nil {
			slog.Error("daily scheduling pass failed for user",
				"error", err,
				"user_id", userID.String(),
			)

			continue
		}

		placed += len(output.Placed)
		unplaced += len(output.Unplaced)
		failed += len(output.Failed)
	}

	slog.Info("daily scheduling pass finished",
		"users", len(userIDs),
		"placed", placed,
		"unplaced", unplaced,
		"failed", failed,
		"duration", time.Since(started).String(),
	)
}

// buildDailySpec converts an HH:MM time into a six-field cron spec.
func buildDailySpec(at string) (string, error) {
	parts := strings.Split(at, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", at)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", at)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", at)
	}

	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
