package report

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"taskhive/internal/model"
	"taskhive/internal/repository"
)

// Reporter periodically logs task counts per status. It never touches the
// request path; it exists for operators watching the logs.
type Reporter struct {
	cron  *cron.Cron
	tasks *repository.TaskRepository
	log   zerolog.Logger
}

func New(tasks *repository.TaskRepository, log zerolog.Logger) *Reporter {
	return &Reporter{
		cron:  cron.New(cron.WithSeconds()),
		tasks: tasks,
		log:   log,
	}
}

// Start schedules the report every interval and starts the scheduler.
func (r *Reporter) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	spec := fmt.Sprintf("@every %ds", seconds)
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return fmt.Errorf("schedule report: %w", err)
	}
	r.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (r *Reporter) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Reporter) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	counts, err := r.tasks.CountByStatus(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("task report failed")
		return
	}
	r.log.Info().
		Int64("todo", counts[model.StatusTodo]).
		Int64("in_progress", counts[model.StatusInProgress]).
		Int64("done", counts[model.StatusDone]).
		Msg("task report")
}
