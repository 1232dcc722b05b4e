package jobs

import (
	"context"
	"time"

	"hotel-reservation-api/services/logger"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

// ReservationCompleter marks stays that ended before today as completed
type ReservationCompleter interface {
	CompleteElapsed(ctx context.Context, today time.Time) (int64, error)
}

// CompletionSweep configures the completion job
type CompletionSweep struct {
	Enabled  bool
	Schedule string
	Location *time.Location
}

// InitCronJobs registers the enabled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, sweep CompletionSweep, completer ReservationCompleter, log logger.Logger) error {
	if sweep.Enabled {
		_, err := c.AddFunc(sweep.Schedule, func() {
			if _, err := RunCompletionSweep(context.Background(), completer, sweep.now(), log); err != nil {
				log.Error("completion sweep failed: %v", err)
			}
		})
		if err != nil {
			return err
		}
		log.Info("completion sweep scheduled at %q", sweep.Schedule)
	}

	c.Start()
	log.Info("cron jobs initialized")
	return nil
}

// RunCompletionSweep runs one pass of the completion job
func RunCompletionSweep(ctx context.Context, completer ReservationCompleter, now time.Time, log logger.Logger) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	log.Info("running completion sweep for %s", now.Format("2006-01-02"))
	return completer.CompleteElapsed(ctx, now)
}

func (s CompletionSweep) now() time.Time {
	if s.Location != nil {
		return time.Now().In(s.Location)
	}
	return time.Now()
}
