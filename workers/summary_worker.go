package workers

import (
	"time"

	"payu-draw-api/logger"
	"payu-draw-api/services"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartSummaryWorker logs registration and task-click totals on a fixed
// interval so operators can watch signups without querying the database.
// Observational only; it never writes.
func StartSummaryWorker(registrations *services.RegistrationService, tasks *services.TaskService, interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			regCount, err := registrations.Count()
			if err != nil {
				logger.Warn("summary: failed to count registrations", zap.Error(err))
				return
			}
			clickCount, err := tasks.Count()
			if err != nil {
				logger.Warn("summary: failed to count task clicks", zap.Error(err))
				return
			}
			logger.Info("activity summary",
				zap.Int64("registrations", regCount),
				zap.Int64("task_clicks", clickCount),
			)
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
