package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderDigestJob *OrderDigestJob
}

// NewJobManager creates a job manager. digestSchedule may be empty to use
// DefaultDigestSchedule.
func NewJobManager(reader OrdersReader, digestSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderDigestJob: NewOrderDigestJob(reader, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start order digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderDigestJob.Stop()
}
