package jobs

import (
	"context"
	"log/slog"

	"menu/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultDigestSchedule runs the digest at the start of every minute.
const DefaultDigestSchedule = "0 * * * * *"

// OrdersReader is the read side the digest job depends on.
// queries.GetOrdersQueryHandler satisfies it.
type OrdersReader interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.GetOrdersQueryResponse, error)
}

// OrderDigest summarizes the stored orders.
type OrderDigest struct {
	Total  int
	Urgent int
	Common int
}

// OrderDigestJob periodically logs how many orders are stored and how many of
// them are urgent.
type OrderDigestJob struct {
	reader   OrdersReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderDigestJob creates the job. An empty schedule falls back to
// DefaultDigestSchedule. Schedules use the six-field cron syntax with seconds.
func NewOrderDigestJob(reader OrdersReader, schedule string, logger *slog.Logger) *OrderDigestJob {
	if schedule == "" {
		schedule = DefaultDigestSchedule
	}

	return &OrderDigestJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_digest_job"),
	}
}

// Start registers the digest with the scheduler and starts it.
func (j *OrderDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order digest job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order digest job started", "schedule", j.schedule)
	return nil
}

// Run computes and logs one digest.
func (j *OrderDigestJob) Run(ctx context.Context) (OrderDigest, error) {
	orders, err := j.reader.Handle(ctx, queries.NewGetOrdersQuery(false))
	if err != nil {
		return OrderDigest{}, err
	}

	digest := OrderDigest{Total: len(orders)}
	for _, o := range orders {
		if o.Urgent {
			digest.Urgent++
		}
		if o.Common {
			digest.Common++
		}
	}

	j.logger.InfoContext(ctx, "Order digest",
		"total", digest.Total,
		"urgent", digest.Urgent,
		"common", digest.Common,
	)
	return digest, nil
}

// Stop stops the scheduler and waits for a running digest to finish.
func (j *OrderDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order digest job stopped")
}
