package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type statsReader interface {
	Handle(ctx context.Context, query queries.GetOrderStatsQuery) (services.OrderStats, error)
}

// StatsReportJob logs the current order statistics every minute.
type StatsReportJob struct {
	handler statsReader
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsReportJob creates the job.
func NewStatsReportJob(handler statsReader, logger *slog.Logger) *StatsReportJob {
	return &StatsReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_report_job"),
	}
}

// Start schedules the job.
func (j *StatsReportJob) Start() error {
	if _, err := j.cron.AddFunc("0 * * * * *", func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats report job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *StatsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stats report job stopped")
}

func (j *StatsReportJob) run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Stats report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Order stats",
		"pending", stats.Pending,
		"accepted", stats.Accepted,
		"ready", stats.Ready,
		"delivered", stats.Delivered,
		"total_revenue", stats.TotalRevenue.String(),
	)
}
