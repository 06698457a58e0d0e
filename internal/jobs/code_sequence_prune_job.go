package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type codeSequencePruner interface {
	Handle(ctx context.Context, cmd commands.PruneCodeSequencesCommand) (int64, error)
}

// CodeSequencePruneJob removes order code counters of past days once a day.
type CodeSequencePruneJob struct {
	handler codeSequencePruner
	clock   commands.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCodeSequencePruneJob creates the job. It runs at 03:00 UTC.
func NewCodeSequencePruneJob(handler codeSequencePruner, clock commands.Clock, logger *slog.Logger) *CodeSequencePruneJob {
	return &CodeSequencePruneJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		logger:  logger.With("component", "code_sequence_prune_job"),
	}
}

// Start schedules the job.
func (j *CodeSequencePruneJob) Start() error {
	if _, err := j.cron.AddFunc("0 0 3 * * *", func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Code sequence prune job started (running daily at 03:00 UTC)")
	return nil
}

// Stop stops the job. A run in progress is allowed to finish.
func (j *CodeSequencePruneJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Code sequence prune job stopped")
}

func (j *CodeSequencePruneJob) run(ctx context.Context) {
	cmd, err := commands.NewPruneCodeSequencesCommand(j.clock().Add(-commands.CodeSequenceRetention))
	if err != nil {
		j.logger.ErrorContext(ctx, "Code sequence prune job failed", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Code sequence prune job failed", "error", err)
		return
	}
	j.logger.InfoContext(ctx, "Code sequences pruned", "removed", removed, "before", cmd.Before())
}
