package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pruneJob *CodeSequencePruneJob
	statsJob *StatsReportJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	pruneHandler codeSequencePruner,
	statsHandler statsReader,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pruneJob: NewCodeSequencePruneJob(pruneHandler, commands.SystemClock, logger),
		statsJob: NewStatsReportJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pruneJob.Start(); err != nil {
		return fmt.Errorf("failed to start code sequence prune job: %w", err)
	}

	if err := jm.statsJob.Start(); err != nil {
		jm.pruneJob.Stop()
		return fmt.Errorf("failed to start stats report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to return.
func (jm *JobManager) StopAll() {
	jm.statsJob.Stop()
	jm.pruneJob.Stop()
}
