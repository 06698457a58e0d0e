package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPruner struct{ mock.Mock }

func (m *mockPruner) Handle(ctx context.Context, cmd commands.PruneCodeSequencesCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type mockStats struct{ mock.Mock }

func (m *mockStats) Handle(ctx context.Context, q queries.GetOrderStatsQuery) (services.OrderStats, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(services.OrderStats), args.Error(1)
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestCodeSequencePruneJob_RunUsesRetentionCutoff(t *testing.T) {
	now := time.Date(2025, 3, 14, 3, 0, 0, 0, time.UTC)
	pruner := new(mockPruner)
	pruner.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PruneCodeSequencesCommand) bool {
		return cmd.Before().Equal(now.Add(-commands.CodeSequenceRetention))
	})).Return(int64(2), nil).Once()

	logger, buf := bufferLogger()
	job := NewCodeSequencePruneJob(pruner, func() time.Time { return now }, logger)
	job.run(t.Context())

	pruner.AssertExpectations(t)
	assert.Contains(t, buf.String(), `"removed":2`)
	assert.Contains(t, buf.String(), `"component":"code_sequence_prune_job"`)
}

func TestStatsReportJob_RunLogsStats(t *testing.T) {
	revenue, _ := kernel.NewMoney(150)
	stats := new(mockStats)
	stats.On("Handle", mock.Anything, mock.Anything).
		Return(services.OrderStats{Pending: 1, Accepted: 1, Delivered: 2, TotalRevenue: revenue}, nil).Once()

	logger, buf := bufferLogger()
	NewStatsReportJob(stats, logger).run(t.Context())

	stats.AssertExpectations(t)
	assert.Contains(t, buf.String(), `"delivered":2`)
	assert.Contains(t, buf.String(), `"total_revenue":"150.00"`)
}

func TestStatsReportJob_RunLogsFailure(t *testing.T) {
	stats := new(mockStats)
	stats.On("Handle", mock.Anything, mock.Anything).Return(services.OrderStats{}, errors.New("db down")).Once()

	logger, buf := bufferLogger()
	NewStatsReportJob(stats, logger).run(t.Context())

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "db down")
}

func TestJobManager_StartStop(t *testing.T) {
	logger, _ := bufferLogger()
	jm := NewJobManager(new(mockPruner), new(mockStats), logger)

	assert.NoError(t, jm.StartAll())
	jm.StopAll()
}
