package commands

import (
	"context"
)

// PruneCodeSequencesCommandHandler deletes stale order code counters.
type PruneCodeSequencesCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPruneCodeSequencesCommandHandler creates the handler.
func NewPruneCodeSequencesCommandHandler(uowFactory OrderUoWFactory) PruneCodeSequencesCommandHandler {
	return PruneCodeSequencesCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of counters removed.
func (h PruneCodeSequencesCommandHandler) Handle(ctx context.Context, cmd PruneCodeSequencesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.OrderRepository().PruneCodeSequences(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
