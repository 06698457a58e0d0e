package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrPruneCodeSequencesCommandIsNotConstructed = errors.New(
	"PruneCodeSequencesCommand must be created via NewPruneCodeSequencesCommand constructor",
)

// CodeSequenceRetention is how many past days of order code counters are kept.
const CodeSequenceRetention = 7 * 24 * time.Hour

// PruneCodeSequencesCommand removes order code counters older than a cutoff.
// Old counters are never read again: codes only use the current UTC day.
type PruneCodeSequencesCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

// NewPruneCodeSequencesCommand creates a command that keeps counters from the day of before onwards.
func NewPruneCodeSequencesCommand(before time.Time) (PruneCodeSequencesCommand, error) {
	if before.IsZero() {
		return PruneCodeSequencesCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	return PruneCodeSequencesCommand{before: before, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c PruneCodeSequencesCommand) Validate() error {
	return c.guard.Validate(ErrPruneCodeSequencesCommandIsNotConstructed)
}

// Before returns the cutoff.
func (c PruneCodeSequencesCommand) Before() time.Time {
	return c.before
}
