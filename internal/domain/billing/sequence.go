package billing

import (
	"context"
	"fmt"
)

// Sequence is the process-wide invoice numbering state. It is an explicit
// value passed in and out rather than hidden global state; the persistence
// side effect lives behind CounterRepository.
type Sequence struct {
	Value int64
}

// Next returns the sequence advanced by exactly one step.
func (s Sequence) Next() Sequence {
	return Sequence{Value: s.Value + 1}
}

// Formatted renders the sequence value as the human-facing invoice number:
// zero-padded to a minimum width of 6 digits. Beyond 6 digits the string
// simply grows; it is never truncated.
func (s Sequence) Formatted() string {
	return fmt.Sprintf("%06d", s.Value)
}

// CounterRepository persists the monotonically increasing invoice counter.
// Values are never reused; there is no decrement or reset path.
type CounterRepository interface {
	// Current returns the persisted sequence (zero value if never initialized)
	Current(ctx context.Context) (Sequence, error)

	// Next atomically increments the counter by one, persists it durably and
	// returns the advanced sequence. If the write fails the counter must not
	// advance, so numbers are neither reused nor skipped.
	Next(ctx context.Context) (Sequence, error)

	// Set overwrites the counter value (backup restore only)
	Set(ctx context.Context, seq Sequence) error
}
