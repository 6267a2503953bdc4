package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record does not exist. Store mutations also
// return it for soft-deleted ids, since those are excluded from updates.
var ErrNotFound = errors.New("record not found")

// ErrRecordDeleted is returned when a mutation targets a soft-deleted record.
var ErrRecordDeleted = errors.New("record is deleted")

// InvalidAmountError reports a negative total handed to the split calculator.
type InvalidAmountError struct {
	Amount int64
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: %d cents (must not be negative)", e.Amount)
}

// PercentSumError reports percentages that do not sum to 100%.
// Sum is in basis points; 10000 is expected.
type PercentSumError struct {
	Sum int64
}

func (e *PercentSumError) Error() string {
	return fmt.Sprintf("percentages sum to %d.%02d%%, want 100%%", e.Sum/100, e.Sum%100)
}

// ExactSumError reports explicit amounts that do not sum to the total.
type ExactSumError struct {
	Total int64
	Sum   int64
}

// Delta is the difference between the declared total and the supplied amounts.
func (e *ExactSumError) Delta() int64 {
	return e.Total - e.Sum
}

func (e *ExactSumError) Error() string {
	return fmt.Sprintf("exact amounts sum to %d cents, want %d (delta %d)", e.Sum, e.Total, e.Delta())
}

// UnknownStrategyError reports a split strategy kind the calculator does not know.
type UnknownStrategyError struct {
	Kind SplitKind
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown split strategy %q", e.Kind)
}
