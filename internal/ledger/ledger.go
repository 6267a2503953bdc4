package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the kind of ledger record (expense or payment).
type Kind string

const (
	KindExpense Kind = "expense"
	KindPayment Kind = "payment"
)

// PaymentStatus represents the lifecycle state of a payment record.
// Expense records carry no status.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusCompleted PaymentStatus = "completed"
	StatusCanceled  PaymentStatus = "canceled"
)

// Record represents a single monetary event: an expense fronted by a payer,
// or a payment from one participant to another.
type Record struct {
	ID          uuid.UUID
	Kind        Kind
	Amount      int64 // Amount in cents
	PayerID     uuid.UUID
	RecipientID *uuid.UUID // Payment records only
	GroupID     *uuid.UUID // nil means a cross-group record
	Split       *SplitStrategy
	Status      PaymentStatus
	Description string
	CreatedAt   time.Time
	EditedAt    *time.Time
	EditedBy    *uuid.UUID
	DeletedAt   *time.Time
	DeletedBy   *uuid.UUID
}

// Deleted reports whether the record has been soft-deleted.
func (r *Record) Deleted() bool {
	return r.DeletedAt != nil
}

// Share is one participant's allocated portion of an expense.
// For a non-deleted expense, the share amounts sum exactly to the record amount.
type Share struct {
	RecordID    uuid.UUID
	UserID      uuid.UUID
	Amount      int64  // Amount in cents
	BasisPoints *int64 // Percentage splits only, hundredths of a percent
	Settled     bool
	SettledAt   *time.Time
}

// SplitKind identifies a split strategy variant.
type SplitKind string

const (
	SplitEqual      SplitKind = "equal"
	SplitPercentage SplitKind = "percentage"
	SplitExact      SplitKind = "exact"
)

// SplitStrategy is a tagged variant: exactly the fields required by Kind are
// set, enforced by the constructors below.
type SplitStrategy struct {
	Kind SplitKind

	// Percents maps user to basis points (hundredths of a percent).
	// Set only for SplitPercentage.
	Percents map[uuid.UUID]int64

	// Amounts maps user to cents. Set only for SplitExact.
	Amounts map[uuid.UUID]int64
}

// EqualSplit divides the total evenly among the participants.
func EqualSplit() SplitStrategy {
	return SplitStrategy{Kind: SplitEqual}
}

// PercentageSplit allocates by per-user basis points (10000 = 100%).
func PercentageSplit(percents map[uuid.UUID]int64) SplitStrategy {
	return SplitStrategy{Kind: SplitPercentage, Percents: percents}
}

// ExactSplit allocates explicit per-user amounts in cents.
func ExactSplit(amounts map[uuid.UUID]int64) SplitStrategy {
	return SplitStrategy{Kind: SplitExact, Amounts: amounts}
}
