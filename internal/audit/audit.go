// Package audit detects and repairs ledger records whose stored shares have
// drifted out of sync with their stored totals.
package audit

import (
	"github.com/google/uuid"
)

// VerificationResult is the read-only outcome of checking one record's shares
// against its declared amount.
type VerificationResult struct {
	RecordID      uuid.UUID
	DeclaredTotal int64 // cents
	ShareSum      int64 // cents
	MissingShares bool
	PayerMissing  bool
}

// Delta is the declared total minus the stored share sum.
func (r VerificationResult) Delta() int64 {
	return r.DeclaredTotal - r.ShareSum
}

// Consistent reports whether the record needs no repair.
func (r VerificationResult) Consistent() bool {
	return !r.MissingShares && !r.PayerMissing && r.Delta() == 0
}

// Action identifies which repair a reconciliation applied.
type Action string

const (
	// ActionNone means the record was already consistent.
	ActionNone Action = "none"
	// ActionRecreated means missing shares were rebuilt as an equal split.
	ActionRecreated Action = "recreated"
	// ActionResplit means a zero-sum share set was replaced by an equal split.
	ActionResplit Action = "resplit"
	// ActionRescaled means existing shares were scaled proportionally to the
	// declared total.
	ActionRescaled Action = "rescaled"
	// ActionPayerRestored means a settled zero share was inserted for the
	// payer and the total redistributed across the remaining shares.
	ActionPayerRestored Action = "payer_restored"
)

// RepairReport describes what a reconciliation did to one record.
type RepairReport struct {
	RecordID    uuid.UUID
	Action      Action
	PreviousSum int64
	NewSum      int64
}

// Changed reports whether the repair wrote anything.
func (r RepairReport) Changed() bool {
	return r.Action != ActionNone
}

// Finding is one inconsistent record surfaced by a batch scan.
type Finding struct {
	RecordID      uuid.UUID
	DeclaredTotal int64
	ShareSum      int64
	Delta         int64
	MissingShares bool
	PayerMissing  bool
}
