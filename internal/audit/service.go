package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

// ShareSummary is a per-record aggregate used by batch scans.
type ShareSummary struct {
	Sum          int64
	Count        int
	PayerPresent bool
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=audit
type Repository interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*ledger.Record, error)
	GetShares(ctx context.Context, recordID uuid.UUID) ([]ledger.Share, error)
	GroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)

	// ListExpenses returns every non-deleted expense record.
	ListExpenses(ctx context.Context) ([]*ledger.Record, error)
	// ShareSummaries returns one aggregate per record that has shares.
	ShareSummaries(ctx context.Context) (map[uuid.UUID]ShareSummary, error)

	// Begin acquires the record for exclusive repair; share reads and writes
	// inside the tx happen under that lock.
	Begin(ctx context.Context, recordID uuid.UUID) (RepairTx, error)
}

type RepairTx interface {
	Record(ctx context.Context) (*ledger.Record, error)
	Shares(ctx context.Context) ([]ledger.Share, error)
	ReplaceShares(ctx context.Context, recordID uuid.UUID, shares []ledger.Share) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Verify is read-only: it recomputes the share sum and checks the payer is
// present, without conflating the distinct failure modes.
func (s *Service) Verify(ctx context.Context, id uuid.UUID) (VerificationResult, error) {
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return VerificationResult{}, err
	}

	if rec.Kind != ledger.KindExpense {
		return VerificationResult{}, fmt.Errorf("record %s is not an expense", id)
	}

	shares, err := s.repo.GetShares(ctx, id)
	if err != nil {
		return VerificationResult{}, fmt.Errorf("loading shares: %w", err)
	}

	return verify(rec, shares), nil
}

func verify(rec *ledger.Record, shares []ledger.Share) VerificationResult {
	result := VerificationResult{
		RecordID:      rec.ID,
		DeclaredTotal: rec.Amount,
	}

	if len(shares) == 0 {
		// A zero-amount record with an explicitly empty share set is a valid
		// degenerate case, not a drift.
		result.MissingShares = rec.Amount != 0
		return result
	}

	for _, sh := range shares {
		result.ShareSum += sh.Amount
	}

	result.PayerMissing = true

	for _, sh := range shares {
		if sh.UserID == rec.PayerID {
			result.PayerMissing = false
			break
		}
	}

	return result
}

// Reconcile repairs a drifted expense inside a single atomic unit. Running it
// on an already-consistent record changes nothing. The record itself is read
// inside the transaction, after the advisory lock, so an edit committing while
// the repair is queued cannot leave the shares rescaled against an outdated
// total.
func (s *Service) Reconcile(ctx context.Context, id uuid.UUID) (RepairReport, error) {
	tx, err := s.repo.Begin(ctx, id)
	if err != nil {
		return RepairReport{}, fmt.Errorf("begin repair tx: %w", err)
	}
	defer tx.Rollback()

	rec, err := tx.Record(ctx)
	if err != nil {
		return RepairReport{}, err
	}

	if rec.Kind != ledger.KindExpense {
		return RepairReport{}, fmt.Errorf("record %s is not an expense", id)
	}

	if rec.Deleted() {
		return RepairReport{}, ledger.ErrRecordDeleted
	}

	shares, err := tx.Shares(ctx)
	if err != nil {
		return RepairReport{}, fmt.Errorf("loading shares: %w", err)
	}

	result := verify(rec, shares)
	report := RepairReport{RecordID: id, Action: ActionNone, PreviousSum: result.ShareSum}

	if result.Consistent() {
		report.NewSum = result.ShareSum
		return report, nil
	}

	repaired, action, err := s.repair(ctx, rec, shares, result)
	if err != nil {
		return RepairReport{}, err
	}

	if err := tx.ReplaceShares(ctx, id, repaired); err != nil {
		return RepairReport{}, fmt.Errorf("replacing shares: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RepairReport{}, fmt.Errorf("commit repair tx: %w", err)
	}

	report.Action = action
	for _, sh := range repaired {
		report.NewSum += sh.Amount
	}

	return report, nil
}

func (s *Service) repair(ctx context.Context, rec *ledger.Record, shares []ledger.Share, result VerificationResult) ([]ledger.Share, Action, error) {
	switch {
	case result.MissingShares:
		repaired, err := s.recreateShares(ctx, rec)
		return repaired, ActionRecreated, err
	case result.PayerMissing:
		return restorePayer(rec, shares), ActionPayerRestored, nil
	case result.ShareSum == 0:
		return equalResplit(rec, shareUsers(shares)), ActionResplit, nil
	default:
		return rescale(rec, shares, result.ShareSum), ActionRescaled, nil
	}
}

// recreateShares rebuilds a missing share set as an equal split across the
// record's known participants: the group members when grouped, else just the
// payer.
func (s *Service) recreateShares(ctx context.Context, rec *ledger.Record) ([]ledger.Share, error) {
	participants := []uuid.UUID{rec.PayerID}

	if rec.GroupID != nil {
		members, err := s.repo.GroupMembers(ctx, *rec.GroupID)
		if err != nil {
			return nil, fmt.Errorf("loading group members: %w", err)
		}

		if len(members) > 0 {
			participants = members
		}
	}

	return equalResplit(rec, participants), nil
}

// restorePayer inserts a settled zero share for the payer and redistributes
// the record's amount equally across the remaining shares, which must absorb
// the payer's original portion.
func restorePayer(rec *ledger.Record, shares []ledger.Share) []ledger.Share {
	repaired := make([]ledger.Share, 0, len(shares)+1)

	repaired = append(repaired, ledger.Share{
		RecordID: rec.ID,
		UserID:   rec.PayerID,
		Amount:   0,
		Settled:  true,
	})

	n := int64(len(shares))
	base := rec.Amount / n

	var distributed int64

	for i, sh := range shares {
		amount := base
		if i == len(shares)-1 {
			amount = rec.Amount - distributed
		}

		distributed += amount
		sh.Amount = amount
		repaired = append(repaired, sh)
	}

	return repaired
}

// rescale multiplies every share by declared/current and assigns the rounding
// residual to the largest share so the repaired set sums exactly.
func rescale(rec *ledger.Record, shares []ledger.Share, currentSum int64) []ledger.Share {
	repaired := make([]ledger.Share, len(shares))

	var (
		sum     int64
		largest = 0
	)

	for i, sh := range shares {
		scaled := sh
		scaled.Amount = sh.Amount * rec.Amount / currentSum

		sum += scaled.Amount
		repaired[i] = scaled

		if scaled.Amount > repaired[largest].Amount {
			largest = i
		}
	}

	repaired[largest].Amount += rec.Amount - sum

	return repaired
}

func equalResplit(rec *ledger.Record, users []uuid.UUID) []ledger.Share {
	// ComputeShares cannot fail here: the amount was validated at creation
	// and equal splits take no per-user input.
	repaired, _ := ledger.ComputeShares(rec.Amount, ledger.EqualSplit(), users, rec.PayerID)
	for i := range repaired {
		repaired[i].RecordID = rec.ID
	}

	return repaired
}

func shareUsers(shares []ledger.Share) []uuid.UUID {
	users := make([]uuid.UUID, 0, len(shares))
	for _, sh := range shares {
		users = append(users, sh.UserID)
	}

	return users
}

// Scan classifies every non-deleted expense exactly once and reports each
// inconsistency with its declared total, stored sum, and delta. It mutates
// nothing.
func (s *Service) Scan(ctx context.Context) ([]Finding, error) {
	records, err := s.repo.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	summaries, err := s.repo.ShareSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading share summaries: %w", err)
	}

	var findings []Finding

	for _, rec := range records {
		summary, ok := summaries[rec.ID]

		if !ok || summary.Count == 0 {
			if rec.Amount != 0 {
				findings = append(findings, Finding{
					RecordID:      rec.ID,
					DeclaredTotal: rec.Amount,
					MissingShares: true,
					Delta:         rec.Amount,
				})
			}

			continue
		}

		delta := rec.Amount - summary.Sum
		if delta == 0 && summary.PayerPresent {
			continue
		}

		findings = append(findings, Finding{
			RecordID:      rec.ID,
			DeclaredTotal: rec.Amount,
			ShareSum:      summary.Sum,
			Delta:         delta,
			PayerMissing:  !summary.PayerPresent,
		})
	}

	return findings, nil
}
