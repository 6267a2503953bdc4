package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetRecord(ctx context.Context, id uuid.UUID) (*Record, error)
	GetShares(ctx context.Context, recordID uuid.UUID) ([]Share, error)
	GroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
	SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) error

	// Begin acquires the record for exclusive modification: record and share
	// writes inside the returned tx become visible together or not at all.
	Begin(ctx context.Context, recordID uuid.UUID) (RecordTx, error)
}

type RecordTx interface {
	SaveRecord(ctx context.Context, rec *Record) error
	ReplaceShares(ctx context.Context, recordID uuid.UUID, shares []Share) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateExpenseParams struct {
	Amount       int64 // cents
	PayerID      uuid.UUID
	GroupID      *uuid.UUID
	Participants []uuid.UUID // defaults to the group members when empty
	Split        SplitStrategy
	Description  string
}

// CreateExpense computes the expense's shares and persists record and shares
// as one atomic write. Validation failures abort before anything is written.
func (s *Service) CreateExpense(ctx context.Context, params CreateExpenseParams) (*Record, error) {
	participants := params.Participants
	if len(participants) == 0 && params.GroupID != nil {
		members, err := s.repo.GroupMembers(ctx, *params.GroupID)
		if err != nil {
			return nil, fmt.Errorf("loading group members: %w", err)
		}

		participants = members
	}

	shares, err := ComputeShares(params.Amount, params.Split, participants, params.PayerID)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:          uuid.New(),
		Kind:        KindExpense,
		Amount:      params.Amount,
		PayerID:     params.PayerID,
		GroupID:     params.GroupID,
		Split:       &params.Split,
		Description: params.Description,
		CreatedAt:   time.Now().UTC(),
	}

	stampShares(shares, rec.ID, rec.CreatedAt)

	if err := s.writeRecordWithShares(ctx, rec, shares); err != nil {
		return nil, err
	}

	return rec, nil
}

type CreatePaymentParams struct {
	Amount      int64 // cents
	PayerID     uuid.UUID
	RecipientID uuid.UUID
	GroupID     *uuid.UUID
	Description string
}

// CreatePayment records that a payment happened (or is pending); it does not
// execute one. Payments carry no shares and start out pending.
func (s *Service) CreatePayment(ctx context.Context, params CreatePaymentParams) (*Record, error) {
	if params.Amount < 0 {
		return nil, &InvalidAmountError{Amount: params.Amount}
	}

	rec := &Record{
		ID:          uuid.New(),
		Kind:        KindPayment,
		Amount:      params.Amount,
		PayerID:     params.PayerID,
		RecipientID: &params.RecipientID,
		GroupID:     params.GroupID,
		Status:      StatusPending,
		Description: params.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.writeRecordWithShares(ctx, rec, nil); err != nil {
		return nil, err
	}

	return rec, nil
}

// UpdatePaymentStatus moves a payment to completed or canceled. Only
// completed payments affect balances.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	if rec.Kind != KindPayment {
		return fmt.Errorf("record %s is not a payment", id)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

type EditExpenseParams struct {
	Amount       int64
	Participants []uuid.UUID
	Split        SplitStrategy
	Description  string
	EditedBy     uuid.UUID
}

// EditExpense recomputes the shares from the new amount and strategy and
// rewrites record plus shares in one atomic unit, so no reader ever sees a
// record whose shares do not sum to its total.
func (s *Service) EditExpense(ctx context.Context, id uuid.UUID, params EditExpenseParams) (*Record, error) {
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if rec.Kind != KindExpense {
		return nil, fmt.Errorf("record %s is not an expense", id)
	}

	if rec.Deleted() {
		return nil, ErrRecordDeleted
	}

	participants := params.Participants
	if len(participants) == 0 && rec.GroupID != nil {
		members, err := s.repo.GroupMembers(ctx, *rec.GroupID)
		if err != nil {
			return nil, fmt.Errorf("loading group members: %w", err)
		}

		participants = members
	}

	shares, err := ComputeShares(params.Amount, params.Split, participants, rec.PayerID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec.Amount = params.Amount
	rec.Split = &params.Split
	rec.Description = params.Description
	rec.EditedAt = &now
	rec.EditedBy = &params.EditedBy

	stampShares(shares, rec.ID, now)

	if err := s.writeRecordWithShares(ctx, rec, shares); err != nil {
		return nil, err
	}

	return rec, nil
}

// Delete soft-deletes a record. Shares stay in place for audit.
func (s *Service) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id, deletedBy)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	return s.repo.GetRecord(ctx, id)
}

// GetWithShares loads a record together with its shares.
func (s *Service) GetWithShares(ctx context.Context, id uuid.UUID) (*Record, []Share, error) {
	rec, err := s.repo.GetRecord(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	shares, err := s.repo.GetShares(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("loading shares: %w", err)
	}

	return rec, shares, nil
}

func (s *Service) writeRecordWithShares(ctx context.Context, rec *Record, shares []Share) error {
	tx, err := s.repo.Begin(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	if rec.Kind == KindExpense {
		if err := tx.ReplaceShares(ctx, rec.ID, shares); err != nil {
			return fmt.Errorf("saving shares: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record tx: %w", err)
	}

	return nil
}

func stampShares(shares []Share, recordID uuid.UUID, at time.Time) {
	for i := range shares {
		shares[i].RecordID = recordID

		if shares[i].Settled {
			t := at
			shares[i].SettledAt = &t
		}
	}
}
