package balance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=balance
type Repository interface {
	// ListGroupRecords returns the group's non-deleted records with their
	// shares preloaded.
	ListGroupRecords(ctx context.Context, groupID uuid.UUID) ([]RecordShares, error)
	UserGroups(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// ListUngroupedPayments returns non-deleted payment records without a
	// group that involve the user as payer or recipient.
	ListUngroupedPayments(ctx context.Context, userID uuid.UUID) ([]*ledger.Record, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GlobalSheet is a user's balance aggregated across every group they belong
// to, plus ungrouped payments involving them.
type GlobalSheet struct {
	UserID    uuid.UUID
	PerGroup  map[uuid.UUID]int64
	Ungrouped int64
	Total     int64
}

// Settled reports whether the global balance sits inside the tolerance band.
func (g *GlobalSheet) Settled() bool {
	return g.Total >= -SettledTolerance && g.Total <= SettledTolerance
}

// ForGroup computes the group's balance sheet from its current records.
func (s *Service) ForGroup(ctx context.Context, groupID uuid.UUID) (*Sheet, error) {
	records, err := s.repo.ListGroupRecords(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing group records: %w", err)
	}

	return Summarize(records), nil
}

// ForUser sums the user's per-group balances, then folds in ungrouped
// payments. Grouped payments are already counted in their group's sheet and
// never scanned again here.
func (s *Service) ForUser(ctx context.Context, userID uuid.UUID) (*GlobalSheet, error) {
	groups, err := s.repo.UserGroups(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user groups: %w", err)
	}

	global := &GlobalSheet{
		UserID:   userID,
		PerGroup: make(map[uuid.UUID]int64, len(groups)),
	}

	for _, groupID := range groups {
		sheet, err := s.ForGroup(ctx, groupID)
		if err != nil {
			return nil, err
		}

		b := sheet.Balance(userID)
		global.PerGroup[groupID] = b
		global.Total += b
	}

	payments, err := s.repo.ListUngroupedPayments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing ungrouped payments: %w", err)
	}

	for _, rec := range payments {
		if rec.Status != ledger.StatusCompleted || rec.RecipientID == nil {
			continue
		}

		switch userID {
		case rec.PayerID:
			global.Ungrouped += rec.Amount
		case *rec.RecipientID:
			global.Ungrouped -= rec.Amount
		}
	}

	global.Total += global.Ungrouped

	return global, nil
}
