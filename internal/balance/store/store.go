package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/balance"
	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListGroupRecords loads the group's non-deleted records oldest first, then
// attaches their shares in one extra query.
func (s *Store) ListGroupRecords(ctx context.Context, groupID uuid.UUID) ([]balance.RecordShares, error) {
	query := `
		SELECT r.id, r.kind, r.amount, r.payer_id, r.recipient_id, r.status, r.created_at
		FROM records r
		WHERE r.group_id = $1 AND r.deleted_at IS NULL
		ORDER BY r.created_at ASC, r.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing group records: %w", err)
	}
	defer rows.Close()

	var (
		records []balance.RecordShares
		index   = make(map[uuid.UUID]int)
	)

	for rows.Next() {
		var (
			rec     ledger.Record
			kindStr string
			status  sql.NullString
		)

		if err := rows.Scan(&rec.ID, &kindStr, &rec.Amount, &rec.PayerID, &rec.RecipientID, &status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		rec.Kind = ledger.Kind(kindStr)
		rec.Status = ledger.PaymentStatus(status.String)
		rec.GroupID = &groupID

		index[rec.ID] = len(records)
		records = append(records, balance.RecordShares{Record: &rec})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing group records: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if err := s.attachShares(ctx, groupID, records, index); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Store) attachShares(ctx context.Context, groupID uuid.UUID, records []balance.RecordShares, index map[uuid.UUID]int) error {
	query := `
		SELECT s.record_id, s.user_id, s.amount, s.settled
		FROM shares s
		JOIN records r ON r.id = s.record_id
		WHERE r.group_id = $1 AND r.deleted_at IS NULL
		ORDER BY s.record_id, s.position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("listing group shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sh ledger.Share
		if err := rows.Scan(&sh.RecordID, &sh.UserID, &sh.Amount, &sh.Settled); err != nil {
			return fmt.Errorf("scanning share: %w", err)
		}

		if i, ok := index[sh.RecordID]; ok {
			records[i].Shares = append(records[i].Shares, sh)
		}
	}

	return rows.Err()
}

func (s *Store) UserGroups(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT group_id
		FROM group_members
		WHERE user_id = $1
		ORDER BY joined_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user groups: %w", err)
	}
	defer rows.Close()

	var groups []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}

		groups = append(groups, id)
	}

	return groups, rows.Err()
}

func (s *Store) ListUngroupedPayments(ctx context.Context, userID uuid.UUID) ([]*ledger.Record, error) {
	query := `
		SELECT r.id, r.amount, r.payer_id, r.recipient_id, r.status, r.created_at
		FROM records r
		WHERE r.kind = 'payment'
			AND r.group_id IS NULL
			AND r.deleted_at IS NULL
			AND (r.payer_id = $1 OR r.recipient_id = $1)
		ORDER BY r.created_at ASC, r.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing ungrouped payments: %w", err)
	}
	defer rows.Close()

	var records []*ledger.Record

	for rows.Next() {
		var (
			rec    ledger.Record
			status sql.NullString
		)

		if err := rows.Scan(&rec.ID, &rec.Amount, &rec.PayerID, &rec.RecipientID, &status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		rec.Kind = ledger.KindPayment
		rec.Status = ledger.PaymentStatus(status.String)

		records = append(records, &rec)
	}

	return records, rows.Err()
}
