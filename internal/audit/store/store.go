package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/audit"
	"github.com/ysakols/spltr3-sub001/internal/ledger"
	ledgerstore "github.com/ysakols/spltr3-sub001/internal/ledger/store"
)

// Store backs the auditor. Reads reuse the ledger store; repairs take the
// same per-record advisory lock as regular edits so a batch reconciliation
// never races a concurrent mutation of the same record.
type Store struct {
	db      *sql.DB
	records *ledgerstore.Store
}

func New(db *sql.DB) *Store {
	return &Store{db: db, records: ledgerstore.New(db)}
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*ledger.Record, error) {
	return s.records.GetRecord(ctx, id)
}

func (s *Store) GetShares(ctx context.Context, recordID uuid.UUID) ([]ledger.Share, error) {
	return s.records.GetShares(ctx, recordID)
}

func (s *Store) GroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return s.records.GroupMembers(ctx, groupID)
}

func (s *Store) ListExpenses(ctx context.Context) ([]*ledger.Record, error) {
	query := `
		SELECT r.id, r.amount, r.payer_id, r.group_id, r.created_at
		FROM records r
		WHERE r.kind = 'expense' AND r.deleted_at IS NULL
		ORDER BY r.created_at ASC, r.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var records []*ledger.Record

	for rows.Next() {
		var rec ledger.Record
		if err := rows.Scan(&rec.ID, &rec.Amount, &rec.PayerID, &rec.GroupID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		rec.Kind = ledger.KindExpense

		records = append(records, &rec)
	}

	return records, rows.Err()
}

func (s *Store) ShareSummaries(ctx context.Context) (map[uuid.UUID]audit.ShareSummary, error) {
	query := `
		SELECT s.record_id, SUM(s.amount), COUNT(*), BOOL_OR(s.user_id = r.payer_id)
		FROM shares s
		JOIN records r ON r.id = s.record_id
		WHERE r.kind = 'expense' AND r.deleted_at IS NULL
		GROUP BY s.record_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing shares: %w", err)
	}
	defer rows.Close()

	summaries := make(map[uuid.UUID]audit.ShareSummary)

	for rows.Next() {
		var (
			recordID uuid.UUID
			summary  audit.ShareSummary
		)

		if err := rows.Scan(&recordID, &summary.Sum, &summary.Count, &summary.PayerPresent); err != nil {
			return nil, fmt.Errorf("scanning share summary: %w", err)
		}

		summaries[recordID] = summary
	}

	return summaries, rows.Err()
}

func repairLockKey(recordID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("record"))
	h.Write([]byte{0})
	h.Write(recordID[:])

	return int64(h.Sum64())
}

type repairTx struct {
	tx       *sql.Tx
	recordID uuid.UUID
}

func (s *Store) Begin(ctx context.Context, recordID uuid.UUID) (audit.RepairTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning repair tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", repairLockKey(recordID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring record lock: %w", err)
	}

	return &repairTx{tx: dbTx, recordID: recordID}, nil
}

func (rtx *repairTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *repairTx) Rollback() error { return rtx.tx.Rollback() }

// Record re-reads the record under the advisory lock so the repair targets
// the committed total, not whatever was current before the lock was taken.
func (rtx *repairTx) Record(ctx context.Context) (*ledger.Record, error) {
	query := `
		SELECT id, kind, amount, payer_id, recipient_id, group_id, status, deleted_at
		FROM records
		WHERE id = $1
	`

	var (
		rec    ledger.Record
		kind   string
		status sql.NullString
	)

	err := rtx.tx.QueryRowContext(ctx, query, rtx.recordID).Scan(
		&rec.ID,
		&kind,
		&rec.Amount,
		&rec.PayerID,
		&rec.RecipientID,
		&rec.GroupID,
		&status,
		&rec.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("loading record: %w", err)
	}

	rec.Kind = ledger.Kind(kind)
	if status.Valid {
		rec.Status = ledger.PaymentStatus(status.String)
	}

	return &rec, nil
}

func (rtx *repairTx) Shares(ctx context.Context) ([]ledger.Share, error) {
	query := `
		SELECT record_id, user_id, amount, basis_points, settled, settled_at
		FROM shares
		WHERE record_id = $1
		ORDER BY position ASC
	`

	rows, err := rtx.tx.QueryContext(ctx, query, rtx.recordID)
	if err != nil {
		return nil, fmt.Errorf("listing shares: %w", err)
	}
	defer rows.Close()

	var shares []ledger.Share

	for rows.Next() {
		var sh ledger.Share
		if err := rows.Scan(&sh.RecordID, &sh.UserID, &sh.Amount, &sh.BasisPoints, &sh.Settled, &sh.SettledAt); err != nil {
			return nil, fmt.Errorf("scanning share: %w", err)
		}

		shares = append(shares, sh)
	}

	return shares, rows.Err()
}

func (rtx *repairTx) ReplaceShares(ctx context.Context, recordID uuid.UUID, shares []ledger.Share) error {
	if _, err := rtx.tx.ExecContext(ctx, `DELETE FROM shares WHERE record_id = $1`, recordID); err != nil {
		return fmt.Errorf("clearing shares: %w", err)
	}

	query := `
		INSERT INTO shares (record_id, user_id, amount, basis_points, settled, settled_at, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i, sh := range shares {
		if _, err := rtx.tx.ExecContext(ctx, query,
			sh.RecordID,
			sh.UserID,
			sh.Amount,
			sh.BasisPoints,
			sh.Settled,
			sh.SettledAt,
			i,
		); err != nil {
			return fmt.Errorf("inserting share: %w", err)
		}
	}

	return nil
}
