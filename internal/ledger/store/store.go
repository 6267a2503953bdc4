package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectRecordColumns = `
	r.id, r.kind, r.amount, r.payer_id, r.recipient_id, r.group_id, r.split_kind,
	r.status, r.description, r.created_at, r.edited_at, r.edited_by, r.deleted_at, r.deleted_by
`

// scanRecord reads a record row in selectRecordColumns order.
func scanRecord(s scanner) (*ledger.Record, error) {
	var rec ledger.Record

	var kindStr string

	var splitKind, statusStr sql.NullString

	if err := s.Scan(
		&rec.ID, &kindStr, &rec.Amount, &rec.PayerID, &rec.RecipientID, &rec.GroupID, &splitKind,
		&statusStr, &rec.Description, &rec.CreatedAt, &rec.EditedAt, &rec.EditedBy, &rec.DeletedAt, &rec.DeletedBy,
	); err != nil {
		return nil, err
	}

	rec.Kind = ledger.Kind(kindStr)
	rec.Status = ledger.PaymentStatus(statusStr.String)

	if splitKind.Valid {
		rec.Split = &ledger.SplitStrategy{Kind: ledger.SplitKind(splitKind.String)}
	}

	return &rec, nil
}

func (s *Store) GetRecord(ctx context.Context, id uuid.UUID) (*ledger.Record, error) {
	query := `SELECT ` + selectRecordColumns + ` FROM records r WHERE r.id = $1`

	rec, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting record: %w", err)
	}

	return rec, nil
}

func (s *Store) GetShares(ctx context.Context, recordID uuid.UUID) ([]ledger.Share, error) {
	query := `
		SELECT record_id, user_id, amount, basis_points, settled, settled_at
		FROM shares
		WHERE record_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, recordID)
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

func (s *Store) GroupMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT user_id
		FROM group_members
		WHERE group_id = $1
		ORDER BY joined_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing group members: %w", err)
	}
	defer rows.Close()

	var members []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning group member: %w", err)
		}

		members = append(members, id)
	}

	return members, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status ledger.PaymentStatus) error {
	query := `
		UPDATE records
		SET status = $1, edited_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

func (s *Store) SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) error {
	query := `
		UPDATE records
		SET deleted_at = NOW(), deleted_by = $1
		WHERE id = $2 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, deletedBy, id)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	if affected == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

// recordLockKey derives the advisory-lock key serializing mutations of one
// record.
func recordLockKey(recordID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("record"))
	h.Write([]byte{0})
	h.Write(recordID[:])

	return int64(h.Sum64())
}

type recordTx struct {
	tx *sql.Tx
}

// Begin opens a transaction holding the record's advisory lock, so two
// concurrent mutations to the same record serialize while independent records
// proceed in parallel.
func (s *Store) Begin(ctx context.Context, recordID uuid.UUID) (ledger.RecordTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning record tx: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", recordLockKey(recordID)); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring record lock: %w", err)
	}

	return &recordTx{tx: dbTx}, nil
}

func (rtx *recordTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *recordTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *recordTx) SaveRecord(ctx context.Context, rec *ledger.Record) error {
	var splitKind *string

	if rec.Split != nil {
		k := string(rec.Split.Kind)
		splitKind = &k
	}

	var status *string

	if rec.Status != "" {
		st := string(rec.Status)
		status = &st
	}

	query := `
		INSERT INTO records (id, kind, amount, payer_id, recipient_id, group_id, split_kind, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET amount = EXCLUDED.amount,
			split_kind = EXCLUDED.split_kind,
			status = EXCLUDED.status,
			description = EXCLUDED.description,
			edited_at = $11,
			edited_by = $12
	`

	_, err := rtx.tx.ExecContext(ctx, query,
		rec.ID,
		rec.Kind,
		rec.Amount,
		rec.PayerID,
		rec.RecipientID,
		rec.GroupID,
		splitKind,
		status,
		rec.Description,
		rec.CreatedAt,
		rec.EditedAt,
		rec.EditedBy,
	)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	return nil
}

// ReplaceShares swaps the record's share set in place. Callers hold the
// record lock, so readers never see a partial set.
func (rtx *recordTx) ReplaceShares(ctx context.Context, recordID uuid.UUID, shares []ledger.Share) error {
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
