package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
	"github.com/ysakols/spltr3-sub001/internal/money"
)

type recordResponse struct {
	ID          uuid.UUID            `json:"id"`
	Kind        ledger.Kind          `json:"kind"`
	Amount      string               `json:"amount"`
	PayerID     uuid.UUID            `json:"payer_id"`
	RecipientID *uuid.UUID           `json:"recipient_id,omitempty"`
	GroupID     *uuid.UUID           `json:"group_id,omitempty"`
	SplitKind   ledger.SplitKind     `json:"split_kind,omitempty"`
	Status      ledger.PaymentStatus `json:"status,omitempty"`
	Description string               `json:"description,omitempty"`
	Shares      []shareResponse      `json:"shares,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	EditedAt    *time.Time           `json:"edited_at,omitempty"`
}

type shareResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Amount  string    `json:"amount"`
	Percent *string   `json:"percent,omitempty"`
	Settled bool      `json:"settled"`
}

func toResponse(rec *ledger.Record, shares []ledger.Share) recordResponse {
	resp := recordResponse{
		ID:          rec.ID,
		Kind:        rec.Kind,
		Amount:      money.FormatAmount(rec.Amount),
		PayerID:     rec.PayerID,
		RecipientID: rec.RecipientID,
		GroupID:     rec.GroupID,
		Status:      rec.Status,
		Description: rec.Description,
		CreatedAt:   rec.CreatedAt,
		EditedAt:    rec.EditedAt,
	}

	if rec.Split != nil {
		resp.SplitKind = rec.Split.Kind
	}

	for _, sh := range shares {
		sr := shareResponse{
			UserID:  sh.UserID,
			Amount:  money.FormatAmount(sh.Amount),
			Settled: sh.Settled,
		}

		if sh.BasisPoints != nil {
			p := money.FormatPercent(*sh.BasisPoints)
			sr.Percent = &p
		}

		resp.Shares = append(resp.Shares, sr)
	}

	return resp
}
