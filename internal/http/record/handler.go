package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
	"github.com/ysakols/spltr3-sub001/internal/money"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
}

type splitRequest struct {
	Kind     ledger.SplitKind  `json:"kind"`
	Percents map[string]string `json:"percents,omitempty"` // user id -> percent string
	Amounts  map[string]string `json:"amounts,omitempty"`  // user id -> amount string
}

type createRecordRequest struct {
	Kind         ledger.Kind   `json:"kind"`
	Amount       string        `json:"amount"`
	PayerID      uuid.UUID     `json:"payer_id"`
	RecipientID  *uuid.UUID    `json:"recipient_id,omitempty"`
	GroupID      *uuid.UUID    `json:"group_id,omitempty"`
	Participants []uuid.UUID   `json:"participants,omitempty"`
	Split        *splitRequest `json:"split,omitempty"`
	Description  string        `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var rec *ledger.Record

	switch req.Kind {
	case ledger.KindExpense:
		split, err := parseSplit(req.Split)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err = h.svc.CreateExpense(r.Context(), ledger.CreateExpenseParams{
			Amount:       amount,
			PayerID:      req.PayerID,
			GroupID:      req.GroupID,
			Participants: req.Participants,
			Split:        split,
			Description:  req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
	case ledger.KindPayment:
		if req.RecipientID == nil {
			http.Error(w, "recipient_id is required for payments", http.StatusBadRequest)
			return
		}

		rec, err = h.svc.CreatePayment(r.Context(), ledger.CreatePaymentParams{
			Amount:      amount,
			PayerID:     req.PayerID,
			RecipientID: *req.RecipientID,
			GroupID:     req.GroupID,
			Description: req.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
	default:
		http.Error(w, fmt.Sprintf("unknown record kind %q", req.Kind), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(rec, nil))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	rec, shares, err := h.svc.GetWithShares(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rec, shares))
}

type updateRecordRequest struct {
	Amount       string        `json:"amount"`
	Participants []uuid.UUID   `json:"participants,omitempty"`
	Split        *splitRequest `json:"split,omitempty"`
	Description  string        `json:"description"`
	EditedBy     uuid.UUID     `json:"edited_by"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	var req updateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	split, err := parseSplit(req.Split)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.svc.EditExpense(r.Context(), id, ledger.EditExpenseParams{
		Amount:       amount,
		Participants: req.Participants,
		Split:        split,
		Description:  req.Description,
		EditedBy:     req.EditedBy,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(rec, nil))
}

type updateStatusRequest struct {
	Status ledger.PaymentStatus `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch req.Status {
	case ledger.StatusPending, ledger.StatusCompleted, ledger.StatusCanceled:
	default:
		http.Error(w, fmt.Sprintf("unknown status %q", req.Status), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdatePaymentStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type deleteRecordRequest struct {
	DeletedBy uuid.UUID `json:"deleted_by"`
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	var req deleteRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, req.DeletedBy); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseSplit(req *splitRequest) (ledger.SplitStrategy, error) {
	if req == nil {
		return ledger.EqualSplit(), nil
	}

	switch req.Kind {
	case ledger.SplitEqual:
		return ledger.EqualSplit(), nil
	case ledger.SplitPercentage:
		percents := make(map[uuid.UUID]int64, len(req.Percents))

		for rawID, rawPercent := range req.Percents {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return ledger.SplitStrategy{}, fmt.Errorf("invalid user id %q", rawID)
			}

			bp, err := money.ParsePercent(rawPercent)
			if err != nil {
				return ledger.SplitStrategy{}, err
			}

			percents[id] = bp
		}

		return ledger.PercentageSplit(percents), nil
	case ledger.SplitExact:
		amounts := make(map[uuid.UUID]int64, len(req.Amounts))

		for rawID, rawAmount := range req.Amounts {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return ledger.SplitStrategy{}, fmt.Errorf("invalid user id %q", rawID)
			}

			amount, err := money.ParseAmount(rawAmount)
			if err != nil {
				return ledger.SplitStrategy{}, err
			}

			amounts[id] = amount
		}

		return ledger.ExactSplit(amounts), nil
	default:
		return ledger.SplitStrategy{}, fmt.Errorf("unknown split kind %q", req.Kind)
	}
}

// writeServiceError maps core errors onto status codes: validation failures
// come back 422 with the offending numbers, missing records 404.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		amountErr   *ledger.InvalidAmountError
		percentErr  *ledger.PercentSumError
		exactErr    *ledger.ExactSumError
		strategyErr *ledger.UnknownStrategyError
	)

	switch {
	case errors.Is(err, ledger.ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, ledger.ErrRecordDeleted):
		http.Error(w, "record is deleted", http.StatusConflict)
	case errors.As(err, &amountErr),
		errors.As(err, &percentErr),
		errors.As(err, &exactErr),
		errors.As(err, &strategyErr):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error("record handler failure", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
