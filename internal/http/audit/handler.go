package audit

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/audit"
	"github.com/ysakols/spltr3-sub001/internal/ledger"
	"github.com/ysakols/spltr3-sub001/internal/money"
)

type Handler struct {
	svc *audit.Service
}

func NewHandler(svc *audit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/records/{id}", h.verify)
	r.Post("/records/{id}/reconcile", h.reconcile)
	r.Get("/findings", h.findings)
}

type verificationResponse struct {
	RecordID      uuid.UUID `json:"record_id"`
	Consistent    bool      `json:"consistent"`
	DeclaredTotal string    `json:"declared_total"`
	ShareSum      string    `json:"share_sum"`
	Delta         string    `json:"delta"`
	MissingShares bool      `json:"missing_shares"`
	PayerMissing  bool      `json:"payer_missing"`
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Verify(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, verificationResponse{
		RecordID:      result.RecordID,
		Consistent:    result.Consistent(),
		DeclaredTotal: money.FormatAmount(result.DeclaredTotal),
		ShareSum:      money.FormatAmount(result.ShareSum),
		Delta:         money.FormatAmount(result.Delta()),
		MissingShares: result.MissingShares,
		PayerMissing:  result.PayerMissing,
	})
}

type repairResponse struct {
	RecordID    uuid.UUID    `json:"record_id"`
	Action      audit.Action `json:"action"`
	Changed     bool         `json:"changed"`
	PreviousSum string       `json:"previous_sum"`
	NewSum      string       `json:"new_sum"`
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid record id", http.StatusBadRequest)
		return
	}

	report, err := h.svc.Reconcile(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, repairResponse{
		RecordID:    report.RecordID,
		Action:      report.Action,
		Changed:     report.Changed(),
		PreviousSum: money.FormatAmount(report.PreviousSum),
		NewSum:      money.FormatAmount(report.NewSum),
	})
}

type findingResponse struct {
	RecordID      uuid.UUID `json:"record_id"`
	DeclaredTotal string    `json:"declared_total"`
	ShareSum      string    `json:"share_sum"`
	Delta         string    `json:"delta"`
	MissingShares bool      `json:"missing_shares"`
	PayerMissing  bool      `json:"payer_missing"`
}

func (h *Handler) findings(w http.ResponseWriter, r *http.Request) {
	findings, err := h.svc.Scan(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]findingResponse, 0, len(findings))

	for _, f := range findings {
		resp = append(resp, findingResponse{
			RecordID:      f.RecordID,
			DeclaredTotal: money.FormatAmount(f.DeclaredTotal),
			ShareSum:      money.FormatAmount(f.ShareSum),
			Delta:         money.FormatAmount(f.Delta),
			MissingShares: f.MissingShares,
			PayerMissing:  f.PayerMissing,
		})
	}

	writeJSON(w, resp)
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ledger.ErrNotFound) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	if errors.Is(err, ledger.ErrRecordDeleted) {
		http.Error(w, "record is deleted", http.StatusConflict)
		return
	}

	slog.Error("audit handler failure", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
