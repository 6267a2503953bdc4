package balances

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/balance"
	"github.com/ysakols/spltr3-sub001/internal/money"
	"github.com/ysakols/spltr3-sub001/internal/settlement"
)

type Handler struct {
	svc *balance.Service
}

func NewHandler(svc *balance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GroupRoutes(r chi.Router) {
	r.Get("/{id}/balances", h.groupBalances)
	r.Get("/{id}/settlement", h.groupSettlement)
}

func (h *Handler) UserRoutes(r chi.Router) {
	r.Get("/{id}/balances", h.userBalances)
}

type userBalanceResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Balance string    `json:"balance"`
	Settled bool      `json:"settled"`
}

type groupBalancesResponse struct {
	GroupID  uuid.UUID             `json:"group_id"`
	Balances []userBalanceResponse `json:"balances"`
}

func (h *Handler) groupBalances(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid group id", http.StatusBadRequest)
		return
	}

	sheet, err := h.svc.ForGroup(r.Context(), groupID)
	if err != nil {
		slog.Error("computing group balances", "group", groupID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := groupBalancesResponse{GroupID: groupID}

	for _, total := range sheet.Totals() {
		resp.Balances = append(resp.Balances, userBalanceResponse{
			UserID:  total.User,
			Balance: money.FormatAmount(total.Amount),
			Settled: sheet.Settled(total.User),
		})
	}

	writeJSON(w, resp)
}

type settlementEntryResponse struct {
	From   uuid.UUID `json:"from"`
	To     uuid.UUID `json:"to"`
	Amount string    `json:"amount"`
}

type groupSettlementResponse struct {
	GroupID uuid.UUID                 `json:"group_id"`
	Entries []settlementEntryResponse `json:"entries"`
}

// groupSettlement derives a fresh transfer plan from the group's current
// balance sheet. Nothing is persisted; recording an actual payment is a
// separate POST.
func (h *Handler) groupSettlement(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid group id", http.StatusBadRequest)
		return
	}

	sheet, err := h.svc.ForGroup(r.Context(), groupID)
	if err != nil {
		slog.Error("computing group settlement", "group", groupID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	totals := sheet.Totals()
	balances := make([]settlement.Balance, len(totals))

	for i, total := range totals {
		balances[i] = settlement.Balance{User: total.User, Amount: total.Amount}
	}

	resp := groupSettlementResponse{GroupID: groupID}

	for _, entry := range settlement.Plan(balances) {
		resp.Entries = append(resp.Entries, settlementEntryResponse{
			From:   entry.From,
			To:     entry.To,
			Amount: money.FormatAmount(entry.Amount),
		})
	}

	writeJSON(w, resp)
}

type globalBalanceResponse struct {
	UserID    uuid.UUID         `json:"user_id"`
	PerGroup  map[string]string `json:"per_group"`
	Ungrouped string            `json:"ungrouped"`
	Total     string            `json:"total"`
	Settled   bool              `json:"settled"`
}

func (h *Handler) userBalances(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	global, err := h.svc.ForUser(r.Context(), userID)
	if err != nil {
		slog.Error("computing user balances", "user", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := globalBalanceResponse{
		UserID:    userID,
		PerGroup:  make(map[string]string, len(global.PerGroup)),
		Ungrouped: money.FormatAmount(global.Ungrouped),
		Total:     money.FormatAmount(global.Total),
		Settled:   global.Settled(),
	}

	for groupID, b := range global.PerGroup {
		resp.PerGroup[groupID.String()] = money.FormatAmount(b)
	}

	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
