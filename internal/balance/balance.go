package balance

import (
	"github.com/google/uuid"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

// SettledTolerance is the band around zero, in cents, inside which a balance
// counts as settled.
const SettledTolerance int64 = 1

// RecordShares pairs a ledger record with its shares for aggregation.
type RecordShares struct {
	Record *ledger.Record
	Shares []ledger.Share
}

// Sheet is the derived paid/owed/net breakdown for a set of records. It is
// recomputed on every query and never cached across mutations.
type Sheet struct {
	Paid map[uuid.UUID]int64
	Owed map[uuid.UUID]int64
	Net  map[uuid.UUID]int64

	order []uuid.UUID
}

// UserTotal is one user's final balance. Positive means the group owes the
// user money; negative means the user owes.
type UserTotal struct {
	User   uuid.UUID
	Amount int64
}

func newSheet() *Sheet {
	return &Sheet{
		Paid: make(map[uuid.UUID]int64),
		Owed: make(map[uuid.UUID]int64),
		Net:  make(map[uuid.UUID]int64),
	}
}

func (s *Sheet) touch(u uuid.UUID) {
	if _, ok := s.Paid[u]; ok {
		return
	}
	if _, ok := s.Owed[u]; ok {
		return
	}
	if _, ok := s.Net[u]; ok {
		return
	}

	s.order = append(s.order, u)
}

func (s *Sheet) addPaid(u uuid.UUID, amount int64) {
	s.touch(u)
	s.Paid[u] += amount
}

func (s *Sheet) addOwed(u uuid.UUID, amount int64) {
	s.touch(u)
	s.Owed[u] += amount
}

func (s *Sheet) addNet(u uuid.UUID, amount int64) {
	s.touch(u)
	s.Net[u] += amount
}

// Balance is the user's final position: paid − owed + net payment adjustments.
func (s *Sheet) Balance(u uuid.UUID) int64 {
	return s.Paid[u] - s.Owed[u] + s.Net[u]
}

// Settled reports whether the user's balance sits inside the tolerance band.
func (s *Sheet) Settled(u uuid.UUID) bool {
	b := s.Balance(u)
	return b >= -SettledTolerance && b <= SettledTolerance
}

// Totals returns every user's final balance in first-appearance order, which
// keeps downstream settlement planning deterministic.
func (s *Sheet) Totals() []UserTotal {
	totals := make([]UserTotal, 0, len(s.order))
	for _, u := range s.order {
		totals = append(totals, UserTotal{User: u, Amount: s.Balance(u)})
	}

	return totals
}

// Summarize folds ledger records into a balance sheet. Soft-deleted records
// are skipped; expenses accumulate paid/owed (the payer never owes their own
// expense); payments adjust net only once completed. The function performs no
// writes and is deterministic for a given input order.
func Summarize(records []RecordShares) *Sheet {
	sheet := newSheet()

	for _, rs := range records {
		rec := rs.Record
		if rec.Deleted() {
			continue
		}

		switch rec.Kind {
		case ledger.KindExpense:
			sheet.addPaid(rec.PayerID, rec.Amount)

			for _, sh := range rs.Shares {
				if sh.UserID == rec.PayerID {
					continue
				}

				sheet.addOwed(sh.UserID, sh.Amount)
			}
		case ledger.KindPayment:
			applyPayment(sheet, rec)
		}
	}

	return sheet
}

// applyPayment folds one payment into the sheet's net adjustments: the payer
// settled debt, the recipient was paid back.
func applyPayment(sheet *Sheet, rec *ledger.Record) {
	if rec.Status != ledger.StatusCompleted || rec.RecipientID == nil {
		return
	}

	sheet.addNet(rec.PayerID, rec.Amount)
	sheet.addNet(*rec.RecipientID, -rec.Amount)
}
