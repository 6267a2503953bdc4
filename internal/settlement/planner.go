// Package settlement derives the minimal set of transfers that zeroes out a
// set of net balances.
package settlement

import (
	"sort"

	"github.com/google/uuid"
)

// Tolerance is the band around zero, in cents, inside which a balance counts
// as settled and is left out of the plan.
const Tolerance int64 = 1

// Balance is one user's net position in cents: negative owes, positive is owed.
type Balance struct {
	User   uuid.UUID
	Amount int64
}

// Entry is a suggested transfer. It is derived fresh on every call and never
// persisted; recording an actual payment is a separate, durable action.
type Entry struct {
	From   uuid.UUID
	To     uuid.UUID
	Amount int64 // cents, always > 0
}

// Plan matches debtors against creditors greedily, largest magnitudes first,
// so fewer, larger transfers come out. The result is deterministic for a
// deterministic input order, and per-user entry sums reconstruct each user's
// original debt or credit.
func Plan(balances []Balance) []Entry {
	var debtors, creditors []Balance

	for _, b := range balances {
		switch {
		case b.Amount < -Tolerance:
			debtors = append(debtors, Balance{User: b.User, Amount: -b.Amount})
		case b.Amount > Tolerance:
			creditors = append(creditors, b)
		}
	}

	// Magnitude descending, stable so input order breaks ties.
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].Amount > debtors[j].Amount })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].Amount > creditors[j].Amount })

	var entries []Entry

	ci := 0

	for di := range debtors {
		remaining := debtors[di].Amount

		for remaining > Tolerance && ci < len(creditors) {
			credit := creditors[ci].Amount
			if credit <= Tolerance {
				ci++
				continue
			}

			transfer := min(remaining, credit)

			entries = append(entries, Entry{
				From:   debtors[di].User,
				To:     creditors[ci].User,
				Amount: transfer,
			})

			remaining -= transfer
			creditors[ci].Amount -= transfer

			if creditors[ci].Amount <= Tolerance {
				ci++
			}
		}
	}

	return entries
}
