package balance_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakols/spltr3-sub001/internal/balance"
	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

func expense(payer uuid.UUID, amount int64, shares map[uuid.UUID]int64) balance.RecordShares {
	rec := &ledger.Record{
		ID:      uuid.New(),
		Kind:    ledger.KindExpense,
		Amount:  amount,
		PayerID: payer,
	}

	var recShares []ledger.Share
	for u, a := range shares {
		recShares = append(recShares, ledger.Share{RecordID: rec.ID, UserID: u, Amount: a})
	}

	return balance.RecordShares{Record: rec, Shares: recShares}
}

func payment(payer, recipient uuid.UUID, amount int64, status ledger.PaymentStatus) balance.RecordShares {
	return balance.RecordShares{Record: &ledger.Record{
		ID:          uuid.New(),
		Kind:        ledger.KindPayment,
		Amount:      amount,
		PayerID:     payer,
		RecipientID: &recipient,
		Status:      status,
	}}
}

func TestSummarize_Expenses(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	sheet := balance.Summarize([]balance.RecordShares{
		expense(alice, 9000, map[uuid.UUID]int64{alice: 3000, bob: 3000, carol: 3000}),
		expense(bob, 600, map[uuid.UUID]int64{alice: 300, bob: 300}),
	})

	assert.Equal(t, int64(9000), sheet.Paid[alice])
	assert.Equal(t, int64(600), sheet.Paid[bob])

	// A payer never owes themselves from their own expense.
	assert.Equal(t, int64(300), sheet.Owed[alice])
	assert.Equal(t, int64(3000), sheet.Owed[bob])
	assert.Equal(t, int64(3000), sheet.Owed[carol])

	assert.Equal(t, int64(8700), sheet.Balance(alice))
	assert.Equal(t, int64(-2400), sheet.Balance(bob))
	assert.Equal(t, int64(-3000), sheet.Balance(carol))
}

func TestSummarize_PaymentsOnlyWhenCompleted(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	sheet := balance.Summarize([]balance.RecordShares{
		payment(bob, alice, 1000, ledger.StatusCompleted),
		payment(bob, alice, 500, ledger.StatusPending),
		payment(bob, alice, 250, ledger.StatusCanceled),
	})

	assert.Equal(t, int64(1000), sheet.Net[bob])
	assert.Equal(t, int64(-1000), sheet.Net[alice])
}

func TestSummarize_SkipsDeletedRecords(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	deleted := expense(alice, 5000, map[uuid.UUID]int64{bob: 5000})
	now := time.Now()
	deleted.Record.DeletedAt = &now

	sheet := balance.Summarize([]balance.RecordShares{deleted})

	assert.Zero(t, sheet.Balance(alice))
	assert.Zero(t, sheet.Balance(bob))
}

// Three users: A pays 90.00 split equally; B completes a 30.00 payment to A.
// A ends +60.00, B settled, C −30.00.
func TestSummarize_EndToEndScenario(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	sheet := balance.Summarize([]balance.RecordShares{
		expense(a, 9000, map[uuid.UUID]int64{a: 3000, b: 3000, c: 3000}),
		payment(b, a, 3000, ledger.StatusCompleted),
	})

	assert.Equal(t, int64(6000), sheet.Balance(a))
	assert.Equal(t, int64(0), sheet.Balance(b))
	assert.Equal(t, int64(-3000), sheet.Balance(c))

	assert.True(t, sheet.Settled(b))
	assert.False(t, sheet.Settled(a))
}

func TestSummarize_Deterministic(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	records := []balance.RecordShares{
		expense(alice, 100, map[uuid.UUID]int64{alice: 50, bob: 50}),
		payment(bob, alice, 25, ledger.StatusCompleted),
	}

	first := balance.Summarize(records)
	second := balance.Summarize(records)

	assert.Equal(t, first.Totals(), second.Totals())
}

func TestSheet_TotalsOrder(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	sheet := balance.Summarize([]balance.RecordShares{
		expense(carol, 300, map[uuid.UUID]int64{alice: 150, bob: 150}),
	})

	totals := sheet.Totals()
	require.Len(t, totals, 3)

	// First-appearance order: payer first, then shares as listed.
	assert.Equal(t, carol, totals[0].User)
}
