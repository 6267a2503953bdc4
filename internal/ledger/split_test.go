package ledger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

func TestComputeShares_Equal(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	type testCase struct {
		name         string
		total        int64
		participants []uuid.UUID
		payer        uuid.UUID
		wantAmounts  []int64
	}

	tests := []testCase{
		{
			name:         "EvenDivision",
			total:        9000,
			participants: []uuid.UUID{alice, bob, carol},
			payer:        alice,
			wantAmounts:  []int64{3000, 3000, 3000},
		},
		{
			name:         "LastParticipantAbsorbsRemainder",
			total:        100,
			participants: []uuid.UUID{alice, bob, carol},
			payer:        alice,
			wantAmounts:  []int64{33, 33, 34},
		},
		{
			name:         "SingleParticipant",
			total:        4999,
			participants: []uuid.UUID{alice},
			payer:        alice,
			wantAmounts:  []int64{4999},
		},
		{
			name:         "PayerAddedWhenAbsent",
			total:        100,
			participants: []uuid.UUID{bob, carol},
			payer:        alice,
			wantAmounts:  []int64{33, 33, 34},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := ledger.ComputeShares(tt.total, ledger.EqualSplit(), tt.participants, tt.payer)
			require.NoError(t, err)
			require.Len(t, shares, len(tt.wantAmounts))

			var sum int64
			for i, sh := range shares {
				assert.Equal(t, tt.wantAmounts[i], sh.Amount)
				sum += sh.Amount
			}

			assert.Equal(t, tt.total, sum)
		})
	}
}

func TestComputeShares_EqualExactness(t *testing.T) {
	payer := uuid.New()
	participants := []uuid.UUID{payer, uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()}

	for _, total := range []int64{1, 2, 99, 100, 101, 12345, 1000000, 9999999} {
		shares, err := ledger.ComputeShares(total, ledger.EqualSplit(), participants, payer)
		require.NoError(t, err)

		var sum int64
		for _, sh := range shares {
			sum += sh.Amount
		}

		assert.Equalf(t, total, sum, "total %d", total)
	}
}

func TestComputeShares_Percentage(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	t.Run("ThirdsSumExactly", func(t *testing.T) {
		split := ledger.PercentageSplit(map[uuid.UUID]int64{
			alice: 3333,
			bob:   3333,
			carol: 3334,
		})

		shares, err := ledger.ComputeShares(10000, split, []uuid.UUID{alice, bob, carol}, alice)
		require.NoError(t, err)
		require.Len(t, shares, 3)

		assert.Equal(t, int64(3333), shares[0].Amount)
		assert.Equal(t, int64(3333), shares[1].Amount)
		assert.Equal(t, int64(3334), shares[2].Amount)
	})

	t.Run("ResidualGoesToLargestShare", func(t *testing.T) {
		// 33.33% each sums to 99.99%, inside tolerance; the 1-cent rounding
		// residual lands on the first of the tied largest shares.
		split := ledger.PercentageSplit(map[uuid.UUID]int64{
			alice: 3333,
			bob:   3333,
			carol: 3333,
		})

		shares, err := ledger.ComputeShares(100, split, []uuid.UUID{alice, bob, carol}, alice)
		require.NoError(t, err)

		assert.Equal(t, int64(34), shares[0].Amount)
		assert.Equal(t, int64(33), shares[1].Amount)
		assert.Equal(t, int64(33), shares[2].Amount)
	})

	t.Run("RejectsBadSum", func(t *testing.T) {
		split := ledger.PercentageSplit(map[uuid.UUID]int64{
			alice: 5000,
			bob:   4000,
		})

		_, err := ledger.ComputeShares(1000, split, []uuid.UUID{alice, bob}, alice)

		var sumErr *ledger.PercentSumError
		require.ErrorAs(t, err, &sumErr)
		assert.Equal(t, int64(9000), sumErr.Sum)
	})

	t.Run("CarriesBasisPoints", func(t *testing.T) {
		split := ledger.PercentageSplit(map[uuid.UUID]int64{
			alice: 6000,
			bob:   4000,
		})

		shares, err := ledger.ComputeShares(1000, split, []uuid.UUID{alice, bob}, alice)
		require.NoError(t, err)

		require.NotNil(t, shares[0].BasisPoints)
		assert.Equal(t, int64(6000), *shares[0].BasisPoints)
		assert.Equal(t, int64(600), shares[0].Amount)
		assert.Equal(t, int64(400), shares[1].Amount)
	})
}

func TestComputeShares_Exact(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("AcceptsMatchingSum", func(t *testing.T) {
		split := ledger.ExactSplit(map[uuid.UUID]int64{
			alice: 3000,
			bob:   2000,
		})

		shares, err := ledger.ComputeShares(5000, split, []uuid.UUID{alice, bob}, alice)
		require.NoError(t, err)

		assert.Equal(t, int64(3000), shares[0].Amount)
		assert.Equal(t, int64(2000), shares[1].Amount)
	})

	t.Run("RejectsMismatchWithDelta", func(t *testing.T) {
		split := ledger.ExactSplit(map[uuid.UUID]int64{
			alice: 2000,
			bob:   2000,
		})

		_, err := ledger.ComputeShares(5000, split, []uuid.UUID{alice, bob}, alice)

		var sumErr *ledger.ExactSumError
		require.ErrorAs(t, err, &sumErr)
		assert.Equal(t, int64(1000), sumErr.Delta())
	})
}

func TestComputeShares_EdgeCases(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	t.Run("NegativeTotal", func(t *testing.T) {
		_, err := ledger.ComputeShares(-1, ledger.EqualSplit(), []uuid.UUID{alice}, alice)

		var amountErr *ledger.InvalidAmountError
		require.ErrorAs(t, err, &amountErr)
		assert.Equal(t, int64(-1), amountErr.Amount)
	})

	t.Run("ZeroTotalYieldsSettledZeroShares", func(t *testing.T) {
		shares, err := ledger.ComputeShares(0, ledger.EqualSplit(), []uuid.UUID{alice, bob}, alice)
		require.NoError(t, err)
		require.Len(t, shares, 2)

		for _, sh := range shares {
			assert.Zero(t, sh.Amount)
			assert.True(t, sh.Settled)
		}
	})

	t.Run("UnknownStrategy", func(t *testing.T) {
		_, err := ledger.ComputeShares(100, ledger.SplitStrategy{Kind: "half-and-half"}, []uuid.UUID{alice}, alice)

		var unknownErr *ledger.UnknownStrategyError
		require.ErrorAs(t, err, &unknownErr)
	})

	t.Run("PayerShareSettled", func(t *testing.T) {
		shares, err := ledger.ComputeShares(100, ledger.EqualSplit(), []uuid.UUID{alice, bob}, bob)
		require.NoError(t, err)

		for _, sh := range shares {
			assert.Equal(t, sh.UserID == bob, sh.Settled)
		}
	})

	t.Run("DuplicateParticipantsCollapse", func(t *testing.T) {
		shares, err := ledger.ComputeShares(100, ledger.EqualSplit(), []uuid.UUID{alice, alice, bob}, alice)
		require.NoError(t, err)
		require.Len(t, shares, 2)
	})
}
