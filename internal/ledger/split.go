package ledger

import (
	"sort"

	"github.com/google/uuid"
)

// percentTotal is 100% expressed in basis points.
const percentTotal = 10000

// percentTolerance is the accepted deviation from 100%, in basis points.
const percentTolerance = 1

// ComputeShares turns a total amount in cents plus a split strategy into
// per-participant shares that sum to the total exactly.
//
// The payer is added to the participant set if absent, and the payer's share
// comes back settled. A zero total yields one settled zero share per
// participant. The returned shares carry no record id; the caller stamps it
// when persisting.
func ComputeShares(total int64, strategy SplitStrategy, participants []uuid.UUID, payer uuid.UUID) ([]Share, error) {
	if total < 0 {
		return nil, &InvalidAmountError{Amount: total}
	}

	users := participantOrder(participants, strategy, payer)

	if total == 0 {
		shares := make([]Share, len(users))
		for i, u := range users {
			shares[i] = Share{UserID: u, Amount: 0, Settled: true}
		}

		return shares, nil
	}

	var shares []Share

	switch strategy.Kind {
	case SplitEqual:
		shares = splitEqually(total, users)
	case SplitPercentage:
		var err error
		if shares, err = splitByPercent(total, strategy.Percents, users); err != nil {
			return nil, err
		}
	case SplitExact:
		var err error
		if shares, err = splitExactly(total, strategy.Amounts, users); err != nil {
			return nil, err
		}
	default:
		return nil, &UnknownStrategyError{Kind: strategy.Kind}
	}

	for i := range shares {
		if shares[i].UserID == payer {
			shares[i].Settled = true
		}
	}

	return shares, nil
}

// participantOrder builds the deterministic participant list: the callers'
// insertion order first, then any strategy-map users not already present
// (sorted for stable output, since map order is random), then the payer.
func participantOrder(participants []uuid.UUID, strategy SplitStrategy, payer uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(participants)+1)
	users := make([]uuid.UUID, 0, len(participants)+1)

	add := func(u uuid.UUID) {
		if _, ok := seen[u]; ok {
			return
		}

		seen[u] = struct{}{}
		users = append(users, u)
	}

	for _, u := range participants {
		add(u)
	}

	var extra []uuid.UUID

	for u := range strategy.Percents {
		if _, ok := seen[u]; !ok {
			extra = append(extra, u)
		}
	}

	for u := range strategy.Amounts {
		if _, ok := seen[u]; !ok {
			extra = append(extra, u)
		}
	}

	sort.Slice(extra, func(i, j int) bool { return extra[i].String() < extra[j].String() })

	for _, u := range extra {
		add(u)
	}

	add(payer)

	return users
}

// splitEqually rounds every share down to the cent except the last
// participant, who absorbs the remainder.
func splitEqually(total int64, users []uuid.UUID) []Share {
	n := int64(len(users))
	base := total / n

	shares := make([]Share, len(users))

	var distributed int64

	for i, u := range users {
		amount := base
		if i == len(users)-1 {
			amount = total - distributed
		}

		distributed += amount
		shares[i] = Share{UserID: u, Amount: amount}
	}

	return shares
}

// splitByPercent computes total × percent per user, rounded to the nearest
// cent, then assigns the rounding residual to the largest share so the sum
// is exact. Users absent from the percent map get a zero share.
func splitByPercent(total int64, percents map[uuid.UUID]int64, users []uuid.UUID) ([]Share, error) {
	var percentSum int64
	for _, bp := range percents {
		percentSum += bp
	}

	if percentSum < percentTotal-percentTolerance || percentSum > percentTotal+percentTolerance {
		return nil, &PercentSumError{Sum: percentSum}
	}

	shares := make([]Share, len(users))

	var (
		rounded int64
		largest = 0
	)

	for i, u := range users {
		bp := percents[u]
		amount := (total*bp + percentTotal/2) / percentTotal

		rounded += amount
		shares[i] = Share{UserID: u, Amount: amount, BasisPoints: ptr(bp)}

		if amount > shares[largest].Amount {
			largest = i
		}
	}

	// Residual goes to the largest share, first occurrence on ties.
	shares[largest].Amount += total - rounded

	return shares, nil
}

// splitExactly accepts caller-supplied amounts only when they already sum to
// the total; no correction is applied.
func splitExactly(total int64, amounts map[uuid.UUID]int64, users []uuid.UUID) ([]Share, error) {
	var sum int64
	for _, amount := range amounts {
		sum += amount
	}

	if sum != total {
		return nil, &ExactSumError{Total: total, Sum: sum}
	}

	shares := make([]Share, len(users))
	for i, u := range users {
		shares[i] = Share{UserID: u, Amount: amounts[u]}
	}

	return shares, nil
}

func ptr[T any](v T) *T {
	return &v
}
