package balance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ysakols/spltr3-sub001/internal/balance"
	"github.com/ysakols/spltr3-sub001/internal/ledger"
)

func TestService_ForGroup(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	groupID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := balance.NewMockRepository(ctrl)
		repo.EXPECT().ListGroupRecords(gomock.Any(), groupID).Return([]balance.RecordShares{
			expense(alice, 100, map[uuid.UUID]int64{alice: 50, bob: 50}),
		}, nil)

		svc := balance.NewService(repo)
		sheet, err := svc.ForGroup(context.Background(), groupID)

		require.NoError(t, err)
		assert.Equal(t, int64(100), sheet.Balance(alice))
		assert.Equal(t, int64(-50), sheet.Balance(bob))
	})

	t.Run("RepoError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := balance.NewMockRepository(ctrl)
		repo.EXPECT().ListGroupRecords(gomock.Any(), groupID).Return(nil, errors.New("db error"))

		svc := balance.NewService(repo)
		_, err := svc.ForGroup(context.Background(), groupID)

		assert.Error(t, err)
	})
}

func TestService_ForUser(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	groupA := uuid.New()
	groupB := uuid.New()

	t.Run("SumsGroupsAndUngroupedPayments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := balance.NewMockRepository(ctrl)
		repo.EXPECT().UserGroups(gomock.Any(), alice).Return([]uuid.UUID{groupA, groupB}, nil)
		repo.EXPECT().ListGroupRecords(gomock.Any(), groupA).Return([]balance.RecordShares{
			expense(alice, 100, map[uuid.UUID]int64{alice: 50, bob: 50}),
		}, nil)
		repo.EXPECT().ListGroupRecords(gomock.Any(), groupB).Return([]balance.RecordShares{
			expense(bob, 300, map[uuid.UUID]int64{alice: 150, bob: 150}),
		}, nil)
		repo.EXPECT().ListUngroupedPayments(gomock.Any(), alice).Return([]*ledger.Record{
			payment(alice, bob, 40, ledger.StatusCompleted).Record,
			payment(bob, alice, 10, ledger.StatusCompleted).Record,
			payment(alice, bob, 99, ledger.StatusPending).Record, // ignored
		}, nil)

		svc := balance.NewService(repo)
		global, err := svc.ForUser(context.Background(), alice)

		require.NoError(t, err)
		assert.Equal(t, int64(100), global.PerGroup[groupA])
		assert.Equal(t, int64(-150), global.PerGroup[groupB])
		assert.Equal(t, int64(30), global.Ungrouped)
		assert.Equal(t, int64(-20), global.Total)
	})

	t.Run("GroupedPaymentsNotDoubleCounted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// The grouped payment shows up in the group's records; the ungrouped
		// scan returns nothing for it.
		groupPayment := payment(bob, alice, 30, ledger.StatusCompleted)
		groupPayment.Record.GroupID = &groupA

		repo := balance.NewMockRepository(ctrl)
		repo.EXPECT().UserGroups(gomock.Any(), alice).Return([]uuid.UUID{groupA}, nil)
		repo.EXPECT().ListGroupRecords(gomock.Any(), groupA).Return([]balance.RecordShares{groupPayment}, nil)
		repo.EXPECT().ListUngroupedPayments(gomock.Any(), alice).Return(nil, nil)

		svc := balance.NewService(repo)
		global, err := svc.ForUser(context.Background(), alice)

		require.NoError(t, err)
		assert.Equal(t, int64(-30), global.PerGroup[groupA])
		assert.Zero(t, global.Ungrouped)
		assert.Equal(t, int64(-30), global.Total)
	})
}
