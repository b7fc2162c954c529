package types_test

import (
	"testing"

	"github.com/ozonechain/ozone/types"
	"github.com/ozonechain/ozone/types/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateAt(ctrl *gomock.Controller, slot types.Slot) *mocks.MockState {
	s := mocks.NewMockState(ctrl)
	s.EXPECT().Slot().Return(slot).AnyTimes()
	return s
}

func TestForks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := stateAt(ctrl, 500)
	forks := types.NewForks(root)

	t.Run("root is reachable by slot", func(t *testing.T) {
		assert.Equal(t, types.Slot(500), forks.Root().Slot())
		got, ok := forks.Get(500)
		require.True(t, ok)
		assert.Equal(t, types.State(root), got)
	})

	t.Run("inserted states are reachable and slots come back ascending", func(t *testing.T) {
		forks.Insert(stateAt(ctrl, 502))
		forks.Insert(stateAt(ctrl, 501))

		_, ok := forks.Get(501)
		require.True(t, ok)
		assert.Equal(t, []types.Slot{500, 501, 502}, forks.Slots())
	})

	t.Run("unknown slots are absent", func(t *testing.T) {
		_, ok := forks.Get(499)
		assert.False(t, ok)
	})
}

func TestLeaderSchedule(t *testing.T) {
	var leader types.PublicKey
	leader[0] = 0x99

	schedule := types.NewLeaderSchedule(map[types.Slot]types.PublicKey{10: leader})

	got, ok := schedule.Leader(10)
	require.True(t, ok)
	assert.Equal(t, leader, got)

	_, ok = schedule.Leader(11)
	assert.False(t, ok)

	empty := types.NewLeaderSchedule(nil)
	_, ok = empty.Leader(10)
	assert.False(t, ok)
}
