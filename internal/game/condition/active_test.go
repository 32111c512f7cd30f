package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gvd/internal/game/condition"
)

func TestSet_Apply_Poison(t *testing.T) {
	s := condition.NewSet()
	require.NoError(t, s.Apply(condition.Poisoned))
	assert.True(t, s.Has(condition.Poisoned))
	assert.Equal(t, 3, s.Remaining(condition.Poisoned))
}

func TestSet_Apply_Unknown(t *testing.T) {
	s := condition.NewSet()
	assert.Error(t, s.Apply("burning"))
	assert.False(t, s.Has("burning"))
}

func TestSet_Tick_PoisonTicksThreeTimes(t *testing.T) {
	s := condition.NewSet()
	require.NoError(t, s.Apply(condition.Poisoned))

	var got []condition.Tick
	for i := 0; i < 5; i++ {
		got = append(got, s.Tick()...)
	}
	require.Len(t, got, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{got[0].Remaining, got[1].Remaining, got[2].Remaining})
	assert.False(t, got[0].Expired)
	assert.True(t, got[2].Expired)
	for _, tk := range got {
		assert.Equal(t, 5, tk.Damage)
	}
	assert.False(t, s.Has(condition.Poisoned))
}

func TestSet_Apply_ResetsDuration(t *testing.T) {
	s := condition.NewSet()
	require.NoError(t, s.Apply(condition.Poisoned))
	s.Tick()
	s.Tick()
	assert.Equal(t, 1, s.Remaining(condition.Poisoned))
	require.NoError(t, s.Apply(condition.Poisoned))
	assert.Equal(t, 3, s.Remaining(condition.Poisoned))
}

func TestSet_Tick_IgnoresRestrained(t *testing.T) {
	s := condition.NewSet()
	require.NoError(t, s.Apply(condition.Restrained))
	assert.Empty(t, s.Tick())
	assert.True(t, s.Has(condition.Restrained))
}

func TestSet_ConsumeAction(t *testing.T) {
	s := condition.NewSet()
	assert.False(t, s.ConsumeAction())
	require.NoError(t, s.Apply(condition.Restrained))
	require.NoError(t, s.Apply(condition.Poisoned))
	assert.True(t, s.ConsumeAction())
	assert.False(t, s.Has(condition.Restrained))
	assert.True(t, s.Has(condition.Poisoned), "poison is not consumed by an action")
	assert.False(t, s.ConsumeAction())
}

func TestSet_Remove_NotPresent_NoOp(t *testing.T) {
	s := condition.NewSet()
	s.Remove(condition.Poisoned)
	assert.Empty(t, s.All())
}

func TestSet_All_Ordered(t *testing.T) {
	s := condition.NewSet()
	require.NoError(t, s.Apply(condition.Restrained))
	require.NoError(t, s.Apply(condition.Poisoned))
	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, condition.Poisoned, all[0].Def.ID)
	assert.Equal(t, condition.Restrained, all[1].Def.ID)
	assert.Len(t, condition.All(), 2)
}

// TestSet_Property_RemainingNeverNegative applies and ticks in random order and
// checks the countdown stays within [0, Rounds].
func TestSet_Property_RemainingNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := condition.NewSet()
		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(rt, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				_ = s.Apply(condition.Poisoned)
			case 1:
				s.Tick()
			case 2:
				s.ConsumeAction()
			}
			r := s.Remaining(condition.Poisoned)
			assert.GreaterOrEqual(rt, r, 0)
			assert.LessOrEqual(rt, r, 3)
			assert.Equal(rt, r > 0, s.Has(condition.Poisoned))
		}
	})
}
