package body

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSlots_ClampsTarget(t *testing.T) {
	for _, strategy := range strategies {
		refs := selectSlots(4, 5, 30, strategy, NewRand(1))
		assert.Len(t, refs, 20, strategy.String())
		assert.Nil(t, selectSlots(6, 0, 4, strategy, NewRand(1)))
		assert.Nil(t, selectSlots(6, 4, 0, strategy, NewRand(1)))
	}
}

func TestSelectSlots_InRangeAndDistinct(t *testing.T) {
	for _, strategy := range strategies {
		refs := selectSlots(6, 16, 60, strategy, NewRand(99))
		assert.Len(t, refs, 60)

		seen := make(map[slotRef]bool)
		for _, r := range refs {
			assert.True(t, r.group >= 0 && r.group < 6, "group %d", r.group)
			assert.True(t, r.index >= 0 && r.index < 16, "index %d", r.index)
			assert.False(t, seen[r])
			seen[r] = true
		}
	}
}

func TestSelectRetry_BudgetTerminates(t *testing.T) {
	// Second slot is unreachable: every later draw collides until the budget (1²) runs out
	refs := selectRetry(1, 1, 2, NewRand(1))
	assert.Len(t, refs, 1)
}

func TestSelectShuffle_CoversAllSlots(t *testing.T) {
	refs := selectShuffle(3, 4, 12, NewRand(5))
	seen := make(map[slotRef]bool)
	for _, r := range refs {
		seen[r] = true
	}
	assert.Len(t, seen, 12)
}

func TestDrawBudget_Saturates(t *testing.T) {
	assert.Equal(t, 0, drawBudget(0))
	assert.Equal(t, 49, drawBudget(7))
	assert.Equal(t, math.MaxInt, drawBudget(math.MaxInt/2))
	assert.Equal(t, math.MaxInt, drawBudget(math.MaxInt))
}

func TestSelectRetry_FullFillAtCap(t *testing.T) {
	// Budget stays positive for any total the slot cap allows
	assert.Positive(t, drawBudget(1<<30))

	refs := selectSlots(6, 1<<20, 64, StrategyRetry, NewRand(3))
	assert.Len(t, refs, 64)
}

func TestSelectShuffle_PrefixStable(t *testing.T) {
	// Raising the target extends the selection without reshuffling it
	short := selectShuffle(6, 9, 10, NewRand(42))
	long := selectShuffle(6, 9, 40, NewRand(42))
	assert.Equal(t, short, long[:10])
}
