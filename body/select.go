package body

import (
	"math"
	"math/rand/v2"
)

// slotRef addresses a slot: group is the face ordinal (0 on faceless surfaces)
type slotRef struct {
	group, index int
}

// selectSlots picks up to target distinct slots out of groups*perGroup
// Work and memory scale with target, not with the slot total
func selectSlots(groups, perGroup, target int, strategy Strategy, rng *rand.Rand) []slotRef {
	total := groups * perGroup
	if target > total {
		target = total
	}
	if target <= 0 {
		return nil
	}

	if strategy == StrategyRetry {
		return selectRetry(groups, perGroup, target, rng)
	}
	return selectShuffle(groups, perGroup, target, rng)
}

// selectShuffle runs the first target steps of a Fisher-Yates shuffle over the flat slot range
// Only swapped positions are stored, untouched positions hold their own index
func selectShuffle(groups, perGroup, target int, rng *rand.Rand) []slotRef {
	total := groups * perGroup
	swapped := make(map[int]int, target)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	refs := make([]slotRef, target)
	for i := range refs {
		j := i + rng.IntN(total-i)
		picked := at(j)
		swapped[j] = at(i)
		refs[i] = slotRef{group: picked / perGroup, index: picked % perGroup}
	}
	return refs
}

// selectRetry may return fewer than target refs once the draw budget runs out
func selectRetry(groups, perGroup, target int, rng *rand.Rand) []slotRef {
	occupied := make(map[slotRef]struct{}, target)
	refs := make([]slotRef, 0, target)
	budget := drawBudget(groups * perGroup)
	for len(refs) < target {
		budget--
		if budget < 0 {
			break
		}

		ref := slotRef{group: rng.IntN(groups), index: rng.IntN(perGroup)}
		if _, taken := occupied[ref]; taken {
			continue
		}
		occupied[ref] = struct{}{}
		refs = append(refs, ref)
	}
	return refs
}

// drawBudget is total² draws, saturating at math.MaxInt
func drawBudget(total int) int {
	if total <= 0 {
		return 0
	}
	if total > math.MaxInt/total {
		return math.MaxInt
	}
	return total * total
}
