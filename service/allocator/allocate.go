package allocator

import "github.com/viant/guitarfest/model"

// Allocate greedily assigns items rank by rank: the head choice of the lowest
// non-empty level wins, then every choice touching the winning person or item
// is dropped from all levels.  The input levels are not modified.
func Allocate(levels model.ChoiceLevels) model.Allocation {
	allocation := model.Allocation{}
	queue := levels.Clone()
	for len(queue) > 0 {
		if len(queue[0]) == 0 {
			queue = queue[1:]
			continue
		}
		winner := queue[0][0]
		allocation[winner.Person] = winner.Item
		for i := range queue {
			queue[i] = removeTouching(queue[i], winner)
		}
	}
	return allocation
}

// removeTouching filters level in place; level must be owned by the caller.
func removeTouching(level model.ChoiceLevel, winner model.Choice) model.ChoiceLevel {
	kept := level[:0]
	for _, choice := range level {
		if choice.Person == winner.Person || choice.Item == winner.Item {
			continue
		}
		kept = append(kept, choice)
	}
	return kept
}
