package services

import (
	"sort"

	"github.com/hartwell-audio/daymix/internal/core/domain"
)

// SelectionState is the accumulator threaded through block selection.
// It is treated as immutable: Pick returns a new state rather than
// mutating the one it was given, which keeps the duplicate-avoidance
// rule auditable per block.
type SelectionState struct {
	// Chosen holds every item id picked in any earlier block.
	Chosen map[string]bool
	// Seen holds the ids the no_repeats tweak must skip.
	Seen map[string]bool
}

// NewSelectionState returns an empty accumulator.
func NewSelectionState() SelectionState {
	return SelectionState{
		Chosen: map[string]bool{},
		Seen:   map[string]bool{},
	}
}

func (s SelectionState) clone() SelectionState {
	next := NewSelectionState()
	for id := range s.Chosen {
		next.Chosen[id] = true
	}
	for id := range s.Seen {
		next.Seen[id] = true
	}
	return next
}

// Pick selects n items for one block: seeded shuffle for tie-breaking,
// score, stable sort, greedy take. It always returns n items when the
// catalog holds at least n; the no_repeats rule alone never shrinks a
// block (see backfill below).
func Pick(catalog []domain.CatalogItem, seed uint32, intent domain.Intent, tweak domain.Tweak, situation domain.Situation, blockIndex, n int, state SelectionState) ([]domain.CatalogItem, SelectionState) {
	shuffled := shuffleItems(catalog, seed)

	type scored struct {
		item  domain.CatalogItem
		score float64
	}
	ranked := make([]scored, len(shuffled))
	for i, item := range shuffled {
		ranked[i] = scored{item: item, score: Score(item, intent, tweak, situation, blockIndex, state.Chosen)}
	}
	// Stable sort so equal scores keep shuffle order.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	ordered := make([]domain.CatalogItem, len(ranked))
	for i, r := range ranked {
		ordered[i] = r.item
	}

	picked := make([]domain.CatalogItem, 0, n)
	inBlock := map[string]bool{}
	for _, item := range ordered {
		if len(picked) == n {
			break
		}
		if tweak == domain.TweakNoRepeats && state.Seen[item.ID] {
			continue
		}
		picked = append(picked, item)
		inBlock[item.ID] = true
	}

	// Backfill: if no_repeats excluded too many candidates, relax it and
	// top the block up, skipping only items already in this block.
	for _, item := range ordered {
		if len(picked) == n {
			break
		}
		if inBlock[item.ID] {
			continue
		}
		picked = append(picked, item)
		inBlock[item.ID] = true
	}

	next := state.clone()
	for _, item := range picked {
		next.Chosen[item.ID] = true
		next.Seen[item.ID] = true
	}
	return picked, next
}
