package mapgen

import (
	"math"

	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Connect replaces the outgoing edges of current with edges into next.
// Both floors are modified in place; next only for reading.
func (e *Engine) Connect(current, next runmap.Floor) {
	if len(next) == 0 {
		return
	}
	current.ResetConnections()

	switch {
	case len(next) == 1:
		for i := range current {
			current[i].Connections = []int{next[0].ID}
		}
		return
	case len(current) == 1:
		current[0].Connections = next.IDs()
		return
	}

	src := e.rand()
	for i := range current {
		centre := int(math.Round(ratio(i, len(current)) * float64(len(next)-1)))
		lo, hi := max(0, centre-1), min(len(next)-1, centre+1)

		candidates := make([]int, 0, hi-lo+1)
		for k := lo; k <= hi; k++ {
			candidates = append(candidates, next[k].ID)
		}
		src.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})

		count := 1
		roll := src.Float64()
		if len(candidates) >= 2 && roll > 0.65 {
			count = 2
		}
		if len(candidates) >= 3 && roll > 0.90 {
			count = 3
		}
		current[i].Connections = candidates[:count]
		if len(current[i].Connections) == 0 {
			current[i].Connections = []int{next[centre].ID}
		}
	}

	RepairOrphans(current, next)
}

// RepairOrphans gives every node of next without a parent in current an
// edge from the current node whose relative position is closest. Ties go
// to the earlier node.
func RepairOrphans(current, next runmap.Floor) {
	if len(current) == 0 {
		return
	}
	for j, child := range next {
		if hasParent(current, child.ID) {
			continue
		}
		p := closest(ratio(j, len(next)), len(current))
		current[p].Connections = append(current[p].Connections, child.ID)
	}
}

// RepairDeadEnds gives every node of current without an outgoing edge an
// edge to the next node whose relative position is closest.
func RepairDeadEnds(current, next runmap.Floor) {
	if len(next) == 0 {
		return
	}
	for i := range current {
		if len(current[i].Connections) > 0 {
			continue
		}
		c := closest(ratio(i, len(current)), len(next))
		current[i].Connections = []int{next[c].ID}
	}
}

// ratio is the relative position of index i in a floor of n nodes.
func ratio(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}

// closest returns the index in a floor of n nodes whose ratio is nearest
// to target.
func closest(target float64, n int) int {
	best, bestDist := 0, math.Inf(1)
	for i := range n {
		if d := math.Abs(ratio(i, n) - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func hasParent(parents runmap.Floor, id int) bool {
	for _, p := range parents {
		if p.HasConnection(id) {
			return true
		}
	}
	return false
}
