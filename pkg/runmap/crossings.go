package runmap

import (
	"slices"
)

// CountCrossings returns the total number of edge crossings between every
// pair of consecutive floors, taking each floor's slice order as its
// left-to-right order.
//
// The connector keeps edges local, so a freshly generated map usually has
// few crossings; the count is reported as a quality statistic.
func CountCrossings(m Map) int {
	crossings := 0
	for r := 0; r+1 < len(m.Floors); r++ {
		crossings += CountFloorCrossings(m.Floors[r], m.Floors[r+1])
	}
	return crossings
}

// CountFloorCrossings counts edge crossings between two adjacent floors
// using a Fenwick tree (binary indexed tree) in O(E log V).
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// which is the number of inversions in the sequence of target positions
// once edges are sorted by source position. Connections to nodes outside
// lower are ignored.
func CountFloorCrossings(upper, lower Floor) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := make(map[int]int, len(lower))
	for i, n := range lower {
		lowerPos[n.ID] = i
	}

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, n := range upper {
		for _, c := range n.Connections {
			if pos, ok := lowerPos[c]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for u := e.lower + 1; u < len(fenwick); u += u & (-u) {
			fenwick[u]++
		}
	}
	return crossings
}
