package editor

import (
	"github.com/avulnerador/RogueMap-Gen/pkg/document"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Summary describes a map for status output.
type Summary struct {
	Floors         int    `json:"floors"`
	Nodes          int    `json:"nodes"`
	Edges          int    `json:"edges"`
	Crossings      int    `json:"crossings"`
	Locked         int    `json:"locked"`
	MiniBossFloors []int  `json:"miniBossFloors"`
	Valid          bool   `json:"valid"`
	Problem        string `json:"problem,omitempty"`
}

// Summarize computes the summary of d's map.
func Summarize(d document.Document) Summary {
	m := d.Map()
	s := Summary{
		Floors:         len(m.Floors),
		Nodes:          m.NodeCount(),
		Edges:          m.EdgeCount(),
		Crossings:      runmap.CountCrossings(m),
		Locked:         len(m.LockedNodes()),
		MiniBossFloors: m.MiniBossFloors(),
		Valid:          true,
	}
	if s.MiniBossFloors == nil {
		s.MiniBossFloors = []int{}
	}
	if err := m.Validate(); err != nil {
		s.Valid, s.Problem = false, err.Error()
	}
	return s
}
