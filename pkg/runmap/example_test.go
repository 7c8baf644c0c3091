package runmap_test

import (
	"errors"
	"fmt"

	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

func ExampleMap_Validate() {
	m := runmap.Map{Floors: []runmap.Floor{
		{{ID: 1, Row: 0, Type: runmap.TypeStart, Connections: []int{2, 3}}},
		{
			{ID: 2, Row: 1, Type: runmap.TypeShop},
			{ID: 3, Row: 1, Type: runmap.TypeEvent},
		},
		{{ID: 4, Row: 2, Type: runmap.TypeBoss}},
	}}

	err := m.Validate()
	fmt.Println(errors.Is(err, runmap.ErrOrphanNode))
	fmt.Println(err)
	// Output:
	// true
	// node is unreachable from the previous floor: node 4 on floor 2
}

func ExampleMap_AllocID() {
	m := runmap.Map{Floors: []runmap.Floor{{{ID: 1}, {ID: 8}}}}
	m.SyncNextID()

	fmt.Println(m.AllocID(), m.AllocID())
	// Output:
	// 9 10
}
