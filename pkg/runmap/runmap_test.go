package runmap

import (
	"errors"
	"testing"
)

// diamond builds start -> {a, b} -> boss.
func diamond() Map {
	return Map{
		Floors: []Floor{
			{{ID: 1, Row: 0, Type: TypeStart, Connections: []int{2, 3}}},
			{
				{ID: 2, Row: 1, Type: TypeNormal, Connections: []int{4}},
				{ID: 3, Row: 1, Type: TypeElite, Connections: []int{4}},
			},
			{{ID: 4, Row: 2, Type: TypeBoss, Connections: []int{}}},
		},
		NextID: 5,
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := diamond()
	m.Floors[1][0].ApplyBossVisuals()

	c := m.Clone()
	c.Floors[0][0].Connections[0] = 99
	*c.Floors[1][0].CustomSize = 3
	c.Floors[1] = append(c.Floors[1], Node{ID: 7, Row: 1})

	if m.Floors[0][0].Connections[0] != 2 {
		t.Error("connections slice shared with clone")
	}
	if *m.Floors[1][0].CustomSize != MiniBossSize {
		t.Error("custom size pointer shared with clone")
	}
	if len(m.Floors[1]) != 2 {
		t.Error("floor slice shared with clone")
	}
}

func TestCounts(t *testing.T) {
	m := diamond()
	if got := m.NodeCount(); got != 4 {
		t.Errorf("NodeCount() = %d, want 4", got)
	}
	if got := m.EdgeCount(); got != 4 {
		t.Errorf("EdgeCount() = %d, want 4", got)
	}
	if got := m.LastFloor(); got != 2 {
		t.Errorf("LastFloor() = %d, want 2", got)
	}
}

func TestIDAllocation(t *testing.T) {
	tests := []struct {
		name   string
		m      Map
		wantID int
	}{
		{"empty map starts at one", Map{}, 1},
		{"counter behind ids", Map{Floors: []Floor{{{ID: 9}}}, NextID: 3}, 10},
		{"counter ahead of ids", Map{Floors: []Floor{{{ID: 9}}}, NextID: 20}, 20},
		{"zero id only", Map{Floors: []Floor{{{ID: 0}}}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.m
			m.SyncNextID()
			if got := m.AllocID(); got != tt.wantID {
				t.Errorf("AllocID() = %d, want %d", got, tt.wantID)
			}
			if got := m.AllocID(); got != tt.wantID+1 {
				t.Errorf("second AllocID() = %d, want %d", got, tt.wantID+1)
			}
		})
	}
}

func TestFindAndNode(t *testing.T) {
	m := diamond()
	r, i, ok := m.Find(3)
	if !ok || r != 1 || i != 1 {
		t.Errorf("Find(3) = (%d, %d, %v), want (1, 1, true)", r, i, ok)
	}
	if _, _, ok := m.Find(42); ok {
		t.Error("Find(42) should fail")
	}

	n, ok := m.Node(1)
	if !ok {
		t.Fatal("Node(1) not found")
	}
	n.Connections[0] = 99
	if m.Floors[0][0].Connections[0] != 2 {
		t.Error("Node() must return a copy")
	}
}

func TestRemoveNode(t *testing.T) {
	m := diamond()
	if err := m.RemoveNode(2); err != nil {
		t.Fatalf("RemoveNode(2): %v", err)
	}
	if len(m.Floors[1]) != 1 || m.Floors[1][0].ID != 3 {
		t.Errorf("floor 1 = %v, want only node 3", m.Floors[1].IDs())
	}
	if m.Floors[0][0].HasConnection(2) {
		t.Error("edge to removed node kept")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate() after removal: %v", err)
	}
	if err := m.RemoveNode(2); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("RemoveNode(2) twice = %v, want ErrUnknownNode", err)
	}
}

func TestReplaceNode(t *testing.T) {
	m := diamond()

	edited, _ := m.Node(2)
	edited.IconClass = "fas fa-star"
	edited.IsLocked = true
	if err := m.ReplaceNode(edited); err != nil {
		t.Fatalf("ReplaceNode: %v", err)
	}
	if got, _ := m.Node(2); got.IconClass != "fas fa-star" || !got.IsLocked {
		t.Errorf("node 2 not replaced: %+v", got)
	}

	bad := edited
	bad.Connections = []int{1}
	if err := m.ReplaceNode(bad); !errors.Is(err, ErrNonConsecutiveRows) {
		t.Errorf("backward edge: got %v, want ErrNonConsecutiveRows", err)
	}

	moved := edited
	moved.Row = 2
	if err := m.ReplaceNode(moved); !errors.Is(err, ErrFloorChanged) {
		t.Errorf("moved node: got %v, want ErrFloorChanged", err)
	}

	if err := m.ReplaceNode(Node{ID: 77}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("unknown node: got %v, want ErrUnknownNode", err)
	}
}

func TestReplaceNodeFixedTypes(t *testing.T) {
	tests := []struct {
		name string
		id   int
		typ  string
	}{
		{"start retyped", 1, TypeElite},
		{"boss retyped", 4, TypeNormal},
		{"room made start", 2, TypeStart},
		{"room made boss", 3, TypeBoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := diamond()
			n, _ := m.Node(tt.id)
			n.Type = tt.typ
			if err := m.ReplaceNode(n); !errors.Is(err, ErrFixedType) {
				t.Errorf("ReplaceNode() = %v, want ErrFixedType", err)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("map changed by a rejected edit: %v", err)
			}
		})
	}

	m := diamond()
	n, _ := m.Node(2)
	n.Type = TypeShop
	if err := m.ReplaceNode(n); err != nil {
		t.Errorf("retyping a regular room: %v", err)
	}
}

func TestMiniBossFloorsAndLocked(t *testing.T) {
	m := diamond()
	m.Floors[1] = Floor{{ID: 2, Row: 1, Type: TypeMiniBoss, IsLocked: true, Connections: []int{4}}}
	m.Floors[0][0].Connections = []int{2}

	if got := m.MiniBossFloors(); len(got) != 1 || got[0] != 1 {
		t.Errorf("MiniBossFloors() = %v, want [1]", got)
	}
	if got := m.LockedNodes(); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("LockedNodes() = %v, want node 2", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Map)
		wantErr error
	}{
		{"valid", func(m *Map) {}, nil},
		{"empty", func(m *Map) { m.Floors = nil }, ErrEmptyMap},
		{"negative id", func(m *Map) { m.Floors[1][0].ID = -2 }, ErrNegativeNodeID},
		{"duplicate id", func(m *Map) { m.Floors[1][1].ID = 2 }, ErrDuplicateNodeID},
		{"row mismatch", func(m *Map) { m.Floors[1][0].Row = 5 }, ErrRowMismatch},
		{"start type", func(m *Map) { m.Floors[0][0].Type = TypeNormal }, ErrStartFloor},
		{"two starts", func(m *Map) {
			m.Floors[0] = append(m.Floors[0], Node{ID: 9, Row: 0, Type: TypeStart, Connections: []int{2}})
		}, ErrStartFloor},
		{"boss type", func(m *Map) { m.Floors[2][0].Type = TypeNormal }, ErrBossFloor},
		{"single floor", func(m *Map) { m.Floors = m.Floors[:1]; m.Floors[0][0].Connections = nil }, ErrBossFloor},
		{"duplicate connection", func(m *Map) { m.Floors[1][0].Connections = []int{4, 4} }, ErrDuplicateConnection},
		{"skip floor", func(m *Map) { m.Floors[0][0].Connections = []int{2, 3, 4} }, ErrNonConsecutiveRows},
		{"orphan", func(m *Map) { m.Floors[0][0].Connections = []int{2} }, ErrOrphanNode},
		{"orphan below normal floor", func(m *Map) {
			m.Floors[1][0].Connections = []int{}
			m.Floors[1][1].Connections = []int{}
		}, ErrOrphanNode},
		{"boss edge", func(m *Map) { m.Floors[2][0].Connections = []int{1} }, ErrBossHasEdges},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := diamond()
			tt.mutate(&m)
			err := m.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMiniBossFloor(t *testing.T) {
	m := Map{Floors: []Floor{
		{{ID: 1, Row: 0, Type: TypeStart, Connections: []int{2}}},
		{{ID: 2, Row: 1, Type: TypeMiniBoss, Connections: []int{3}}},
		{
			{ID: 3, Row: 2, Type: TypeNormal, Connections: []int{5}},
			{ID: 4, Row: 2, Type: TypeNormal, Connections: []int{5}},
		},
		{{ID: 5, Row: 3, Type: TypeBoss}},
	}}
	if err := m.Validate(); !errors.Is(err, ErrOrphanNode) {
		t.Fatalf("Validate() = %v, want ErrOrphanNode", err)
	}

	m.Floors[1][0].Connections = []int{3, 4}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestCountFloorCrossings(t *testing.T) {
	upper := Floor{{ID: 1, Connections: []int{4}}, {ID: 2, Connections: []int{3}}}
	lower := Floor{{ID: 3}, {ID: 4}}
	if got := CountFloorCrossings(upper, lower); got != 1 {
		t.Errorf("crossed pair = %d, want 1", got)
	}

	upper[0].Connections = []int{3}
	upper[1].Connections = []int{4}
	if got := CountFloorCrossings(upper, lower); got != 0 {
		t.Errorf("parallel pair = %d, want 0", got)
	}

	if got := CountFloorCrossings(nil, lower); got != 0 {
		t.Errorf("empty upper = %d, want 0", got)
	}
}

func TestCountCrossings(t *testing.T) {
	if got := CountCrossings(diamond()); got != 0 {
		t.Errorf("CountCrossings(diamond) = %d, want 0", got)
	}
}
