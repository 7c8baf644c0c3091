package runmap

import (
	"errors"
	"fmt"
	"slices"
)

// Room type keys understood by the engine. Registries may define more
// keys, but generation only ever creates these.
const (
	TypeStart    = "start"
	TypeBoss     = "boss"
	TypeMiniBoss = "mini_boss_editable"
	TypeNormal   = "normal"
	TypeElite    = "elite"
	TypeEvent    = "event"
	TypeShop     = "shop"
	TypeTreasure = "treasure"
)

// Default visuals applied to generated or promoted mini-bosses.
const (
	MiniBossSize = 1.5
	MiniBossGlow = 20
)

var (
	// ErrUnknownNode is returned when an id does not exist in the map.
	ErrUnknownNode = errors.New("unknown node")

	// ErrFloorChanged is returned by [Map.ReplaceNode] when the replacement
	// would move a node to another floor.
	ErrFloorChanged = errors.New("node floor cannot change")

	// ErrFixedType is returned by [Map.ReplaceNode] when the replacement
	// retypes the start or boss room, or turns another room into one.
	ErrFixedType = errors.New("start and boss rooms cannot change type")
)

// Node is a single room of a run map.
//
// X and Y are derived by the position solver and are not authoritative.
// ManualOffsetX/Y hold the accumulated author drag, applied on top of every
// computed layout. Locked nodes keep their id, type and icon across
// regeneration.
type Node struct {
	ID          int    `json:"id" bson:"id"`
	Row         int    `json:"row" bson:"row"`
	Type        string `json:"type" bson:"type"`
	IconClass   string `json:"iconClass" bson:"iconClass"`
	Connections []int  `json:"connections" bson:"connections"` // ids in floor Row+1

	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`

	CustomSize          *float64 `json:"customSize,omitempty" bson:"customSize,omitempty"`
	CustomGlow          *int     `json:"customGlow,omitempty" bson:"customGlow,omitempty"`
	BorderColor         string   `json:"borderColor,omitempty" bson:"borderColor,omitempty"`
	ManualOffsetX       float64  `json:"manualOffsetX,omitempty" bson:"manualOffsetX,omitempty"`
	ManualOffsetY       float64  `json:"manualOffsetY,omitempty" bson:"manualOffsetY,omitempty"`
	IsLocked            bool     `json:"isLocked,omitempty" bson:"isLocked,omitempty"`
	IsCustomHighlighted bool     `json:"isCustomHighlighted,omitempty" bson:"isCustomHighlighted,omitempty"`
}

// IsMiniBoss reports whether the node is an intermediate boss.
func (n Node) IsMiniBoss() bool { return n.Type == TypeMiniBoss }

// HasConnection reports whether the node leads to id.
func (n Node) HasConnection(id int) bool { return slices.Contains(n.Connections, id) }

// Clone returns a deep copy of the node.
func (n Node) Clone() Node {
	n.Connections = slices.Clone(n.Connections)
	if n.CustomSize != nil {
		v := *n.CustomSize
		n.CustomSize = &v
	}
	if n.CustomGlow != nil {
		v := *n.CustomGlow
		n.CustomGlow = &v
	}
	return n
}

// ApplyBossVisuals sets the default mini-boss size and glow.
func (n *Node) ApplyBossVisuals() {
	size, glow := MiniBossSize, MiniBossGlow
	n.CustomSize = &size
	n.CustomGlow = &glow
}

// ClearVisuals drops custom size and glow.
func (n *Node) ClearVisuals() {
	n.CustomSize = nil
	n.CustomGlow = nil
}

// Floor is one layer of the map, ordered along the cross axis.
type Floor []Node

// IDs returns the node ids of the floor in order.
func (f Floor) IDs() []int {
	ids := make([]int, len(f))
	for i, n := range f {
		ids[i] = n.ID
	}
	return ids
}

// Index returns the position of id in the floor, or -1.
func (f Floor) Index(id int) int {
	return slices.IndexFunc(f, func(n Node) bool { return n.ID == id })
}

// Clone returns a deep copy of the floor.
func (f Floor) Clone() Floor {
	if f == nil {
		return nil
	}
	out := make(Floor, len(f))
	for i, n := range f {
		out[i] = n.Clone()
	}
	return out
}

// ResetConnections empties the outgoing edges of every node in the floor.
func (f Floor) ResetConnections() {
	for i := range f {
		f[i].Connections = []int{}
	}
}

// Map is a layered run map plus its id counter.
type Map struct {
	Floors []Floor `json:"floors" bson:"floors"`
	// NextID is the next id AllocID hands out. Zero means "not tracked";
	// call SyncNextID after decoding maps from older documents.
	NextID int `json:"nextId,omitempty" bson:"nextId,omitempty"`
}

// Clone returns a deep copy of the map.
func (m Map) Clone() Map {
	out := Map{NextID: m.NextID}
	if m.Floors != nil {
		out.Floors = make([]Floor, len(m.Floors))
		for i, f := range m.Floors {
			out.Floors[i] = f.Clone()
		}
	}
	return out
}

// LastFloor returns the index of the final (boss) floor, or -1 when the
// map is empty.
func (m Map) LastFloor() int { return len(m.Floors) - 1 }

// NodeCount returns the number of rooms in the map.
func (m Map) NodeCount() int {
	n := 0
	for _, f := range m.Floors {
		n += len(f)
	}
	return n
}

// EdgeCount returns the number of connections in the map.
func (m Map) EdgeCount() int {
	n := 0
	for _, f := range m.Floors {
		for _, node := range f {
			n += len(node.Connections)
		}
	}
	return n
}

// MaxID returns the highest node id, or -1 for an empty map.
func (m Map) MaxID() int {
	maxID := -1
	for _, f := range m.Floors {
		for _, n := range f {
			maxID = max(maxID, n.ID)
		}
	}
	return maxID
}

// SyncNextID raises the id counter above every id present in the map.
// Fresh maps start allocating at 1.
func (m *Map) SyncNextID() {
	m.NextID = max(m.NextID, m.MaxID()+1, 1)
}

// AllocID returns a fresh id and advances the counter. The counter must
// already be above every id in the map (see SyncNextID).
func (m *Map) AllocID() int {
	if m.NextID < 1 {
		m.NextID = 1
	}
	id := m.NextID
	m.NextID++
	return id
}

// Find returns the floor and index of the node with the given id.
func (m Map) Find(id int) (floor, index int, ok bool) {
	for r, f := range m.Floors {
		if i := f.Index(id); i >= 0 {
			return r, i, true
		}
	}
	return -1, -1, false
}

// Node returns a copy of the node with the given id.
func (m Map) Node(id int) (Node, bool) {
	r, i, ok := m.Find(id)
	if !ok {
		return Node{}, false
	}
	return m.Floors[r][i].Clone(), true
}

// LockedNodes returns copies of every locked node, floor by floor.
func (m Map) LockedNodes() []Node {
	var out []Node
	for _, f := range m.Floors {
		for _, n := range f {
			if n.IsLocked {
				out = append(out, n.Clone())
			}
		}
	}
	return out
}

// MiniBossFloors returns the interior floors made of a single mini-boss.
func (m Map) MiniBossFloors() []int {
	var rows []int
	for r := 1; r < len(m.Floors)-1; r++ {
		if f := m.Floors[r]; len(f) == 1 && f[0].IsMiniBoss() {
			rows = append(rows, r)
		}
	}
	return rows
}

// ReplaceNode swaps in an edited copy of an existing node, matched by id.
// The node keeps its floor and its type when it is the start or boss room;
// no other room may become one. Its connections must point into the next
// floor and must not repeat.
func (m *Map) ReplaceNode(n Node) error {
	r, i, ok := m.Find(n.ID)
	if !ok {
		return ErrUnknownNode
	}
	if n.Row != r {
		return ErrFloorChanged
	}
	if old := m.Floors[r][i].Type; n.Type != old && (isFixed(old) || isFixed(n.Type)) {
		return fmt.Errorf("%w: node %d is %s, not %s", ErrFixedType, n.ID, old, n.Type)
	}
	if err := m.checkConnections(r, n); err != nil {
		return err
	}
	m.Floors[r][i] = n.Clone()
	return nil
}

func isFixed(typ string) bool { return typ == TypeStart || typ == TypeBoss }

// RemoveNode deletes the node and every connection leading to it.
// The floor may be left empty; callers decide whether that is allowed.
func (m *Map) RemoveNode(id int) error {
	r, i, ok := m.Find(id)
	if !ok {
		return ErrUnknownNode
	}
	m.Floors[r] = slices.Delete(m.Floors[r], i, i+1)
	if r > 0 {
		parents := m.Floors[r-1]
		for p := range parents {
			parents[p].Connections = slices.DeleteFunc(parents[p].Connections, func(c int) bool { return c == id })
		}
	}
	return nil
}

// Orphans returns the ids of nodes in floor r that no node of floor r-1
// leads to. Floor 0 never has orphans.
func (m Map) Orphans(r int) []int {
	if r <= 0 || r >= len(m.Floors) {
		return nil
	}
	var ids []int
	for _, n := range m.Floors[r] {
		if !hasParent(m.Floors[r-1], n.ID) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func hasParent(parents Floor, id int) bool {
	for _, p := range parents {
		if p.HasConnection(id) {
			return true
		}
	}
	return false
}
