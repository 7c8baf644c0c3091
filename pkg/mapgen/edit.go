package mapgen

import (
	"github.com/avulnerador/RogueMap-Gen/pkg/errors"
	"github.com/avulnerador/RogueMap-Gen/pkg/runmap"
)

// Promote returns a copy of m in which the node's floor is reduced to that
// node, turned into a mini-boss with the default boss visuals. The node
// leads to every room of the next floor and every room of the previous
// floor leads only to it.
//
// Only interior floors can be promoted. Promoting a floor that holds
// another locked node is a LOCK_CONFLICT.
func (e *Engine) Promote(m runmap.Map, id int) (runmap.Map, error) {
	r, i, ok := m.Find(id)
	if !ok {
		return runmap.Map{}, errors.New(errors.ErrCodeNodeNotFound, "node %d not found", id)
	}
	if r == 0 || r == m.LastFloor() {
		return runmap.Map{}, errors.New(errors.ErrCodeInvalidInput, "node %d is on floor %d; only interior floors can hold a mini-boss", id, r)
	}
	for _, n := range m.Floors[r] {
		if n.ID != id && n.IsLocked {
			return runmap.Map{}, errors.New(errors.ErrCodeLockConflict, "promoting node %d would remove locked node %d", id, n.ID)
		}
	}

	out := m.Clone()
	n := out.Floors[r][i]
	n.Type = runmap.TypeMiniBoss
	n.IconClass = e.miniBossIcon()
	n.ApplyBossVisuals()
	out.Floors[r] = runmap.Floor{n}

	e.Connect(out.Floors[r-1], out.Floors[r])
	e.Connect(out.Floors[r], out.Floors[r+1])

	e.logger().Debug("promoted node", "id", id, "floor", r)
	return out, nil
}

// Delete returns a copy of m without the node and without any edge to it.
// Children left without a parent are attached to the nearest remaining
// room, and parents left without an exit lead to the nearest child.
//
// The start and boss rooms cannot be deleted, nor can the last room of a
// floor.
func (e *Engine) Delete(m runmap.Map, id int) (runmap.Map, error) {
	r, _, ok := m.Find(id)
	if !ok {
		return runmap.Map{}, errors.New(errors.ErrCodeNodeNotFound, "node %d not found", id)
	}
	if r == 0 || r == m.LastFloor() {
		return runmap.Map{}, errors.New(errors.ErrCodeInvalidInput, "node %d is the start or boss room", id)
	}
	if len(m.Floors[r]) == 1 {
		return runmap.Map{}, errors.New(errors.ErrCodeInvalidInput, "node %d is the last room of floor %d", id, r)
	}

	out := m.Clone()
	if err := out.RemoveNode(id); err != nil {
		return runmap.Map{}, errors.Wrap(errors.ErrCodeInternal, err, "remove node %d", id)
	}
	RepairDeadEnds(out.Floors[r-1], out.Floors[r])
	RepairOrphans(out.Floors[r], out.Floors[r+1])

	e.logger().Debug("deleted node", "id", id, "floor", r)
	return out, nil
}

// Update returns a copy of m with the node replaced by n, matched by id.
// The node must stay on its floor and its connections must target the next
// floor. Start and boss rooms keep their type, no other room may take
// one, and the type must be registered. Rooms of the next floor left
// without a parent by edited connections are reattached.
func (e *Engine) Update(m runmap.Map, n runmap.Node) (runmap.Map, error) {
	if _, ok := e.Registry[n.Type]; e.Registry != nil && !ok {
		return runmap.Map{}, errors.New(errors.ErrCodeInvalidInput, "update node %d: unknown type %q", n.ID, n.Type)
	}
	out := m.Clone()
	if err := out.ReplaceNode(n); err != nil {
		switch err {
		case runmap.ErrUnknownNode:
			return runmap.Map{}, errors.Wrap(errors.ErrCodeNodeNotFound, err, "node %d", n.ID)
		default:
			return runmap.Map{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "update node %d", n.ID)
		}
	}
	if r := n.Row; r < out.LastFloor() {
		RepairOrphans(out.Floors[r], out.Floors[r+1])
	}
	return out, nil
}
