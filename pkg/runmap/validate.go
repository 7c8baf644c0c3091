package runmap

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMap is returned by [Map.Validate] for a map without floors.
	ErrEmptyMap = errors.New("map has no floors")

	// ErrNegativeNodeID is returned when a node id is below zero.
	ErrNegativeNodeID = errors.New("node ID must not be negative")

	// ErrDuplicateNodeID is returned when two nodes share an id.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrRowMismatch is returned when a node's Row differs from the index
	// of the floor that holds it.
	ErrRowMismatch = errors.New("node row does not match its floor")

	// ErrStartFloor is returned when floor 0 is not a single start room.
	ErrStartFloor = errors.New("floor 0 must hold exactly one start node")

	// ErrBossFloor is returned when the last floor is not a single boss room.
	ErrBossFloor = errors.New("last floor must hold exactly one boss node")

	// ErrDuplicateConnection is returned when a node lists a target twice.
	ErrDuplicateConnection = errors.New("duplicate connection")

	// ErrNonConsecutiveRows is returned when a connection targets a node
	// outside the immediately next floor.
	ErrNonConsecutiveRows = errors.New("connections must target the next floor")

	// ErrOrphanNode is returned when a node below floor 0 has no parent.
	ErrOrphanNode = errors.New("node is unreachable from the previous floor")

	// ErrBossHasEdges is returned when the boss room has outgoing edges.
	ErrBossHasEdges = errors.New("boss node must not have connections")
)

// Validate checks map integrity and returns nil if valid.
// It verifies, in order:
//
//  1. Ids are non-negative, unique, and every node's Row matches its floor
//  2. Floor 0 is a single start node and the last floor a single boss node
//  3. Connections are unique and only target the next floor
//  4. Every node below floor 0 has at least one parent
//
// The last check also covers bottleneck floors: a single-node floor that
// misses a node of the next floor leaves that node orphaned.
//
// Errors wrap one of the package sentinels with the offending node, so
// callers can match them with errors.Is.
func (m Map) Validate() error {
	if len(m.Floors) == 0 {
		return ErrEmptyMap
	}
	if err := m.validateIdentity(); err != nil {
		return err
	}
	if err := m.validateEnds(); err != nil {
		return err
	}
	for r, f := range m.Floors {
		for _, n := range f {
			if err := m.checkConnections(r, n); err != nil {
				return err
			}
		}
		if orphans := m.Orphans(r); len(orphans) > 0 {
			return fmt.Errorf("%w: node %d on floor %d", ErrOrphanNode, orphans[0], r)
		}
	}
	return nil
}

func (m Map) validateIdentity() error {
	seen := make(map[int]bool, m.NodeCount())
	for r, f := range m.Floors {
		for _, n := range f {
			if n.ID < 0 {
				return fmt.Errorf("%w: %d", ErrNegativeNodeID, n.ID)
			}
			if seen[n.ID] {
				return fmt.Errorf("%w: %d", ErrDuplicateNodeID, n.ID)
			}
			seen[n.ID] = true
			if n.Row != r {
				return fmt.Errorf("%w: node %d has row %d on floor %d", ErrRowMismatch, n.ID, n.Row, r)
			}
		}
	}
	return nil
}

func (m Map) validateEnds() error {
	if start := m.Floors[0]; len(start) != 1 || start[0].Type != TypeStart {
		return ErrStartFloor
	}
	if len(m.Floors) < 2 {
		return ErrBossFloor
	}
	if boss := m.Floors[m.LastFloor()]; len(boss) != 1 || boss[0].Type != TypeBoss {
		return ErrBossFloor
	}
	return nil
}

// checkConnections validates the outgoing edges of n as if it sat on floor r.
func (m Map) checkConnections(r int, n Node) error {
	if r == m.LastFloor() {
		if len(n.Connections) > 0 {
			return fmt.Errorf("%w: node %d", ErrBossHasEdges, n.ID)
		}
		return nil
	}
	next := m.Floors[r+1]
	seen := make(map[int]bool, len(n.Connections))
	for _, c := range n.Connections {
		if seen[c] {
			return fmt.Errorf("%w: node %d -> %d", ErrDuplicateConnection, n.ID, c)
		}
		seen[c] = true
		if next.Index(c) < 0 {
			return fmt.Errorf("%w: node %d -> %d", ErrNonConsecutiveRows, n.ID, c)
		}
	}
	return nil
}
