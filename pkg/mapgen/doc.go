// Package mapgen generates run maps and keeps them structurally valid.
//
// # Engine
//
// An [Engine] bundles the node type registry, the random source and a
// logger. Every entry point takes a map value and returns a new one; inputs
// are never modified.
//
//   - [Engine.Generate] builds a fresh map from a [config.MapConfig],
//     carrying over locked nodes of an existing map.
//   - [Engine.Enforce] reconciles an existing map with a changed boss floor
//     setting without regenerating unrelated floors.
//   - [Engine.Connect] is the layer connector both of them use.
//   - [Engine.Promote], [Engine.Delete] and [Engine.Update] are the author
//     edits: they keep every floor reachable but leave coordinates to the
//     caller (see the layout package).
//
// # Layer Connector
//
// Connections between two floors follow a fixed policy:
//
//  1. A single-node next floor receives an edge from every node.
//  2. A single-node current floor leads to every node of the next floor.
//  3. Otherwise node i of n maps to the centre target round(i/(n-1)*(m-1))
//     of the m next nodes. The window centre±1 is shuffled and the node
//     takes one candidate, two with probability 0.35 and three with
//     probability 0.10 when the window is wide enough.
//  4. Any next node left without a parent is attached to the current node
//     whose relative position is closest to its own.
//
// # Locked nodes
//
// Generation matches locked nodes of the previous map by id and re-seats
// them on the floor they occupied, at their previous index when possible.
// Placements that cannot be honoured fail with a LOCK_CONFLICT error
// instead of silently dropping or moving the node.
//
// # Randomness
//
// The engine draws from [Engine.Rand]; a nil source uses the unseeded global
// generator. Tests pass rng.New(seed) for reproducible maps.
package mapgen
