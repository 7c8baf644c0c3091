// Package runmap defines the roguelike run map: a strictly layered directed
// acyclic graph of rooms organized into floors.
//
// # Overview
//
// A [Map] is an ordered sequence of floors. Floor 0 always holds the single
// start room and the last floor holds the single boss room. Each [Node]
// lists the ids of the rooms it leads to in [Node.Connections], and those
// ids must live in the immediately next floor: there are no skip-floor,
// backward or intra-floor edges.
//
// The row-based constraint mirrors the layered DAGs used for Sugiyama-style
// drawing: every path from the start room visits exactly one room per floor,
// which is what makes a run map readable.
//
// # Identity
//
// Node ids are non-negative integers, unique across the map. The map carries
// its own monotonic id counter ([Map.NextID]); [Map.AllocID] hands out ids
// strictly greater than any id the map has ever held, so ids are never
// reused unless a caller explicitly carries a node over.
//
// # Validation
//
// [Map.Validate] checks the structural invariants (unique ids, consecutive
// floors, no orphans, single start and boss rooms) and returns one of the
// package's sentinel errors wrapped with the offending node. Importers
// should call it before handing a map to the engine.
//
// # Values, not references
//
// Maps are treated as values. Engine entry points take a map, [Map.Clone]
// it, and return the transformed copy; callers must not share floor slices
// between maps they intend to mutate independently.
//
// # Concurrency
//
// Map values are not safe for concurrent mutation. Callers serialize
// successive engine invocations.
package runmap
