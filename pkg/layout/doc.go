// Package layout computes 2D coordinates for run maps.
//
// # Position Solver
//
// [Solve] places every node in three passes:
//
//  1. Grid placement: nodes of a floor are spaced evenly along the cross
//     axis (spacingX apart, centred on 0) and floors are spaced along the
//     main axis (spacingY apart, by floor index). Vertical maps grow down
//     the Y axis; horizontal maps swap the roles. With
//     randomizeNodePositions set, every node off floor 0 is jittered
//     uniformly by up to spacingX*k on the cross axis and spacingY*k*0.7 on
//     the main axis, where k is jitterIntensity/100.
//  2. Collision sweep (jitter only): nodes of a floor are sorted by cross
//     coordinate and later nodes are pushed forward until neighbours are at
//     least [NodeVisualSize]+[CollisionBuffer] apart. Nodes are never pulled
//     closer.
//  3. Manual offsets: each node's accumulated drag is added last.
//
// Coordinates are derived data: every structural change re-runs the solver
// and manual offsets survive it.
//
// # Dragging
//
// [Drag] accumulates an author drag into the node's manual offset, keeping
// the offset within a radius of the computed position.
package layout
