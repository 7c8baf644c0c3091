// Package document reads and writes the editor's JSON map document.
//
// # Format
//
// A document bundles a map with everything needed to edit and render it:
//
//	{
//	  "mapNodes": [[{"id": 1, "row": 0, "type": "start", ...}], ...],
//	  "nextId": 42,
//	  "mapConfig": {"orientation": "vertical", "numRows": 15, ...},
//	  "visualConfig": {"nodeShape": "circle", ...},
//	  "nodeTypes": {"elite": {"name": "Elite", "color": "#ea580c", ...}},
//	  "availableIcons": ["fas fa-skull", ...]
//	}
//
// mapNodes and mapConfig are required. visualConfig, nodeTypes and
// availableIcons fall back to their defaults when absent, and nextId is
// recomputed from the node ids when missing or too low.
//
// # Validation
//
// [Read] rejects malformed JSON and missing sections with INVALID_FORMAT,
// an out-of-range mapConfig with INVALID_CONFIG and a structurally broken
// map with INVALID_MAP. Documents that pass are safe to hand to the engine.
package document
