// Package server exposes the map editor over HTTP.
//
// Every route operates on a document stored under an id in a [store.Store].
// Mutating routes load the document, apply one editor action and store the
// result; requests are serialized so concurrent authors never interleave
// half-applied edits.
//
// # Routes
//
//	GET    /healthz
//	GET    /api/themes
//	GET    /api/maps
//	POST   /api/maps                          create from an optional config
//	GET    /api/maps/{id}                     ETag / If-None-Match aware
//	PUT    /api/maps/{id}                     import a document
//	DELETE /api/maps/{id}
//	GET    /api/maps/{id}/summary
//	POST   /api/maps/{id}/generate            regenerate, keeping locks
//	PUT    /api/maps/{id}/config              enforce topology, relayout
//	POST   /api/maps/{id}/layout              relayout only
//	POST   /api/maps/{id}/theme               {"name": "ember"}
//	PUT    /api/maps/{id}/nodes/{node}        replace a node
//	DELETE /api/maps/{id}/nodes/{node}
//	POST   /api/maps/{id}/nodes/{node}/drag   {"dx": 10, "dy": -5}
//	POST   /api/maps/{id}/nodes/{node}/promote
//	PUT    /api/maps/{id}/nodes/{node}/lock   {"locked": true}
//	GET    /api/maps/{id}/export/{format}     json, dot, svg, png, pdf, canvas
//
// Errors are JSON objects {"code": ..., "message": ...} where code is one of
// the [errors.Code] values.
//
// [store.Store]: github.com/avulnerador/RogueMap-Gen/pkg/store.Store
// [errors.Code]: github.com/avulnerador/RogueMap-Gen/pkg/errors.Code
package server
