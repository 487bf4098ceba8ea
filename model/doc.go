// Package model defines core types used throughout brepgo.
//
// # Identity Types
//
//   - VertexID: caller-assigned vertex identity (int32)
//   - EdgeID: caller-assigned edge identity (int32)
//   - FaceID: caller-assigned face identity (int32)
//
// Identities are unique per kind within one store. Entities refer to each
// other by identity only: an Edge holds two VertexIDs, a Face holds an
// ordered list of EdgeIDs. All lookups go through the store.
//
// # Entity Types
//
//   - Vertex: identity plus position
//   - Edge: identity plus start and end vertex; undirected for equality
//   - Face: identity plus ordered edge boundary
//
// Entities are immutable values. A Face copies its edge list on
// construction and only hands out copies, so a Face read from a store
// cannot be used to modify that store.
package model
