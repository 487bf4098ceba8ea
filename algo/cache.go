package algo

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// RevisionReader is a Reader that exposes a revision counter which changes
// whenever its contents change. Both *store.Store and *store.Snapshot
// implement it.
type RevisionReader interface {
	store.Reader
	Revision() uint64
}

// NormalCache memoizes face normals for one reader.
//
// Every entry is tied to the reader revision it was computed at; the first
// lookup after the revision changes drops the whole cache, so a stale normal
// is never returned. NormalCache is not safe for concurrent use.
type NormalCache struct {
	r        RevisionReader
	revision uint64
	normals  map[model.FaceID]geom.Vec3
}

// NewNormalCache creates an empty cache over r.
func NewNormalCache(r RevisionReader) *NormalCache {
	return &NormalCache{
		r:        r,
		revision: r.Revision(),
		normals:  make(map[model.FaceID]geom.Vec3),
	}
}

// Normal returns the normal of the face with the given identity.
// ok is false if the face does not exist.
func (c *NormalCache) Normal(id model.FaceID) (geom.Vec3, bool) {
	if rev := c.r.Revision(); rev != c.revision {
		clear(c.normals)
		c.revision = rev
	}

	if n, ok := c.normals[id]; ok {
		return n, true
	}

	n, ok := FaceNormalByID(c.r, id)
	if !ok {
		return geom.Vec3{}, false
	}
	c.normals[id] = n

	return n, true
}

// Len returns the number of cached normals.
func (c *NormalCache) Len() int {
	return len(c.normals)
}
