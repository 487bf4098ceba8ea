package topology

import (
	"github.com/hupe1980/brepgo/algo"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// NormalInconsistencies returns the faces whose normal points against the
// normal of the first face in insertion order (negative dot product).
//
// Faces without edges are skipped. If the first face has no edges there is
// no reference and nothing is reported.
func NormalInconsistencies(r store.Reader) []model.FaceID {
	if r == nil || r.NumFaces() == 0 {
		return nil
	}

	var (
		inconsistent []model.FaceID
		ref          geom.Vec3
	)

	for i, f := range r.Faces() {
		if i == 0 {
			if f.Len() == 0 {
				return nil
			}
			ref = algo.FaceNormal(f, r)
			continue
		}
		if f.Len() == 0 {
			continue
		}
		if algo.FaceNormal(f, r).Dot(ref) < 0 {
			inconsistent = append(inconsistent, f.ID)
		}
	}

	return inconsistent
}
