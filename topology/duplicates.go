package topology

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/brepgo/model"
	"github.com/hupe1980/brepgo/store"
)

// DuplicateEdges returns the edges whose endpoints, ignoring direction,
// match an edge seen earlier in insertion order. The first edge of each
// group is not reported.
func DuplicateEdges(r store.Reader) []model.EdgeID {
	if r == nil {
		return nil
	}

	var dups []model.EdgeID
	seen := make(map[model.EdgeKey]struct{}, r.NumEdges())

	for _, e := range r.Edges() {
		key := e.Key()
		if _, ok := seen[key]; ok {
			dups = append(dups, e.ID)
			continue
		}
		seen[key] = struct{}{}
	}

	return dups
}

// DuplicateFaces returns the faces whose sorted edge list matches a face
// seen earlier in insertion order. Repeated edges within a face count, so
// [1 1 2] and [1 2] are different.
func DuplicateFaces(r store.Reader) []model.FaceID {
	if r == nil {
		return nil
	}

	var dups []model.FaceID
	seen := make(map[string]struct{}, r.NumFaces())

	for _, f := range r.Faces() {
		sig := faceSignature(f)
		if _, ok := seen[sig]; ok {
			dups = append(dups, f.ID)
			continue
		}
		seen[sig] = struct{}{}
	}

	return dups
}

// faceSignature joins the sorted edge ids with commas, e.g. "1,2,5,".
func faceSignature(f model.Face) string {
	ids := f.EdgeIDs()
	slices.Sort(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.FormatInt(int64(id), 10))
		b.WriteByte(',')
	}
	return b.String()
}
