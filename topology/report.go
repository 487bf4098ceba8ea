package topology

import (
	"fmt"
	"strings"

	"github.com/hupe1980/brepgo/model"
)

// Report collects the results of all checks.
type Report struct {
	DuplicateEdges        []model.EdgeID
	DuplicateFaces        []model.FaceID
	NormalInconsistencies []model.FaceID

	OrphanVertices []model.VertexID
	UnusedEdges    []model.EdgeID
}

// HasErrors reports whether any duplicate or normal inconsistency was found.
func (r Report) HasErrors() bool {
	return len(r.DuplicateEdges) > 0 ||
		len(r.DuplicateFaces) > 0 ||
		len(r.NormalInconsistencies) > 0
}

// HasWarnings reports whether orphan vertices or unused edges were found.
func (r Report) HasWarnings() bool {
	return len(r.OrphanVertices) > 0 || len(r.UnusedEdges) > 0
}

// ErrorCount returns the total number of reported errors.
func (r Report) ErrorCount() int {
	return len(r.DuplicateEdges) + len(r.DuplicateFaces) + len(r.NormalInconsistencies)
}

// LogAttrs returns the non-empty categories as slog key/value pairs.
func (r Report) LogAttrs() []any {
	var attrs []any
	add := func(key string, n int, ids any) {
		if n > 0 {
			attrs = append(attrs, key, ids)
		}
	}
	add("duplicate_edges", len(r.DuplicateEdges), r.DuplicateEdges)
	add("duplicate_faces", len(r.DuplicateFaces), r.DuplicateFaces)
	add("normal_inconsistencies", len(r.NormalInconsistencies), r.NormalInconsistencies)
	add("orphan_vertices", len(r.OrphanVertices), r.OrphanVertices)
	add("unused_edges", len(r.UnusedEdges), r.UnusedEdges)
	return attrs
}

// String renders one line per non-empty category, or a single line saying
// that nothing was found.
func (r Report) String() string {
	var b strings.Builder
	line := func(label string, n int, ids any) {
		if n > 0 {
			fmt.Fprintf(&b, "%s: %v\n", label, ids)
		}
	}
	line("duplicate edges", len(r.DuplicateEdges), r.DuplicateEdges)
	line("duplicate faces", len(r.DuplicateFaces), r.DuplicateFaces)
	line("inconsistent normals", len(r.NormalInconsistencies), r.NormalInconsistencies)
	line("orphan vertices", len(r.OrphanVertices), r.OrphanVertices)
	line("unused edges", len(r.UnusedEdges), r.UnusedEdges)

	if b.Len() == 0 {
		return "no topology errors\n"
	}
	return b.String()
}
