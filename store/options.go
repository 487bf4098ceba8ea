package store

// Options configures a Store.
type Options struct {
	// VertexCapacity pre-sizes vertex storage.
	VertexCapacity int
	// EdgeCapacity pre-sizes edge storage.
	EdgeCapacity int
	// FaceCapacity pre-sizes face storage.
	FaceCapacity int
}

// Option configures a Store.
type Option func(*Options)

// WithCapacity pre-sizes storage for the expected entity counts.
// It is a performance hint only; negative values are treated as zero.
func WithCapacity(vertices, edges, faces int) Option {
	return func(o *Options) {
		o.VertexCapacity = max(vertices, 0)
		o.EdgeCapacity = max(edges, 0)
		o.FaceCapacity = max(faces, 0)
	}
}
