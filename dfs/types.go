// Package dfs defines options, results and sentinel errors for depth-first
// traversal and component labeling.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex is outside [0, V).
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id int) error

	// MaxDepth, if non-negative, stops expansion beyond the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns DFSOptions with no hook and no depth limit.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		OnVisit:  nil,
		MaxDepth: -1,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// DFSResult captures the outcome of a single-source traversal.
// Slices are indexed by vertex id.
type DFSResult struct {
	// Order records vertices in discovery (pre-order) sequence.
	Order []int

	// Depth is the tree depth of each visited vertex, -1 if unvisited.
	Depth []int

	// Parent is the vertex each visited vertex was discovered from,
	// -1 for the start vertex and for unvisited vertices.
	Parent []int

	// Visited flags vertices reached during the traversal.
	Visited []bool
}

// Labeling is a connected-component partition of a graph's vertices.
type Labeling struct {
	// Count is the number of components.
	Count int

	// Labels maps vertex id to a component id in [0, Count).
	Labels []int

	// Order records vertices in discovery sequence across all roots.
	Order []int
}

// Same reports whether u and v lie in the same component.
func (l *Labeling) Same(u, v int) bool { return l.Labels[u] == l.Labels[v] }

// Sizes returns the number of vertices carrying each label.
func (l *Labeling) Sizes() []int {
	out := make([]int, l.Count)
	for _, c := range l.Labels {
		out[c]++
	}

	return out
}

// Members returns the vertex ids carrying label c in ascending order,
// or nil if c is out of range.
func (l *Labeling) Members(c int) []int {
	if c < 0 || c >= l.Count {
		return nil
	}
	var out []int
	for v, lc := range l.Labels {
		if lc == c {
			out = append(out, v)
		}
	}

	return out
}
