package dfs

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// frame is one level of the explicit traversal stack.
type frame struct {
	id    int   // vertex being expanded
	depth int   // its depth in the current tree
	nbrs  []int // snapshot of its neighbors
	next  int   // cursor into nbrs
}

// walker encapsulates state shared by DFS and Components.
type walker struct {
	graph   core.Graph
	opts    DFSOptions
	visited []bool
	stack   []frame

	// onDiscover records per-vertex results; parent is -1 for roots.
	onDiscover func(id, parent, depth int)
}

// DFS performs a depth-first traversal of g from start.
// Returns the partially filled result together with the error if a hook aborts.
func DFS(g core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph and start vertex
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("dfs: start %d: %w", start, ErrStartVertexNotFound)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   filled(n, -1),
		Parent:  filled(n, -1),
		Visited: make([]bool, n),
	}
	w := &walker{graph: g, opts: dopts, visited: res.Visited}
	w.onDiscover = func(id, parent, depth int) {
		res.Order = append(res.Order, id)
		res.Depth[id] = depth
		res.Parent[id] = parent
	}

	// 4. Traverse the single tree rooted at start
	if err := w.traverse(start); err != nil {
		return res, err
	}

	return res, nil
}

// Components labels the connected components of g.
// Vertices are scanned in ascending id; each unvisited vertex roots a new
// depth-first traversal whose reachable set receives the next label.
//
// Complexity: O(V + E) neighbor visits.
func Components(g core.Graph) (*Labeling, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	lab := &Labeling{
		Labels: make([]int, n),
		Order:  make([]int, 0, n),
	}
	w := &walker{graph: g, opts: DefaultOptions(), visited: make([]bool, n)}
	w.onDiscover = func(id, _, _ int) {
		lab.Labels[id] = lab.Count
		lab.Order = append(lab.Order, id)
	}

	for u := 0; u < n; u++ {
		if w.visited[u] {
			continue
		}
		if err := w.traverse(u); err != nil {
			return nil, err
		}
		lab.Count++
	}

	return lab, nil
}

// traverse visits every vertex reachable from root that is not yet visited.
// Neighbors are expanded in g.Neighbors order, one at a time, so the
// discovery sequence equals the recursive formulation.
func (w *walker) traverse(root int) error {
	if err := w.discover(root, -1, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		f := &w.stack[top]
		if f.next == len(f.nbrs) {
			w.stack = w.stack[:top]
			continue
		}
		nid := f.nbrs[f.next]
		f.next++
		if w.visited[nid] {
			continue
		}
		if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
			continue
		}
		// discover may grow w.stack; f must not be used after this call.
		if err := w.discover(nid, f.id, f.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks id visited, runs the hook and pushes its frame.
func (w *walker) discover(id, parent, depth int) error {
	w.visited[id] = true
	w.onDiscover(id, parent, depth)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.stack = w.stack[:0]

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	nbrs, err := w.graph.Neighbors(id)
	if err != nil {
		w.stack = w.stack[:0]

		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: depth, nbrs: nbrs})

	return nil
}

// filled returns a slice of n copies of v.
func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
