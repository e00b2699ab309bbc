package graph

import "fmt"

// walker holds the mutable state of one breadth-first search.
type walker struct {
	graph   *Graph
	queue   []string
	visited map[string]bool
	parent  map[string]string
	depth   map[string]int
}

func newWalker(g *Graph, start string) *walker {
	n := g.VertexCount()
	w := &walker{
		graph:   g,
		queue:   make([]string, 0, n),
		visited: make(map[string]bool, n),
		parent:  make(map[string]string, n),
		depth:   make(map[string]int, n),
	}
	w.enqueue(start, 0, "")
	return w
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.depth[id] = d
	if parent != "" {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, id)
}

// run explores until the queue drains or stop returns true for a dequeued
// vertex.
func (w *walker) run(stop func(id string) bool) error {
	for len(w.queue) > 0 {
		id := w.queue[0]
		w.queue = w.queue[1:]
		if stop != nil && stop(id) {
			return nil
		}

		nbrs, err := w.graph.Neighbors(id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, w.depth[id]+1, id)
			}
		}
	}
	return nil
}

// ShortestPath returns a path with the fewest edges from `from` to `to`,
// both endpoints included. Among equally short paths the one reached first
// in neighbor insertion order wins.
func ShortestPath(g *Graph, from, to string) ([]string, error) {
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	if from == to {
		return []string{from}, nil
	}

	w := newWalker(g, from)
	if err := w.run(func(id string) bool { return id == to }); err != nil {
		return nil, err
	}
	if !w.visited[to] {
		return nil, fmt.Errorf("%w: %q -> %q", ErrNoPath, from, to)
	}

	path := make([]string, w.depth[to]+1)
	for i, cur := len(path)-1, to; i >= 0; i-- {
		path[i] = cur
		cur = w.parent[cur]
	}
	return path, nil
}

// Distances returns the hop count from `from` to every reachable vertex.
func Distances(g *Graph, from string) (map[string]int, error) {
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	w := newWalker(g, from)
	if err := w.run(nil); err != nil {
		return nil, err
	}
	return w.depth, nil
}
