// Package graph is a small undirected graph keyed by string vertex ids,
// with labelled edges and an unweighted breadth-first shortest path.
//
// Neighbors are kept in insertion order so traversals, and therefore the
// paths they produce, are deterministic for a given construction order.
package graph

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEmptyVertexID is returned when a vertex id is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex id is empty")

	// ErrSelfLoop is returned when an edge would connect a vertex to itself.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrVertexNotFound is returned when a queried vertex is absent.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNoPath is returned when the target is unreachable from the source.
	ErrNoPath = errors.New("graph: no path between vertices")
)

// Edge is an undirected edge as it was first inserted.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is an undirected, unweighted graph whose edges carry a string label.
// Re-adding an existing edge overwrites its label.
type Graph struct {
	mu        sync.RWMutex
	order     []string
	adjacency map[string][]string
	labels    map[edgeKey]string
	edges     []edgeKey
}

// edgeKey identifies an undirected edge independent of direction.
type edgeKey struct {
	a, b string
}

func newEdgeKey(u, v string) edgeKey {
	if u > v {
		u, v = v, u
	}
	return edgeKey{a: u, b: v}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		labels:    make(map[edgeKey]string),
	}
}

// AddVertex inserts id if it is not already present.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// AddEdge connects from and to, creating missing vertices. When the edge
// already exists only its label is replaced.
func (g *Graph) AddEdge(from, to, label string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	key := newEdgeKey(from, to)
	if _, exists := g.labels[key]; !exists {
		g.adjacency[from] = append(g.adjacency[from], to)
		g.adjacency[to] = append(g.adjacency[to], from)
		g.edges = append(g.edges, edgeKey{a: from, b: to})
	}
	g.labels[key] = label
	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]
	return ok
}

// Label returns the label of the edge between u and v.
func (g *Graph) Label(u, v string) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	label, ok := g.labels[newEdgeKey(u, v)]
	return label, ok
}

// Neighbors returns the vertices adjacent to id in insertion order.
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)
	return out, nil
}

// Vertices returns every vertex in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns each undirected edge once, in insertion order, oriented
// the way it was first added.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, Edge{From: e.a, To: e.b, Label: g.labels[newEdgeKey(e.a, e.b)]})
	}
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}
