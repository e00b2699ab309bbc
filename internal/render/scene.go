// Package render turns a metro network and an optional route into a
// drawable scene and writes it as SVG.
package render

import (
	"cairometro/internal/metro"
)

// Title is drawn above every map.
const Title = "مسار المترو"

// Node is one station on the map.
type Node struct {
	ID          metro.StationID `json:"id"`
	Name        string          `json:"name"`
	Lines       []metro.LineID  `json:"lines"`
	Junction    bool            `json:"junction"`
	Highlighted bool            `json:"highlighted"`
}

// Edge is one track segment between neighboring stations.
type Edge struct {
	From        metro.StationID `json:"from"`
	To          metro.StationID `json:"to"`
	Line        metro.LineID    `json:"line"`
	Color       string          `json:"color"`
	Highlighted bool            `json:"highlighted"`
}

// Scene is everything a drawing needs: the whole network plus the subset
// belonging to the highlighted path.
type Scene struct {
	Title string            `json:"title"`
	Nodes []Node            `json:"nodes"`
	Edges []Edge            `json:"edges"`
	Path  []metro.StationID `json:"path"`
}

// NewScene builds the scene for network with path highlighted. An empty
// path highlights nothing.
func NewScene(network *metro.Network, path []metro.Station) Scene {
	onPath := make(map[metro.StationID]bool, len(path))
	pathEdges := make(map[[2]metro.StationID]bool, len(path))
	ids := make([]metro.StationID, 0, len(path))
	for i, s := range path {
		onPath[s.ID] = true
		ids = append(ids, s.ID)
		if i > 0 {
			pathEdges[edgeKey(path[i-1].ID, s.ID)] = true
		}
	}

	g := network.Graph()
	scene := Scene{Title: Title, Path: ids}

	for _, v := range g.Vertices() {
		id := metro.StationID(v)
		station, _ := network.StationByID(id)
		lines := network.LinesFor(id)
		scene.Nodes = append(scene.Nodes, Node{
			ID:          id,
			Name:        station.Name,
			Lines:       lines,
			Junction:    len(lines) > 1,
			Highlighted: onPath[id],
		})
	}

	for _, e := range g.Edges() {
		from, to := metro.StationID(e.From), metro.StationID(e.To)
		line := metro.LineID(e.Label)
		color := "#888888"
		if l, ok := network.Line(line); ok && l.Color != "" {
			color = l.Color
		}
		scene.Edges = append(scene.Edges, Edge{
			From:        from,
			To:          to,
			Line:        line,
			Color:       color,
			Highlighted: pathEdges[edgeKey(from, to)],
		})
	}

	return scene
}

func edgeKey(a, b metro.StationID) [2]metro.StationID {
	if a > b {
		a, b = b, a
	}
	return [2]metro.StationID{a, b}
}
