// Package metro models a metro network: lines, the stations they serve and
// the undirected graph that links consecutive stations of every line.
package metro

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cairometro/internal/graph"
)

// ErrInvalidLine is returned by BuildNetwork for malformed line data.
var ErrInvalidLine = errors.New("metro: invalid line definition")

// Network is the immutable station graph built from a set of lines. It is
// safe for concurrent readers.
type Network struct {
	graph        *graph.Graph
	lines        []Line
	lineIndex    map[LineID]int
	stations     map[StationID]Station
	sorted       []Station
	stationLines map[StationID][]LineID
	positions    map[LineID]map[StationID]int
}

// BuildNetwork links every consecutive pair of stations of each line with an
// edge labelled by the line id. A station name used by several lines becomes
// a single junction vertex. When two lines share an adjacent pair the later
// line's label is kept.
func BuildNetwork(defs []LineDefinition) (*Network, error) {
	n := &Network{
		graph:        graph.New(),
		lineIndex:    make(map[LineID]int, len(defs)),
		stations:     make(map[StationID]Station),
		stationLines: make(map[StationID][]LineID),
		positions:    make(map[LineID]map[StationID]int, len(defs)),
	}

	for _, def := range defs {
		if err := n.addLine(def); err != nil {
			return nil, err
		}
	}

	n.sorted = make([]Station, 0, len(n.stations))
	for _, s := range n.stations {
		n.sorted = append(n.sorted, s)
	}
	c := collate.New(language.Arabic)
	sort.SliceStable(n.sorted, func(i, j int) bool {
		if cmp := c.CompareString(n.sorted[i].Name, n.sorted[j].Name); cmp != 0 {
			return cmp < 0
		}
		return n.sorted[i].ID < n.sorted[j].ID
	})

	return n, nil
}

func (n *Network) addLine(def LineDefinition) error {
	if def.ID == "" {
		return fmt.Errorf("%w: empty line id", ErrInvalidLine)
	}
	if _, dup := n.lineIndex[def.ID]; dup {
		return fmt.Errorf("%w: duplicate line id %q", ErrInvalidLine, def.ID)
	}
	if len(def.Stations) == 0 {
		return fmt.Errorf("%w: line %q has no stations", ErrInvalidLine, def.ID)
	}

	name := def.Name
	if name == "" {
		name = string(def.ID)
	}
	line := Line{ID: def.ID, Name: name, Color: def.Color, Stations: make([]Station, 0, len(def.Stations))}
	pos := make(map[StationID]int, len(def.Stations))

	for i, raw := range def.Stations {
		id := NewStationID(raw)
		if id == "" {
			return fmt.Errorf("%w: line %q has an empty station name at position %d", ErrInvalidLine, def.ID, i)
		}

		station, known := n.stations[id]
		if !known {
			station = Station{ID: id, Name: string(id)}
			n.stations[id] = station
			if err := n.graph.AddVertex(string(id)); err != nil {
				return fmt.Errorf("line %q: %w", def.ID, err)
			}
		}
		if _, seen := pos[id]; !seen {
			pos[id] = i
			n.stationLines[id] = append(n.stationLines[id], def.ID)
		}
		line.Stations = append(line.Stations, station)

		if i == 0 {
			continue
		}
		// A station repeated back to back adds no edge.
		if prev := line.Stations[i-1].ID; prev != id {
			if err := n.graph.AddEdge(string(prev), string(id), string(def.ID)); err != nil {
				return fmt.Errorf("%w: line %q: %v", ErrInvalidLine, def.ID, err)
			}
		}
	}

	n.lineIndex[def.ID] = len(n.lines)
	n.lines = append(n.lines, line)
	n.positions[def.ID] = pos
	return nil
}

// Graph exposes the underlying station graph. Vertex ids are StationIDs and
// edge labels are LineIDs. Callers must not mutate it.
func (n *Network) Graph() *graph.Graph {
	return n.graph
}

// AllStations returns every station sorted by Arabic collation.
func (n *Network) AllStations() []Station {
	out := make([]Station, len(n.sorted))
	copy(out, n.sorted)
	return out
}

// Lines returns the lines in declaration order.
func (n *Network) Lines() []Line {
	out := make([]Line, len(n.lines))
	copy(out, n.lines)
	return out
}

// Line looks up a line by id.
func (n *Network) Line(id LineID) (Line, bool) {
	i, ok := n.lineIndex[id]
	if !ok {
		return Line{}, false
	}
	return n.lines[i], true
}

// Station resolves any spelling of a station name.
func (n *Network) Station(name string) (Station, bool) {
	s, ok := n.stations[NewStationID(name)]
	return s, ok
}

// StationByID resolves an interned id.
func (n *Network) StationByID(id StationID) (Station, bool) {
	s, ok := n.stations[id]
	return s, ok
}

// LinesFor returns the lines serving a station, in declaration order.
func (n *Network) LinesFor(id StationID) []LineID {
	lines := n.stationLines[id]
	out := make([]LineID, len(lines))
	copy(out, lines)
	return out
}

// Junctions returns the stations served by more than one line, in the same
// order as AllStations.
func (n *Network) Junctions() []Station {
	var out []Station
	for _, s := range n.sorted {
		if len(n.stationLines[s.ID]) > 1 {
			out = append(out, s)
		}
	}
	return out
}

// Position returns the index of a station on a line.
func (n *Network) Position(line LineID, id StationID) (int, bool) {
	pos, ok := n.positions[line]
	if !ok {
		return 0, false
	}
	i, ok := pos[id]
	return i, ok
}

// EdgeLine returns the line label of the edge between a and b.
func (n *Network) EdgeLine(a, b StationID) (LineID, bool) {
	label, ok := n.graph.Label(string(a), string(b))
	return LineID(label), ok
}

// StationCount returns the number of distinct stations.
func (n *Network) StationCount() int {
	return len(n.stations)
}
