// Package planner finds routes between two stations of a metro.Network and
// describes them as per-line riding instructions.
package planner

import (
	"errors"
	"fmt"
	"strings"

	"cairometro/internal/graph"
	"cairometro/internal/metro"
)

const (
	rideMarker    = "🚇 اركب"
	stopSeparator = " ← "
)

// Segment is a maximal run of consecutive stops on one line. Stations runs
// from the boarding station to the alighting station, both included.
type Segment struct {
	Line     metro.LineID
	LineName string
	Color    string
	Stations []metro.Station
}

// Route is the result of a successful query.
type Route struct {
	Stations    []metro.Station
	Segments    []Segment
	Description string

	// Direct is set when a single line covers both endpoints.
	Direct      bool
	SameStation bool
}

// Stops is the number of hops along the route.
func (r *Route) Stops() int {
	if len(r.Stations) == 0 {
		return 0
	}
	return len(r.Stations) - 1
}

// Transfers is the number of line changes along the route.
func (r *Route) Transfers() int {
	if len(r.Segments) == 0 {
		return 0
	}
	return len(r.Segments) - 1
}

// Planner answers route queries over a fixed network. It holds no mutable
// state, so one Planner can serve concurrent callers.
type Planner struct {
	network *metro.Network
}

// New returns a Planner over network.
func New(network *metro.Network) *Planner {
	return &Planner{network: network}
}

// Network returns the network the planner queries.
func (p *Planner) Network() *metro.Network {
	return p.network
}

// Stations lists every station that can be used as an endpoint.
func (p *Planner) Stations() []metro.Station {
	return p.network.AllStations()
}

// FindPath plans a route from start to end. Unknown names fail with an
// *UnknownStationError before any search; same-station queries succeed with
// a one-stop route; a single line covering both ends is ridden directly;
// otherwise the route with the fewest hops is used.
func (p *Planner) FindPath(start, end string) (*Route, error) {
	from, ok := p.network.Station(start)
	if !ok {
		return nil, &UnknownStationError{Name: start}
	}
	to, ok := p.network.Station(end)
	if !ok {
		return nil, &UnknownStationError{Name: end}
	}

	if from.ID == to.ID {
		return &Route{
			Stations:    []metro.Station{from},
			Description: MessageSameStation,
			SameStation: true,
		}, nil
	}

	if route, ok := p.directRoute(from, to); ok {
		return route, nil
	}
	return p.shortestRoute(from, to)
}

// directRoute rides the first line, in declaration order, that serves both
// stations.
func (p *Planner) directRoute(from, to metro.Station) (*Route, bool) {
	for _, line := range p.network.Lines() {
		i, okFrom := p.network.Position(line.ID, from.ID)
		j, okTo := p.network.Position(line.ID, to.ID)
		if !okFrom || !okTo {
			continue
		}

		var path []metro.Station
		if i < j {
			path = append(path, line.Stations[i:j+1]...)
		} else {
			path = make([]metro.Station, 0, i-j+1)
			for k := i; k >= j; k-- {
				path = append(path, line.Stations[k])
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s من %s إلى %s:\n", rideMarker, line.Name, from.Name, to.Name)
		b.WriteString(joinNames(path[1:]))

		return &Route{
			Stations: path,
			Segments: []Segment{{
				Line:     line.ID,
				LineName: line.Name,
				Color:    line.Color,
				Stations: path,
			}},
			Description: b.String(),
			Direct:      true,
		}, true
	}
	return nil, false
}

func (p *Planner) shortestRoute(from, to metro.Station) (*Route, error) {
	ids, err := graph.ShortestPath(p.network.Graph(), string(from.ID), string(to.ID))
	if errors.Is(err, graph.ErrNoPath) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, from.Name, to.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("shortest path %s -> %s: %w", from.Name, to.Name, err)
	}

	path := make([]metro.Station, 0, len(ids))
	for _, id := range ids {
		s, _ := p.network.StationByID(metro.StationID(id))
		path = append(path, s)
	}

	segments, err := p.segments(path)
	if err != nil {
		return nil, err
	}
	return &Route{
		Stations:    path,
		Segments:    segments,
		Description: describe(segments),
	}, nil
}

// segments splits path wherever the line label of consecutive edges
// changes.
func (p *Planner) segments(path []metro.Station) ([]Segment, error) {
	var segments []Segment
	for i := 0; i < len(path)-1; i++ {
		lineID, ok := p.network.EdgeLine(path[i].ID, path[i+1].ID)
		if !ok {
			return nil, fmt.Errorf("no edge between %s and %s", path[i].Name, path[i+1].Name)
		}

		if n := len(segments); n > 0 && segments[n-1].Line == lineID {
			segments[n-1].Stations = append(segments[n-1].Stations, path[i+1])
			continue
		}

		seg := Segment{Line: lineID, LineName: string(lineID), Stations: []metro.Station{path[i], path[i+1]}}
		if line, ok := p.network.Line(lineID); ok {
			seg.LineName = line.Name
			seg.Color = line.Color
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func describe(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, fmt.Sprintf("%s %s من %s%s%s",
			rideMarker, seg.LineName, seg.Stations[0].Name, stopSeparator, joinNames(seg.Stations[1:])))
	}
	return strings.Join(parts, "\n")
}

func joinNames(stations []metro.Station) string {
	names := make([]string, len(stations))
	for i, s := range stations {
		names[i] = s.Name
	}
	return strings.Join(names, stopSeparator)
}
