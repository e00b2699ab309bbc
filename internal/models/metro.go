package models

import (
	"cairometro/internal/metro"
	"cairometro/internal/planner"
)

type Station struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	LineIDs  []string `json:"lineIds"`
	Junction bool     `json:"junction"`
}

type Line struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Color      string   `json:"color"`
	StationIDs []string `json:"stationIds"`
}

type Segment struct {
	LineID     string   `json:"lineId"`
	LineName   string   `json:"lineName"`
	Color      string   `json:"color"`
	StationIDs []string `json:"stationIds"`
}

// Route is the JSON rendering of a planned route.
type Route struct {
	From        string    `json:"from"`
	To          string    `json:"to"`
	StationIDs  []string  `json:"stationIds"`
	Segments    []Segment `json:"segments"`
	Description string    `json:"description"`
	Stops       int       `json:"stops"`
	Transfers   int       `json:"transfers"`
	Direct      bool      `json:"direct"`
	SameStation bool      `json:"sameStation"`
}

func NewStation(network *metro.Network, s metro.Station) Station {
	ids := network.LinesFor(s.ID)
	lineIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		lineIDs = append(lineIDs, string(id))
	}
	return Station{
		ID:       string(s.ID),
		Name:     s.Name,
		LineIDs:  lineIDs,
		Junction: len(ids) > 1,
	}
}

func NewLine(line metro.Line) Line {
	return Line{
		ID:         string(line.ID),
		Name:       line.Name,
		Color:      line.Color,
		StationIDs: stationIDs(line.Stations),
	}
}

// NewRoute converts a planner result. The description is passed through
// untouched so clients can display it verbatim.
func NewRoute(route *planner.Route) Route {
	m := Route{
		StationIDs:  stationIDs(route.Stations),
		Segments:    make([]Segment, 0, len(route.Segments)),
		Description: route.Description,
		Stops:       route.Stops(),
		Transfers:   route.Transfers(),
		Direct:      route.Direct,
		SameStation: route.SameStation,
	}
	if n := len(route.Stations); n > 0 {
		m.From = string(route.Stations[0].ID)
		m.To = string(route.Stations[n-1].ID)
	}
	for _, seg := range route.Segments {
		m.Segments = append(m.Segments, Segment{
			LineID:     string(seg.Line),
			LineName:   seg.LineName,
			Color:      seg.Color,
			StationIDs: stationIDs(seg.Stations),
		})
	}
	return m
}

// RouteLineIDs lists the lines a route rides, in riding order.
func RouteLineIDs(route *planner.Route) []metro.LineID {
	ids := make([]metro.LineID, 0, len(route.Segments))
	for _, seg := range route.Segments {
		ids = append(ids, seg.Line)
	}
	return ids
}

func stationIDs(stations []metro.Station) []string {
	ids := make([]string, 0, len(stations))
	for _, s := range stations {
		ids = append(ids, string(s.ID))
	}
	return ids
}
