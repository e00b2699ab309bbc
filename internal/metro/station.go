package metro

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StationID is the interned key of a station. Two names that differ only
// in Unicode composition or whitespace share one StationID.
type StationID string

// NewStationID normalizes name into its StationID.
func NewStationID(name string) StationID {
	return StationID(strings.Join(strings.Fields(norm.NFC.String(name)), " "))
}

// Station is a stop on one or more lines. Name is the normalized label that
// gets displayed.
type Station struct {
	ID   StationID `json:"id"`
	Name string    `json:"name"`
}

// LineID identifies a line.
type LineID string

// Line is an ordered sequence of stations; neighbors in the slice are
// physically adjacent.
type Line struct {
	ID       LineID    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Stations []Station `json:"stations"`
}

// LineDefinition is the static input for one line.
type LineDefinition struct {
	ID       LineID
	Name     string
	Color    string
	Stations []string
}
