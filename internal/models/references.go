package models

import "cairometro/internal/metro"

// LineReference is the compact form of a line used in references.
type LineReference struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	Lines []LineReference `json:"lines"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Lines: []LineReference{},
	}
}

// NewLineReference builds the reference entry for line.
func NewLineReference(line metro.Line) LineReference {
	return LineReference{ID: string(line.ID), Name: line.Name, Color: line.Color}
}

// ReferencesFor collects the lines named in ids, in network declaration
// order, skipping unknown and repeated ids.
func ReferencesFor(network *metro.Network, ids []metro.LineID) ReferencesModel {
	refs := NewEmptyReferences()
	want := make(map[metro.LineID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, line := range network.Lines() {
		if want[line.ID] {
			refs.Lines = append(refs.Lines, NewLineReference(line))
		}
	}
	return refs
}
