package config

import "time"

// Model is the unified, format-agnostic representation of everything read in
// one loading session.
type Model struct {
	Sources []*Source
	Entries []*Entry
}

// Source describes where a group of data came from.
type Source struct {
	Name     string
	Timezone string
	// Location is the parsed Timezone; nil when no timezone was given.
	Location *time.Location
	File     string
}

// Entry is one named datum as read from a file. Meta maps other entry names
// to an opaque description of the relation (typically an uncertainty bound).
type Entry struct {
	Key   string
	Value any
	Units string
	Meta  map[string]any
	File  string
}

// Merge appends other's sources and entries to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Sources = append(m.Sources, other.Sources...)
	m.Entries = append(m.Entries, other.Entries...)
}
