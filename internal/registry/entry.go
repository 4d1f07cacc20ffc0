package registry

import "sort"

// Entry is a registered (key, value, meta) triple. Every key of Meta must name
// another registered entry; the meta value describes the relation (for
// example a percent uncertainty bound) and is opaque to the registry.
type Entry struct {
	Key   string
	Value any
	Meta  map[string]any
}

// MetaKeys returns the keys referenced by the entry's metadata, sorted.
func (e Entry) MetaKeys() []string {
	keys := make([]string, 0, len(e.Meta))
	for k := range e.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// clone copies the meta map so the store never aliases caller memory.
func (e Entry) clone() Entry {
	if e.Meta == nil {
		return e
	}
	meta := make(map[string]any, len(e.Meta))
	for k, v := range e.Meta {
		meta[k] = v
	}
	e.Meta = meta
	return e
}
