package registry

import (
	"sort"

	"github.com/vk/pvcircus/internal/circuserr"
)

// validateBatch runs every admission check against the current store without
// touching it. Callers must hold r.mu.
func (r *Registry) validateBatch(batch []Entry) error {
	inBatch := make(map[string]struct{}, len(batch))
	duplicates := make(map[string]struct{})

	for _, e := range batch {
		if e.Key == "" {
			return ErrEmptyKey
		}
		if _, exists := r.entries[e.Key]; exists {
			duplicates[e.Key] = struct{}{}
		}
		if _, seen := inBatch[e.Key]; seen {
			duplicates[e.Key] = struct{}{}
		}
		inBatch[e.Key] = struct{}{}
	}
	if len(duplicates) > 0 {
		return circuserr.DuplicateKey(setToSlice(duplicates))
	}

	// Meta may reference keys admitted earlier or anywhere in this batch.
	unresolved := make(map[string]struct{})
	for _, e := range batch {
		for k := range e.Meta {
			if _, ok := r.entries[k]; ok {
				continue
			}
			if _, ok := inBatch[k]; ok {
				continue
			}
			unresolved[k] = struct{}{}
		}
	}
	if len(unresolved) > 0 {
		return circuserr.MismatchedMetaKeys(setToSlice(unresolved))
	}

	return nil
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
