package circuserr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind discriminates the failures reported by this module.
type Kind int

const (
	KindUnknown Kind = iota
	KindDuplicateKey
	KindMismatchedMetaKeys
	KindCircularDependency
	KindKeyNotFound
	KindUnnamedData
	KindTimezone
	KindUncertaintyPercentUnits
	KindUncertaintyBoundsUnits
	KindMixedTextNoMatch
)

var (
	ErrDuplicateKey            = errors.New("duplicate key")
	ErrMismatchedMetaKeys      = errors.New("meta keys not in registry")
	ErrCircularDependency      = errors.New("circular dependency")
	ErrKeyNotFound             = errors.New("key not found")
	ErrUnnamedData             = errors.New("unnamed data")
	ErrTimezone                = errors.New("invalid timezone")
	ErrUncertaintyPercentUnits = errors.New("uncertainty not in percent")
	ErrUncertaintyBoundsUnits  = errors.New("uncertainty bounds units differ")
	ErrMixedTextNoMatch        = errors.New("no match in mixed text")
)

var sentinels = map[Kind]error{
	KindDuplicateKey:            ErrDuplicateKey,
	KindMismatchedMetaKeys:      ErrMismatchedMetaKeys,
	KindCircularDependency:      ErrCircularDependency,
	KindKeyNotFound:             ErrKeyNotFound,
	KindUnnamedData:             ErrUnnamedData,
	KindTimezone:                ErrTimezone,
	KindUncertaintyPercentUnits: ErrUncertaintyPercentUnits,
	KindUncertaintyBoundsUnits:  ErrUncertaintyBoundsUnits,
	KindMixedTextNoMatch:        ErrMixedTextNoMatch,
}

// String returns the sentinel text for the kind.
func (k Kind) String() string {
	if s, ok := sentinels[k]; ok {
		return s.Error()
	}
	return "unknown error"
}

// Error is the single error type of the taxonomy. Only the fields relevant to
// Kind are populated.
type Error struct {
	Kind Kind

	// Keys is the sorted offender set for DuplicateKey, MismatchedMetaKeys
	// and CircularDependency.
	Keys []string
	// Cycles lists each strongly connected component that forms a cycle.
	// Only set for CircularDependency.
	Cycles [][]string

	// Key is the single key for KeyNotFound and the uncertainty kinds.
	Key string

	File  string // UnnamedData
	Value string // Timezone

	Units   string // UncertaintyPercentUnits
	LoUnits string // UncertaintyBoundsUnits
	UpUnits string // UncertaintyBoundsUnits

	Method  string // MixedTextNoMatch
	Pattern string
	Data    string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case KindDuplicateKey, KindMismatchedMetaKeys, KindCircularDependency:
		return fmt.Sprintf("%s: %s", e.Kind, strings.Join(e.Keys, ", "))
	case KindKeyNotFound:
		return fmt.Sprintf("%s: %q", e.Kind, e.Key)
	case KindUnnamedData:
		return fmt.Sprintf("%s in %q", e.Kind, e.File)
	case KindTimezone:
		return fmt.Sprintf("%s: %q", e.Kind, e.Value)
	case KindUncertaintyPercentUnits:
		return fmt.Sprintf("%s: %q has units %q", e.Kind, e.Key, e.Units)
	case KindUncertaintyBoundsUnits:
		return fmt.Sprintf("%s: %q has lower %q and upper %q", e.Kind, e.Key, e.LoUnits, e.UpUnits)
	case KindMixedTextNoMatch:
		return fmt.Sprintf("%s: %s(%q)", e.Kind, e.Method, e.Pattern)
	}
	return e.Kind.String()
}

// Unwrap exposes the kind sentinel to errors.Is.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return sentinels[e.Kind]
}

// DuplicateKey reports keys that were registered more than once.
func DuplicateKey(keys []string) *Error {
	return &Error{Kind: KindDuplicateKey, Keys: sortedCopy(keys)}
}

// MismatchedMetaKeys reports meta keys that do not resolve against the registry.
func MismatchedMetaKeys(keys []string) *Error {
	return &Error{Kind: KindMismatchedMetaKeys, Keys: sortedCopy(keys)}
}

// CircularDependency reports every key that sits in, or is blocked by, a cycle.
func CircularDependency(keys []string, cycles [][]string) *Error {
	cs := make([][]string, 0, len(cycles))
	for _, c := range cycles {
		if len(c) == 0 {
			continue
		}
		cs = append(cs, sortedCopy(c))
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i][0] < cs[j][0] })
	return &Error{Kind: KindCircularDependency, Keys: sortedCopy(keys), Cycles: cs}
}

func KeyNotFound(key string) *Error {
	return &Error{Kind: KindKeyNotFound, Key: key}
}

func UnnamedData(file string) *Error {
	return &Error{Kind: KindUnnamedData, File: file}
}

func Timezone(value string) *Error {
	return &Error{Kind: KindTimezone, Value: value}
}

func UncertaintyPercentUnits(key, units string) *Error {
	return &Error{Kind: KindUncertaintyPercentUnits, Key: key, Units: units}
}

func UncertaintyBoundsUnits(key, loUnits, upUnits string) *Error {
	return &Error{Kind: KindUncertaintyBoundsUnits, Key: key, LoUnits: loUnits, UpUnits: upUnits}
}

// MixedTextNoMatch is raised by text extractors that find no match for a
// pattern in the data they were given.
func MixedTextNoMatch(method, pattern, data string) *Error {
	return &Error{Kind: KindMixedTextNoMatch, Method: method, Pattern: pattern, Data: data}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func sortedCopy(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Strings(out)
	return out
}
