package uncertainty

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/pvcircus/internal/circuserr"
)

// PercentUnits is the only unit an uncertainty bound may carry.
const PercentUnits = "%"

// Bound is one side of an uncertainty interval.
type Bound struct {
	Value float64
	Units string
}

// Bounds is an uncertainty interval. A symmetric uncertainty has Lo == Up.
type Bounds struct {
	Lo        Bound
	Up        Bound
	Symmetric bool
}

// Validate checks the units of b, reporting failures against key. Mismatched
// lower and upper units are reported before non-percent units.
func (b Bounds) Validate(key string) error {
	if b.Symmetric {
		if !isPercent(b.Lo.Units) {
			return circuserr.UncertaintyPercentUnits(key, b.Lo.Units)
		}
		return nil
	}
	if normalizeUnits(b.Lo.Units) != normalizeUnits(b.Up.Units) {
		return circuserr.UncertaintyBoundsUnits(key, b.Lo.Units, b.Up.Units)
	}
	if !isPercent(b.Lo.Units) {
		return circuserr.UncertaintyPercentUnits(key, b.Lo.Units)
	}
	return nil
}

// Parse recognises the uncertainty shapes a meta value can take:
//
//	{value = 2, units = "%"}                                   symmetric
//	{lo = {value = 1, units = "%"}, up = {value = 3, units = "%"}}  interval
//
// Bound and Bounds values are accepted as-is. Any map holding one of the keys
// value, units, lo or up is a bound; a missing units field parses as "" so
// Validate reports it. ok is false for anything else; err is set when the
// shape matches but is incomplete or a field has the wrong type.
func Parse(v any) (b Bounds, ok bool, err error) {
	switch t := v.(type) {
	case Bounds:
		return t, true, nil
	case Bound:
		return Bounds{Lo: t, Up: t, Symmetric: true}, true, nil
	case map[string]any:
		lo, hasLo := t["lo"]
		up, hasUp := t["up"]
		if hasLo || hasUp {
			if !hasLo {
				return Bounds{}, true, errors.New("uncertainty interval has up but no lo")
			}
			if !hasUp {
				return Bounds{}, true, errors.New("uncertainty interval has lo but no up")
			}
			loB, err := parseBound(lo)
			if err != nil {
				return Bounds{}, true, fmt.Errorf("lower bound: %w", err)
			}
			upB, err := parseBound(up)
			if err != nil {
				return Bounds{}, true, fmt.Errorf("upper bound: %w", err)
			}
			return Bounds{Lo: loB, Up: upB}, true, nil
		}
		_, hasValue := t["value"]
		_, hasUnits := t["units"]
		if hasValue || hasUnits {
			single, err := parseBound(t)
			if err != nil {
				return Bounds{}, true, err
			}
			return Bounds{Lo: single, Up: single, Symmetric: true}, true, nil
		}
	}
	return Bounds{}, false, nil
}

func parseBound(v any) (Bound, error) {
	if b, ok := v.(Bound); ok {
		return b, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return Bound{}, fmt.Errorf("expected an object with value and units, got %T", v)
	}
	var units string
	switch u := m["units"].(type) {
	case string:
		units = u
	case nil:
		// Missing units; Validate rejects "" as not percent.
	default:
		return Bound{}, fmt.Errorf("units must be a string, got %T", u)
	}
	var value float64
	switch n := m["value"].(type) {
	case float64:
		value = n
	case int:
		value = float64(n)
	case nil:
	default:
		return Bound{}, fmt.Errorf("value must be a number, got %T", n)
	}
	return Bound{Value: value, Units: units}, nil
}

func normalizeUnits(u string) string {
	u = strings.TrimSpace(u)
	if strings.EqualFold(u, "percent") {
		return PercentUnits
	}
	return u
}

func isPercent(u string) bool {
	return normalizeUnits(u) == PercentUnits
}
