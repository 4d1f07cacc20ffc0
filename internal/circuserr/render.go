package circuserr

import (
	"errors"
	"fmt"
	"strings"
)

// Render formats err for display at a process boundary. When err wraps an
// *Error, the returned message lists every offender on its own tab-indented
// line. Other errors render as err.Error().
func Render(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	return e.Message()
}

// Message returns the user-facing text for e.
func (e *Error) Message() string {
	switch e.Kind {
	case KindDuplicateKey:
		return "Duplicate data can't be registered:" + keyLines(e.Keys)
	case KindMismatchedMetaKeys:
		return "Meta must be a subset of registry:" + keyLines(e.Keys)
	case KindCircularDependency:
		msg := "Not a DAG. Cyclic keys:" + keyLines(e.Keys)
		for _, c := range e.Cycles {
			msg += "\ncycle: " + strings.Join(c, " <-> ")
		}
		return msg
	case KindKeyNotFound:
		return fmt.Sprintf("No data registered under %q.", e.Key)
	case KindUnnamedData:
		return fmt.Sprintf("Data read from %q without names.", e.File)
	case KindTimezone:
		return fmt.Sprintf("Incorrect timezone format: %q.", e.Value)
	case KindUncertaintyPercentUnits:
		return fmt.Sprintf("Uncertainty can only have units of percent (%%), but %q has units of %q instead.",
			e.Key, e.Units)
	case KindUncertaintyBoundsUnits:
		return fmt.Sprintf("Uncertainty lower and upper bounds must both have units of percent (%%), "+
			"but %q has units of %q for the lower bound and %q for the upper bound.",
			e.Key, e.LoUnits, e.UpUnits)
	case KindMixedTextNoMatch:
		return fmt.Sprintf("No match using regex %q with %q in %q.", e.Method, e.Pattern, e.Data)
	}
	return e.Error()
}

func keyLines(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return "\n\t" + strings.Join(keys, "\n\t")
}
