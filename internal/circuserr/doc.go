// Package circuserr defines the error taxonomy shared by the registry, the
// dependency resolver, and the data loaders.
//
// Every failure is a single *Error value with a Kind discriminant and the
// payload that kind carries (a sorted key set, a file name, a unit string).
// The payload is data, not presentation: Error() gives a one-line summary
// suitable for wrapping, while Render produces the multi-line message that a
// command line or loader shows to a user, listing every offending key.
//
// Each kind also has a sentinel so callers can branch with errors.Is through
// any amount of fmt.Errorf wrapping:
//
//	if errors.Is(err, circuserr.ErrDuplicateKey) {
//	    var e *circuserr.Error
//	    errors.As(err, &e)
//	    // e.Keys holds every duplicate key
//	}
package circuserr
