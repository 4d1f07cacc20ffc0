package circuserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors_SortAndCopy(t *testing.T) {
	in := []string{"c", "a", "b"}
	err := DuplicateKey(in)

	assert.Equal(t, []string{"a", "b", "c"}, err.Keys)
	assert.Equal(t, []string{"c", "a", "b"}, in, "input slice must not be reordered")
}

func TestErrorsIs_ThroughWrapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"duplicate", DuplicateKey([]string{"a"}), ErrDuplicateKey, KindDuplicateKey},
		{"mismatch", MismatchedMetaKeys([]string{"z"}), ErrMismatchedMetaKeys, KindMismatchedMetaKeys},
		{"cycle", CircularDependency([]string{"a", "b"}, nil), ErrCircularDependency, KindCircularDependency},
		{"not found", KeyNotFound("x"), ErrKeyNotFound, KindKeyNotFound},
		{"unnamed", UnnamedData("f.hcl"), ErrUnnamedData, KindUnnamedData},
		{"timezone", Timezone("bogus"), ErrTimezone, KindTimezone},
		{"percent", UncertaintyPercentUnits("k", "W"), ErrUncertaintyPercentUnits, KindUncertaintyPercentUnits},
		{"bounds", UncertaintyBoundsUnits("k", "%", "W"), ErrUncertaintyBoundsUnits, KindUncertaintyBoundsUnits},
		{"mixed text", MixedTextNoMatch("search", "x+", "abc"), ErrMixedTextNoMatch, KindMixedTextNoMatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("loading session: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.sentinel)
			assert.Equal(t, tc.kind, KindOf(wrapped))

			var e *Error
			require.True(t, errors.As(wrapped, &e))
			assert.Equal(t, tc.kind, e.Kind)
		})
	}
}

func TestKindOf_ForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestRender(t *testing.T) {
	t.Run("lists every duplicate key", func(t *testing.T) {
		err := fmt.Errorf("register: %w", DuplicateKey([]string{"b", "a"}))
		assert.Equal(t, "Duplicate data can't be registered:\n\ta\n\tb", Render(err))
	})

	t.Run("lists every mismatched meta key", func(t *testing.T) {
		assert.Equal(t, "Meta must be a subset of registry:\n\tx\n\ty",
			Render(MismatchedMetaKeys([]string{"y", "x"})))
	})

	t.Run("cycle includes components", func(t *testing.T) {
		err := CircularDependency([]string{"c", "a", "b"}, [][]string{{"b", "a"}})
		assert.Equal(t, "Not a DAG. Cyclic keys:\n\ta\n\tb\n\tc\ncycle: a <-> b", Render(err))
	})

	t.Run("uncertainty units", func(t *testing.T) {
		assert.Equal(t,
			`Uncertainty can only have units of percent (%), but "irr" has units of "W/m**2" instead.`,
			Render(UncertaintyPercentUnits("irr", "W/m**2")))
		assert.Contains(t, Render(UncertaintyBoundsUnits("irr", "%", "W")),
			`"%" for the lower bound and "W" for the upper bound`)
	})

	t.Run("foreign error falls back to Error", func(t *testing.T) {
		assert.Equal(t, "boom", Render(errors.New("boom")))
		assert.Empty(t, Render(nil))
	})
}

func TestError_OneLineSummary(t *testing.T) {
	assert.Equal(t, "duplicate key: a, b", DuplicateKey([]string{"b", "a"}).Error())
	assert.Equal(t, `key not found: "x"`, KeyNotFound("x").Error())
}
