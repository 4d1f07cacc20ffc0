package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/pvcircus/internal/circuserr"
)

func TestParseTimezone(t *testing.T) {
	testCases := []struct {
		name       string
		in         string
		wantOffset int
		wantNil    bool
		wantErr    bool
	}{
		{name: "empty", in: "", wantNil: true},
		{name: "utc", in: "UTC", wantOffset: 0},
		{name: "negative hours", in: "UTC-8", wantOffset: -8 * 3600},
		{name: "hours and minutes", in: "UTC+05:30", wantOffset: 5*3600 + 30*60},
		{name: "compact minutes", in: "GMT-0930", wantOffset: -(9*3600 + 30*60)},
		{name: "iana name", in: "America/Los_Angeles", wantOffset: -8 * 3600},
		{name: "iana name east", in: "Asia/Kolkata", wantOffset: 5*3600 + 30*60},
		{name: "hours out of range", in: "UTC+15", wantErr: true},
		{name: "minutes out of range", in: "UTC+01:75", wantErr: true},
		{name: "garbage", in: "eight hours behind", wantErr: true},
		{name: "local is host dependent", in: "Local", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := ParseTimezone(tc.in)
			if tc.wantErr {
				var e *circuserr.Error
				require.True(t, errors.As(err, &e))
				assert.Equal(t, circuserr.KindTimezone, e.Kind)
				assert.Equal(t, tc.in, e.Value)
				return
			}
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, loc)
				return
			}
			_, offset := time.Date(2024, time.January, 15, 12, 0, 0, 0, loc).Zone()
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}

type stubLoader struct {
	model *Model
	err   error
}

func (s stubLoader) Load(context.Context, ...string) (*Model, error) { return s.model, s.err }

func TestMultiLoader(t *testing.T) {
	a := &Model{Entries: []*Entry{{Key: "a"}}}
	b := &Model{Entries: []*Entry{{Key: "b"}}, Sources: []*Source{{Name: "s"}}}

	m, err := MultiLoader{stubLoader{model: a}, stubLoader{model: b}}.Load(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, m.Entries, 2)
	assert.Equal(t, "a", m.Entries[0].Key)
	assert.Equal(t, "b", m.Entries[1].Key)
	assert.Len(t, m.Sources, 1)

	_, err = MultiLoader{stubLoader{err: errors.New("boom")}}.Load(context.Background())
	assert.ErrorContains(t, err, "loader 0: boom")
}
