package aocenv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixedStore(t *testing.T, latestYear, latestDay int) *contextStore {
	t.Helper()
	s := newContextStore(filepath.Join(t.TempDir(), ".context.json"))
	s.latest = func() (int, int) { return latestYear, latestDay }
	return s
}

func TestContextStoreRoundTrip(t *testing.T) {
	s := newFixedStore(t, 2023, 25)

	_, _, ok, err := s.read()
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should have no context")

	require.NoError(t, s.write(2020, 13))

	year, day, ok, err := s.read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2020, year)
	assert.Equal(t, 13, day)
}

func TestContextStoreValidation(t *testing.T) {
	tests := []struct {
		name string
		year int
		day  int
	}{
		{"year before the first event", 2014, 1},
		{"year after the latest event", 2024, 1},
		{"day zero", 2020, 0},
		{"day past the calendar", 2020, 26},
		{"negative day", 2020, -3},
		{"not yet unlocked in the current event", 2023, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFixedStore(t, 2023, 12)

			err := s.write(tt.year, tt.day)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			_, _, ok, err := s.read()
			require.NoError(t, err)
			assert.False(t, ok, "rejected write must not persist anything")
		})
	}
}

func TestContextStoreCurrentEventUpToLatestDay(t *testing.T) {
	s := newFixedStore(t, 2023, 12)

	require.NoError(t, s.write(2023, 12))

	year, day, ok, err := s.read()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2023, year)
	assert.Equal(t, 12, day)
}

func TestContextStoreClear(t *testing.T) {
	s := newFixedStore(t, 2023, 25)

	// Clearing an absent context is not an error.
	require.NoError(t, s.clear())

	require.NoError(t, s.write(2019, 5))
	require.NoError(t, s.clear())

	_, _, ok, err := s.read()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContextStoreCorruptFile(t *testing.T) {
	s := newFixedStore(t, 2023, 25)
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o644))

	_, _, _, err := s.read()
	assert.Error(t, err)
}

func TestResolveContext(t *testing.T) {
	log := NewLogger("", false)

	t.Run("persisted pair wins over the calendar", func(t *testing.T) {
		s := newFixedStore(t, 2023, 25)
		require.NoError(t, s.write(2017, 3))

		year, day, err := resolveContext(s, log)
		require.NoError(t, err)
		assert.Equal(t, 2017, year)
		assert.Equal(t, 3, day)
	})

	t.Run("no context falls back to the latest puzzle", func(t *testing.T) {
		s := newFixedStore(t, 2022, 9)

		year, day, err := resolveContext(s, log)
		require.NoError(t, err)
		assert.Equal(t, 2022, year)
		assert.Equal(t, 9, day)
	})

	t.Run("stale persisted pair is used verbatim", func(t *testing.T) {
		s := newFixedStore(t, 2023, 25)
		require.NoError(t, s.write(2016, 24))
		// The calendar moving on must not affect an explicit choice.
		s.latest = func() (int, int) { return 2024, 25 }

		year, day, err := resolveContext(s, log)
		require.NoError(t, err)
		assert.Equal(t, 2016, year)
		assert.Equal(t, 24, day)
	})

	t.Run("unreadable context propagates the error", func(t *testing.T) {
		s := newFixedStore(t, 2023, 25)
		require.NoError(t, os.WriteFile(s.path, []byte("garbage"), 0o644))

		_, _, err := resolveContext(s, log)
		assert.Error(t, err)
		assert.False(t, errors.Is(err, os.ErrNotExist))
	})
}
