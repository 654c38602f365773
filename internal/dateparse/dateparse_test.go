package dateparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZuluMatchesExplicitOffset(t *testing.T) {
	zulu, err := Parse("2023-06-15T10:30:00Z")
	require.NoError(t, err)

	offset, err := Parse("2023-06-15T10:30:00+00:00")
	require.NoError(t, err)

	assert.True(t, zulu.Equal(offset))
	assert.Equal(t, time.UTC, zulu.Location())
}

func TestParseNonUTCOffsetNormalized(t *testing.T) {
	got, err := Parse("2023-06-15T20:30:00+10:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestParseFallbackLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2023-06-15T10:30:00": time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
		"2023-06-15 10:30:00": time.Date(2023, 6, 15, 10, 30, 0, 0, time.UTC),
		"2023-06-15":          time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range cases {
		got, err := Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestParseBadInputEchoesString(t *testing.T) {
	for _, input := range []string{"15/06/2023", "June 15 2023", "not-a-date"} {
		_, err := Parse(input)
		require.Error(t, err, input)
		assert.Contains(t, err.Error(), input)
		assert.Contains(t, err.Error(), "ISO 8601")
	}
}
