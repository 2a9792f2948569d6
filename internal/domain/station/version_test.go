package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationforge/station-planner/internal/domain/station"
)

func TestParseVersion(t *testing.T) {
	// Act
	v, err := station.ParseVersion("1.2.3")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, station.Version{Major: 1, Minor: 2, Patch: 3}, v)
	assert.Equal(t, "1.2.3", v.String())

	for _, bad := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.-2.3"} {
		_, err := station.ParseVersion(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestVersionCompare(t *testing.T) {
	older := station.Version{Major: 0, Minor: 0, Patch: 5}
	newer := station.Version{Major: 0, Minor: 1, Patch: 0}

	assert.Equal(t, -1, older.Compare(newer))
	assert.Equal(t, 1, newer.Compare(older))
	assert.Equal(t, 0, older.Compare(older))

	major := station.Version{Major: 99}
	assert.Equal(t, 1, major.Compare(station.RecordVersion))
}
