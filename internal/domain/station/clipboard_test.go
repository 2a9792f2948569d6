package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationforge/station-planner/internal/domain/station"
	"github.com/stationforge/station-planner/test/helpers"
)

func TestClipboard_GroupsRoundTrip(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	g := station.NewGroup()
	g.SetName("Energy")
	m, _ := station.NewModuleInstanceByID(cat, "solar_plant", 4)
	_, _, err := g.Append(m)
	require.NoError(t, err)

	// Act
	payload, err := station.EncodeGroups([]*station.Group{g})
	require.NoError(t, err)
	decoded, err := station.DecodeGroups(cat, payload)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, station.MIMEGroups, payload.MIME)
	require.Len(t, decoded, 1)
	assert.Equal(t, "Energy", decoded[0].Name())
	assert.NotSame(t, g, decoded[0])

	dm, ok := decoded[0].ByID("solar_plant")
	require.True(t, ok)
	assert.Equal(t, 4, dm.Amount())
}

func TestClipboard_ModulesRoundTrip(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	m, _ := station.NewModuleInstanceByID(cat, "wheat_farm", 2)

	// Act
	payload, err := station.EncodeModules([]*station.ModuleInstance{m})
	require.NoError(t, err)
	decoded, err := station.DecodeModules(cat, payload)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, station.MIMEModules, payload.MIME)
	require.Len(t, decoded, 1)
	assert.Equal(t, "wheat_farm", decoded[0].ID())
	assert.Equal(t, 2, decoded[0].Amount())
	assert.Nil(t, decoded[0].Group())
}

func TestClipboard_MIMEMismatch(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	m, _ := station.NewModuleInstanceByID(cat, "solar_plant", 1)
	payload, err := station.EncodeModules([]*station.ModuleInstance{m})
	require.NoError(t, err)

	// Act
	_, err = station.DecodeGroups(cat, payload)

	// Assert
	assert.Error(t, err)
}

func TestClipboard_StaleIDFailsDecode(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	payload := station.ClipboardPayload{
		MIME: station.MIMEModules,
		Data: []byte(`[{"id": "retired_module", "amount": 1}]`),
	}

	// Act
	_, err := station.DecodeModules(cat, payload)

	// Assert
	assert.Error(t, err)
}
