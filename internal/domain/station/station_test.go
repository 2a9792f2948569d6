package station_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stationforge/station-planner/internal/domain/station"
	"github.com/stationforge/station-planner/test/helpers"
)

func TestNew_StartsDirtyWithOneDefaultGroup(t *testing.T) {
	// Act
	st := station.New()

	// Assert
	assert.True(t, st.IsDirty())
	require.Equal(t, 1, st.Len())
	assert.Equal(t, station.DefaultGroupName, st.At(0).Name())
	assert.Same(t, st, st.At(0).Station())
	assert.Empty(t, st.Name())
}

func TestDirty_PropagatesFromModuleToStation(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	m, _ := station.NewModuleInstanceByID(cat, "solar_plant", 1)
	_, _, err := st.At(0).Append(m)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan")
	require.NoError(t, st.Save(path))
	require.False(t, st.IsDirty())

	// Act - the deepest mutation reaches the document root
	require.NoError(t, m.SetAmount(4))

	// Assert
	assert.True(t, st.IsDirty())
}

func TestDirty_StaysSetUntilSave(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	m, _ := station.NewModuleInstanceByID(cat, "solar_plant", 1)
	_, _, err := st.At(0).Append(m)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan")
	require.NoError(t, st.Save(path))

	// Act - mutate and mutate back; dirty is monotonic, not a diff
	require.NoError(t, m.SetAmount(4))
	require.NoError(t, m.SetAmount(1))

	// Assert
	assert.True(t, st.IsDirty())

	require.NoError(t, st.Save(""))
	assert.False(t, st.IsDirty())
}

func TestSave_AppendsExtensionAndSetsName(t *testing.T) {
	// Arrange
	st := station.New()
	path := filepath.Join(t.TempDir(), "trade-hub")

	// Act
	err := st.Save(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, path+station.ExtName, st.Path())
	assert.Equal(t, "trade-hub", st.Name())
	_, statErr := os.Stat(path + station.ExtName)
	assert.NoError(t, statErr)
}

func TestSave_WithoutPathFails(t *testing.T) {
	// Arrange
	st := station.New()

	// Act
	err := st.Save("")

	// Assert
	var writeErr *station.FileWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.True(t, st.IsDirty())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	st := station.New()
	st.At(0).SetName("Energy")
	solar, _ := station.NewModuleInstanceByID(cat, "solar_plant", 3)
	_, _, err := st.At(0).Append(solar)
	require.NoError(t, err)

	second := station.NewGroup()
	second.SetName("Farming")
	farm, _ := station.NewModuleInstanceByID(cat, "wheat_farm", 2)
	_, _, err = second.Append(farm)
	require.NoError(t, err)
	require.NoError(t, st.Append(second))

	path := filepath.Join(t.TempDir(), "plan")
	require.NoError(t, st.Save(path))

	// Act
	loaded, err := station.Load(cat, st.Path())

	// Assert
	require.NoError(t, err)
	assert.False(t, loaded.IsDirty(), "a freshly loaded document is clean")
	require.Equal(t, 2, loaded.Len())
	assert.Equal(t, "Energy", loaded.At(0).Name())
	assert.Equal(t, "Farming", loaded.At(1).Name())

	m, ok := loaded.At(0).ByID("solar_plant")
	require.True(t, ok)
	assert.Equal(t, 3, m.Amount())
	m, ok = loaded.At(1).ByID("wheat_farm")
	require.True(t, ok)
	assert.Equal(t, 2, m.Amount())
}

func TestDecode_RejectsNewerRecordVersion(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	data := []byte(`{"version": "99.0.0", "groups": []}`)

	// Act
	_, err := station.Decode(cat, "future.x4station", data)

	// Assert
	var tooNew *station.VersionTooNewError
	require.ErrorAs(t, err, &tooNew)
	assert.Equal(t, station.Version{Major: 99}, tooNew.Version)
}

func TestDecode_AcceptsOlderRecordVersion(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	data := []byte(`{"version": "0.0.1", "groups": [{"name": "Old", "modules": []}]}`)

	// Act
	st, err := station.Decode(cat, "old.x4station", data)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Old", st.At(0).Name())
}

func TestDecode_Malformed(t *testing.T) {
	cat := helpers.NewTestCatalog(t)

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := station.Decode(cat, "f", []byte(`{`))
		var jsonErr *station.JSONFormatError
		assert.ErrorAs(t, err, &jsonErr)
	})

	t.Run("bad version string", func(t *testing.T) {
		_, err := station.Decode(cat, "f", []byte(`{"version": "six", "groups": []}`))
		var structErr *station.StructureError
		assert.ErrorAs(t, err, &structErr)
	})

	t.Run("missing groups", func(t *testing.T) {
		_, err := station.Decode(cat, "f", []byte(`{"version": "0.0.6"}`))
		var structErr *station.StructureError
		assert.ErrorAs(t, err, &structErr)
	})

	t.Run("module without id", func(t *testing.T) {
		_, err := station.Decode(cat, "f",
			[]byte(`{"version": "0.0.6", "groups": [{"name": "g", "modules": [{"amount": 1}]}]}`))
		var structErr *station.StructureError
		assert.ErrorAs(t, err, &structErr)
	})

	t.Run("unknown module id", func(t *testing.T) {
		_, err := station.Decode(cat, "f",
			[]byte(`{"version": "0.0.6", "groups": [{"name": "g", "modules": [{"id": "warp_gate", "amount": 1}]}]}`))
		var structErr *station.StructureError
		assert.ErrorAs(t, err, &structErr)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := station.Decode(cat, "f",
			[]byte(`{"version": "0.0.6", "groups": [{"name": "g", "modules": [{"id": "solar_plant", "amount": 0}]}]}`))
		var structErr *station.StructureError
		assert.ErrorAs(t, err, &structErr)
	})
}

func TestDecode_MergesDuplicateEntriesWithinGroup(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)
	data := []byte(`{"version": "0.0.6", "groups": [{"name": "g", "modules": [
		{"id": "solar_plant", "amount": 2},
		{"id": "solar_plant", "amount": 3}
	]}]}`)

	// Act
	st, err := station.Decode(cat, "f", data)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, st.At(0).Len())
	m, _ := st.At(0).ByID("solar_plant")
	assert.Equal(t, 5, m.Amount())
	assert.False(t, st.IsDirty())
}

func TestLoad_MissingFile(t *testing.T) {
	// Arrange
	cat := helpers.NewTestCatalog(t)

	// Act
	_, err := station.Load(cat, filepath.Join(t.TempDir(), "missing.x4station"))

	// Assert
	var readErr *station.FileReadError
	require.ErrorAs(t, err, &readErr)
}

func TestStation_GroupSignals(t *testing.T) {
	// Arrange
	st := station.New()
	var added, removed int
	st.GroupAdded.Connect(func(station.GroupAddedEvent) { added++ })
	st.GroupRemoved.Connect(func(station.GroupRemovedEvent) { removed++ })

	g := station.NewGroup()

	// Act
	require.NoError(t, st.Append(g))
	require.NoError(t, st.Remove(g))

	// Assert
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
	assert.Nil(t, g.Station())

	err := st.Remove(g)
	var notFound *station.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
