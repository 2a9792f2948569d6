package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stationforge/station-planner/internal/domain/catalog"
)

// Fixture game data shared by unit and BDD tests: a small but complete
// production chain (energy cells, wheat, food rations, refined metals)
// plus one module of every other category.
var fixtureFiles = map[string]string{
	"factions/argon.json": `{
		"id": "argon",
		"name": {"en_US": "Argon Federation", "de_DE": "Argonische Föderation"}
	}`,

	"products/energycells.json": `{
		"id": "energycells",
		"storage": "Container",
		"volume": 1,
		"name": {"en_US": "Energy Cells"}
	}`,
	"products/wheat.json": `{
		"id": "wheat",
		"storage": "Container",
		"volume": 4,
		"name": {"en_US": "Wheat"}
	}`,
	"products/foodrations.json": `{
		"id": "foodrations",
		"storage": "Container",
		"volume": 1,
		"name": {"en_US": "Food Rations"}
	}`,
	"products/ore.json": `{
		"id": "ore",
		"storage": "Solid",
		"volume": 10,
		"name": {"en_US": "Ore"}
	}`,
	"products/refinedmetals.json": `{
		"id": "refinedmetals",
		"storage": "Container",
		"volume": 14,
		"name": {"en_US": "Refined Metals"}
	}`,

	"modules/production/solar_plant.json": `{
		"id": "solar_plant",
		"type": "Production",
		"factions": ["argon"],
		"name": {"en_US": "Solar Power Plant"},
		"products": [{"id": "energycells", "amount": 1000}],
		"maxEmployees": 90
	}`,
	"modules/production/wheat_farm.json": `{
		"id": "wheat_farm",
		"type": "Production",
		"factions": ["argon"],
		"name": {"en_US": "Wheat Farm"},
		"products": [{"id": "wheat", "amount": 300}],
		"resources": [{"id": "energycells", "amount": 50}],
		"maxEfficiency": 1.5,
		"maxEmployees": 40
	}`,
	"modules/production/food_rations_fab.json": `{
		"id": "food_rations_fab",
		"type": "Production",
		"factions": ["argon"],
		"name": {"en_US": "Food Rations Factory"},
		"products": [{"id": "foodrations", "amount": 200}],
		"resources": [{"id": "wheat", "amount": 120}, {"id": "energycells", "amount": 60}],
		"maxEmployees": 100
	}`,
	"modules/production/metal_refinery.json": `{
		"id": "metal_refinery",
		"type": "Production",
		"factions": ["argon"],
		"name": {"en_US": "Metal Refinery"},
		"products": [{"id": "refinedmetals", "amount": 500}],
		"resources": [{"id": "ore", "amount": 800}, {"id": "energycells", "amount": 200}],
		"maxEmployees": 120
	}`,

	"modules/storage/container_storage.json": `{
		"id": "container_storage",
		"type": "Storage",
		"factions": ["argon"],
		"name": {"en_US": "Container Storage"},
		"storageType": "Container",
		"storageCapacity": 10000
	}`,

	"modules/defence/defence_disc.json": `{
		"id": "defence_disc",
		"type": "Defence",
		"factions": ["argon"],
		"turret": 8,
		"name": {"en_US": "Defence Disc"},
		"sLaunchTubes": 4,
		"mLaunchTubes": 2
	}`,

	"modules/dock/pier_l.json": `{
		"id": "pier_l",
		"type": "Dock",
		"factions": ["argon"],
		"name": {"en_US": "L Pier"},
		"shipStorage": 20,
		"sDock": 4,
		"mDock": 2,
		"lXLDock": 1,
		"lMaintenanceBay": 1
	}`,

	"modules/habitation/habitat_m.json": `{
		"id": "habitat_m",
		"type": "Habitation",
		"factions": ["argon"],
		"name": {"en_US": "M Habitat"},
		"workforce": 250,
		"food": [{"id": "foodrations", "amount": 12}]
	}`,
}

// WriteFixtureDataDir writes the fixture data files under dir.
func WriteFixtureDataDir(dir string) error {
	for rel, content := range fixtureFiles {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// WriteCatalogFixtures writes the fixture data files into a temp
// directory and returns its path.
func WriteCatalogFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, WriteFixtureDataDir(dir))
	return dir
}

// NewTestCatalog loads a catalog from the fixture data files.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(WriteCatalogFixtures(t))
	require.NoError(t, err)
	return cat
}

// NewFixtureCatalog loads the fixture catalog without a testing.T, for
// godog step definitions. The caller removes the returned directory.
func NewFixtureCatalog() (*catalog.Catalog, string, error) {
	dir, err := os.MkdirTemp("", "station-planner-data-")
	if err != nil {
		return nil, "", err
	}
	if err := WriteFixtureDataDir(dir); err != nil {
		os.RemoveAll(dir)
		return nil, "", err
	}
	cat, err := catalog.Load(dir)
	if err != nil {
		os.RemoveAll(dir)
		return nil, "", err
	}
	return cat, dir, nil
}
