package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Raw records mirror the data file shapes. Required fields are enforced
// with validation tags before any domain object is built.

type factionRecord struct {
	ID   string            `json:"id" validate:"required"`
	Name map[string]string `json:"name" validate:"required,min=1"`
}

type productRecord struct {
	ID      string            `json:"id" validate:"required"`
	Storage string            `json:"storage" validate:"required"`
	Volume  int               `json:"volume" validate:"min=0"`
	Name    map[string]string `json:"name" validate:"required,min=1"`
}

type rateRecord struct {
	ID     string `json:"id" validate:"required"`
	Amount int    `json:"amount" validate:"min=0"`
}

type moduleRecord struct {
	ID       string            `json:"id" validate:"required"`
	Type     string            `json:"type" validate:"required"`
	Factions []string          `json:"factions"`
	Turret   int               `json:"turret" validate:"min=0"`
	Name     map[string]string `json:"name" validate:"required,min=1"`

	// Production
	Products      []rateRecord `json:"products"`
	Resources     []rateRecord `json:"resources"`
	MaxEfficiency float64      `json:"maxEfficiency"`
	MaxEmployees  int          `json:"maxEmployees" validate:"min=0"`

	// Storage
	StorageType     string `json:"storageType"`
	StorageCapacity int    `json:"storageCapacity" validate:"min=0"`

	// Defence
	SLaunchTubes int `json:"sLaunchTubes" validate:"min=0"`
	MLaunchTubes int `json:"mLaunchTubes" validate:"min=0"`

	// Dock
	ShipStorage      int `json:"shipStorage" validate:"min=0"`
	SDock            int `json:"sDock" validate:"min=0"`
	MDock            int `json:"mDock" validate:"min=0"`
	LXLDock          int `json:"lXLDock" validate:"min=0"`
	LFabricationBay  int `json:"lFabricationBay" validate:"min=0"`
	XLFabricationBay int `json:"xlFabricationBay" validate:"min=0"`
	LMaintenanceBay  int `json:"lMaintenanceBay" validate:"min=0"`
	XLMaintenanceBay int `json:"xlMaintenanceBay" validate:"min=0"`

	// Habitation
	Workforce int          `json:"workforce" validate:"min=0"`
	Food      []rateRecord `json:"food"`
}

// Load builds a Catalog from a data directory laid out as:
//
//	<dir>/factions/*.json
//	<dir>/products/*.json
//	<dir>/modules/<category>/*.json
//
// Category directories are visited in registration order; files within
// a directory in scan order. Loading is all-or-nothing: the first
// malformed entry or dangling cross-reference aborts with a LoadError.
func Load(dir string) (*Catalog, error) {
	c := newCatalog()
	validate := validator.New()

	if err := loadDir(filepath.Join(dir, "factions"), func(path string, data []byte) error {
		var rec factionRecord
		if err := decodeRecord(validate, path, data, &rec); err != nil {
			return err
		}
		return c.addFaction(&Faction{ID: rec.ID, Name: LocalizedText(rec.Name)})
	}); err != nil {
		return nil, err
	}

	if err := loadDir(filepath.Join(dir, "products"), func(path string, data []byte) error {
		var rec productRecord
		if err := decodeRecord(validate, path, data, &rec); err != nil {
			return err
		}
		storage, err := ParseStorageType(rec.Storage)
		if err != nil {
			return NewLoadError(path, err.Error())
		}
		return c.addProduct(&Product{
			ID:      rec.ID,
			Storage: storage,
			Volume:  rec.Volume,
			Name:    LocalizedText(rec.Name),
		})
	}); err != nil {
		return nil, err
	}

	for _, t := range ModuleTypes {
		sub := filepath.Join(dir, "modules", strings.ToLower(string(t)))
		if err := loadDir(sub, func(path string, data []byte) error {
			var rec moduleRecord
			if err := decodeRecord(validate, path, data, &rec); err != nil {
				return err
			}
			m, err := c.buildModule(path, t, &rec)
			if err != nil {
				return err
			}
			return c.addModule(m)
		}); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// buildModule turns a validated raw record into a definition, checking
// every cross-reference against the tables loaded so far.
func (c *Catalog) buildModule(path string, t ModuleType, rec *moduleRecord) (*ModuleDefinition, error) {
	declared, err := ParseModuleType(rec.Type)
	if err != nil {
		return nil, NewLoadError(path, err.Error())
	}
	if declared != t {
		return nil, NewLoadError(path, fmt.Sprintf(
			"module type %q does not match category directory %q", rec.Type, strings.ToLower(string(t))))
	}

	for _, f := range rec.Factions {
		if _, err := c.Faction(f); err != nil {
			return nil, NewLoadError(path, err.Error())
		}
	}

	m := &ModuleDefinition{
		ID:        rec.ID,
		Type:      t,
		Factions:  append([]string(nil), rec.Factions...),
		TurretNum: rec.Turret,
		Name:      LocalizedText(rec.Name),
	}

	switch t {
	case ModuleProduction:
		products, err := c.buildRates(path, rec.Products)
		if err != nil {
			return nil, err
		}
		resources, err := c.buildRates(path, rec.Resources)
		if err != nil {
			return nil, err
		}
		eff := rec.MaxEfficiency
		if eff == 0 {
			eff = 1
		}
		if eff < 1 {
			return nil, NewLoadError(path, fmt.Sprintf("maxEfficiency %v is below 1", rec.MaxEfficiency))
		}
		m.production = &ProductionData{
			Products:      products,
			Resources:     resources,
			MaxEfficiency: eff,
			MaxEmployees:  rec.MaxEmployees,
		}

	case ModuleStorage:
		storage, err := ParseStorageType(rec.StorageType)
		if err != nil {
			return nil, NewLoadError(path, err.Error())
		}
		m.storage = &StorageData{Storage: storage, Capacity: rec.StorageCapacity}

	case ModuleDefence:
		m.defence = &DefenceData{
			SLaunchTubes: rec.SLaunchTubes,
			MLaunchTubes: rec.MLaunchTubes,
		}

	case ModuleDock:
		m.dock = &DockData{
			ShipStorage:      rec.ShipStorage,
			SDock:            rec.SDock,
			MDock:            rec.MDock,
			LXLDock:          rec.LXLDock,
			LFabricationBay:  rec.LFabricationBay,
			XLFabricationBay: rec.XLFabricationBay,
			LMaintenanceBay:  rec.LMaintenanceBay,
			XLMaintenanceBay: rec.XLMaintenanceBay,
		}

	case ModuleHabitation:
		food, err := c.buildRates(path, rec.Food)
		if err != nil {
			return nil, err
		}
		m.habitation = &HabitationData{
			WorkforceCapacity: rec.Workforce,
			Food:              food,
		}
	}

	return m, nil
}

func (c *Catalog) buildRates(path string, recs []rateRecord) ([]ProductRate, error) {
	rates := make([]ProductRate, 0, len(recs))
	for _, r := range recs {
		if _, err := c.Product(r.ID); err != nil {
			return nil, NewLoadError(path, err.Error())
		}
		rates = append(rates, ProductRate{ProductID: r.ID, AmountPerHour: r.Amount})
	}
	return rates, nil
}

func decodeRecord(validate *validator.Validate, path string, data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return NewLoadError(path, err.Error())
	}
	if err := validate.Struct(out); err != nil {
		return NewLoadError(path, err.Error())
	}
	return nil
}

func loadDir(dir string, loadFile func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return NewLoadError(dir, err.Error())
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return NewLoadError(path, err.Error())
		}
		if err := loadFile(path, data); err != nil {
			if _, ok := err.(*LoadError); ok {
				return err
			}
			return NewLoadError(path, err.Error())
		}
	}
	return nil
}
