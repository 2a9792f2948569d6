package catalog

// ModuleType is the closed set of station module categories. The set is
// fixed by the game data, so categories dispatch statically instead of
// through a runtime registry.
type ModuleType string

const (
	ModuleProduction ModuleType = "Production"
	ModuleStorage    ModuleType = "Storage"
	ModuleDefence    ModuleType = "Defence"
	ModuleDock       ModuleType = "Dock"
	ModuleHabitation ModuleType = "Habitation"
	ModuleOther      ModuleType = "Other"
	ModuleVenture    ModuleType = "Venture"
	ModuleBuild      ModuleType = "Build"
)

// ModuleTypes lists every category in registration order. Catalog
// iteration and default UI grouping follow this order.
var ModuleTypes = []ModuleType{
	ModuleProduction,
	ModuleStorage,
	ModuleDefence,
	ModuleDock,
	ModuleHabitation,
	ModuleOther,
	ModuleVenture,
	ModuleBuild,
}

// ParseModuleType validates a raw module type string.
func ParseModuleType(s string) (ModuleType, error) {
	for _, t := range ModuleTypes {
		if ModuleType(s) == t {
			return t, nil
		}
	}
	return "", NewLoadError("", "unknown station module type \""+s+"\"")
}

// ProductRate is a declared per-unit flow of one product, in units per
// hour. Rates are exact integers.
type ProductRate struct {
	ProductID     string
	AmountPerHour int
}

// ProductionData holds the category payload of a Production module.
// MaxEfficiency is the multiplier reached at full workforce saturation;
// it is at least 1 and applies to products only, never to resources.
type ProductionData struct {
	Products      []ProductRate
	Resources     []ProductRate
	MaxEfficiency float64
	MaxEmployees  int
}

// StorageData holds the category payload of a Storage module.
type StorageData struct {
	Storage  StorageType
	Capacity int
}

// DefenceData holds the category payload of a Defence module.
type DefenceData struct {
	SLaunchTubes int
	MLaunchTubes int
}

// DockData holds the category payload of a Dock module, including the
// fabrication and maintenance bay counts of build/equipment docks.
type DockData struct {
	ShipStorage      int
	SDock            int
	MDock            int
	LXLDock          int
	LFabricationBay  int
	XLFabricationBay int
	LMaintenanceBay  int
	XLMaintenanceBay int
}

// HabitationData holds the category payload of a Habitation module.
type HabitationData struct {
	WorkforceCapacity int
	Food              []ProductRate
}

// ModuleDefinition is an immutable catalog entry describing one station
// module type. Exactly the payload matching Type is non-nil; asking for
// another category's payload reports "not applicable" rather than
// failing, which is what the aggregation engine relies on.
type ModuleDefinition struct {
	ID        string
	Type      ModuleType
	Factions  []string
	TurretNum int
	Name      LocalizedText

	production *ProductionData
	storage    *StorageData
	defence    *DefenceData
	dock       *DockData
	habitation *HabitationData
}

// ProductionInfo returns the production payload, if this is a
// Production module.
func (d *ModuleDefinition) ProductionInfo() (*ProductionData, bool) {
	return d.production, d.production != nil
}

// StorageInfo returns the storage payload, if this is a Storage module.
func (d *ModuleDefinition) StorageInfo() (*StorageData, bool) {
	return d.storage, d.storage != nil
}

// DefenceInfo returns the defence payload, if this is a Defence module.
func (d *ModuleDefinition) DefenceInfo() (*DefenceData, bool) {
	return d.defence, d.defence != nil
}

// DockInfo returns the dock payload, if this is a Dock module.
func (d *ModuleDefinition) DockInfo() (*DockData, bool) {
	return d.dock, d.dock != nil
}

// HabitationInfo returns the habitation payload, if this is a
// Habitation module.
func (d *ModuleDefinition) HabitationInfo() (*HabitationData, bool) {
	return d.habitation, d.habitation != nil
}
