package summary

// Attribute names a numeric capability a module definition can expose.
type Attribute string

const (
	AttrTurretNum        Attribute = "turretNum"
	AttrSLaunchTubes     Attribute = "sLaunchTubes"
	AttrMLaunchTubes     Attribute = "mLaunchTubes"
	AttrShipStorage      Attribute = "shipStorage"
	AttrSDock            Attribute = "sDock"
	AttrMDock            Attribute = "mDock"
	AttrLXLDock          Attribute = "lXLDock"
	AttrLFabricationBay  Attribute = "lFabricationBay"
	AttrXLFabricationBay Attribute = "xlFabricationBay"
	AttrLMaintenanceBay  Attribute = "lMaintenanceBay"
	AttrXLMaintenanceBay Attribute = "xlMaintenanceBay"
)

// Attributes lists every attribute in display order. Every summary
// carries the full set; zero totals are flagged hidden, not omitted.
var Attributes = []Attribute{
	AttrTurretNum,
	AttrSLaunchTubes,
	AttrMLaunchTubes,
	AttrShipStorage,
	AttrSDock,
	AttrMDock,
	AttrLXLDock,
	AttrLFabricationBay,
	AttrXLFabricationBay,
	AttrLMaintenanceBay,
	AttrXLMaintenanceBay,
}

// AttributeTotal is one summed capability. Hidden marks zero totals for
// display purposes; the value is still present.
type AttributeTotal struct {
	Value  int
	Hidden bool
}
