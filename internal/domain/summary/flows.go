package summary

import (
	"github.com/stationforge/station-planner/internal/domain/station"
)

// Flows are the raw, unclassified aggregates of one scope: attribute
// sums, the signed workforce balance and the four product maps keyed by
// product id. Merging flows is associative and commutative, so the
// station-level flows are exactly the merge of every group's flows.
// Classification is not linear and therefore lives on Flows, not on
// classified summaries (see Classify).
type Flows struct {
	Attributes map[Attribute]int
	Workforce  int

	Produced    map[string]int
	MaxProduced map[string]float64
	Resources   map[string]int
	Foods       map[string]int
}

// NewFlows returns an empty aggregate.
func NewFlows() Flows {
	return Flows{
		Attributes:  make(map[Attribute]int),
		Produced:    make(map[string]int),
		MaxProduced: make(map[string]float64),
		Resources:   make(map[string]int),
		Foods:       make(map[string]int),
	}
}

// Collect walks one group and accumulates its raw flows. Modules that
// do not declare a capability contribute nothing to it; that is a
// capability probe, not an error.
func Collect(g *station.Group) Flows {
	f := NewFlows()
	for _, m := range g.Modules() {
		def := m.Definition()
		amount := m.Amount()

		f.Attributes[AttrTurretNum] += def.TurretNum * amount

		if d, ok := def.DefenceInfo(); ok {
			f.Attributes[AttrSLaunchTubes] += d.SLaunchTubes * amount
			f.Attributes[AttrMLaunchTubes] += d.MLaunchTubes * amount
		}

		if d, ok := def.DockInfo(); ok {
			f.Attributes[AttrShipStorage] += d.ShipStorage * amount
			f.Attributes[AttrSDock] += d.SDock * amount
			f.Attributes[AttrMDock] += d.MDock * amount
			f.Attributes[AttrLXLDock] += d.LXLDock * amount
			f.Attributes[AttrLFabricationBay] += d.LFabricationBay * amount
			f.Attributes[AttrXLFabricationBay] += d.XLFabricationBay * amount
			f.Attributes[AttrLMaintenanceBay] += d.LMaintenanceBay * amount
			f.Attributes[AttrXLMaintenanceBay] += d.XLMaintenanceBay * amount
		}

		if p, ok := def.ProductionInfo(); ok {
			f.Workforce -= p.MaxEmployees * amount
			for _, r := range p.Products {
				scaled := r.AmountPerHour * amount
				f.Produced[r.ProductID] += scaled
				f.MaxProduced[r.ProductID] += float64(scaled) * p.MaxEfficiency
			}
			for _, r := range p.Resources {
				f.Resources[r.ProductID] += r.AmountPerHour * amount
			}
		}

		if h, ok := def.HabitationInfo(); ok {
			f.Workforce += h.WorkforceCapacity * amount
			for _, r := range h.Food {
				f.Foods[r.ProductID] += r.AmountPerHour * amount
			}
		}
	}
	return f
}

// CollectStation merges the flows of every group in the station.
func CollectStation(st *station.Station) Flows {
	flows := make([]Flows, 0, st.Len())
	for _, g := range st.Groups() {
		flows = append(flows, Collect(g))
	}
	return Merge(flows...)
}

// Merge folds any number of flow aggregates into one.
func Merge(flows ...Flows) Flows {
	out := NewFlows()
	for _, f := range flows {
		for a, v := range f.Attributes {
			out.Attributes[a] += v
		}
		out.Workforce += f.Workforce
		for p, v := range f.Produced {
			out.Produced[p] += v
		}
		for p, v := range f.MaxProduced {
			out.MaxProduced[p] += v
		}
		for p, v := range f.Resources {
			out.Resources[p] += v
		}
		for p, v := range f.Foods {
			out.Foods[p] += v
		}
	}
	return out
}
