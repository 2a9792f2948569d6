package summary

import (
	"math"
	"sort"

	"github.com/stationforge/station-planner/internal/domain/station"
)

// Entry is one classified product line. Amount is the nominal figure;
// MaxAmount the figure at maximum module efficiency, rounded half away
// from zero. For pure resource requirements the two are equal.
type Entry struct {
	ProductID string
	Amount    int
	MaxAmount int
}

// Summary is the classified aggregation result of one scope.
type Summary struct {
	Attributes map[Attribute]AttributeTotal
	Workforce  int

	// Products are net outputs: produced, not consumed as a resource
	// in scope, positive after food netting (nominal or at maximum
	// efficiency).
	Products []Entry
	// Intermediates are produced and consumed as a resource in scope;
	// amounts are signed nets and may be negative (net deficit).
	Intermediates []Entry
	// Resources are consumed as a resource and not produced in scope.
	Resources []Entry
	// Foods are food draws not fully covered by in-scope production;
	// the produced portion is subtracted first.
	Foods []Entry
}

// Classify derives a summary from raw flows. Classification is re-run
// at whichever scope the flows describe: a product that is an
// intermediate within one group can flip to a net product once another
// group's flows merge in, so classified results never sum across
// scopes.
func Classify(f Flows) Summary {
	s := Summary{
		Attributes: make(map[Attribute]AttributeTotal, len(Attributes)),
		Workforce:  f.Workforce,
	}

	for _, a := range Attributes {
		v := f.Attributes[a]
		s.Attributes[a] = AttributeTotal{Value: v, Hidden: v == 0}
	}

	for _, p := range sortedKeys(f.Produced) {
		amount := f.Produced[p]
		maxAmount := f.MaxProduced[p]

		if consumed, ok := f.Resources[p]; ok {
			net := amount - consumed
			maxNet := maxAmount - float64(consumed)
			if food, ok := f.Foods[p]; ok {
				net -= food
				maxNet -= float64(food)
			}
			s.Intermediates = append(s.Intermediates, Entry{
				ProductID: p,
				Amount:    net,
				MaxAmount: roundRate(maxNet),
			})
			continue
		}

		net := amount
		maxNet := maxAmount
		if food, ok := f.Foods[p]; ok {
			net -= food
			maxNet -= float64(food)
		}
		if net > 0 || maxNet > 0 {
			s.Products = append(s.Products, Entry{
				ProductID: p,
				Amount:    net,
				MaxAmount: roundRate(maxNet),
			})
		}
	}

	for _, p := range sortedKeys(f.Resources) {
		if _, ok := f.Produced[p]; ok {
			continue
		}
		amount := f.Resources[p]
		s.Resources = append(s.Resources, Entry{ProductID: p, Amount: amount, MaxAmount: amount})
	}

	for _, p := range sortedKeys(f.Foods) {
		amount := f.Foods[p]
		maxAmount := float64(amount)
		if produced, ok := f.Produced[p]; ok {
			maxProduced := f.MaxProduced[p]
			if amount < produced && maxAmount < maxProduced {
				continue
			}
			amount -= produced
			if amount < 0 {
				amount = 0
			}
			maxAmount -= maxProduced
			if maxAmount < 0 {
				maxAmount = 0
			}
		}
		s.Foods = append(s.Foods, Entry{ProductID: p, Amount: amount, MaxAmount: roundRate(maxAmount)})
	}

	return s
}

// SummarizeGroup classifies one group in isolation.
func SummarizeGroup(g *station.Group) Summary {
	return Classify(Collect(g))
}

// SummarizeStation classifies the whole station over the merged raw
// flows of every group.
func SummarizeStation(st *station.Station) Summary {
	return Classify(CollectStation(st))
}

// roundRate converts a float upper bound to the displayed integer rate:
// round half away from zero, applied once at classification time.
func roundRate(v float64) int {
	return int(math.Round(v))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
