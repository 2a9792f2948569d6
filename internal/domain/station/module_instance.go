package station

import (
	"github.com/stationforge/station-planner/internal/domain/catalog"
)

// ModuleInstance is one placed module type plus a quantity. The owning
// group holds the only strong reference; the back-reference exists to
// propagate dirty state and is never used for lifetime management.
type ModuleInstance struct {
	definition *catalog.ModuleDefinition
	amount     int
	group      *Group

	// AmountChanged fires synchronously after every successful amount
	// mutation, old value first.
	AmountChanged Signal[AmountChangedEvent]
}

// NewModuleInstance places amount units of the given definition.
func NewModuleInstance(def *catalog.ModuleDefinition, amount int) (*ModuleInstance, error) {
	if def == nil {
		return nil, NewDomainError("module definition must not be nil")
	}
	if amount <= 0 {
		return nil, NewInvalidAmountError(amount)
	}
	return &ModuleInstance{definition: def, amount: amount}, nil
}

// NewModuleInstanceByID resolves id against the catalog and places
// amount units of it.
func NewModuleInstanceByID(cat *catalog.Catalog, id string, amount int) (*ModuleInstance, error) {
	def, err := cat.Module(id)
	if err != nil {
		return nil, err
	}
	return NewModuleInstance(def, amount)
}

// ID returns the definition id. Two instances occupy the same group
// slot iff their ids match.
func (m *ModuleInstance) ID() string {
	return m.definition.ID
}

// Definition returns the shared, immutable catalog entry.
func (m *ModuleInstance) Definition() *catalog.ModuleDefinition {
	return m.definition
}

// Amount returns the placed quantity, always at least 1.
func (m *ModuleInstance) Amount() int {
	return m.amount
}

// Group returns the owning group, or nil when detached.
func (m *ModuleInstance) Group() *Group {
	return m.group
}

// SetAmount sets the quantity, marks the document dirty and fires
// AmountChanged before returning. Setting the current amount is a
// no-op; non-positive amounts fail and leave the instance unchanged.
func (m *ModuleInstance) SetAmount(amount int) error {
	if amount <= 0 {
		return NewInvalidAmountError(amount)
	}
	if amount == m.amount {
		return nil
	}
	old := m.amount
	m.amount = amount
	m.markDirty()
	m.AmountChanged.emit(AmountChangedEvent{Module: m, OldAmount: old, NewAmount: amount})
	return nil
}

// Increase adds one unit.
func (m *ModuleInstance) Increase() {
	_ = m.SetAmount(m.amount + 1)
}

// Decrease removes one unit, flooring at 1. Removal of the last unit is
// the caller's responsibility through the group.
func (m *ModuleInstance) Decrease() {
	if m.amount > 1 {
		_ = m.SetAmount(m.amount - 1)
	}
}

// Products returns the declared production rates scaled by amount, or
// nil for non-production modules.
func (m *ModuleInstance) Products() []catalog.ProductRate {
	if p, ok := m.definition.ProductionInfo(); ok {
		return scaleRates(p.Products, m.amount)
	}
	return nil
}

// Resources returns the declared resource draws scaled by amount, or
// nil for non-production modules.
func (m *ModuleInstance) Resources() []catalog.ProductRate {
	if p, ok := m.definition.ProductionInfo(); ok {
		return scaleRates(p.Resources, m.amount)
	}
	return nil
}

// Food returns the declared food draws scaled by amount, or nil for
// non-habitation modules.
func (m *ModuleInstance) Food() []catalog.ProductRate {
	if h, ok := m.definition.HabitationInfo(); ok {
		return scaleRates(h.Food, m.amount)
	}
	return nil
}

// MaxEfficiency returns the production efficiency upper bound, or 1 for
// modules without one.
func (m *ModuleInstance) MaxEfficiency() float64 {
	if p, ok := m.definition.ProductionInfo(); ok {
		return p.MaxEfficiency
	}
	return 1
}

// WorkforceCapacity returns the supplied workforce scaled by amount.
func (m *ModuleInstance) WorkforceCapacity() int {
	if h, ok := m.definition.HabitationInfo(); ok {
		return h.WorkforceCapacity * m.amount
	}
	return 0
}

// MaxEmployees returns the drawn workforce scaled by amount.
func (m *ModuleInstance) MaxEmployees() int {
	if p, ok := m.definition.ProductionInfo(); ok {
		return p.MaxEmployees * m.amount
	}
	return 0
}

// Clone returns a detached copy with the same definition and amount.
func (m *ModuleInstance) Clone() *ModuleInstance {
	return &ModuleInstance{definition: m.definition, amount: m.amount}
}

func (m *ModuleInstance) setGroup(g *Group) {
	m.group = g
}

func (m *ModuleInstance) markDirty() {
	if m.group != nil {
		m.group.markDirty()
	}
}

func scaleRates(rates []catalog.ProductRate, amount int) []catalog.ProductRate {
	out := make([]catalog.ProductRate, len(rates))
	for i, r := range rates {
		out[i] = catalog.ProductRate{
			ProductID:     r.ProductID,
			AmountPerHour: r.AmountPerHour * amount,
		}
	}
	return out
}
