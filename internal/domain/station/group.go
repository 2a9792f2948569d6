package station

import "fmt"

// DefaultGroupName is the display name of a freshly created group.
const DefaultGroupName = "New group"

// Group is a named, ordered collection of module instances. No two
// entries share a definition id: appending an instance whose id is
// already present merges by summing amounts. The id index and the
// ordered list are kept in lock-step by every mutation.
type Group struct {
	name    string
	modules []*ModuleInstance
	index   map[string]*ModuleInstance
	station *Station

	// ModuleAdded fires for new entries only; merges surface through
	// the merged-into instance's AmountChanged signal.
	ModuleAdded   Signal[ModuleAddedEvent]
	ModuleRemoved Signal[ModuleRemovedEvent]
	NameChanged   Signal[NameChangedEvent]
}

// NewGroup creates an empty group with the default name.
func NewGroup() *Group {
	return &Group{
		name:  DefaultGroupName,
		index: make(map[string]*ModuleInstance),
	}
}

// Name returns the display name.
func (g *Group) Name() string {
	return g.name
}

// SetName renames the group, marks the document dirty and fires
// NameChanged.
func (g *Group) SetName(name string) {
	g.name = name
	g.markDirty()
	g.NameChanged.emit(NameChangedEvent{Group: g})
}

// Station returns the owning station, or nil when detached.
func (g *Group) Station() *Station {
	return g.station
}

// Append adds m at the end of the group. See Insert.
func (g *Group) Append(m *ModuleInstance) (*ModuleInstance, bool, error) {
	return g.Insert(len(g.modules), m)
}

// Insert adds m at position index. When an entry with the same
// definition id already exists the amounts merge onto the existing
// entry and m is discarded; the returned instance is the entry actually
// holding the units, with merged reporting which case occurred.
func (g *Group) Insert(index int, m *ModuleInstance) (*ModuleInstance, bool, error) {
	if m == nil {
		return nil, false, NewDomainError("module instance must not be nil")
	}
	if index < 0 {
		index = 0
	}
	if index > len(g.modules) {
		index = len(g.modules)
	}

	if existing, ok := g.index[m.ID()]; ok {
		if err := existing.SetAmount(existing.Amount() + m.Amount()); err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	g.modules = append(g.modules, nil)
	copy(g.modules[index+1:], g.modules[index:])
	g.modules[index] = m
	g.index[m.ID()] = m
	m.setGroup(g)
	g.markDirty()
	g.ModuleAdded.emit(ModuleAddedEvent{Group: g, Module: m})
	return m, false, nil
}

// Remove detaches m entirely, regardless of its amount.
func (g *Group) Remove(m *ModuleInstance) error {
	i := g.IndexOf(m)
	if i < 0 {
		return NewNotFoundError(fmt.Sprintf("module %q is not in group %q", m.ID(), g.name))
	}
	g.modules = append(g.modules[:i], g.modules[i+1:]...)
	delete(g.index, m.ID())
	m.setGroup(nil)
	g.markDirty()
	g.ModuleRemoved.emit(ModuleRemovedEvent{Group: g, Module: m})
	return nil
}

// Swap exchanges the entries at positions i and j. Order only affects
// display and serialization, never aggregation.
func (g *Group) Swap(i, j int) error {
	if i < 0 || i >= len(g.modules) || j < 0 || j >= len(g.modules) {
		return NewDomainError(fmt.Sprintf("swap indices %d, %d out of range [0, %d)", i, j, len(g.modules)))
	}
	if i == j {
		return nil
	}
	g.modules[i], g.modules[j] = g.modules[j], g.modules[i]
	g.markDirty()
	return nil
}

// Contains reports whether an entry with the given definition id
// exists.
func (g *Group) Contains(definitionID string) bool {
	_, ok := g.index[definitionID]
	return ok
}

// ByID returns the entry with the given definition id.
func (g *Group) ByID(definitionID string) (*ModuleInstance, bool) {
	m, ok := g.index[definitionID]
	return m, ok
}

// Modules returns the entries in display order.
func (g *Group) Modules() []*ModuleInstance {
	return append([]*ModuleInstance(nil), g.modules...)
}

// Len returns the number of distinct entries.
func (g *Group) Len() int {
	return len(g.modules)
}

// At returns the entry at position i.
func (g *Group) At(i int) *ModuleInstance {
	return g.modules[i]
}

// IndexOf returns the position of m, or -1 when absent. Identity is the
// instance pointer, not the definition id.
func (g *Group) IndexOf(m *ModuleInstance) int {
	for i, e := range g.modules {
		if e == m {
			return i
		}
	}
	return -1
}

// Clone returns a detached deep copy of the group.
func (g *Group) Clone() *Group {
	c := NewGroup()
	c.name = g.name
	for _, m := range g.modules {
		cm := m.Clone()
		cm.setGroup(c)
		c.modules = append(c.modules, cm)
		c.index[cm.ID()] = cm
	}
	return c
}

func (g *Group) setStation(st *Station) {
	g.station = st
}

func (g *Group) markDirty() {
	if g.station != nil {
		g.station.MarkDirty()
	}
}
