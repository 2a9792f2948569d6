package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// Selection is the editor's current cursor context: the groups and
// module entries the presentation layer reports as selected.
type Selection struct {
	Groups  []*station.Group
	Modules []*station.ModuleInstance
}

// SelectGroup builds a single-group selection.
func SelectGroup(g *station.Group) Selection {
	return Selection{Groups: []*station.Group{g}}
}

// SelectModule builds a single-module selection.
func SelectModule(m *station.ModuleInstance) Selection {
	return Selection{Modules: []*station.ModuleInstance{m}}
}

// IsEmpty reports an empty selection.
func (s Selection) IsEmpty() bool {
	return len(s.Groups) == 0 && len(s.Modules) == 0
}

// SingleGroup returns the selected group when exactly one group and
// nothing else is selected.
func (s Selection) SingleGroup() (*station.Group, bool) {
	if len(s.Groups) == 1 && len(s.Modules) == 0 {
		return s.Groups[0], true
	}
	return nil, false
}

// SingleModule returns the selected module when exactly one module and
// nothing else is selected.
func (s Selection) SingleModule() (*station.ModuleInstance, bool) {
	if len(s.Modules) == 1 && len(s.Groups) == 0 {
		return s.Modules[0], true
	}
	return nil, false
}

// Homogeneous reports whether the selection is non-empty and holds only
// groups or only modules. Copy and cut require a homogeneous selection.
func (s Selection) Homogeneous() bool {
	if s.IsEmpty() {
		return false
	}
	return len(s.Groups) == 0 || len(s.Modules) == 0
}

// insertionPoint resolves where new content goes: into the selected
// group at the top, or into a selected module's group right after it.
func (s Selection) insertionPoint() (*station.Group, int, bool) {
	if g, ok := s.SingleGroup(); ok {
		return g, 0, true
	}
	if m, ok := s.SingleModule(); ok {
		g := m.Group()
		if g == nil {
			return nil, 0, false
		}
		return g, g.IndexOf(m) + 1, true
	}
	return nil, 0, false
}
