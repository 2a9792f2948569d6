package editor

import (
	"sort"

	"github.com/stationforge/station-planner/internal/domain/station"
)

type removedGroup struct {
	group *station.Group
	index int
}

type removedModule struct {
	module *station.ModuleInstance
	group  *station.Group
	index  int
}

// RemoveSelectionOperation removes the selected module entries (fully,
// whatever their amount) and the selected groups, both in ascending
// captured index order. Undo re-inserts groups first, then modules, at
// their original indices.
type RemoveSelectionOperation struct {
	station *station.Station
	groups  []removedGroup
	modules []removedModule

	attached bool
}

// NewRemoveSelectionOperation creates the operation; the items come
// from the selection at first attach.
func NewRemoveSelectionOperation() *RemoveSelectionOperation {
	return &RemoveSelectionOperation{}
}

func (op *RemoveSelectionOperation) Attach(ctx *Context) bool {
	if op.attached {
		return true
	}
	sel := ctx.Selection
	if sel.IsEmpty() {
		return false
	}

	op.station = ctx.Station
	for _, g := range sel.Groups {
		index := ctx.Station.IndexOf(g)
		if index < 0 {
			return false
		}
		op.groups = append(op.groups, removedGroup{group: g, index: index})
	}
	for _, m := range sel.Modules {
		g := m.Group()
		if g == nil {
			return false
		}
		index := g.IndexOf(m)
		if index < 0 {
			return false
		}
		op.modules = append(op.modules, removedModule{module: m, group: g, index: index})
	}

	sort.Slice(op.groups, func(i, j int) bool { return op.groups[i].index < op.groups[j].index })
	sort.Slice(op.modules, func(i, j int) bool { return op.modules[i].index < op.modules[j].index })

	op.attached = true
	return true
}

func (op *RemoveSelectionOperation) Apply() bool {
	for _, m := range op.modules {
		if m.group.Remove(m.module) != nil {
			return false
		}
	}
	for _, g := range op.groups {
		if op.station.Remove(g.group) != nil {
			return false
		}
	}
	return true
}

func (op *RemoveSelectionOperation) Revert() bool {
	for _, g := range op.groups {
		if op.station.Insert(g.index, g.group) != nil {
			return false
		}
	}
	for _, m := range op.modules {
		if _, _, err := m.group.Insert(m.index, m.module); err != nil {
			return false
		}
	}
	return true
}
