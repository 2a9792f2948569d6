package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// PasteOperation re-materializes clipboard content through the catalog
// and inserts it at an index captured from the selection. Group
// payloads insert whole groups after the selected group; module
// payloads insert entries at the selection's insertion point, merging
// with existing entries like any other append.
type PasteOperation struct {
	station *station.Station

	groups     []*station.Group
	groupIndex int

	modules     []*station.ModuleInstance
	moduleGroup *station.Group
	moduleIndex int
	added       []addedModule

	applied bool
}

// NewPasteOperation creates the paste.
func NewPasteOperation() *PasteOperation {
	return &PasteOperation{}
}

func (op *PasteOperation) Attach(ctx *Context) bool {
	if op.applied {
		return true
	}
	if ctx.Clipboard == nil {
		return false
	}
	payload, ok := ctx.Clipboard.Get()
	if !ok {
		return false
	}

	switch payload.MIME {
	case station.MIMEGroups:
		groups, err := station.DecodeGroups(ctx.Catalog, payload)
		if err != nil || len(groups) == 0 {
			return false
		}
		op.station = ctx.Station
		op.groups = groups
		op.groupIndex = groupInsertIndex(ctx.Station, ctx.Selection)
		return true

	case station.MIMEModules:
		modules, err := station.DecodeModules(ctx.Catalog, payload)
		if err != nil || len(modules) == 0 {
			return false
		}
		g, index, ok := ctx.Selection.insertionPoint()
		if !ok {
			return false
		}
		op.modules = modules
		op.moduleGroup = g
		op.moduleIndex = index
		return true
	}
	return false
}

func (op *PasteOperation) Apply() bool {
	if len(op.groups) > 0 {
		for i, g := range op.groups {
			if op.station.Insert(op.groupIndex+i, g) != nil {
				return false
			}
		}
		op.applied = true
		return true
	}

	if op.applied {
		for i, a := range op.added {
			if !a.redo(op.moduleGroup, op.moduleIndex+i) {
				return false
			}
		}
		return true
	}

	for i, m := range op.modules {
		prev := 0
		if existing, ok := op.moduleGroup.ByID(m.ID()); ok {
			prev = existing.Amount()
		}
		delta := m.Amount()
		placed, merged, err := op.moduleGroup.Insert(op.moduleIndex+i, m)
		if err != nil {
			return false
		}
		op.added = append(op.added, addedModule{
			instance:   placed,
			merged:     merged,
			prevAmount: prev,
			delta:      delta,
		})
	}
	op.applied = true
	return true
}

func (op *PasteOperation) Revert() bool {
	for i := len(op.groups) - 1; i >= 0; i-- {
		if op.station.Remove(op.groups[i]) != nil {
			return false
		}
	}
	for i := len(op.added) - 1; i >= 0; i-- {
		if !op.added[i].revert(op.moduleGroup) {
			return false
		}
	}
	return true
}
