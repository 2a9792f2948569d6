package editor

import (
	"github.com/stationforge/station-planner/internal/domain/catalog"
	"github.com/stationforge/station-planner/internal/domain/station"
)

// addedModule records what one insertion actually did, so Revert and
// redo can reproduce it exactly. A merge bumps an existing entry by
// delta units; a plain insert adds a new entry.
type addedModule struct {
	instance   *station.ModuleInstance
	merged     bool
	prevAmount int
	delta      int
}

func (a addedModule) redo(g *station.Group, index int) bool {
	if a.merged {
		return a.instance.SetAmount(a.prevAmount+a.delta) == nil
	}
	_, _, err := g.Insert(index, a.instance)
	return err == nil
}

func (a addedModule) revert(g *station.Group) bool {
	if a.merged {
		return a.instance.SetAmount(a.prevAmount) == nil
	}
	return g.Remove(a.instance) == nil
}

// AddModuleOperation places one unit of each given definition into the
// group resolved from the selection at first attach.
type AddModuleOperation struct {
	defs []*catalog.ModuleDefinition

	group   *station.Group
	index   int
	added   []addedModule
	applied bool
}

// NewAddModuleOperation creates the operation for the given definitions.
func NewAddModuleOperation(defs ...*catalog.ModuleDefinition) *AddModuleOperation {
	return &AddModuleOperation{defs: defs}
}

func (op *AddModuleOperation) Attach(ctx *Context) bool {
	if op.applied {
		return op.group != nil
	}
	if len(op.defs) == 0 {
		return false
	}
	g, index, ok := ctx.Selection.insertionPoint()
	if !ok {
		return false
	}
	op.group = g
	op.index = index
	return true
}

func (op *AddModuleOperation) Apply() bool {
	if op.applied {
		for i, a := range op.added {
			if !a.redo(op.group, op.index+i) {
				return false
			}
		}
		return true
	}

	for i, def := range op.defs {
		inst, err := station.NewModuleInstance(def, 1)
		if err != nil {
			return false
		}
		prev := 0
		if existing, ok := op.group.ByID(def.ID); ok {
			prev = existing.Amount()
		}
		placed, merged, err := op.group.Insert(op.index+i, inst)
		if err != nil {
			return false
		}
		op.added = append(op.added, addedModule{
			instance:   placed,
			merged:     merged,
			prevAmount: prev,
			delta:      1,
		})
	}
	op.applied = true
	return true
}

func (op *AddModuleOperation) Revert() bool {
	for i := len(op.added) - 1; i >= 0; i-- {
		if !op.added[i].revert(op.group) {
			return false
		}
	}
	return true
}
