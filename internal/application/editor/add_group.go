package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// AddGroupOperation inserts a freshly created empty group after the
// selection (or at the end of the station when nothing relevant is
// selected). Undo removes that exact group; redo re-inserts it.
type AddGroupOperation struct {
	station *station.Station
	index   int
	group   *station.Group

	applied bool
	ctx     *Context
}

// NewAddGroupOperation creates the operation.
func NewAddGroupOperation() *AddGroupOperation {
	return &AddGroupOperation{}
}

func (op *AddGroupOperation) Attach(ctx *Context) bool {
	op.ctx = ctx
	if op.applied {
		return true
	}
	op.station = ctx.Station
	op.index = groupInsertIndex(ctx.Station, ctx.Selection)
	return true
}

func (op *AddGroupOperation) Apply() bool {
	if op.group == nil {
		op.group = station.NewGroup()
	}
	if op.station.Insert(op.index, op.group) != nil {
		return false
	}
	op.applied = true
	op.ctx.Select(SelectGroup(op.group))
	return true
}

func (op *AddGroupOperation) Revert() bool {
	return op.station.Remove(op.group) == nil
}

// groupInsertIndex resolves where a new or pasted group goes relative
// to the selection.
func groupInsertIndex(st *station.Station, sel Selection) int {
	if g, ok := sel.SingleGroup(); ok {
		if i := st.IndexOf(g); i >= 0 {
			return i + 1
		}
	}
	if m, ok := sel.SingleModule(); ok {
		if m.Group() != nil {
			if i := st.IndexOf(m.Group()); i >= 0 {
				return i + 1
			}
		}
	}
	return st.Len()
}
