package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// SwapModulesOperation exchanges two entries of a group, moving the
// selection with the entry that travelled.
type SwapModulesOperation struct {
	group *station.Group
	i     int
	j     int

	ctx *Context
}

// NewSwapModulesOperation creates the swap of positions i and j.
func NewSwapModulesOperation(g *station.Group, i, j int) *SwapModulesOperation {
	return &SwapModulesOperation{group: g, i: i, j: j}
}

func (op *SwapModulesOperation) Attach(ctx *Context) bool {
	op.ctx = ctx
	if op.group == nil {
		return false
	}
	n := op.group.Len()
	return op.i >= 0 && op.i < n && op.j >= 0 && op.j < n && op.i != op.j
}

func (op *SwapModulesOperation) Apply() bool {
	if op.group.Swap(op.i, op.j) != nil {
		return false
	}
	op.ctx.Select(SelectModule(op.group.At(op.j)))
	return true
}

func (op *SwapModulesOperation) Revert() bool {
	if op.group.Swap(op.i, op.j) != nil {
		return false
	}
	op.ctx.Select(SelectModule(op.group.At(op.i)))
	return true
}
