package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// ChangeModuleAmountOperation sets a module entry's amount; undo
// restores the amount captured on first apply.
type ChangeModuleAmountOperation struct {
	module    *station.ModuleInstance
	newAmount int

	prevAmount int
	applied    bool
}

// NewChangeModuleAmountOperation creates the amount change.
func NewChangeModuleAmountOperation(m *station.ModuleInstance, newAmount int) *ChangeModuleAmountOperation {
	return &ChangeModuleAmountOperation{module: m, newAmount: newAmount}
}

func (op *ChangeModuleAmountOperation) Attach(ctx *Context) bool {
	return op.module != nil && op.newAmount > 0
}

func (op *ChangeModuleAmountOperation) Apply() bool {
	if !op.applied {
		op.prevAmount = op.module.Amount()
		op.applied = true
	}
	return op.module.SetAmount(op.newAmount) == nil
}

func (op *ChangeModuleAmountOperation) Revert() bool {
	return op.module.SetAmount(op.prevAmount) == nil
}
