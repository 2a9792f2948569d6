package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// ChangeGroupNameOperation renames a group. The old name travels with
// the operation so undo restores it exactly.
type ChangeGroupNameOperation struct {
	group   *station.Group
	oldName string
	newName string
}

// NewChangeGroupNameOperation creates the rename.
func NewChangeGroupNameOperation(g *station.Group, oldName, newName string) *ChangeGroupNameOperation {
	return &ChangeGroupNameOperation{group: g, oldName: oldName, newName: newName}
}

func (op *ChangeGroupNameOperation) Attach(ctx *Context) bool {
	return op.group != nil
}

func (op *ChangeGroupNameOperation) Apply() bool {
	op.group.SetName(op.newName)
	return true
}

func (op *ChangeGroupNameOperation) Revert() bool {
	op.group.SetName(op.oldName)
	return true
}
