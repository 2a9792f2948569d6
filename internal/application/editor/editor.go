package editor

import (
	"github.com/stationforge/station-planner/internal/application/common"
	"github.com/stationforge/station-planner/internal/domain/catalog"
	"github.com/stationforge/station-planner/internal/domain/station"
)

// DefaultHistoryLimit bounds the undo history; the oldest operations
// fall off once exceeded.
const DefaultHistoryLimit = 1024

// Editor is the command surface the presentation layer drives. It owns
// the undo/redo stacks and the current selection, and runs entirely on
// the caller's goroutine.
type Editor struct {
	station   *station.Station
	catalog   *catalog.Catalog
	clipboard Clipboard
	logger    common.Logger

	selection    Selection
	done         []Operation
	undone       []Operation
	historyLimit int
}

// New creates an editor over an open document. A nil clipboard gets an
// in-memory one, a nil logger a no-op one, and a non-positive history
// limit the default.
func New(cat *catalog.Catalog, st *station.Station, clipboard Clipboard, logger common.Logger, historyLimit int) *Editor {
	if clipboard == nil {
		clipboard = NewMemoryClipboard()
	}
	if logger == nil {
		logger = common.NewNopLogger()
	}
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &Editor{
		station:      st,
		catalog:      cat,
		clipboard:    clipboard,
		logger:       logger,
		historyLimit: historyLimit,
	}
}

// Station returns the open document.
func (e *Editor) Station() *station.Station {
	return e.station
}

// Catalog returns the reference data.
func (e *Editor) Catalog() *catalog.Catalog {
	return e.catalog
}

// Selection returns the current selection.
func (e *Editor) Selection() Selection {
	return e.selection
}

// SetSelection replaces the current selection; the presentation layer
// calls this as its cursor moves.
func (e *Editor) SetSelection(sel Selection) {
	e.selection = sel
}

// DoOperation attaches and applies op. An operation that declines to
// attach (nothing selected, empty clipboard) is silently skipped; a
// successfully applied operation is pushed onto the done stack and
// clears the redo stack.
func (e *Editor) DoOperation(op Operation) bool {
	if op == nil {
		return false
	}
	if !op.Attach(e.context()) {
		e.logger.Log(common.LevelDebug, "operation not applicable", nil)
		return false
	}
	if !op.Apply() {
		e.logger.Log(common.LevelWarn, "operation failed to apply", nil)
		return false
	}

	e.done = append(e.done, op)
	if len(e.done) > e.historyLimit {
		e.done = e.done[len(e.done)-e.historyLimit:]
	}
	e.undone = nil
	return true
}

// Undo reverses the newest applied operation.
func (e *Editor) Undo() bool {
	if len(e.done) == 0 {
		return false
	}
	op := e.done[len(e.done)-1]
	e.done = e.done[:len(e.done)-1]
	if !op.Revert() {
		e.logger.Log(common.LevelWarn, "operation failed to revert", nil)
		return false
	}
	e.undone = append(e.undone, op)
	return true
}

// Redo re-applies the newest undone operation. The operation re-attaches
// first; applied operations attach from their cached references, so the
// current selection does not matter.
func (e *Editor) Redo() bool {
	if len(e.undone) == 0 {
		return false
	}
	op := e.undone[len(e.undone)-1]
	e.undone = e.undone[:len(e.undone)-1]
	if !op.Attach(e.context()) || !op.Apply() {
		e.logger.Log(common.LevelWarn, "operation failed to redo", nil)
		return false
	}
	e.done = append(e.done, op)
	return true
}

// CanUndo reports a non-empty done stack.
func (e *Editor) CanUndo() bool {
	return len(e.done) > 0
}

// CanRedo reports a non-empty undone stack.
func (e *Editor) CanRedo() bool {
	return len(e.undone) > 0
}

// AddGroup inserts a new empty group relative to the selection.
func (e *Editor) AddGroup() bool {
	return e.DoOperation(NewAddGroupOperation())
}

// Remove removes the current selection.
func (e *Editor) Remove() bool {
	return e.DoOperation(NewRemoveSelectionOperation())
}

// Copy serializes a homogeneous selection onto the clipboard. It is not
// an operation: copying mutates nothing and is not undoable.
func (e *Editor) Copy() bool {
	sel := e.selection
	if !sel.Homogeneous() {
		return false
	}

	var payload station.ClipboardPayload
	var err error
	if len(sel.Groups) > 0 {
		payload, err = station.EncodeGroups(sel.Groups)
	} else {
		payload, err = station.EncodeModules(sel.Modules)
	}
	if err != nil {
		e.logger.Log(common.LevelWarn, "failed to serialize clipboard payload", map[string]interface{}{"error": err.Error()})
		return false
	}
	e.clipboard.Set(payload)
	return true
}

// Cut copies the selection, then removes it as one undoable operation.
func (e *Editor) Cut() bool {
	if !e.Copy() {
		return false
	}
	return e.Remove()
}

// Paste re-materializes the clipboard at the selection.
func (e *Editor) Paste() bool {
	return e.DoOperation(NewPasteOperation())
}

func (e *Editor) context() *Context {
	return &Context{
		Station:   e.station,
		Catalog:   e.catalog,
		Selection: e.selection,
		Clipboard: e.clipboard,
		selectFn:  e.SetSelection,
	}
}
