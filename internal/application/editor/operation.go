package editor

import (
	"github.com/stationforge/station-planner/internal/domain/catalog"
	"github.com/stationforge/station-planner/internal/domain/station"
)

// Operation is one reversible edit. Lifecycle: construct, Attach
// against the current document context, then Apply and Revert
// alternate through the undo/redo stacks.
//
// Attach runs before every Apply, including redo, because the document
// may have changed shape since the last run. An operation resolves the
// selection context on its first attachment only; once applied it holds
// direct references, so later attachments succeed unconditionally and
// redo is structurally deterministic regardless of current selection.
// Attach returning false is normal flow (nothing selected, empty
// clipboard), not an error.
type Operation interface {
	Attach(ctx *Context) bool
	Apply() bool
	Revert() bool
}

// Context is the document state an operation attaches against.
type Context struct {
	Station   *station.Station
	Catalog   *catalog.Catalog
	Selection Selection
	Clipboard Clipboard

	selectFn func(Selection)
}

// Select replaces the editor selection, when the context carries one.
func (c *Context) Select(sel Selection) {
	if c.selectFn != nil {
		c.selectFn(sel)
	}
}
