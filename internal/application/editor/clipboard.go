package editor

import "github.com/stationforge/station-planner/internal/domain/station"

// Clipboard is the port to whatever clipboard the shell provides.
type Clipboard interface {
	Set(p station.ClipboardPayload)
	Get() (station.ClipboardPayload, bool)
}

// MemoryClipboard is the in-process clipboard used headless and in
// tests.
type MemoryClipboard struct {
	payload *station.ClipboardPayload
}

// NewMemoryClipboard creates an empty clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) Set(p station.ClipboardPayload) {
	c.payload = &p
}

func (c *MemoryClipboard) Get() (station.ClipboardPayload, bool) {
	if c.payload == nil {
		return station.ClipboardPayload{}, false
	}
	return *c.payload, true
}
