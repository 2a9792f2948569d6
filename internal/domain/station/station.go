package station

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Station is the document being edited: an ordered collection of groups
// plus path and dirty state. It is the sole owner of its groups, which
// in turn own their module instances; it lives for the duration of one
// open document.
type Station struct {
	path   string
	groups []*Group
	dirty  bool

	GroupAdded   Signal[GroupAddedEvent]
	GroupRemoved Signal[GroupRemovedEvent]
}

// New creates a fresh, unsaved document holding one empty default
// group. New documents start dirty.
func New() *Station {
	st := &Station{dirty: true}
	g := NewGroup()
	g.setStation(st)
	st.groups = []*Group{g}
	return st
}

// Path returns the document path, empty for a never-saved document.
func (st *Station) Path() string {
	return st.path
}

// SetPath records the document path, appending the station file
// extension when missing.
func (st *Station) SetPath(path string) {
	if !strings.HasSuffix(path, ExtName) {
		path += ExtName
	}
	st.path = path
}

// Name returns the document display name: the file base name without
// extension, or empty for a never-saved document.
func (st *Station) Name() string {
	if st.path == "" {
		return ""
	}
	base := filepath.Base(st.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsDirty reports unsaved changes.
func (st *Station) IsDirty() bool {
	return st.dirty
}

// MarkDirty sets the dirty flag. It stays set until a successful Save;
// every mutation anywhere in the owned subtree reaches here through the
// parent chain.
func (st *Station) MarkDirty() {
	st.dirty = true
}

// Insert adds g at position index, marks dirty and fires GroupAdded.
func (st *Station) Insert(index int, g *Group) error {
	if g == nil {
		return NewDomainError("group must not be nil")
	}
	if index < 0 {
		index = 0
	}
	if index > len(st.groups) {
		index = len(st.groups)
	}
	st.groups = append(st.groups, nil)
	copy(st.groups[index+1:], st.groups[index:])
	st.groups[index] = g
	g.setStation(st)
	st.MarkDirty()
	st.GroupAdded.emit(GroupAddedEvent{Station: st, Group: g})
	return nil
}

// Append adds g at the end of the group list.
func (st *Station) Append(g *Group) error {
	return st.Insert(len(st.groups), g)
}

// Remove detaches g, marks dirty and fires GroupRemoved.
func (st *Station) Remove(g *Group) error {
	i := st.IndexOf(g)
	if i < 0 {
		return NewNotFoundError(fmt.Sprintf("group %q is not in the station", g.Name()))
	}
	st.groups = append(st.groups[:i], st.groups[i+1:]...)
	g.setStation(nil)
	st.MarkDirty()
	st.GroupRemoved.emit(GroupRemovedEvent{Station: st, Group: g})
	return nil
}

// Groups returns the groups in display order.
func (st *Station) Groups() []*Group {
	return append([]*Group(nil), st.groups...)
}

// Len returns the number of groups.
func (st *Station) Len() int {
	return len(st.groups)
}

// At returns the group at position i.
func (st *Station) At(i int) *Group {
	return st.groups[i]
}

// IndexOf returns the position of g, or -1 when absent.
func (st *Station) IndexOf(g *Group) int {
	for i, e := range st.groups {
		if e == g {
			return i
		}
	}
	return -1
}

// Save serializes the document to path (or the stored path when path is
// empty) and clears the dirty flag. On failure the in-memory state and
// the dirty flag are untouched.
func (st *Station) Save(path string) error {
	if path == "" {
		path = st.path
	}
	if path == "" {
		return NewFileWriteError("", NewDomainError("no path set"))
	}
	if !strings.HasSuffix(path, ExtName) {
		path += ExtName
	}

	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewFileWriteError(path, err)
	}

	st.path = path
	st.dirty = false
	return nil
}
