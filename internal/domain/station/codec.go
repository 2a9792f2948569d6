package station

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stationforge/station-planner/internal/domain/catalog"
)

// Wire format:
//
//	{
//	  "version": "0.0.6",
//	  "groups": [
//	    {"name": "...", "modules": [{"id": "...", "amount": 1}, ...]},
//	    ...
//	  ]
//	}

type moduleRecord struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

type groupRecord struct {
	Name    string         `json:"name"`
	Modules []moduleRecord `json:"modules"`
}

type stationRecord struct {
	Version string         `json:"version"`
	Groups  *[]groupRecord `json:"groups"`
}

// Encode serializes the document with the current record version.
func Encode(st *Station) ([]byte, error) {
	groups := make([]groupRecord, 0, st.Len())
	for _, g := range st.groups {
		groups = append(groups, encodeGroup(g))
	}
	rec := stationRecord{Version: RecordVersion.String(), Groups: &groups}
	return json.Marshal(rec)
}

func encodeGroup(g *Group) groupRecord {
	modules := make([]moduleRecord, 0, g.Len())
	for _, m := range g.modules {
		modules = append(modules, moduleRecord{ID: m.ID(), Amount: m.Amount()})
	}
	return groupRecord{Name: g.name, Modules: modules}
}

// Decode builds a clean (non-dirty) document from serialized bytes.
// Module ids resolve against the catalog; entries sharing a definition
// id within one group merge by summing amounts, as on any append.
func Decode(cat *catalog.Catalog, path string, data []byte) (*Station, error) {
	var rec stationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, NewJSONFormatError(path, err)
	}

	version, err := ParseVersion(rec.Version)
	if err != nil {
		return nil, NewStructureError(path, err.Error())
	}
	if version.Compare(RecordVersion) > 0 {
		return nil, NewVersionTooNewError(path, version)
	}
	if rec.Groups == nil {
		return nil, NewStructureError(path, "missing \"groups\"")
	}

	st := &Station{path: path}
	for gi, gr := range *rec.Groups {
		g, err := decodeGroup(cat, path, gi, gr)
		if err != nil {
			return nil, err
		}
		g.setStation(st)
		st.groups = append(st.groups, g)
	}
	return st, nil
}

func decodeGroup(cat *catalog.Catalog, path string, gi int, gr groupRecord) (*Group, error) {
	g := NewGroup()
	g.name = gr.Name
	for mi, mr := range gr.Modules {
		if mr.ID == "" {
			return nil, NewStructureError(path, fmt.Sprintf("group %d module %d has no id", gi, mi))
		}
		m, err := NewModuleInstanceByID(cat, mr.ID, mr.Amount)
		if err != nil {
			return nil, NewStructureError(path, fmt.Sprintf("group %d module %d: %v", gi, mi, err))
		}
		if existing, ok := g.index[m.ID()]; ok {
			existing.amount += m.amount
			continue
		}
		m.setGroup(g)
		g.modules = append(g.modules, m)
		g.index[m.ID()] = m
	}
	return g, nil
}

// Load reads and decodes a station file. On any failure no station is
// constructed.
func Load(cat *catalog.Catalog, path string) (*Station, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFileReadError(path, err)
	}
	return Decode(cat, path, data)
}
