package station

import (
	"encoding/json"

	"github.com/stationforge/station-planner/internal/domain/catalog"
)

// Clipboard MIME types. The payload kind decides whether a paste
// re-materializes whole groups or module entries.
const (
	MIMEGroups  = "application/x-station-planner.groups+json"
	MIMEModules = "application/x-station-planner.modules+json"
)

// ClipboardPayload is a MIME-tagged JSON array of serialized groups or
// serialized module entries, using the same shapes as the file format.
type ClipboardPayload struct {
	MIME string
	Data []byte
}

// EncodeGroups packs groups for the clipboard.
func EncodeGroups(groups []*Group) (ClipboardPayload, error) {
	recs := make([]groupRecord, 0, len(groups))
	for _, g := range groups {
		recs = append(recs, encodeGroup(g))
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return ClipboardPayload{}, err
	}
	return ClipboardPayload{MIME: MIMEGroups, Data: data}, nil
}

// EncodeModules packs module entries for the clipboard.
func EncodeModules(modules []*ModuleInstance) (ClipboardPayload, error) {
	recs := make([]moduleRecord, 0, len(modules))
	for _, m := range modules {
		recs = append(recs, moduleRecord{ID: m.ID(), Amount: m.Amount()})
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return ClipboardPayload{}, err
	}
	return ClipboardPayload{MIME: MIMEModules, Data: data}, nil
}

// DecodeGroups re-materializes clipboard groups through the catalog.
// Payloads of another MIME type or with stale ids fail.
func DecodeGroups(cat *catalog.Catalog, p ClipboardPayload) ([]*Group, error) {
	if p.MIME != MIMEGroups {
		return nil, NewDomainError("clipboard does not hold groups")
	}
	var recs []groupRecord
	if err := json.Unmarshal(p.Data, &recs); err != nil {
		return nil, NewDomainError("malformed clipboard payload: " + err.Error())
	}
	groups := make([]*Group, 0, len(recs))
	for gi, gr := range recs {
		g, err := decodeGroup(cat, "", gi, gr)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// DecodeModules re-materializes clipboard module entries through the
// catalog.
func DecodeModules(cat *catalog.Catalog, p ClipboardPayload) ([]*ModuleInstance, error) {
	if p.MIME != MIMEModules {
		return nil, NewDomainError("clipboard does not hold modules")
	}
	var recs []moduleRecord
	if err := json.Unmarshal(p.Data, &recs); err != nil {
		return nil, NewDomainError("malformed clipboard payload: " + err.Error())
	}
	modules := make([]*ModuleInstance, 0, len(recs))
	for _, mr := range recs {
		m, err := NewModuleInstanceByID(cat, mr.ID, mr.Amount)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}
