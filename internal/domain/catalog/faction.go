package catalog

// LocalizedText maps locale codes (e.g. "en_US") to display strings.
type LocalizedText map[string]string

// In returns the text for the requested locale, falling back to the
// default locale when the requested one is missing.
func (t LocalizedText) In(locale, fallback string) string {
	if s, ok := t[locale]; ok {
		return s
	}
	return t[fallback]
}

// Faction is an immutable catalog entry describing a game faction.
type Faction struct {
	ID   string
	Name LocalizedText
}
