package domain

import "strings"

// DefaultCredits is assumed when a catalog record omits the credits field.
const DefaultCredits = 3

// Module is one catalog entry. Code is the primary key, unique across the
// catalog and case-normalized via NormalizeCode.
type Module struct {
	Code          string
	Name          string
	Tracks        []string
	Prerequisites []string
	Credits       int
}

// NormalizeCode canonicalizes a module code: trimmed and upper-cased.
// All engine entry points normalize incoming codes so that lookups never
// depend on the caller's casing.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// HasTrack reports whether the module belongs to the given track.
func (m *Module) HasTrack(track string) bool {
	for _, t := range m.Tracks {
		if t == track {
			return true
		}
	}
	return false
}

// HasAnyTrack reports whether the module belongs to any of the given tracks.
func (m *Module) HasAnyTrack(tracks []string) bool {
	for _, t := range tracks {
		if m.HasTrack(t) {
			return true
		}
	}
	return false
}
