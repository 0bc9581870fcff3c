package teams

import (
	"sort"
	"strings"
)

// Registry resolves team ids to abbreviations and reports which teams are tracked.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	byID    map[int]string
	byAbbr  map[string]int
	tracked map[int]struct{}
}

// NewRegistry builds a registry over the given identities. When tracked is empty every
// identity is tracked; otherwise only the listed abbreviations are. Abbreviations are
// matched case-insensitively and unknown ones are returned so callers can report them.
func NewRegistry(identities []Identity, tracked []string) (*Registry, []string) {
	r := &Registry{
		byID:    make(map[int]string, len(identities)),
		byAbbr:  make(map[string]int, len(identities)),
		tracked: make(map[int]struct{}, len(identities)),
	}
	for _, id := range identities {
		abbr := strings.ToUpper(strings.TrimSpace(id.Abbreviation))
		if abbr == "" {
			continue
		}
		r.byID[id.ID] = abbr
		r.byAbbr[abbr] = id.ID
	}

	var unknown []string
	for _, raw := range tracked {
		abbr := strings.ToUpper(strings.TrimSpace(raw))
		if abbr == "" {
			continue
		}
		teamID, ok := r.byAbbr[abbr]
		if !ok {
			unknown = append(unknown, raw)
			continue
		}
		r.tracked[teamID] = struct{}{}
	}
	if len(r.tracked) == 0 {
		for teamID := range r.byID {
			r.tracked[teamID] = struct{}{}
		}
	}
	return r, unknown
}

// Default returns a registry tracking every NBA franchise.
func Default() *Registry {
	r, _ := NewRegistry(franchises, nil)
	return r
}

// Abbreviation returns the abbreviation for a known team id.
func (r *Registry) Abbreviation(teamID int) (string, bool) {
	if r == nil {
		return "", false
	}
	abbr, ok := r.byID[teamID]
	return abbr, ok
}

// AbbreviationOr returns the abbreviation for teamID or fallback when unknown.
func (r *Registry) AbbreviationOr(teamID int, fallback string) string {
	if abbr, ok := r.Abbreviation(teamID); ok {
		return abbr
	}
	return fallback
}

// IsTracked reports whether teamID belongs to the tracked set.
func (r *Registry) IsTracked(teamID int) bool {
	if r == nil {
		return false
	}
	_, ok := r.tracked[teamID]
	return ok
}

// TrackedAbbreviation returns the abbreviation of a tracked team.
func (r *Registry) TrackedAbbreviation(teamID int) (string, bool) {
	if !r.IsTracked(teamID) {
		return "", false
	}
	return r.Abbreviation(teamID)
}

// Tracked lists the tracked identities ordered by abbreviation.
func (r *Registry) Tracked() []Identity {
	if r == nil {
		return nil
	}
	out := make([]Identity, 0, len(r.tracked))
	for teamID := range r.tracked {
		out = append(out, Identity{ID: teamID, Abbreviation: r.byID[teamID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Abbreviation < out[j].Abbreviation })
	return out
}
