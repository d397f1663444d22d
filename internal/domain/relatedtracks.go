package domain

import "sort"

// RelatedTracks is the symmetric related-track relation: eligibility may
// span tracks adjacent to the student's own (e.g. Data Science and
// Mathematics). It is external configuration injected into the engine,
// never hardcoded in algorithmic code.
type RelatedTracks struct {
	related map[string]map[string]bool
}

// NewRelatedTracks builds the relation from a track -> related-tracks
// mapping and normalizes it to its symmetric closure, so lookups do not
// depend on which side of a pair the configuration listed.
func NewRelatedTracks(pairs map[string][]string) *RelatedTracks {
	r := &RelatedTracks{related: make(map[string]map[string]bool)}
	for track, others := range pairs {
		for _, other := range others {
			if other == track {
				continue
			}
			r.add(track, other)
			r.add(other, track)
		}
	}
	return r
}

func (r *RelatedTracks) add(a, b string) {
	if r.related[a] == nil {
		r.related[a] = make(map[string]bool)
	}
	r.related[a][b] = true
}

// Related reports whether two tracks are related. A track is not considered
// related to itself.
func (r *RelatedTracks) Related(a, b string) bool {
	if r == nil {
		return false
	}
	return r.related[a][b]
}

// RelatedTo returns the tracks related to the given track, sorted.
func (r *RelatedTracks) RelatedTo(track string) []string {
	if r == nil {
		return nil
	}
	set := r.related[track]
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
