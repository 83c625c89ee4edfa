package notes

import "github.com/google/uuid"

// RenderState accumulates footnote references over one page render. It is
// created fresh per render, mutated in rendering order, and discarded with
// the request; it is never persisted or shared across renders.
//
// The outer page template reads Footnotes for the visible footnotes section
// and ReferenceIDs for back-links from each footnote to its in-content
// anchors.
type RenderState struct {
	ordered    []*Footnote
	references map[string][]string
}

// NewRenderState constructs an empty render state.
func NewRenderState() *RenderState {
	return &RenderState{}
}

// Index returns the 1-based display index for fn, appending it to the ordered
// list on first sight. Indices are first-seen order, monotonically increasing
// with no gaps; repeated references reuse the original index.
func (s *RenderState) Index(fn *Footnote) int {
	for i, existing := range s.ordered {
		if existing.ID == fn.ID {
			return i + 1
		}
	}
	s.ordered = append(s.ordered, fn)
	return len(s.ordered)
}

// Occurrences reports how many anchors have been generated so far for the
// footnote identified by key. The count doubles as the 0-based occurrence
// suffix of the next anchor id.
func (s *RenderState) Occurrences(key string) int {
	return len(s.references[key])
}

// AddReference records an anchor id generated for the footnote identified by
// key, preserving document order.
func (s *RenderState) AddReference(key, anchorID string) {
	if s.references == nil {
		s.references = make(map[string][]string)
	}
	s.references[key] = append(s.references[key], anchorID)
}

// Footnotes returns the referenced footnotes in first-appearance order.
func (s *RenderState) Footnotes() []*Footnote {
	out := make([]*Footnote, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// ReferenceIDs returns the ordered anchor ids generated for the supplied
// footnote identifier, or nil when the identifier is unknown or malformed.
func (s *RenderState) ReferenceIDs(identifier string) []string {
	uid, err := uuid.Parse(identifier)
	if err != nil {
		return nil
	}
	ids, ok := s.references[uid.String()]
	if !ok {
		return nil
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
