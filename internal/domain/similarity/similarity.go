// Package similarity holds the pure scoring functions used by the recommender.
// Every function is deterministic, commutative and bounded to [0,1].
package similarity

import (
	"math"
	"strings"

	"github.com/kailas-cloud/collabrec/internal/domain/feature"
)

// Cosine returns the cosine of the angle between a and b.
// Returns 0 when either vector has zero norm.
func Cosine(a, b feature.Vector) float64 {
	na2, nb2 := a.SquaredNorm(), b.SquaredNorm()
	if na2 == 0 || nb2 == 0 {
		return 0
	}
	// Only shared terms add to the sum and they are visited in lexical order
	// whichever side is smaller, so Cosine(a, b) == Cosine(b, a) exactly.
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	var dot float64
	for _, t := range small.Terms() {
		dot += small[t] * large.Weight(t)
	}
	return clamp(dot / math.Sqrt(na2*nb2))
}

// Set is a set of normalized keywords.
type Set map[string]struct{}

// NewSet builds a set from items, lowercased and trimmed. Empty items are dropped.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		it = strings.ToLower(strings.TrimSpace(it))
		if it != "" {
			s[it] = struct{}{}
		}
	}
	return s
}

// Has reports whether item is a member.
func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Union returns a new set with the members of s and o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for k := range s {
		out[k] = struct{}{}
	}
	for k := range o {
		out[k] = struct{}{}
	}
	return out
}

// Jaccard returns |A∩B| / |A∪B|, and 0 when both sets are empty.
func Jaccard(a, b Set) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	inter := 0
	for k := range small {
		if large.Has(k) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return clamp(float64(inter) / float64(union))
}

// clamp pins floating-point drift into [0,1].
func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
