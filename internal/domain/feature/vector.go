package feature

import (
	"math"
	"sort"
)

// Vector maps a term to its weight. A missing term weighs 0.
type Vector map[string]float64

// Weight returns the weight of term, 0 when absent.
func (v Vector) Weight(term string) float64 { return v[term] }

// IsEmpty reports whether the vector has no non-zero weights.
func (v Vector) IsEmpty() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

// SquaredNorm returns the sum of squared weights, accumulated in term order
// so that equal vectors always give bit-identical results.
func (v Vector) SquaredNorm() float64 {
	var sum float64
	for _, t := range v.Terms() {
		w := v[t]
		sum += w * w
	}
	return sum
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Terms returns the terms in lexical order.
func (v Vector) Terms() []string {
	out := make([]string, 0, len(v))
	for t := range v {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
