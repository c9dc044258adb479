package corpus

import (
	"sync/atomic"

	"github.com/kailas-cloud/collabrec/internal/domain/generation"
)

// Holder publishes the current generation. Readers load it once per request.
type Holder struct {
	current atomic.Pointer[generation.Generation]
}

// NewHolder creates a Holder with the empty generation installed.
func NewHolder() *Holder {
	h := &Holder{}
	h.current.Store(generation.Empty())
	return h
}

// Current returns the published generation. Never nil.
func (h *Holder) Current() *generation.Generation {
	return h.current.Load()
}

// Swap publishes g and returns the previous generation. A nil g is ignored.
func (h *Holder) Swap(g *generation.Generation) *generation.Generation {
	if g == nil {
		return h.Current()
	}
	return h.current.Swap(g)
}
