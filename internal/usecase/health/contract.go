package health

import (
	"context"

	"github.com/kailas-cloud/collabrec/internal/domain/generation"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// GenerationSource exposes the published corpus generation.
type GenerationSource interface {
	Current() *generation.Generation
}
