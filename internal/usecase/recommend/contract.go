package recommend

import (
	"context"

	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// GenerationSource returns the currently published generation. Never nil.
type GenerationSource interface {
	Current() *generation.Generation
}

// UserReader reads user profiles.
type UserReader interface {
	Get(ctx context.Context, id string) (domuser.User, error)
	ListByRole(ctx context.Context, role domuser.Role) ([]domuser.User, error)
}

// ProjectReader reads the projects a creator runs.
type ProjectReader interface {
	ListActiveByCreator(ctx context.Context, userID string) ([]domproject.Project, error)
}
