package corpus

import (
	"context"

	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// ProjectSource reads projects and tasks.
type ProjectSource interface {
	ListActive(ctx context.Context) ([]domproject.Project, error)
	ListTasks(ctx context.Context) ([]domproject.Task, error)
}

// UserSource reads user profiles.
type UserSource interface {
	ListByRole(ctx context.Context, role domuser.Role) ([]domuser.User, error)
}

// ApplicationSource reads project applications.
type ApplicationSource interface {
	ListEngaged(ctx context.Context) ([]domapp.Application, error)
}

// SnapshotLoader produces the raw input of a generation.
type SnapshotLoader interface {
	Load(ctx context.Context) (Snapshot, error)
}
