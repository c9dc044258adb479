package corpus

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// Snapshot is the store content one generation is built from.
type Snapshot struct {
	Projects      []domproject.Project
	Tasks         []domproject.Task
	Collaborators []domuser.User
	Applications  []domapp.Application
}

// Loader reads a Snapshot from the repositories, one goroutine per source.
type Loader struct {
	projects ProjectSource
	users    UserSource
	apps     ApplicationSource
}

// NewLoader creates a Loader.
func NewLoader(projects ProjectSource, users UserSource, apps ApplicationSource) *Loader {
	return &Loader{projects: projects, users: users, apps: apps}
}

// Load reads active projects, tasks, collaborators and engaged applications.
// The first failing read cancels the others.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ps, err := l.projects.ListActive(gCtx)
		if err != nil {
			return fmt.Errorf("load projects: %w", err)
		}
		snap.Projects = ps
		return nil
	})
	g.Go(func() error {
		ts, err := l.projects.ListTasks(gCtx)
		if err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}
		snap.Tasks = ts
		return nil
	})
	g.Go(func() error {
		us, err := l.users.ListByRole(gCtx, domuser.RoleCollaborator)
		if err != nil {
			return fmt.Errorf("load collaborators: %w", err)
		}
		snap.Collaborators = us
		return nil
	})
	g.Go(func() error {
		as, err := l.apps.ListEngaged(gCtx)
		if err != nil {
			return fmt.Errorf("load applications: %w", err)
		}
		snap.Applications = as
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err //nolint:wrapcheck // already wrapped per source
	}
	return snap, nil
}
