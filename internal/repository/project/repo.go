package project

import (
	"context"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	"github.com/kailas-cloud/collabrec/internal/repository/docstore"
)

// Entity kinds under the key prefix.
const (
	KindProject = "project"
	KindTask    = "task"
)

// Repo reads projects and tasks from the document store.
type Repo struct {
	projects *docstore.Collection[domproject.Project]
	tasks    *docstore.Collection[domproject.Task]
}

// New creates a project repository.
func New(s docstore.Store, prefix string, skipped *prometheus.CounterVec) *Repo {
	return &Repo{
		projects: docstore.New(s, prefix, KindProject, docstore.Codec[domproject.Project]{
			Decode: decodeProject,
			Encode: encodeProject,
			ID:     func(p domproject.Project) string { return p.ID() },
		}, skipped),
		tasks: docstore.New(s, prefix, KindTask, docstore.Codec[domproject.Task]{
			Decode: decodeTask,
			Encode: encodeTask,
			ID:     func(t domproject.Task) string { return t.ID() },
		}, skipped),
	}
}

// Get returns a project by ID.
func (r *Repo) Get(ctx context.Context, id string) (domproject.Project, error) {
	p, err := r.projects.Get(ctx, id)
	if err != nil {
		return domproject.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// List returns all projects ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domproject.Project, error) {
	ps, err := r.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].ID() < ps[j].ID() })
	return ps, nil
}

// ListActive returns projects in Planning or In Progress, ordered by ID.
func (r *Repo) ListActive(ctx context.Context) ([]domproject.Project, error) {
	ps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	active := ps[:0]
	for _, p := range ps {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active, nil
}

// ListActiveByCreator returns the active projects created by userID.
func (r *Repo) ListActiveByCreator(ctx context.Context, userID string) ([]domproject.Project, error) {
	ps, err := r.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	mine := ps[:0]
	for _, p := range ps {
		if p.Creator() == userID {
			mine = append(mine, p)
		}
	}
	return mine, nil
}

// ListTasks returns all tasks ordered by ID.
func (r *Repo) ListTasks(ctx context.Context) ([]domproject.Task, error) {
	ts, err := r.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID() < ts[j].ID() })
	return ts, nil
}

// Put stores a project.
func (r *Repo) Put(ctx context.Context, p domproject.Project) error {
	if err := r.projects.Put(ctx, p); err != nil {
		return fmt.Errorf("put project: %w", err)
	}
	return nil
}

// PutTask stores a task.
func (r *Repo) PutTask(ctx context.Context, t domproject.Task) error {
	if err := r.tasks.Put(ctx, t); err != nil {
		return fmt.Errorf("put task: %w", err)
	}
	return nil
}

// Exists reports whether a project is stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.projects.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("project exists: %w", err)
	}
	return ok, nil
}

// TaskExists reports whether a task is stored.
func (r *Repo) TaskExists(ctx context.Context, id string) (bool, error) {
	ok, err := r.tasks.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("task exists: %w", err)
	}
	return ok, nil
}

// Delete removes a project.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.projects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// DeleteTask removes a task.
func (r *Repo) DeleteTask(ctx context.Context, id string) error {
	if err := r.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
