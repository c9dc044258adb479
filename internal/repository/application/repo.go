package application

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
	"github.com/kailas-cloud/collabrec/internal/repository/docstore"
)

// Kind is the entity kind of applications under the key prefix.
const Kind = "application"

// Repo reads project applications from the document store.
type Repo struct {
	apps *docstore.Collection[domapp.Application]
}

// New creates an application repository.
func New(s docstore.Store, prefix string, skipped *prometheus.CounterVec) *Repo {
	return &Repo{
		apps: docstore.New(s, prefix, Kind, docstore.Codec[domapp.Application]{
			Decode: decodeApplication,
			Encode: encodeApplication,
			ID:     func(a domapp.Application) string { return a.ID() },
		}, skipped),
	}
}

// List returns all applications.
func (r *Repo) List(ctx context.Context) ([]domapp.Application, error) {
	as, err := r.apps.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return as, nil
}

// ListEngaged returns applications in Pending or Accepted status.
func (r *Repo) ListEngaged(ctx context.Context) ([]domapp.Application, error) {
	as, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := as[:0]
	for _, a := range as {
		if a.Status().IsEngaged() {
			out = append(out, a)
		}
	}
	return out, nil
}

// Put stores an application.
func (r *Repo) Put(ctx context.Context, a domapp.Application) error {
	if err := r.apps.Put(ctx, a); err != nil {
		return fmt.Errorf("put application: %w", err)
	}
	return nil
}

// Exists reports whether a application is stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.apps.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("application exists: %w", err)
	}
	return ok, nil
}

// Delete removes a application.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.apps.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}
