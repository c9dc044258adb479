package user

import (
	"context"
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
	"github.com/kailas-cloud/collabrec/internal/repository/docstore"
)

// Kind is the entity kind of users under the key prefix.
const Kind = "user"

// Repo reads user profiles from the document store.
type Repo struct {
	users *docstore.Collection[domuser.User]
}

// New creates a user repository.
func New(s docstore.Store, prefix string, skipped *prometheus.CounterVec) *Repo {
	return &Repo{
		users: docstore.New(s, prefix, Kind, docstore.Codec[domuser.User]{
			Decode: decodeUser,
			Encode: encodeUser,
			ID:     func(u domuser.User) string { return u.ID() },
		}, skipped),
	}
}

// Get returns a user by ID.
func (r *Repo) Get(ctx context.Context, id string) (domuser.User, error) {
	u, err := r.users.Get(ctx, id)
	if err != nil {
		return domuser.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List returns all users ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domuser.User, error) {
	us, err := r.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sort.Slice(us, func(i, j int) bool { return us[i].ID() < us[j].ID() })
	return us, nil
}

// ListByRole returns users with the given role, ordered by ID.
func (r *Repo) ListByRole(ctx context.Context, role domuser.Role) ([]domuser.User, error) {
	us, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := us[:0]
	for _, u := range us {
		if u.Role() == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// Put stores a user profile.
func (r *Repo) Put(ctx context.Context, u domuser.User) error {
	if err := r.users.Put(ctx, u); err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// Exists reports whether a user is stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.users.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("user exists: %w", err)
	}
	return ok, nil
}

// Delete removes a user.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
