package recommend

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/kailas-cloud/collabrec/internal/domain"
	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	"github.com/kailas-cloud/collabrec/internal/domain/recommendation"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
	"github.com/kailas-cloud/collabrec/internal/usecase/corpus"
)

// --- Mocks ---

type staticGenerations struct {
	g *generation.Generation
}

func (s *staticGenerations) Current() *generation.Generation { return s.g }

type mockUsers struct {
	users        map[string]domuser.User
	getErr       error
	listByRoleFn func(ctx context.Context, role domuser.Role) ([]domuser.User, error)
}

func (m *mockUsers) Get(_ context.Context, id string) (domuser.User, error) {
	if m.getErr != nil {
		return domuser.User{}, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return domuser.User{}, fmt.Errorf("user %q: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

func (m *mockUsers) ListByRole(ctx context.Context, role domuser.Role) ([]domuser.User, error) {
	if m.listByRoleFn != nil {
		return m.listByRoleFn(ctx, role)
	}
	var out []domuser.User
	for _, u := range m.users {
		if u.Role() == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type mockProjects struct {
	byCreator map[string][]domproject.Project
	err       error
}

func (m *mockProjects) ListActiveByCreator(_ context.Context, userID string) ([]domproject.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byCreator[userID], nil
}

// --- Fixtures ---

func collaborator(id string, skills ...string) domuser.User {
	return domuser.Reconstruct(id, "User "+id, domuser.RoleCollaborator, skills, nil, "", "")
}

func mentor(id string, areas []string, credentials string) domuser.User {
	return domuser.Reconstruct(id, "Mentor "+id, domuser.RoleMentor, nil, areas, credentials, "")
}

func project(id, title, desc string, stack ...string) domproject.Project {
	return domproject.Reconstruct(id, title, desc, "software", stack, domproject.StatusPlanning, nil, "creator-1")
}

func buildGeneration(t *testing.T, snap corpus.Snapshot) *generation.Generation {
	t.Helper()
	return corpus.Build(snap, "gen-test", time.Unix(1700000000, 0))
}

func newTestService(g *generation.Generation, users *mockUsers) *Service {
	return New(&staticGenerations{g: g}, users, &mockProjects{}, Config{}, nil)
}

func mustRequest(t *testing.T, userID string, limit int, includeEngaged bool) recommendation.Request {
	t.Helper()
	req, err := recommendation.NewRequest(userID, limit, 0, includeEngaged)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	return req
}
