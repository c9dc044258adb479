package corpus

import (
	"context"

	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// --- Mocks ---

type mockProjects struct {
	listActiveFn func(ctx context.Context) ([]domproject.Project, error)
	listTasksFn  func(ctx context.Context) ([]domproject.Task, error)
}

func (m *mockProjects) ListActive(ctx context.Context) ([]domproject.Project, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockProjects) ListTasks(ctx context.Context) ([]domproject.Task, error) {
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx)
	}
	return nil, nil
}

type mockUsers struct {
	listByRoleFn func(ctx context.Context, role domuser.Role) ([]domuser.User, error)
}

func (m *mockUsers) ListByRole(ctx context.Context, role domuser.Role) ([]domuser.User, error) {
	if m.listByRoleFn != nil {
		return m.listByRoleFn(ctx, role)
	}
	return nil, nil
}

type mockApps struct {
	listEngagedFn func(ctx context.Context) ([]domapp.Application, error)
}

func (m *mockApps) ListEngaged(ctx context.Context) ([]domapp.Application, error) {
	if m.listEngagedFn != nil {
		return m.listEngagedFn(ctx)
	}
	return nil, nil
}

type mockLoader struct {
	loadFn func(ctx context.Context) (Snapshot, error)
}

func (m *mockLoader) Load(ctx context.Context) (Snapshot, error) {
	return m.loadFn(ctx)
}

// --- Fixtures ---

func testProject(id, desc string, status domproject.Status, stack ...string) domproject.Project {
	return domproject.Reconstruct(id, "Project "+id, desc, "software", stack, status, nil, "creator-1")
}

func testCollaborator(id string, skills ...string) domuser.User {
	return domuser.Reconstruct(id, "User "+id, domuser.RoleCollaborator, skills, nil, "", "")
}

func testSnapshot() Snapshot {
	web := domproject.Reconstruct("p-web", "Storefront", "React storefront with node backend",
		"web", []string{"React", "Node.js"}, domproject.StatusInProgress, []string{"c-joined"}, "creator-1")
	return Snapshot{
		Projects: []domproject.Project{
			web,
			testProject("p-ml", "Python data pipeline", domproject.StatusPlanning, "Python", "Pandas"),
		},
		Tasks: []domproject.Task{
			domproject.ReconstructTask("t1", "p-web", "Checkout", "Implement checkout flow"),
		},
		Collaborators: []domuser.User{
			testCollaborator("c-react", "React", "Node.js"),
			testCollaborator("c-empty"),
		},
		Applications: []domapp.Application{
			domapp.Reconstruct("a1", "c-react", "p-ml", domapp.StatusPending),
		},
	}
}
