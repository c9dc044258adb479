package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/collabrec/internal/db"
	"github.com/kailas-cloud/collabrec/internal/domain"
)

// mapStore is an in-memory document store for tests.
type mapStore struct {
	data map[string][]byte
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (m *mapStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mapStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.data[k]
	}
	return out, nil
}

func (m *mapStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *mapStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *mapStore) Scan(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

const testFixture = `{
  "users": [
    {"id":"c1","name":"Cole","role":"collaborator","skills":["React","Node.js"]},
    {"id":"m1","name":"Mia","role":"mentor","areasOfExpertise":["web development"]}
  ],
  "projects": [
    {"id":"p1","title":"Shop","description":"online store","techStack":["React"],"status":"In Progress","creator":"u9"},
    {"id":"p2","title":"Old","description":"archived","status":"Completed","creator":"u9"}
  ],
  "tasks": [{"id":"t1","projectId":"p1","title":"Cart","description":"checkout flow"}],
  "applications": [{"id":"a1","applicantId":"c1","projectId":"p1","status":"Pending"}]
}`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadFixture(t *testing.T) {
	e, err := readFixture(writeFixture(t, testFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e.users) != 2 || len(e.projects) != 2 || len(e.tasks) != 1 || len(e.apps) != 1 {
		t.Fatalf("unexpected counts: %d users, %d projects, %d tasks, %d apps",
			len(e.users), len(e.projects), len(e.tasks), len(e.apps))
	}
}

func TestReadFixture_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad role", `{"users":[{"id":"u1","role":"owner"}]}`},
		{"missing user id", `{"users":[{"role":"mentor"}]}`},
		{"task without project", `{"tasks":[{"id":"t1"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readFixture(writeFixture(t, tt.body))
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestReadFixture_Malformed(t *testing.T) {
	if _, err := readFixture(writeFixture(t, `{"users":`)); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := readFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestSeed_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	ms := newMapStore()
	ms.data["collabrec:user:c1"] = []byte(`{"id":"c1","role":"collaborator","skills":["Go"]}`)
	r := newRepos(ms, "collabrec:")

	e, err := readFixture(writeFixture(t, testFixture))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	counts, err := seed(ctx, r, e, false)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if counts[0].Kind != "user" || counts[0].Written != 1 || counts[0].Skipped != 1 {
		t.Errorf("unexpected user counts: %+v", counts[0])
	}
	u, err := r.users.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := u.Skills(); len(got) != 1 || got[0] != "Go" {
		t.Errorf("existing user was overwritten: %v", got)
	}
	for _, key := range []string{"collabrec:project:p2", "collabrec:task:t1", "collabrec:application:a1"} {
		if _, ok := ms.data[key]; !ok {
			t.Errorf("%s not written", key)
		}
	}
}

func TestSeed_Overwrite(t *testing.T) {
	ctx := context.Background()
	ms := newMapStore()
	ms.data["collabrec:user:c1"] = []byte(`{"id":"c1","role":"collaborator","skills":["Go"]}`)
	r := newRepos(ms, "collabrec:")

	e, err := readFixture(writeFixture(t, testFixture))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	counts, err := seed(ctx, r, e, true)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if counts[0].Written != 2 || counts[0].Skipped != 0 {
		t.Errorf("unexpected user counts: %+v", counts[0])
	}
	u, _ := r.users.Get(ctx, "c1")
	if got := u.Skills(); len(got) != 2 || got[0] != "React" {
		t.Errorf("user not replaced: %v", got)
	}
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	ms := newMapStore()
	ms.data["collabrec:task:t1"] = []byte(`{"id":"t1","projectId":"p1"}`)
	r := newRepos(ms, "collabrec:")

	if err := deleteRecord(ctx, r, "task", "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := ms.data["collabrec:task:t1"]; ok {
		t.Error("task still stored")
	}
	if err := deleteRecord(ctx, r, "task", "t1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := deleteRecord(ctx, r, "team", "x"); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestOfflineStats(t *testing.T) {
	ctx := context.Background()
	r := newRepos(newMapStore(), "collabrec:")

	e, err := readFixture(writeFixture(t, testFixture))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := seed(ctx, r, e, false); err != nil {
		t.Fatalf("seed: %v", err)
	}

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	st, err := offlineStats(ctx, r, now)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.ID != "offline" || !st.BuiltAt.Equal(now) {
		t.Errorf("unexpected identity: %+v", st)
	}
	// p2 is Completed and stays out of the corpus.
	if st.Projects != 1 {
		t.Errorf("Projects = %d, want 1", st.Projects)
	}
	if st.Collaborators != 1 {
		t.Errorf("Collaborators = %d, want 1", st.Collaborators)
	}
	if st.InteractionUsers != 1 {
		t.Errorf("InteractionUsers = %d, want 1", st.InteractionUsers)
	}
}
