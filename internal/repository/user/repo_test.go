package user

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/collabrec/internal/domain"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

func TestGet_Decodes(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.put(t, "collabrec:user:m1", `{
		"id":"m1","name":"Ada","role":"mentor","skills":["Go"],
		"areasOfExpertise":["web development"],
		"credentials":"AWS certified; 10 years backend","bio":"hi"}`)

	u, err := repo.Get(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role() != domuser.RoleMentor || u.Name() != "Ada" {
		t.Errorf("unexpected user: %+v", u)
	}
	if got := u.CredentialPhrases(); len(got) != 2 || got[0] != "aws certified" {
		t.Errorf("credential phrases = %v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByRole(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.put(t, "collabrec:user:c1", `{"id":"c1","role":"collaborator"}`)
	ms.put(t, "collabrec:user:m2", `{"id":"m2","role":"mentor"}`)
	ms.put(t, "collabrec:user:m1", `{"id":"m1","role":"mentor"}`)
	ms.put(t, "collabrec:user:x", `{"role":"mentor"}`)

	mentors, err := repo.ListByRole(context.Background(), domuser.RoleMentor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mentors) != 2 || mentors[0].ID() != "m1" || mentors[1].ID() != "m2" {
		t.Errorf("unexpected mentors: %d", len(mentors))
	}
}

func TestPut_StoresUnderKey(t *testing.T) {
	repo, ms := newTestRepo(t)
	u := domuser.Reconstruct("c1", "Bo", domuser.RoleCollaborator, []string{"React"}, nil, "", "")
	if err := repo.Put(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.Get(context.Background(), "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Skills()) != 1 || got.Skills()[0] != "React" {
		t.Errorf("skills = %v", got.Skills())
	}
	if len(ms.data) != 1 {
		t.Errorf("expected one stored key, got %d", len(ms.data))
	}
}

func TestExistsAndDelete(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()
	ms.put(t, "collabrec:user:u1", `{"id":"u1","role":"creator"}`)

	ok, err := repo.Exists(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if ok, _ := repo.Exists(ctx, "u1"); ok {
		t.Error("user still exists after delete")
	}
}
