package application

import (
	"context"
	"errors"
	"testing"

	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
)

func TestListEngaged(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.put(t, "collabrec:application:a1", `{"id":"a1","applicantId":"u1","projectId":"p1","status":"Pending"}`)
	ms.put(t, "collabrec:application:a2", `{"id":"a2","applicantId":"u1","projectId":"p2","status":"Rejected"}`)
	ms.put(t, "collabrec:application:a3", `{"id":"a3","applicantId":"u2","projectId":"p1","status":"Accepted"}`)

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 applications, got %d", len(all))
	}

	engaged, err := repo.ListEngaged(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(engaged) != 2 {
		t.Fatalf("expected 2 engaged, got %d", len(engaged))
	}
	for _, a := range engaged {
		if !a.Status().IsEngaged() {
			t.Errorf("application %s not engaged", a.ID())
		}
	}
}

func TestList_ScanError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.scanErr = errBoom
	if _, err := repo.List(context.Background()); !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestPut(t *testing.T) {
	repo, ms := newTestRepo(t)
	a := domapp.Reconstruct("a9", "u1", "p1", domapp.StatusWithdrawn)
	if err := repo.Put(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ms.data["collabrec:application:a9"]; !ok {
		t.Fatal("application not stored")
	}
}
