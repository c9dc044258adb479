package project

import "testing"

func TestStatus_IsActive(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPlanning, true},
		{StatusInProgress, true},
		{StatusCompleted, false},
		{StatusOnHold, false},
		{StatusCancelled, false},
		{Status("planning"), false},
	}
	for _, tc := range tests {
		if got := tc.status.IsActive(); got != tc.want {
			t.Errorf("%q.IsActive() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestProject_Text(t *testing.T) {
	p := Reconstruct("p1", "Chat App", "Realtime Messaging", "Web",
		[]string{"React", "Node.js"}, StatusPlanning, nil, "u1")
	tasks := []Task{
		ReconstructTask("t1", "p1", "ui", "Build the Login page"),
		ReconstructTask("t2", "p1", "api", "Design REST API"),
	}

	got := p.Text(tasks)
	want := "chat app realtime messaging web react node.js build the login page design rest api"
	if got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestProject_TextWithoutTasks(t *testing.T) {
	p := Reconstruct("p1", "Title", "", "", nil, StatusPlanning, nil, "")
	if got := p.Text(nil); got != "title  " {
		t.Fatalf("Text() = %q", got)
	}
}

func TestGroupTasks(t *testing.T) {
	tasks := []Task{
		ReconstructTask("t1", "p1", "", "a"),
		ReconstructTask("t2", "p2", "", "b"),
		ReconstructTask("t3", "p1", "", "c"),
	}
	g := GroupTasks(tasks)
	if len(g["p1"]) != 2 || g["p1"][0].ID() != "t1" || g["p1"][1].ID() != "t3" {
		t.Fatalf("unexpected p1 group: %+v", g["p1"])
	}
	if len(g["p2"]) != 1 {
		t.Fatalf("unexpected p2 group: %+v", g["p2"])
	}
}
