package application

import "testing"

func TestStatus_IsEngaged(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusAccepted, true},
		{StatusRejected, false},
		{StatusWithdrawn, false},
		{Status(""), false},
	}
	for _, tc := range tests {
		if got := tc.status.IsEngaged(); got != tc.want {
			t.Errorf("%q.IsEngaged() = %v, want %v", tc.status, got, tc.want)
		}
	}
}
