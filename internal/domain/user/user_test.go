package user

import (
	"reflect"
	"testing"
)

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleCreator, RoleCollaborator, RoleMentor, RoleAdmin} {
		if !r.IsValid() {
			t.Errorf("expected %q to be valid", r)
		}
	}
	if Role("guest").IsValid() {
		t.Error("expected guest to be invalid")
	}
}

func TestUser_SkillText(t *testing.T) {
	u := Reconstruct("u1", "Ann", RoleCollaborator, []string{"React", "Node.js"}, nil, "", "")
	if got := u.SkillText(); got != "react node.js" {
		t.Fatalf("SkillText() = %q", got)
	}
}

func TestUser_CredentialPhrases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "AWS Certified", []string{"aws certified"}},
		{"mixed separators", "PhD CS; Web Development,  DevOps |Kubernetes\nML", []string{
			"phd cs", "web development", "devops", "kubernetes", "ml",
		}},
		{"blank parts", " , ;", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := Reconstruct("m1", "", RoleMentor, nil, nil, tc.in, "")
			got := u.CredentialPhrases()
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("CredentialPhrases() = %#v, want %#v", got, tc.want)
			}
		})
	}
}
