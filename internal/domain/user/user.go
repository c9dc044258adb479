package user

import (
	"strings"
)

// Role is the platform role of a user.
type Role string

// Platform roles.
const (
	RoleCreator      Role = "creator"
	RoleCollaborator Role = "collaborator"
	RoleMentor       Role = "mentor"
	RoleAdmin        Role = "admin"
)

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleCreator || r == RoleCollaborator || r == RoleMentor || r == RoleAdmin
}

// User is a read-only view of a platform user (immutable value object).
type User struct {
	id               string
	name             string
	role             Role
	skills           []string
	areasOfExpertise []string
	credentials      string
	bio              string
}

// Reconstruct creates a User from storage without validation.
func Reconstruct(
	id, name string, role Role,
	skills, areasOfExpertise []string,
	credentials, bio string,
) User {
	return User{
		id: id, name: name, role: role,
		skills: skills, areasOfExpertise: areasOfExpertise,
		credentials: credentials, bio: bio,
	}
}

// ID returns the user identifier.
func (u *User) ID() string { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Role returns the platform role.
func (u *User) Role() Role { return u.role }

// Skills returns the self-declared skills.
func (u *User) Skills() []string { return u.skills }

// AreasOfExpertise returns the mentor expertise areas.
func (u *User) AreasOfExpertise() []string { return u.areasOfExpertise }

// Credentials returns the free-form credentials text.
func (u *User) Credentials() string { return u.credentials }

// Bio returns the profile bio.
func (u *User) Bio() string { return u.bio }

// SkillText returns the lowercase concatenation of skills.
func (u *User) SkillText() string {
	return strings.ToLower(strings.Join(u.skills, " "))
}

// CredentialPhrases splits the credentials text into lowercase phrases
// on commas, semicolons, pipes and newlines. Empty phrases are dropped.
func (u *User) CredentialPhrases() []string {
	fields := strings.FieldsFunc(u.credentials, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '\n' || r == '\r'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
