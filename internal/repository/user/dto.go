package user

import (
	"fmt"

	"github.com/goccy/go-json"

	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// userDoc is the stored JSON shape of a user profile. Credentials are
// free-form text; secrets never live in this document.
type userDoc struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Skills           []string `json:"skills"`
	AreasOfExpertise []string `json:"areasOfExpertise"`
	Credentials      string   `json:"credentials"`
	Bio              string   `json:"bio"`
}

func decodeUser(raw []byte) (domuser.User, error) {
	var d userDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domuser.User{}, fmt.Errorf("unmarshal user: %w", err)
	}
	if d.ID == "" {
		return domuser.User{}, fmt.Errorf("user without id")
	}
	return domuser.Reconstruct(
		d.ID, d.Name, domuser.Role(d.Role),
		d.Skills, d.AreasOfExpertise, d.Credentials, d.Bio,
	), nil
}

func encodeUser(u domuser.User) ([]byte, error) {
	return json.Marshal(userDoc{
		ID:               u.ID(),
		Name:             u.Name(),
		Role:             string(u.Role()),
		Skills:           u.Skills(),
		AreasOfExpertise: u.AreasOfExpertise(),
		Credentials:      u.Credentials(),
		Bio:              u.Bio(),
	})
}
