package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/kailas-cloud/collabrec/internal/domain"
	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// fixture is a seed file. Field names follow the stored document shape.
type fixture struct {
	Users []struct {
		ID               string   `json:"id"`
		Name             string   `json:"name"`
		Role             string   `json:"role"`
		Skills           []string `json:"skills"`
		AreasOfExpertise []string `json:"areasOfExpertise"`
		Credentials      string   `json:"credentials"`
		Bio              string   `json:"bio"`
	} `json:"users"`
	Projects []struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Category      string   `json:"category"`
		TechStack     []string `json:"techStack"`
		Status        string   `json:"status"`
		Collaborators []string `json:"collaborators"`
		Creator       string   `json:"creator"`
	} `json:"projects"`
	Tasks []struct {
		ID          string `json:"id"`
		ProjectID   string `json:"projectId"`
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"tasks"`
	Applications []struct {
		ID          string `json:"id"`
		ApplicantID string `json:"applicantId"`
		ProjectID   string `json:"projectId"`
		Status      string `json:"status"`
	} `json:"applications"`
}

// entities is a validated fixture converted to domain values.
type entities struct {
	users    []domuser.User
	projects []domproject.Project
	tasks    []domproject.Task
	apps     []domapp.Application
}

func readFixture(path string) (entities, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return entities{}, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return entities{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return f.entities()
}

func (f *fixture) entities() (entities, error) {
	var e entities
	for i, u := range f.Users {
		if u.ID == "" {
			return entities{}, fmt.Errorf("users[%d]: id is required: %w", i, domain.ErrInvalidRequest)
		}
		role := domuser.Role(u.Role)
		if !role.IsValid() {
			return entities{}, fmt.Errorf("user %s: unknown role %q: %w", u.ID, u.Role, domain.ErrInvalidRequest)
		}
		e.users = append(e.users, domuser.Reconstruct(
			u.ID, u.Name, role, u.Skills, u.AreasOfExpertise, u.Credentials, u.Bio))
	}
	for i, p := range f.Projects {
		if p.ID == "" {
			return entities{}, fmt.Errorf("projects[%d]: id is required: %w", i, domain.ErrInvalidRequest)
		}
		e.projects = append(e.projects, domproject.Reconstruct(
			p.ID, p.Title, p.Description, p.Category,
			p.TechStack, domproject.Status(p.Status), p.Collaborators, p.Creator))
	}
	for i, t := range f.Tasks {
		if t.ID == "" || t.ProjectID == "" {
			return entities{}, fmt.Errorf("tasks[%d]: id and projectId are required: %w", i, domain.ErrInvalidRequest)
		}
		e.tasks = append(e.tasks, domproject.ReconstructTask(t.ID, t.ProjectID, t.Title, t.Description))
	}
	for i, a := range f.Applications {
		if a.ID == "" {
			return entities{}, fmt.Errorf("applications[%d]: id is required: %w", i, domain.ErrInvalidRequest)
		}
		e.apps = append(e.apps, domapp.Reconstruct(a.ID, a.ApplicantID, a.ProjectID, domapp.Status(a.Status)))
	}
	return e, nil
}

// seedCount reports how many entities of one kind were written or left alone.
type seedCount struct {
	Kind    string `json:"kind"`
	Written int    `json:"written"`
	Skipped int    `json:"skipped"`
}

// seedKind writes items, leaving existing ones untouched unless overwrite is set.
func seedKind[T any](
	ctx context.Context, kind string, items []T, overwrite bool,
	id func(T) string,
	exists func(context.Context, string) (bool, error),
	put func(context.Context, T) error,
) (seedCount, error) {
	c := seedCount{Kind: kind}
	for _, it := range items {
		if !overwrite {
			ok, err := exists(ctx, id(it))
			if err != nil {
				return c, err
			}
			if ok {
				c.Skipped++
				continue
			}
		}
		if err := put(ctx, it); err != nil {
			return c, err
		}
		c.Written++
	}
	return c, nil
}

// seed writes every entity of e through r.
func seed(ctx context.Context, r repos, e entities, overwrite bool) ([]seedCount, error) {
	var out []seedCount
	steps := []func() (seedCount, error){
		func() (seedCount, error) {
			return seedKind(ctx, "user", e.users, overwrite,
				func(u domuser.User) string { return u.ID() }, r.users.Exists, r.users.Put)
		},
		func() (seedCount, error) {
			return seedKind(ctx, "project", e.projects, overwrite,
				func(p domproject.Project) string { return p.ID() }, r.projects.Exists, r.projects.Put)
		},
		func() (seedCount, error) {
			return seedKind(ctx, "task", e.tasks, overwrite,
				func(t domproject.Task) string { return t.ID() }, r.projects.TaskExists, r.projects.PutTask)
		},
		func() (seedCount, error) {
			return seedKind(ctx, "application", e.apps, overwrite,
				func(a domapp.Application) string { return a.ID() }, r.apps.Exists, r.apps.Put)
		},
	}
	for _, step := range steps {
		c, err := step()
		out = append(out, c)
		if err != nil {
			return out, fmt.Errorf("seed %s: %w", c.Kind, err)
		}
	}
	return out, nil
}
