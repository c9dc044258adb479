package project

import (
	"fmt"

	"github.com/goccy/go-json"

	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
)

// projectDoc is the stored JSON shape of a project, as written by the platform.
type projectDoc struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	TechStack     []string `json:"techStack"`
	Status        string   `json:"status"`
	Collaborators []string `json:"collaborators"`
	Creator       string   `json:"creator"`
}

func decodeProject(raw []byte) (domproject.Project, error) {
	var d projectDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domproject.Project{}, fmt.Errorf("unmarshal project: %w", err)
	}
	if d.ID == "" {
		return domproject.Project{}, fmt.Errorf("project without id")
	}
	return domproject.Reconstruct(
		d.ID, d.Title, d.Description, d.Category,
		d.TechStack, domproject.Status(d.Status),
		d.Collaborators, d.Creator,
	), nil
}

func encodeProject(p domproject.Project) ([]byte, error) {
	return json.Marshal(projectDoc{
		ID:            p.ID(),
		Title:         p.Title(),
		Description:   p.Description(),
		Category:      p.Category(),
		TechStack:     p.TechStack(),
		Status:        string(p.Status()),
		Collaborators: p.Collaborators(),
		Creator:       p.Creator(),
	})
}

// taskDoc is the stored JSON shape of a task.
type taskDoc struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func decodeTask(raw []byte) (domproject.Task, error) {
	var d taskDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domproject.Task{}, fmt.Errorf("unmarshal task: %w", err)
	}
	if d.ID == "" {
		return domproject.Task{}, fmt.Errorf("task without id")
	}
	return domproject.ReconstructTask(d.ID, d.ProjectID, d.Title, d.Description), nil
}

func encodeTask(t domproject.Task) ([]byte, error) {
	return json.Marshal(taskDoc{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		Title:       t.Title(),
		Description: t.Description(),
	})
}
