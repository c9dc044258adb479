package project

import "strings"

// Status is the lifecycle state of a project.
type Status string

// Project status values as stored by the platform.
const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusOnHold     Status = "On Hold"
	StatusCancelled  Status = "Cancelled"
)

// IsActive reports whether projects in this status take part in recommendations.
func (s Status) IsActive() bool {
	return s == StatusPlanning || s == StatusInProgress
}

// Project is a read-only view of a platform project (immutable value object).
type Project struct {
	id            string
	title         string
	description   string
	category      string
	techStack     []string
	status        Status
	collaborators []string
	creator       string
}

// Reconstruct creates a Project from storage without validation.
func Reconstruct(
	id, title, description, category string,
	techStack []string, status Status,
	collaborators []string, creator string,
) Project {
	return Project{
		id: id, title: title, description: description, category: category,
		techStack: techStack, status: status,
		collaborators: collaborators, creator: creator,
	}
}

// ID returns the project identifier.
func (p *Project) ID() string { return p.id }

// Title returns the project title.
func (p *Project) Title() string { return p.title }

// Description returns the project description.
func (p *Project) Description() string { return p.description }

// Category returns the project category.
func (p *Project) Category() string { return p.category }

// TechStack returns the declared technologies.
func (p *Project) TechStack() []string { return p.techStack }

// Status returns the lifecycle state.
func (p *Project) Status() Status { return p.status }

// Collaborators returns the IDs of users who joined the project.
func (p *Project) Collaborators() []string { return p.collaborators }

// Creator returns the ID of the user who created the project.
func (p *Project) Creator() string { return p.creator }

// IsActive reports whether the project is in Planning or In Progress.
func (p *Project) IsActive() bool { return p.status.IsActive() }

// Text returns the lowercase feature text: title, description, category,
// tech stack and the descriptions of the given tasks.
func (p *Project) Text(tasks []Task) string {
	parts := make([]string, 0, 3+len(p.techStack)+len(tasks))
	parts = append(parts, p.title, p.description, p.category)
	parts = append(parts, p.techStack...)
	for i := range tasks {
		parts = append(parts, tasks[i].Description())
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Task is a unit of work attached to a project.
type Task struct {
	id          string
	projectID   string
	title       string
	description string
}

// ReconstructTask creates a Task from storage without validation.
func ReconstructTask(id, projectID, title, description string) Task {
	return Task{id: id, projectID: projectID, title: title, description: description}
}

// ID returns the task identifier.
func (t *Task) ID() string { return t.id }

// ProjectID returns the owning project.
func (t *Task) ProjectID() string { return t.projectID }

// Title returns the task title.
func (t *Task) Title() string { return t.title }

// Description returns the task description.
func (t *Task) Description() string { return t.description }

// GroupTasks indexes tasks by project ID, preserving input order.
func GroupTasks(tasks []Task) map[string][]Task {
	out := make(map[string][]Task)
	for _, t := range tasks {
		out[t.projectID] = append(out[t.projectID], t)
	}
	return out
}
