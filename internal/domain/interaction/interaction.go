// Package interaction records which users already engaged which projects.
// The index is an exclusion filter and a status tag; it never changes scores.
package interaction

import (
	domapp "github.com/kailas-cloud/collabrec/internal/domain/application"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
)

// Status tags attached to project recommendations.
const (
	StatusActive  = "Active"
	StatusApplied = "Applied"
)

type projectSet map[string]struct{}

// Index maps users to the projects they applied to or joined. Read-only once built.
type Index struct {
	applied map[string]projectSet
	joined  map[string]projectSet
	// inProgress holds joined projects in "In Progress" status, for the Active tag.
	inProgress map[string]projectSet
}

// Build derives the index from applications and project collaborator lists.
// Only Pending and Accepted applications count.
func Build(apps []domapp.Application, projects []domproject.Project) *Index {
	idx := &Index{
		applied:    make(map[string]projectSet),
		joined:     make(map[string]projectSet),
		inProgress: make(map[string]projectSet),
	}
	for i := range apps {
		a := &apps[i]
		if !a.Status().IsEngaged() || a.ApplicantID() == "" || a.ProjectID() == "" {
			continue
		}
		add(idx.applied, a.ApplicantID(), a.ProjectID())
	}
	for i := range projects {
		p := &projects[i]
		for _, uid := range p.Collaborators() {
			if uid == "" {
				continue
			}
			add(idx.joined, uid, p.ID())
			if p.Status() == domproject.StatusInProgress {
				add(idx.inProgress, uid, p.ID())
			}
		}
	}
	return idx
}

// Empty returns an index without interactions.
func Empty() *Index {
	return Build(nil, nil)
}

// Applied reports whether userID has a Pending or Accepted application to projectID.
func (x *Index) Applied(userID, projectID string) bool {
	return has(x.applied, userID, projectID)
}

// Joined reports whether userID is a collaborator of projectID.
func (x *Index) Joined(userID, projectID string) bool {
	return has(x.joined, userID, projectID)
}

// Engaged reports whether userID applied to or joined projectID.
func (x *Index) Engaged(userID, projectID string) bool {
	return x.Applied(userID, projectID) || x.Joined(userID, projectID)
}

// Status returns the collaborator status tag for userID on projectID:
// StatusActive, StatusApplied or "".
func (x *Index) Status(userID, projectID string) string {
	switch {
	case has(x.inProgress, userID, projectID):
		return StatusActive
	case x.Applied(userID, projectID):
		return StatusApplied
	default:
		return ""
	}
}

// Users returns the number of users with at least one interaction.
func (x *Index) Users() int {
	seen := make(map[string]struct{}, len(x.applied)+len(x.joined))
	for u := range x.applied {
		seen[u] = struct{}{}
	}
	for u := range x.joined {
		seen[u] = struct{}{}
	}
	return len(seen)
}

func add(m map[string]projectSet, userID, projectID string) {
	s, ok := m[userID]
	if !ok {
		s = make(projectSet)
		m[userID] = s
	}
	s[projectID] = struct{}{}
}

func has(m map[string]projectSet, userID, projectID string) bool {
	_, ok := m[userID][projectID]
	return ok
}
