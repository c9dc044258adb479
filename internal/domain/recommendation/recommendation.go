// Package recommendation defines ranked recommendation results.
package recommendation

import (
	"sort"

	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
)

// Strategy names the scoring path that produced a list.
type Strategy string

// Scoring strategies.
const (
	// StrategyTFIDF is cosine similarity over TF-IDF vectors.
	StrategyTFIDF Strategy = "tfidf"
	// StrategyKeyword is the weighted tech-stack/keyword Jaccard fallback.
	StrategyKeyword Strategy = "keyword"
	// StrategyExpertise is Jaccard over skills mapped to expertise categories.
	StrategyExpertise Strategy = "expertise"
	// StrategyRaw is Jaccard over unmapped skill keywords.
	StrategyRaw Strategy = "raw"
	// StrategyNone marks an empty result.
	StrategyNone Strategy = "none"
)

// Project is a recommended project with its score.
type Project struct {
	project            domproject.Project
	score              float64
	collaboratorStatus string
}

// NewProject creates a project recommendation.
func NewProject(p domproject.Project, score float64, collaboratorStatus string) Project {
	return Project{project: p, score: score, collaboratorStatus: collaboratorStatus}
}

// Project returns the recommended project.
func (r *Project) Project() domproject.Project { return r.project }

// Score returns the recommendation score in (0,1].
func (r *Project) Score() float64 { return r.score }

// CollaboratorStatus returns "Active", "Applied" or "".
func (r *Project) CollaboratorStatus() string { return r.collaboratorStatus }

// Mentor is a recommended mentor with its score.
type Mentor struct {
	mentor domuser.User
	score  float64
}

// NewMentor creates a mentor recommendation.
func NewMentor(m domuser.User, score float64) Mentor {
	return Mentor{mentor: m, score: score}
}

// Mentor returns the recommended mentor.
func (r *Mentor) Mentor() domuser.User { return r.mentor }

// Score returns the recommendation score in (0,1].
func (r *Mentor) Score() float64 { return r.score }

// ProjectList is an ordered list of project recommendations.
type ProjectList struct {
	Items        []Project
	Strategy     Strategy
	GenerationID string
}

// MentorList is an ordered list of mentor recommendations.
type MentorList struct {
	Items    []Mentor
	Strategy Strategy
}

// SortProjects orders by score descending, then project ID ascending.
func SortProjects(items []Project) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].project.ID() < items[j].project.ID()
	})
}

// SortMentors orders by score descending, then mentor ID ascending.
func SortMentors(items []Mentor) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].score != items[j].score {
			return items[i].score > items[j].score
		}
		return items[i].mentor.ID() < items[j].mentor.ID()
	})
}
