// Package generation holds one immutable, fully built snapshot of the
// recommendation corpus. A new generation replaces the previous one wholesale.
package generation

import (
	"time"

	"github.com/kailas-cloud/collabrec/internal/domain/feature"
	"github.com/kailas-cloud/collabrec/internal/domain/interaction"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	"github.com/kailas-cloud/collabrec/internal/domain/similarity"
)

// KeywordProfile is the fallback representation of a project.
type KeywordProfile struct {
	TechStack similarity.Set
	Keywords  similarity.Set
}

// Stats summarizes a generation.
type Stats struct {
	ID               string
	BuiltAt          time.Time
	Projects         int
	Collaborators    int
	Documents        int
	Vocabulary       int
	InteractionUsers int
}

// Generation is read-only after New returns. Callers must not mutate the
// slices and maps it hands out.
type Generation struct {
	id                  string
	builtAt             time.Time
	corpus              *feature.Corpus
	projects            []domproject.Project
	projectVectors      map[string]feature.Vector
	collaboratorVectors map[string]feature.Vector
	profiles            map[string]KeywordProfile
	interactions        *interaction.Index
}

// New assembles a generation. projects must be the active projects in ranking order.
func New(
	id string, builtAt time.Time,
	corpus *feature.Corpus,
	projects []domproject.Project,
	projectVectors, collaboratorVectors map[string]feature.Vector,
	profiles map[string]KeywordProfile,
	interactions *interaction.Index,
) *Generation {
	if corpus == nil {
		corpus = feature.NewCorpus(nil)
	}
	if interactions == nil {
		interactions = interaction.Empty()
	}
	return &Generation{
		id: id, builtAt: builtAt, corpus: corpus,
		projects:            projects,
		projectVectors:      projectVectors,
		collaboratorVectors: collaboratorVectors,
		profiles:            profiles,
		interactions:        interactions,
	}
}

// Empty returns the zero generation used before the first build completes.
func Empty() *Generation {
	return New("", time.Time{}, nil, nil, nil, nil, nil, nil)
}

// ID returns the generation identifier ("" for the empty generation).
func (g *Generation) ID() string { return g.id }

// BuiltAt returns the build completion time.
func (g *Generation) BuiltAt() time.Time { return g.builtAt }

// IsEmpty reports whether the generation has never been built.
func (g *Generation) IsEmpty() bool { return g.id == "" }

// Corpus returns the shared TF-IDF corpus.
func (g *Generation) Corpus() *feature.Corpus { return g.corpus }

// Projects returns the active projects.
func (g *Generation) Projects() []domproject.Project { return g.projects }

// ProjectVector returns the TF-IDF vector of a project, empty when unknown.
func (g *Generation) ProjectVector(projectID string) feature.Vector {
	return g.projectVectors[projectID]
}

// CollaboratorVector returns the TF-IDF vector of a collaborator.
// ok is false when the collaborator was not part of this generation.
func (g *Generation) CollaboratorVector(userID string) (feature.Vector, bool) {
	v, ok := g.collaboratorVectors[userID]
	return v, ok
}

// Profile returns the fallback keyword profile of a project.
func (g *Generation) Profile(projectID string) KeywordProfile {
	return g.profiles[projectID]
}

// Interactions returns the interaction index.
func (g *Generation) Interactions() *interaction.Index { return g.interactions }

// Stats summarizes the generation.
func (g *Generation) Stats() Stats {
	return Stats{
		ID:               g.id,
		BuiltAt:          g.builtAt,
		Projects:         len(g.projects),
		Collaborators:    len(g.collaboratorVectors),
		Documents:        g.corpus.Size(),
		Vocabulary:       g.corpus.VocabularySize(),
		InteractionUsers: g.interactions.Users(),
	}
}
