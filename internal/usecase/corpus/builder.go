package corpus

import (
	"strings"
	"time"

	"github.com/kailas-cloud/collabrec/internal/domain/feature"
	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	"github.com/kailas-cloud/collabrec/internal/domain/interaction"
	domproject "github.com/kailas-cloud/collabrec/internal/domain/project"
	"github.com/kailas-cloud/collabrec/internal/domain/similarity"
)

// keywordMinLen is the length a fallback keyword must exceed.
const keywordMinLen = 2

// Build turns a snapshot into a generation. It is pure: the same snapshot,
// id and time always yield an equal generation, and the snapshot is not modified.
func Build(snap Snapshot, id string, builtAt time.Time) *generation.Generation {
	tasksByProject := domproject.GroupTasks(snap.Tasks)

	projects := make([]domproject.Project, 0, len(snap.Projects))
	projectDocs := make([]feature.Document, 0, len(snap.Projects))
	profiles := make(map[string]generation.KeywordProfile, len(snap.Projects))
	for _, p := range snap.Projects {
		if !p.IsActive() || p.ID() == "" {
			continue
		}
		tasks := tasksByProject[p.ID()]
		projects = append(projects, p)
		projectDocs = append(projectDocs, feature.Document{
			Key:   p.ID(),
			Terms: feature.Analyze(p.Text(tasks)),
		})
		profiles[p.ID()] = keywordProfile(p, tasks)
	}

	collaboratorDocs := make([]feature.Document, 0, len(snap.Collaborators))
	for _, u := range snap.Collaborators {
		if u.ID() == "" {
			continue
		}
		collaboratorDocs = append(collaboratorDocs, feature.Document{
			Key:   u.ID(),
			Terms: feature.Analyze(u.SkillText()),
		})
	}

	all := make([]feature.Document, 0, len(projectDocs)+len(collaboratorDocs))
	all = append(all, projectDocs...)
	all = append(all, collaboratorDocs...)
	c := feature.NewCorpus(all)

	return generation.New(
		id, builtAt, c, projects,
		c.VectorizeAll(projectDocs),
		c.VectorizeAll(collaboratorDocs),
		profiles,
		interaction.Build(snap.Applications, projects),
	)
}

func keywordProfile(p domproject.Project, tasks []domproject.Task) generation.KeywordProfile {
	parts := make([]string, 0, 1+len(tasks))
	parts = append(parts, p.Description())
	for i := range tasks {
		parts = append(parts, tasks[i].Description())
	}
	return generation.KeywordProfile{
		TechStack: similarity.NewSet(p.TechStack()...),
		Keywords:  similarity.NewSet(feature.Keywords(strings.Join(parts, " "), keywordMinLen)...),
	}
}
