package recommend

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/collabrec/internal/domain"
	"github.com/kailas-cloud/collabrec/internal/domain/expertise"
	"github.com/kailas-cloud/collabrec/internal/domain/feature"
	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	"github.com/kailas-cloud/collabrec/internal/domain/recommendation"
	"github.com/kailas-cloud/collabrec/internal/domain/similarity"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
	logpkg "github.com/kailas-cloud/collabrec/internal/logger"
	"github.com/kailas-cloud/collabrec/internal/metrics"
)

// Fallback weights used when Config leaves them zero.
const (
	DefaultTechStackWeight = 0.7
	DefaultKeywordWeight   = 0.3
)

// keywordMinLen is the length a fallback keyword must exceed.
const keywordMinLen = 2

// Result kinds for metrics.
const (
	kindProjects = "projects"
	kindMentors  = "mentors"
)

// Config holds the keyword fallback weights.
type Config struct {
	TechStackWeight float64
	KeywordWeight   float64
}

// Service ranks projects for collaborators and mentors for any user.
type Service struct {
	gens     GenerationSource
	users    UserReader
	projects ProjectReader
	cfg      Config
	metrics  *metrics.Recommendation
}

// New creates a recommendation service. m may be nil.
func New(gens GenerationSource, users UserReader, projects ProjectReader, cfg Config, m *metrics.Recommendation) *Service {
	if cfg.TechStackWeight == 0 && cfg.KeywordWeight == 0 {
		cfg.TechStackWeight = DefaultTechStackWeight
		cfg.KeywordWeight = DefaultKeywordWeight
	}
	return &Service{gens: gens, users: users, projects: projects, cfg: cfg, metrics: m}
}

// RecommendProjects ranks the active projects of the current generation for a
// collaborator. TF-IDF cosine comes first; the keyword fallback runs only
// when it yields nothing. Unknown users and an empty corpus give an empty list.
func (s *Service) RecommendProjects(ctx context.Context, req recommendation.Request) (recommendation.ProjectList, error) {
	start := time.Now()
	// one snapshot for the whole pass
	g := s.gens.Current()
	out := recommendation.ProjectList{Strategy: recommendation.StrategyNone, GenerationID: g.ID()}

	u, err := s.users.Get(ctx, req.UserID())
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.done(kindProjects, out.Strategy, start)
		return out, nil
	case err != nil:
		// The published vector still serves the primary stage. Without stored
		// skills the fallback has nothing to match and yields an empty list.
		s.skip(ctx, "user", req.UserID(), err)
		u = domuser.Reconstruct(req.UserID(), "", domuser.RoleCollaborator, nil, nil, "", "")
	}

	items, err := s.rankByTFIDF(g, u, req)
	switch {
	case errors.Is(err, domain.ErrEmptyCorpus):
		s.done(kindProjects, out.Strategy, start)
		return out, nil
	case errors.Is(err, domain.ErrDegenerateVector), err == nil && len(items) == 0:
		items = s.rankByKeywords(g, u, req)
		if len(items) > 0 {
			out.Strategy = recommendation.StrategyKeyword
		}
	default:
		out.Strategy = recommendation.StrategyTFIDF
	}

	recommendation.SortProjects(items)
	out.Items = truncate(items, req.Limit())
	s.done(kindProjects, out.Strategy, start)
	return out, nil
}

func (s *Service) rankByTFIDF(
	g *generation.Generation, u domuser.User, req recommendation.Request,
) ([]recommendation.Project, error) {
	if len(g.Projects()) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	v, ok := g.CollaboratorVector(u.ID())
	if !ok {
		// registered since the last rebuild: weigh against the current corpus
		v = g.Corpus().Vectorize(feature.Analyze(u.SkillText()))
	}
	if v.IsEmpty() {
		return nil, domain.ErrDegenerateVector
	}

	ix := g.Interactions()
	var items []recommendation.Project
	for _, p := range g.Projects() {
		if !req.IncludeEngaged() && ix.Engaged(u.ID(), p.ID()) {
			continue
		}
		score := similarity.Cosine(v, g.ProjectVector(p.ID()))
		if !keep(score, req.MinScore()) {
			continue
		}
		items = append(items, recommendation.NewProject(p, score, ix.Status(u.ID(), p.ID())))
	}
	return items, nil
}

func (s *Service) rankByKeywords(
	g *generation.Generation, u domuser.User, req recommendation.Request,
) []recommendation.Project {
	skills := similarity.NewSet(u.Skills()...)
	skillKeywords := similarity.NewSet(feature.Keywords(u.SkillText(), keywordMinLen)...)
	if len(skills) == 0 && len(skillKeywords) == 0 {
		return nil
	}

	ix := g.Interactions()
	var items []recommendation.Project
	for _, p := range g.Projects() {
		if !req.IncludeEngaged() && ix.Engaged(u.ID(), p.ID()) {
			continue
		}
		prof := g.Profile(p.ID())
		score := s.cfg.TechStackWeight*similarity.Jaccard(skills, prof.TechStack) +
			s.cfg.KeywordWeight*similarity.Jaccard(skillKeywords, prof.Keywords)
		if !keep(score, req.MinScore()) {
			continue
		}
		items = append(items, recommendation.NewProject(p, score, ix.Status(u.ID(), p.ID())))
	}
	return items
}

// RecommendMentors ranks mentors by the Jaccard overlap between what the user
// needs and what each mentor offers. Needs are mapped to expertise categories
// first; raw keywords are tried when no mentor matches a category.
func (s *Service) RecommendMentors(ctx context.Context, req recommendation.Request) (recommendation.MentorList, error) {
	start := time.Now()
	out := recommendation.MentorList{Strategy: recommendation.StrategyNone}

	u, err := s.users.Get(ctx, req.UserID())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.skip(ctx, "user", req.UserID(), err)
		}
		s.done(kindMentors, out.Strategy, start)
		return out, nil
	}

	needs := s.needs(ctx, u)
	if len(needs) == 0 {
		s.done(kindMentors, out.Strategy, start)
		return out, nil
	}

	mentors, err := s.users.ListByRole(ctx, domuser.RoleMentor)
	if err != nil {
		s.skip(ctx, "mentors", u.ID(), err)
		s.done(kindMentors, out.Strategy, start)
		return out, nil
	}

	items := rankMentors(u.ID(), mentors, similarity.NewSet(expertise.MapAll(needs)...), req)
	out.Strategy = recommendation.StrategyExpertise
	if len(items) == 0 {
		items = rankMentors(u.ID(), mentors, similarity.NewSet(needs...), req)
		out.Strategy = recommendation.StrategyRaw
	}
	if len(items) == 0 {
		out.Strategy = recommendation.StrategyNone
	}

	recommendation.SortMentors(items)
	out.Items = truncate(items, req.Limit())
	s.done(kindMentors, out.Strategy, start)
	return out, nil
}

// needs returns the user's skills plus, for creators, the tech stacks of
// their active projects. A failed project read leaves the skills alone.
func (s *Service) needs(ctx context.Context, u domuser.User) []string {
	needs := append([]string(nil), u.Skills()...)
	if u.Role() != domuser.RoleCreator {
		return needs
	}
	ps, err := s.projects.ListActiveByCreator(ctx, u.ID())
	if err != nil {
		s.skip(ctx, "creator_projects", u.ID(), err)
		return needs
	}
	for _, p := range ps {
		needs = append(needs, p.TechStack()...)
	}
	return needs
}

func rankMentors(
	requesterID string, mentors []domuser.User,
	need similarity.Set, req recommendation.Request,
) []recommendation.Mentor {
	var items []recommendation.Mentor
	for _, m := range mentors {
		if m.ID() == requesterID {
			continue
		}
		offer := similarity.NewSet(m.AreasOfExpertise()...).Union(similarity.NewSet(m.CredentialPhrases()...))
		score := similarity.Jaccard(need, offer)
		if !keep(score, req.MinScore()) {
			continue
		}
		items = append(items, recommendation.NewMentor(m, score))
	}
	return items
}

// skip logs a read the ranking pass continues without and counts it.
func (s *Service) skip(ctx context.Context, kind, id string, err error) {
	logpkg.FromContext(ctx).Warn("continuing without record", zap.Error(domain.NewSkip(kind, id, err)))
	if s.metrics != nil {
		s.metrics.SkippedRecords.WithLabelValues(kind).Inc()
	}
}

func (s *Service) done(kind string, strategy recommendation.Strategy, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecommendsTotal.WithLabelValues(kind, string(strategy)).Inc()
	s.metrics.RecommendDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// keep reports whether score is positive and reaches minScore.
func keep(score, minScore float64) bool {
	return score > 0 && score >= minScore
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
