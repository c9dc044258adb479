package chi

import (
	"context"

	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	"github.com/kailas-cloud/collabrec/internal/domain/recommendation"
	healthuc "github.com/kailas-cloud/collabrec/internal/usecase/health"
)

// Recommender ranks projects and mentors.
type Recommender interface {
	RecommendProjects(ctx context.Context, req recommendation.Request) (recommendation.ProjectList, error)
	RecommendMentors(ctx context.Context, req recommendation.Request) (recommendation.MentorList, error)
}

// Rebuilder triggers a corpus rebuild.
type Rebuilder interface {
	Rebuild(ctx context.Context) (generation.Stats, error)
}

// GenerationSource exposes the published corpus generation.
type GenerationSource interface {
	Current() *generation.Generation
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
