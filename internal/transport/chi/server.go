package chi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/collabrec/internal/domain"
	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	"github.com/kailas-cloud/collabrec/internal/domain/recommendation"
	domuser "github.com/kailas-cloud/collabrec/internal/domain/user"
	logpkg "github.com/kailas-cloud/collabrec/internal/logger"
	healthuc "github.com/kailas-cloud/collabrec/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the recommendation API.
type Server struct {
	recommend     Recommender
	rebuilder     Rebuilder
	generations   GenerationSource
	health        HealthChecker
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	recommend Recommender,
	rebuilder Rebuilder,
	generations GenerationSource,
	health HealthChecker,
	logger *zap.Logger,
) *Server {
	s := &Server{
		recommend:   recommend,
		rebuilder:   rebuilder,
		generations: generations,
		health:      health,
		metrics:     promhttp.Handler(),
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest, ErrorResponseCodeValidationFailed),
		sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized, ErrorResponseCodeUnauthorized),
		sentinelHandler(domain.ErrForbidden, http.StatusForbidden, ErrorResponseCodeForbidden),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorResponseCodeNotFound),
		sentinelHandler(domain.ErrCorpusUnavailable,
			http.StatusServiceUnavailable, ErrorResponseCodeCorpusUnavailable),
	}
	return s
}

// Routes mounts the API on r. Auth must already be installed on r.
func (s *Server) Routes(r chi.Router, limit func(http.Handler) http.Handler) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1/recommendations", func(r chi.Router) {
		if limit != nil {
			r.Use(limit)
		}
		r.Get("/projects", s.RecommendProjects)
		r.Get("/mentors", s.RecommendMentors)
		r.Get("/generation", s.GetGeneration)
		r.With(RequireRole(domuser.RoleAdmin)).Post("/refresh", s.Refresh)
	})
}

// RecommendProjects handles GET /api/v1/recommendations/projects.
func (s *Server) RecommendProjects(w http.ResponseWriter, r *http.Request) {
	req, ok := s.bindRequest(w, r, true)
	if !ok {
		return
	}

	list, err := s.recommend.RecommendProjects(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]ProjectItem, len(list.Items))
	for i := range list.Items {
		items[i] = projectItem(&list.Items[i])
	}
	writeJSON(w, http.StatusOK, ProjectListResponse{
		Items:      items,
		Strategy:   string(list.Strategy),
		Generation: list.GenerationID,
	})
}

// RecommendMentors handles GET /api/v1/recommendations/mentors.
func (s *Server) RecommendMentors(w http.ResponseWriter, r *http.Request) {
	req, ok := s.bindRequest(w, r, false)
	if !ok {
		return
	}

	list, err := s.recommend.RecommendMentors(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]MentorItem, len(list.Items))
	for i := range list.Items {
		items[i] = mentorItem(&list.Items[i])
	}
	writeJSON(w, http.StatusOK, MentorListResponse{Items: items, Strategy: string(list.Strategy)})
}

// GetGeneration handles GET /api/v1/recommendations/generation.
func (s *Server) GetGeneration(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, generationToResponse(s.generations.Current().Stats()))
}

// Refresh handles POST /api/v1/recommendations/refresh.
func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	stats, err := s.rebuilder.Rebuild(r.Context())
	if err != nil {
		// the previous generation keeps serving; report the rebuild as unavailable
		s.handleDomainError(w, r, fmt.Errorf("rebuild: %w: %w", domain.ErrCorpusUnavailable, err))
		return
	}
	writeJSON(w, http.StatusOK, generationToResponse(stats))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:     string(report.Status),
		Checks:     checks,
		Generation: report.Generation,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

// bindRequest builds a recommendation request for the caller from query parameters.
func (s *Server) bindRequest(w http.ResponseWriter, r *http.Request, allowEngaged bool) (recommendation.Request, bool) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, ErrorResponseCodeUnauthorized, "missing caller identity")
		return recommendation.Request{}, false
	}

	q := r.URL.Query()
	var (
		limit          int
		minScore       float64
		includeEngaged bool
	)
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "invalid limit")
		return recommendation.Request{}, false
	}
	if err := runtime.BindQueryParameter("form", true, false, "min_score", q, &minScore); err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "invalid min_score")
		return recommendation.Request{}, false
	}
	if allowEngaged {
		if err := runtime.BindQueryParameter("form", true, false, "include_engaged", q, &includeEngaged); err != nil {
			writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, "invalid include_engaged")
			return recommendation.Request{}, false
		}
	}

	req, err := recommendation.NewRequest(id.UserID, limit, minScore, includeEngaged)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorResponseCodeValidationFailed, err.Error())
		return recommendation.Request{}, false
	}
	return req, true
}

func projectItem(it *recommendation.Project) ProjectItem {
	p := it.Project()
	stack := p.TechStack()
	if stack == nil {
		stack = []string{}
	}
	return ProjectItem{
		ID:                  p.ID(),
		Title:               p.Title(),
		Description:         p.Description(),
		Category:            p.Category(),
		TechStack:           stack,
		Status:              string(p.Status()),
		Creator:             p.Creator(),
		RecommendationScore: it.Score(),
		CollaboratorStatus:  it.CollaboratorStatus(),
	}
}

func mentorItem(it *recommendation.Mentor) MentorItem {
	m := it.Mentor()
	areas := m.AreasOfExpertise()
	if areas == nil {
		areas = []string{}
	}
	return MentorItem{
		ID:                  m.ID(),
		Name:                m.Name(),
		AreasOfExpertise:    areas,
		Credentials:         m.Credentials(),
		Bio:                 m.Bio(),
		RecommendationScore: it.Score(),
	}
}

func generationToResponse(st generation.Stats) GenerationResponse {
	resp := GenerationResponse{
		ID:               st.ID,
		Projects:         st.Projects,
		Collaborators:    st.Collaborators,
		Documents:        st.Documents,
		Vocabulary:       st.Vocabulary,
		InteractionUsers: st.InteractionUsers,
	}
	if !st.BuiltAt.IsZero() {
		t := st.BuiltAt.UTC()
		resp.BuiltAt = &t
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidRequest,
		domain.ErrUnauthorized,
		domain.ErrForbidden,
		domain.ErrNotFound,
		domain.ErrCorpusUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logpkg.FromContextOr(r.Context(), s.logger)
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			logger.Warn("domain error", zap.Error(err))
			return
		}
	}
	logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorResponseCodeInternalError, "internal error")
}
