package chi

import "time"

// ErrorResponseCode is a machine-readable error code.
type ErrorResponseCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorResponseCodeBadRequest        ErrorResponseCode = "bad_request"
	ErrorResponseCodeUnauthorized      ErrorResponseCode = "unauthorized"
	ErrorResponseCodeForbidden         ErrorResponseCode = "forbidden"
	ErrorResponseCodeValidationFailed  ErrorResponseCode = "validation_failed"
	ErrorResponseCodeNotFound          ErrorResponseCode = "not_found"
	ErrorResponseCodeRateLimited       ErrorResponseCode = "rate_limited"
	ErrorResponseCodeCorpusUnavailable ErrorResponseCode = "corpus_unavailable"
	ErrorResponseCodeInternalError     ErrorResponseCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// ProjectItem is one recommended project.
type ProjectItem struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Category            string   `json:"category"`
	TechStack           []string `json:"techStack"`
	Status              string   `json:"status"`
	Creator             string   `json:"creator"`
	RecommendationScore float64  `json:"recommendationScore"`
	CollaboratorStatus  string   `json:"collaboratorStatus,omitempty"`
}

// ProjectListResponse is the body of GET /recommendations/projects.
type ProjectListResponse struct {
	Items      []ProjectItem `json:"items"`
	Strategy   string        `json:"strategy"`
	Generation string        `json:"generation,omitempty"`
}

// MentorItem is one recommended mentor. Only public profile fields are exposed.
type MentorItem struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	AreasOfExpertise    []string `json:"areasOfExpertise"`
	Credentials         string   `json:"credentials,omitempty"`
	Bio                 string   `json:"bio,omitempty"`
	RecommendationScore float64  `json:"recommendationScore"`
}

// MentorListResponse is the body of GET /recommendations/mentors.
type MentorListResponse struct {
	Items    []MentorItem `json:"items"`
	Strategy string       `json:"strategy"`
}

// GenerationResponse describes a corpus generation.
type GenerationResponse struct {
	ID               string     `json:"id"`
	BuiltAt          *time.Time `json:"builtAt,omitempty"`
	Projects         int        `json:"projects"`
	Collaborators    int        `json:"collaborators"`
	Documents        int        `json:"documents"`
	Vocabulary       int        `json:"vocabulary"`
	InteractionUsers int        `json:"interactionUsers"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status     string            `json:"status"`
	Checks     map[string]string `json:"checks"`
	Generation string            `json:"generation,omitempty"`
}
