package recommendation

import "fmt"

// Request limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Request is a validated recommendation request for one principal.
type Request struct {
	userID         string
	limit          int
	minScore       float64
	includeEngaged bool
}

// NewRequest validates and normalizes request parameters.
// Defaults: limit=20 (clamped to 100), minScore=0, includeEngaged=false.
func NewRequest(userID string, limit int, minScore float64, includeEngaged bool) (Request, error) {
	if userID == "" {
		return Request{}, fmt.Errorf("user id is required")
	}
	if limit < 0 {
		return Request{}, fmt.Errorf("limit must not be negative")
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if minScore < 0 || minScore > 1 {
		return Request{}, fmt.Errorf("min_score must be between 0 and 1")
	}
	return Request{userID: userID, limit: limit, minScore: minScore, includeEngaged: includeEngaged}, nil
}

// UserID returns the principal the recommendations are for.
func (r Request) UserID() string { return r.userID }

// Limit returns the maximum number of results.
func (r Request) Limit() int { return r.limit }

// MinScore returns the score threshold; results must score strictly above 0 regardless.
func (r Request) MinScore() float64 { return r.minScore }

// IncludeEngaged reports whether projects the user already applied to or
// joined stay in the candidate set.
func (r Request) IncludeEngaged() bool { return r.includeEngaged }
