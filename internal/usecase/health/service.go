package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckPending indicates a component that has not finished starting.
	CheckPending CheckResult = "pending"
)

// Report aggregates health check results.
type Report struct {
	Status     Status
	Checks     map[string]CheckResult
	Generation string
	BuiltAt    time.Time
}

// Service coordinates health checks.
type Service struct {
	db     DBPinger
	corpus GenerationSource
}

// New creates a Service. corpus can be nil.
func New(db DBPinger, corpus GenerationSource) *Service {
	return &Service{db: db, corpus: corpus}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	var r Report

	dbOK := s.db.Ping(ctx) == nil
	if dbOK {
		checks["database"] = CheckOK
	} else {
		checks["database"] = CheckError
	}

	if s.corpus != nil {
		g := s.corpus.Current()
		if g.IsEmpty() {
			checks["corpus"] = CheckPending
		} else {
			checks["corpus"] = CheckOK
			r.Generation = g.ID()
			r.BuiltAt = g.BuiltAt()
		}
	}

	r.Status = Healthy
	for _, v := range checks {
		if v != CheckOK {
			r.Status = Degraded
			break
		}
	}
	// nothing can be served without the store and a corpus
	if !dbOK && checks["corpus"] != CheckOK {
		r.Status = Unhealthy
	}
	r.Checks = checks
	return r
}
