package corpus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kailas-cloud/collabrec/internal/domain"
	"github.com/kailas-cloud/collabrec/internal/domain/generation"
	logpkg "github.com/kailas-cloud/collabrec/internal/logger"
	"github.com/kailas-cloud/collabrec/internal/metrics"
)

// Rebuild outcomes recorded in metrics.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeRejected = "rejected"
)

// Defaults for zero-valued RefresherConfig fields.
const (
	DefaultInterval         = 5 * time.Minute
	DefaultRebuildTimeout   = 2 * time.Minute
	DefaultFailureThreshold = 3
	DefaultBreakerTimeout   = 30 * time.Second
	DefaultRetryInterval    = 5 * time.Second
)

// RefresherConfig tunes the rebuild schedule and the store breaker.
type RefresherConfig struct {
	Interval         time.Duration
	RebuildTimeout   time.Duration
	FailureThreshold uint32
	BreakerTimeout   time.Duration
	// RetryInterval is the first delay between attempts while no generation is published.
	RetryInterval time.Duration
}

func (c *RefresherConfig) applyDefaults() {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.RebuildTimeout <= 0 {
		c.RebuildTimeout = DefaultRebuildTimeout
	}
	if c.FailureThreshold == 0 {
		c.FailureThreshold = DefaultFailureThreshold
	}
	if c.BreakerTimeout <= 0 {
		c.BreakerTimeout = DefaultBreakerTimeout
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = DefaultRetryInterval
	}
	if c.RetryInterval > c.Interval {
		c.RetryInterval = c.Interval
	}
}

// Refresher rebuilds generations and publishes them to a Holder.
// At most one rebuild runs at a time; concurrent callers share its result.
type Refresher struct {
	loader  SnapshotLoader
	holder  *Holder
	cfg     RefresherConfig
	breaker *gobreaker.CircuitBreaker[Snapshot]
	group   singleflight.Group
	metrics *metrics.Recommendation
	logger  *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewRefresher creates a Refresher. m may be nil.
func NewRefresher(
	loader SnapshotLoader, holder *Holder, cfg RefresherConfig,
	m *metrics.Recommendation, logger *zap.Logger,
) *Refresher {
	cfg.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Refresher{
		loader:  loader,
		holder:  holder,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	r.breaker = gobreaker.NewCircuitBreaker[Snapshot](gobreaker.Settings{
		Name:    "corpus-loader",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			r.logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return r
}

// Rebuild loads a snapshot, builds a generation and publishes it.
// On failure the previous generation stays published and the error is returned.
func (r *Refresher) Rebuild(ctx context.Context) (generation.Stats, error) {
	v, err, shared := r.group.Do("rebuild", func() (any, error) {
		// detached so that one caller going away does not fail the others
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cfg.RebuildTimeout)
		defer cancel()
		// scheduled rebuilds carry no request logger; repositories log skipped records through it
		rctx = logpkg.ContextWithLogger(rctx, logpkg.FromContextOr(ctx, r.logger))
		return r.rebuild(rctx)
	})
	if shared {
		r.logger.Debug("joined in-flight rebuild")
	}
	if err != nil {
		return generation.Stats{}, err //nolint:wrapcheck // wrapped in rebuild
	}
	stats, _ := v.(generation.Stats)
	return stats, nil
}

func (r *Refresher) rebuild(ctx context.Context) (generation.Stats, error) {
	start := r.now()

	snap, err := r.breaker.Execute(func() (Snapshot, error) {
		return r.loader.Load(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			r.observe(outcomeRejected, start)
			return generation.Stats{}, fmt.Errorf("load corpus: %w: %w", domain.ErrCorpusUnavailable, err)
		}
		r.observe(outcomeError, start)
		r.logger.Error("corpus rebuild failed", zap.Error(err))
		return generation.Stats{}, fmt.Errorf("load corpus: %w", err)
	}

	g := Build(snap, r.newID(), r.now())
	prev := r.holder.Swap(g)
	r.observe(outcomeOK, start)

	stats := g.Stats()
	r.record(stats)
	r.logger.Info("corpus generation published",
		zap.String("generation", stats.ID),
		zap.String("previous", prev.ID()),
		zap.Int("projects", stats.Projects),
		zap.Int("collaborators", stats.Collaborators),
		zap.Int("documents", stats.Documents),
		zap.Int("vocabulary", stats.Vocabulary),
		zap.Duration("took", r.now().Sub(start)),
	)
	return stats, nil
}

// Run rebuilds immediately and then every Interval until ctx is done.
// Until the first generation is published, failed rebuilds are retried after
// RetryInterval, doubling up to Interval. Later failures are logged and the
// previous generation keeps serving.
func (r *Refresher) Run(ctx context.Context) {
	delay := r.cfg.RetryInterval
	for !r.runOnce(ctx) {
		r.logger.Info("retrying initial corpus build", zap.Duration("in", delay))
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, r.cfg.Interval)
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Refresher) runOnce(ctx context.Context) bool {
	if _, err := r.Rebuild(ctx); err != nil {
		r.logger.Warn("scheduled rebuild failed", zap.Error(err))
		return false
	}
	return true
}

func (r *Refresher) observe(outcome string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.RebuildsTotal.WithLabelValues(outcome).Inc()
	if outcome != outcomeRejected {
		r.metrics.RebuildDuration.Observe(r.now().Sub(start).Seconds())
	}
}

func (r *Refresher) record(s generation.Stats) {
	if r.metrics == nil {
		return
	}
	r.metrics.GenerationSize.WithLabelValues("projects").Set(float64(s.Projects))
	r.metrics.GenerationSize.WithLabelValues("collaborators").Set(float64(s.Collaborators))
	r.metrics.GenerationSize.WithLabelValues("documents").Set(float64(s.Documents))
	r.metrics.GenerationSize.WithLabelValues("vocabulary").Set(float64(s.Vocabulary))
	r.metrics.GenerationAge.Set(float64(s.BuiltAt.Unix()))
}
