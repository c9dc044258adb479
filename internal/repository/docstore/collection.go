// Package docstore maps entity kinds onto the key-value document store:
// one JSON value per entity at {prefix}{kind}:{id}.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/collabrec/internal/db"
	"github.com/kailas-cloud/collabrec/internal/domain"
	logpkg "github.com/kailas-cloud/collabrec/internal/logger"
)

// mgetBatch bounds the number of keys per MGET round-trip.
const mgetBatch = 500

// Store is the consumer interface for document collections (ISP).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Codec converts between stored bytes and a domain value.
type Codec[T any] struct {
	Decode func(raw []byte) (T, error)
	Encode func(v T) ([]byte, error)
	ID     func(v T) string
}

// Collection reads and writes one entity kind.
type Collection[T any] struct {
	store   Store
	prefix  string
	kind    string
	codec   Codec[T]
	skipped *prometheus.CounterVec
}

// New creates a collection for kind under prefix.
// skipped is a counter vec with label "kind", passed explicitly; it may be nil.
func New[T any](s Store, prefix, kind string, codec Codec[T], skipped *prometheus.CounterVec) *Collection[T] {
	return &Collection[T]{store: s, prefix: prefix, kind: kind, codec: codec, skipped: skipped}
}

// Kind returns the entity kind.
func (c *Collection[T]) Kind() string { return c.kind }

// Key returns the storage key of an entity.
func (c *Collection[T]) Key(id string) string {
	return c.prefix + c.kind + ":" + id
}

// Get returns one entity. Missing keys map to domain.ErrNotFound.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	key := c.Key(id)
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return zero, fmt.Errorf("%s %q: %w", c.kind, id, domain.ErrNotFound)
		}
		return zero, fmt.Errorf("get %s: %w", key, err)
	}
	v, err := c.codec.Decode(raw)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

// Put stores one entity.
func (c *Collection[T]) Put(ctx context.Context, v T) error {
	if c.codec.Encode == nil || c.codec.ID == nil {
		return fmt.Errorf("%s collection is read-only", c.kind)
	}
	id := c.codec.ID(v)
	if id == "" {
		return fmt.Errorf("%s without id: %w", c.kind, domain.ErrInvalidRequest)
	}
	data, err := c.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", c.kind, id, err)
	}
	if err := c.store.Set(ctx, c.Key(id), data); err != nil {
		return fmt.Errorf("set %s: %w", c.Key(id), err)
	}
	return nil
}

// Exists reports whether an entity with id is stored.
func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := c.store.Exists(ctx, c.Key(id))
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", c.Key(id), err)
	}
	return ok, nil
}

// Delete removes an entity. Deleting a missing entity is not an error.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%s without id: %w", c.kind, domain.ErrInvalidRequest)
	}
	if err := c.store.Del(ctx, c.Key(id)); err != nil {
		return fmt.Errorf("del %s: %w", c.Key(id), err)
	}
	return nil
}

// List returns every entity of the kind once. Records that vanish between SCAN
// and MGET, or fail to decode, are logged and skipped.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	scanned, err := c.store.Scan(ctx, c.prefix+c.kind+":*")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", c.kind, err)
	}
	keys := uniqueKeys(scanned)

	out := make([]T, 0, len(keys))
	for start := 0; start < len(keys); start += mgetBatch {
		end := min(start+mgetBatch, len(keys))
		batch := keys[start:end]

		vals, err := c.store.MGet(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("mget %s: %w", c.kind, err)
		}
		for i, raw := range vals {
			if raw == nil {
				continue
			}
			v, err := c.codec.Decode(raw)
			if err != nil {
				c.skip(ctx, batch[i], err)
				continue
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// uniqueKeys drops repeats; SCAN may return a key more than once.
func uniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func (c *Collection[T]) skip(ctx context.Context, key string, err error) {
	id := strings.TrimPrefix(key, c.prefix+c.kind+":")
	logpkg.FromContext(ctx).Warn("skipping undecodable record",
		zap.Error(domain.NewSkip(c.kind, id, err)),
	)
	if c.skipped != nil {
		c.skipped.WithLabelValues(c.kind).Inc()
	}
}
