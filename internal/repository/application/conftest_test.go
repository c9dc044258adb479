package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/kailas-cloud/collabrec/internal/db"
)

// mapStore is an in-memory document store for tests.
type mapStore struct {
	data    map[string][]byte
	scanErr error
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string][]byte)}
}

func (m *mapStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mapStore) MGet(_ context.Context, keys []string) ([][]byte, error) {
	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = m.data[k]
	}
	return out, nil
}

func (m *mapStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *mapStore) Del(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

func (m *mapStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *mapStore) put(t *testing.T, key, raw string) {
	t.Helper()
	m.data[key] = []byte(raw)
}

var errBoom = errors.New("boom")

func newTestRepo(t *testing.T) (*Repo, *mapStore) {
	t.Helper()
	ms := newMapStore()
	return New(ms, "collabrec:", nil), ms
}
