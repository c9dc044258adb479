package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn    func(ctx context.Context, key string) ([]byte, error)
	mgetFn   func(ctx context.Context, keys []string) ([][]byte, error)
	setFn    func(ctx context.Context, key string, value []byte) error
	delFn    func(ctx context.Context, key string) error
	existsFn func(ctx context.Context, key string) (bool, error)
	scanFn   func(ctx context.Context, pattern string) ([]string, error)
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, errors.New("not configured")
}

func (m *mockStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if m.mgetFn != nil {
		return m.mgetFn(ctx, keys)
	}
	return make([][]byte, len(keys)), nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func (m *mockStore) Scan(ctx context.Context, pattern string) ([]string, error) {
	if m.scanFn != nil {
		return m.scanFn(ctx, pattern)
	}
	return nil, nil
}

// item is a trivial entity encoded as "id|value".
type item struct {
	id    string
	value string
}

var itemCodec = Codec[item]{
	Decode: func(raw []byte) (item, error) {
		id, value, ok := strings.Cut(string(raw), "|")
		if !ok {
			return item{}, fmt.Errorf("malformed item %q", raw)
		}
		return item{id: id, value: value}, nil
	},
	Encode: func(v item) ([]byte, error) { return []byte(v.id + "|" + v.value), nil },
	ID:     func(v item) string { return v.id },
}

func newTestCollection(t *testing.T) (*Collection[item], *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "collabrec:", "item", itemCodec, nil), ms
}
