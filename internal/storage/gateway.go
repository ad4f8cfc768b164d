package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Gateway reads and writes JSON documents by key.
type Gateway struct {
	store Store
}

// NewGateway creates a Gateway over s.
func NewGateway(s Store) *Gateway {
	return &Gateway{store: s}
}

// Read decodes the document under key into dst. It reports false, leaving
// dst untouched, when the key has never been written.
func (g *Gateway) Read(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := g.ReadRaw(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// Write serialises v and overwrites key.
func (g *Gateway) Write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return g.store.Put(ctx, key, data)
}

// ReadRaw returns the stored JSON text under key.
func (g *Gateway) ReadRaw(ctx context.Context, key string) (json.RawMessage, bool, error) {
	data, err := g.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if !json.Valid(data) {
		return nil, false, fmt.Errorf("%w: %s", ErrCorrupt, key)
	}
	return json.RawMessage(data), true, nil
}

// WriteRaw stores raw JSON text under key, compacted.
func (g *Gateway) WriteRaw(ctx context.Context, key string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return g.store.Put(ctx, key, buf.Bytes())
}

// Delete removes key.
func (g *Gateway) Delete(ctx context.Context, key string) error {
	return g.store.Delete(ctx, key)
}
