package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zeeshanarif5173/mywms-sub000/internal/core/ports"
)

// FallbackStore wraps a primary store with hardcoded seed lists. A failed or
// empty primary read degrades to a copy of the seed; a failed write is logged
// and swallowed. This is the one place the best-effort contract lives —
// every other component sees explicit errors.
type FallbackStore struct {
	primary ports.ListStore
	seeds   map[string]json.RawMessage
}

func NewFallbackStore(primary ports.ListStore, seeds map[string]json.RawMessage) *FallbackStore {
	if seeds == nil {
		seeds = map[string]json.RawMessage{}
	}
	return &FallbackStore{primary: primary, seeds: seeds}
}

func (s *FallbackStore) Read(ctx context.Context, key string, out any) error {
	err := s.primary.Read(ctx, key, out)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrKeyNotFound) {
		zap.L().Warn("primary store read degraded", zap.String("key", key), zap.Error(err))
	}

	seed, ok := s.seeds[key]
	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(seed, out); err != nil {
		return fmt.Errorf("decode seed list %q: %w", key, err)
	}
	return nil
}

func (s *FallbackStore) Write(ctx context.Context, key string, data any) error {
	if err := s.primary.Write(ctx, key, data); err != nil {
		// Best effort: accept possible data loss rather than failing the request.
		zap.L().Error("primary store write failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}
