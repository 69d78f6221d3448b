package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Memory keeps collections in a map. Used by tests and for ephemeral runs
// where nothing should survive a restart.
type Memory struct {
	mu        sync.RWMutex
	namespace string
	records   map[string][]byte
}

func NewMemory(namespace string) *Memory {
	return &Memory{namespace: namespace, records: make(map[string][]byte)}
}

func (s *Memory) Save(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key(s.namespace, collection)] = data
	return nil
}

func (s *Memory) Load(ctx context.Context, collection string, dest any) (bool, error) {
	s.mu.RLock()
	data, ok := s.records[key(s.namespace, collection)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Warn().Str("collection", collection).Err(err).Msg("discarding corrupt stored record")
		return false, nil
	}
	return true, nil
}

func (s *Memory) Close() error {
	return nil
}
