package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// Bolt stores collections in a single bucket of an embedded bbolt file. This
// is the default backend: a local key-value store that needs no external
// process.
type Bolt struct {
	db        *bolt.DB
	namespace string
}

// OpenBolt opens (or creates) the database file and ensures the bucket
// exists.
func OpenBolt(path, namespace string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(namespace))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Bolt{db: db, namespace: namespace}, nil
}

func (s *Bolt) Save(ctx context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", collection, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(s.namespace))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", s.namespace)
		}
		return b.Put([]byte(key(s.namespace, collection)), data)
	})
}

func (s *Bolt) Load(ctx context.Context, collection string, dest any) (bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(s.namespace))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key(s.namespace, collection))); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", collection, err)
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Warn().Str("collection", collection).Err(err).Msg("discarding corrupt stored record")
		return false, nil
	}
	return true, nil
}

func (s *Bolt) Close() error {
	return s.db.Close()
}
