package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	settingsBucket = []byte("settings")
	settingsKey    = []byte("bot")
)

// BoltStore - Settings kept as one JSON value in a bolt bucket
type BoltStore struct {
	db     *bolt.DB
	logger *zap.Logger
}

// NewBoltStore - Open or create the bolt file at path
func NewBoltStore(path string, logger *zap.Logger) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 10 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	return &BoltStore{db: db, logger: logger}, nil
}

// Load - Get settings from the db
func (b *BoltStore) Load() Settings {
	var s Settings
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(settingsBucket)
		if bucket == nil {
			return nil
		}
		v := bucket.Get(settingsKey)
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &s)
	})
	if err != nil {
		b.logger.Warn("failed to load settings", zap.Error(err))
		return Settings{}
	}
	return s
}

// Save - Update settings in the db
func (b *BoltStore) Save(s Settings) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(settingsBucket)
		if err != nil {
			return err
		}
		// Encode settings and update db
		bts, err := json.Marshal(s)
		if err != nil {
			return err
		}
		return bucket.Put(settingsKey, bts)
	})
}

// Close - Close DB connection
func (b *BoltStore) Close() error {
	return b.db.Close()
}
