package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Store - Owner of the settings record. Every caller loads, changes one
// field and saves the whole record back, concurrent writers can lose updates.
type Store interface {
	// Load never fails, a missing or broken record is an empty one
	Load() Settings
	Save(Settings) error
	Close() error
}

// FileStore - Settings kept in a single indented JSON file
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore - Open a JSON file store, the file does not need to exist
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// Load - Read the settings file
func (f *FileStore) Load() Settings {
	var s Settings
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn("failed to read settings file", zap.String("path", f.path), zap.Error(err))
		}
		return Settings{}
	}
	if err := json.Unmarshal(data, &s); err != nil {
		f.logger.Warn("failed to decode settings file", zap.String("path", f.path), zap.Error(err))
		return Settings{}
	}
	return s
}

// Save - Replace the settings file
func (f *FileStore) Save(s Settings) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	// Write next to the target and rename so readers never see half a file
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

// Close - Nothing to release for a file store
func (f *FileStore) Close() error {
	return nil
}
