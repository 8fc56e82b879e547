// Package config persists the viewer's small amount of state between runs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"image-viewer/internal/logger"
)

// FileName is the fixed name of the state file inside the config directory.
const FileName = "ImageViewer.json"

type Config struct {
	LastOpenPath string `json:"last_open_path"`
}

// Store reads and writes Config in a single directory.
type Store struct {
	path   string
	logger logger.Logger
}

// NewStore binds a store to dir; an empty dir means the working directory.
func NewStore(dir string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		path:   filepath.Join(dir, FileName),
		logger: log,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load never fails: a missing, unreadable or corrupt file yields the zero Config.
func (s *Store) Load() Config {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("Config", "no saved state", map[string]interface{}{
				"path": s.path,
			})
		} else {
			s.logger.Warning("Config", "state file unreadable, using defaults", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return Config{}
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		s.logger.Warning("Config", "state file corrupt, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return Config{}
	}

	s.logger.Debug("Config", "state loaded", map[string]interface{}{
		"path":           s.path,
		"last_open_path": cfg.LastOpenPath,
	})
	return cfg
}

// Save overwrites the state file. The handle is released before returning
// on every path.
func (s *Store) Save(cfg Config) (err error) {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	if err := json.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	s.logger.Debug("Config", "state saved", map[string]interface{}{
		"path":           s.path,
		"last_open_path": cfg.LastOpenPath,
	})
	return nil
}
