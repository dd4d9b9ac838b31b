package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"ems-cli/logger"
)

// FileRepository stores the session as YAML in a single 0600 file
type FileRepository struct {
	path string
	log  zerolog.Logger
}

// NewFileRepository creates a repository backed by the file at path
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: path,
		log:  logger.Component("session.file"),
	}
}

// Path returns the backing file location
func (r *FileRepository) Path() string {
	return r.path
}

// Get reads the stored session. A missing or corrupt file reads as logged out.
func (r *FileRepository) Get() Session {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.log.Warn().Err(err).Str("path", r.path).Msg("session file unreadable, treating as logged out")
		}
		return Session{}
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("session file corrupt, treating as logged out")
		return Session{}
	}
	return s
}

// Set overwrites the session file
func (r *FileRepository) Set(s Session) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the session file. Removing a missing file is not an error.
func (r *FileRepository) Clear() error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}
