// Package store is the persistence boundary for game state. The core
// produces and consumes opaque blobs through the codec; this package owns
// where they live. Storage failures never interrupt play: saves are
// logged and dropped, loads fall back to the in-memory game.
package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lox/spider/spider"
)

// Keys for the two persisted values. Both must be present for a saved
// game to be valid; one without the other is treated as no saved state.
const (
	KeyTableau = "tableau"
	KeyStock   = "stock"
)

// ErrNotFound is returned by Load when no blob exists for the key
var ErrNotFound = errors.New("no saved value")

// Store persists keyed blobs. Implementations need not be safe for
// concurrent use; the shells serialize all game access.
type Store interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
}

// FileStore keeps each key as a JSON file in one directory
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Save writes the blob via a temp file rename so a crash mid-write
// cannot leave a truncated value behind
func (fs *FileStore) Save(key string, data []byte) error {
	tmp := fs.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path(key))
}

// Load reads the blob for key, ErrNotFound if it does not exist
func (fs *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// SaveGame encodes and writes both persisted values. Failures are logged
// and swallowed: the game simply remains unsaved for this attempt.
func SaveGame(s Store, logger *log.Logger, g *spider.Game) {
	tableau, stock, err := spider.Encode(g)
	if err != nil {
		logger.Error("Failed to encode game state", "error", err)
		return
	}
	if err := s.Save(KeyTableau, tableau); err != nil {
		logger.Error("Failed to save tableau", "error", err)
		return
	}
	if err := s.Save(KeyStock, stock); err != nil {
		logger.Error("Failed to save stock", "error", err)
	}
}

// LoadGame restores a saved game. If either value is missing or fails to
// decode the fallback game is returned unchanged; a missing save is
// normal on first run and logs at debug, anything else logs a warning.
func LoadGame(s Store, logger *log.Logger, fallback *spider.Game) *spider.Game {
	tableau, err := s.Load(KeyTableau)
	if err != nil {
		logLoadFailure(logger, KeyTableau, err)
		return fallback
	}
	stock, err := s.Load(KeyStock)
	if err != nil {
		logLoadFailure(logger, KeyStock, err)
		return fallback
	}

	g, err := spider.Decode(tableau, stock)
	if err != nil {
		logger.Warn("Ignoring corrupt saved game", "error", err)
		return fallback
	}
	return g
}

func logLoadFailure(logger *log.Logger, key string, err error) {
	if errors.Is(err, ErrNotFound) {
		logger.Debug("No saved game", "key", key)
		return
	}
	logger.Warn("Failed to load saved game", "key", key, "error", err)
}
