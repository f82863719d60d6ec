// Package localstore provides the local persistence layer for the Solitude
// application. It is the single place that touches disk: every store keeps
// its whole state in one named JSON blob, loaded at startup and rewritten on
// every mutation. This centralizes persistence concerns the same way a
// database package would, except the "database" here is a directory of
// JSON files surviving across runs.
//
// The load path applies a defensive parse-or-reset policy that every store
// relies on identically: a blob that is missing yields the store's empty
// default; a blob that cannot be read or decoded is logged, deleted, and
// treated as missing. One malformed record must never break a whole store,
// and corruption is never surfaced to the end user as an error.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/syedOmegaPrime/SolitudeFinalProject/apperror"
)

// Well-known blob keys. Each store owns exactly one of these.
const (
	RegisteredUsersKey = "registeredUsers"
	CurrentUserKey     = "currentUser"
	CartItemsKey       = "cartItems"
	AssetsKey          = "dynamicAssets"
	ForumPostsKey      = "forumPostsData"
)

// Store reads and writes named JSON blobs under a single directory.
// It is safe for use by a single process; there is no cross-process locking,
// so a second concurrent instance can overwrite newer state with stale state
// on its next write (last write wins).
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperror.NewStorageError(fmt.Sprintf("failed to create data directory %s", dir), err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory holding the persisted blobs.
func (s *Store) Dir() string {
	return s.dir
}

// path maps a blob key to its file on disk.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the blob named by key into dest, which must be a pointer.
// The boolean reports whether a usable blob was found:
//
//   - absent key: (false, nil) and dest is left untouched, so the caller's
//     zero value stands in as the empty default
//   - unreadable or undecodable blob: a diagnostic is logged, the corrupted
//     file is removed, and the result is (false, nil) exactly as if the key
//     had been absent
//   - otherwise: dest is populated and the result is (true, nil)
//
// A non-nil error is returned only for failures that are neither absence nor
// corruption (e.g. permission problems removing the corrupt file).
func (s *Store) Load(key string, dest any) (bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		// An unreadable file gets the same treatment as a corrupt one.
		s.logger.Warn("failed to read persisted blob, resetting",
			"key", key, "error", err)
		return false, s.reset(key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("persisted blob is corrupted, resetting",
			"key", key, "error", apperror.NewCorruptDataError("undecodable blob", err))
		return false, s.reset(key)
	}
	return true, nil
}

// Save marshals value and writes it as the blob named by key.
// The write goes through a temp file and rename so a crash mid-write cannot
// leave a half-written blob for the next load to choke on.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("failed to encode blob %s", key), err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return apperror.NewStorageError(fmt.Sprintf("failed to create temp file for blob %s", key), err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return apperror.NewStorageError(fmt.Sprintf("failed to write blob %s", key), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorageError(fmt.Sprintf("failed to close blob %s", key), err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return apperror.NewStorageError(fmt.Sprintf("failed to replace blob %s", key), err)
	}
	return nil
}

// Remove deletes the blob named by key. An absent blob is not an error;
// "removed" and "never existed" are the same observable state.
func (s *Store) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperror.NewStorageError(fmt.Sprintf("failed to remove blob %s", key), err)
	}
	return nil
}

// reset discards a corrupted blob so the next load starts from the default.
func (s *Store) reset(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperror.NewStorageError(fmt.Sprintf("failed to discard corrupted blob %s", key), err)
	}
	return nil
}
