// Package storage provides key-value persistence for tdo data.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Adapter is the persistence capability the todo store depends on.
// Persistence is best-effort: implementations log failures and keep
// going rather than surfacing errors to the caller.
type Adapter interface {
	// Save persists value under a namespaced key.
	Save(key string, value any)

	// Load reads a previously saved value into out. It returns false
	// when the key is absent or unreadable, leaving out untouched so
	// the caller keeps its default.
	Load(key string, out any) bool

	// Remove deletes a single namespaced key.
	Remove(key string)

	// Clear deletes every key in this adapter's namespace.
	Clear()
}

// FileStore implements Adapter with one JSON file per key.
// No locking; fine for a local single-user CLI.
type FileStore struct {
	dir       string
	namespace string
	logger    *log.Logger
}

// NewFileStore returns a FileStore writing to dir. Keys are stored as
// {namespace}_{key}.json so multiple stores can share a directory.
// The directory is created on first save. A nil logger falls back to
// a warn-level logger on stderr.
func NewFileStore(dir, namespace string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "tdo",
		})
	}
	return &FileStore{dir: dir, namespace: namespace, logger: logger}
}

// Dir returns the data directory backing this store.
func (f *FileStore) Dir() string {
	return f.dir
}

// keyPath returns the file path for a namespaced key.
func (f *FileStore) keyPath(key string) string {
	return filepath.Join(f.dir, fmt.Sprintf("%s_%s.json", f.namespace, key))
}

// Save writes value as indented JSON. Failures are logged and
// swallowed; the caller cannot distinguish a dropped write.
func (f *FileStore) Save(key string, value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		f.logger.Warn("dropping unserializable value", "key", key, "err", err)
		return
	}
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		f.logger.Warn("failed to create data directory", "dir", f.dir, "err", err)
		return
	}
	if err := os.WriteFile(f.keyPath(key), data, 0644); err != nil {
		f.logger.Warn("failed to write key", "key", key, "err", err)
		return
	}
	f.logger.Debug("saved key", "key", key)
}

// Load reads a key into out. Absent and corrupt values both report
// false so the caller falls back to its default.
func (f *FileStore) Load(key string, out any) bool {
	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn("failed to read key", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		f.logger.Warn("ignoring corrupt value", "key", key, "err", err)
		return false
	}
	return true
}

// Remove deletes one key. A missing key is not an error.
func (f *FileStore) Remove(key string) {
	if err := os.Remove(f.keyPath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		f.logger.Warn("failed to remove key", "key", key, "err", err)
	}
}

// Clear deletes every key carrying this store's namespace prefix.
// Files belonging to other namespaces in the same directory are left
// alone.
func (f *FileStore) Clear() {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn("failed to read data directory", "dir", f.dir, "err", err)
		}
		return
	}

	prefix := f.namespace + "_"
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil {
			f.logger.Warn("failed to remove key file", "file", name, "err", err)
		}
	}
}
