package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/openclc-dev/openclc-front-sdk/capability"
)

// FileStore reads and writes registry snapshots as YAML files.
type FileStore struct {
	logger *slog.Logger
}

// StoreOption configures a FileStore.
type StoreOption func(*FileStore)

// WithLogger sets the logger for load/save reporting.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore creates a new FileStore.
func NewFileStore(opts ...StoreOption) *FileStore {
	s := &FileStore{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes the full table of src to path. Every record is persisted
// exactly as exported.
func (s *FileStore) Save(ctx context.Context, src capability.TableAccessor, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening directory for write %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	base := filepath.Base(path)
	file, err := root.OpenFile(base, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating snapshot %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	doc := FromRecords(src.ExportRecords())

	encoder := yaml.NewEncoder(file)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	s.logger.DebugContext(ctx, "snapshot saved",
		"path", path, "records", len(doc.Capabilities))
	return nil
}

// Load reads a snapshot from path and replaces the table of dst with it.
// A missing file is not an error; Load reports whether anything was
// loaded.
func (s *FileStore) Load(ctx context.Context, dst capability.TableAccessor, path string) (bool, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open snapshot %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	var doc Document
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&doc); err != nil {
		return false, fmt.Errorf("decoding snapshot YAML: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return false, fmt.Errorf("invalid snapshot: %w", err)
	}

	if err := dst.ImportRecords(doc.ToRecords()); err != nil {
		return false, fmt.Errorf("importing snapshot records: %w", err)
	}

	s.logger.DebugContext(ctx, "snapshot loaded",
		"path", path, "records", len(doc.Capabilities))
	return true, nil
}

// Exists checks whether a snapshot exists at the given path.
func (s *FileStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
