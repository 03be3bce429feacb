package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
)

// Writer is a sink for generated files. Every write replaces the whole file.
type Writer interface {
	WriteFile(path string, data []byte) error
}

// Disk writes files atomically, creating parent directories as needed.
type Disk struct {
	log *slog.Logger
}

// NewDisk creates a Disk writer that logs every file it writes.
func NewDisk(log *slog.Logger) *Disk {
	return &Disk{log: log}
}

// WriteFile writes data to path using a temp file + rename.
func (d *Disk) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	d.log.Info("wrote file", "path", path, "bytes", len(data))
	return nil
}

// DryRun records what would be written without touching the filesystem.
type DryRun struct {
	log   *slog.Logger
	files map[string][]byte
}

func NewDryRun(log *slog.Logger) *DryRun {
	return &DryRun{log: log, files: make(map[string][]byte)}
}

func (d *DryRun) WriteFile(path string, data []byte) error {
	d.files[path] = append([]byte(nil), data...)
	d.log.Info("would write file", "path", path, "bytes", len(data))
	return nil
}

// Paths returns the recorded paths in lexical order.
func (d *DryRun) Paths() []string {
	paths := make([]string, 0, len(d.files))
	for p := range d.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// File returns the recorded contents for path.
func (d *DryRun) File(path string) ([]byte, bool) {
	data, ok := d.files[path]
	return data, ok
}
