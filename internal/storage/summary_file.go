// filepath: internal/storage/summary_file.go
// Package storage provides read access to the documents this service exposes.
package storage

import (
	"fmt"

	"github.com/spf13/afero"
)

// SummaryFile reads the edge summary document from a filesystem.
// It never writes to the file; the external producer is its only writer.
type SummaryFile struct {
	fs      afero.Fs
	path    string
	maxSize int64
}

// NewSummaryFile creates a reader for the document at path on fs.
// A maxSize of zero disables the size check.
func NewSummaryFile(fs afero.Fs, path string, maxSize int64) *SummaryFile {
	return &SummaryFile{fs: fs, path: path, maxSize: maxSize}
}

// NewOsSummaryFile creates a reader backed by the operating system's filesystem.
func NewOsSummaryFile(path string, maxSize int64) *SummaryFile {
	return NewSummaryFile(afero.NewOsFs(), path, maxSize)
}

// Path returns the location of the summary document.
func (f *SummaryFile) Path() string {
	return f.path
}

// Read returns the full contents of the summary document.
// Errors from the filesystem are wrapped so callers can test them with errors.Is.
func (f *SummaryFile) Read() ([]byte, error) {
	info, err := f.fs.Stat(f.path)
	if err != nil {
		return nil, fmt.Errorf("could not stat summary: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("summary path %s is a directory", f.path)
	}
	if f.maxSize > 0 && info.Size() > f.maxSize {
		return nil, fmt.Errorf("summary size %d exceeds limit of %d bytes", info.Size(), f.maxSize)
	}

	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, fmt.Errorf("could not read summary: %w", err)
	}
	return data, nil
}
