// SPDX-License-Identifier: MIT

package textstore

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

const (
	// DefaultExtension is used when no WithExtension option is given.
	DefaultExtension = "txt"

	settlementsBase = "settlements"
	roadsBase       = "roads"
	delimiter       = ":"
)

// Store reads and writes the two map files in one directory.
// A Store holds no graph state and may be reused for any number of loads and saves.
type Store struct {
	dir    string
	ext    string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithExtension sets the file extension, with or without the leading dot.
// An empty extension keeps the default.
func WithExtension(ext string) Option {
	return func(s *Store) {
		if ext = strings.TrimPrefix(ext, "."); ext != "" {
			s.ext = ext
		}
	}
}

// WithLogger sets the logger for load/save summaries and skipped-record warnings.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Store rooted at dir.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		ext:    DefaultExtension,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SettlementsPath returns the path of the settlements file.
func (s *Store) SettlementsPath() string {
	return filepath.Join(s.dir, settlementsBase+"."+s.ext)
}

// RoadsPath returns the path of the roads file.
func (s *Store) RoadsPath() string {
	return filepath.Join(s.dir, roadsBase+"."+s.ext)
}
