package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TextExtensions are the plain-text screenplay formats TextSource reads
var TextExtensions = []string{".txt", ".fountain"}

// TextSource reads plain-text screenplays. A single file is split into pages
// at form feeds; a directory contributes one page per text file, in name
// order.
type TextSource struct {
	pages []string
}

func NewTextSource(path string) (*TextSource, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &TextSource{pages: strings.Split(string(data), "\f")}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && IsText(entry.Name()) {
			paths = append(paths, filepath.Join(path, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no text pages found in %s", path)
	}

	s := &TextSource{}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		s.pages = append(s.pages, string(data))
	}
	return s, nil
}

// IsText reports whether name has one of TextExtensions
func IsText(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range TextExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func (s *TextSource) PageCount() int {
	return len(s.pages)
}

func (s *TextSource) PageText(index int) (string, error) {
	if index < 0 || index >= len(s.pages) {
		return "", fmt.Errorf("page %d out of range (%d pages)", index+1, len(s.pages))
	}
	return s.pages[index], nil
}

func (s *TextSource) Close() error {
	return nil
}

// Open picks a source by file extension. Directories are read as text pages.
func Open(path string) (Source, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() || IsText(path) {
		return NewTextSource(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewFitzPDFSource(path)
	}
	return nil, fmt.Errorf("unsupported screenplay source: %s", path)
}
