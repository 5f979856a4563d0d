package screenplay

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ivlev/directorkit/internal/analyzer"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/source"
)

// Load reads a screenplay from path, choosing the reader by extension.
// PDFs and plain-text scripts go through page parsing; a directory is read
// as a set of text pages.
func Load(path string) (*model.Screenplay, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".osf", ".xml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ParseOSF(f)

	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadYAML(f)
	}

	variant := "format"
	if ext == ".fountain" {
		variant = "fountain"
	}
	classifier, err := analyzer.NewClassifier(variant)
	if err != nil {
		return nil, err
	}

	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	pages, err := source.Pages(src)
	if err != nil {
		return nil, err
	}

	sp, err := ParsePages(TitleFromPath(path), pages, classifier)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sp, nil
}

// TitleFromPath turns "scripts/the_long_night.pdf" into "The Long Night"
func TitleFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	for i, w := range words {
		r := []rune(w)
		words[i] = string(unicode.ToUpper(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
