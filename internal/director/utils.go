package director

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/ivlev/directorkit/internal/system"
)

// GenerateProjectPath creates a timestamped project filename inside dir
func GenerateProjectPath(dir, title string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("%s_%s.yaml", Slug(title), timestamp))
}

// Slug lowercases a title and replaces anything but letters and digits with
// underscores.
func Slug(title string) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return '_'
	}, strings.TrimSpace(title))
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "project"
	}
	return slug
}

// FindLatestProject finds the most recent project file in dir
func FindLatestProject(dir string) (string, error) {
	return system.FindLatest(dir, ".yaml", ".yml")
}
