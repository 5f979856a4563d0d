// Package backstory holds the character backstories the planner resolves
// speaking characters against.
package backstory

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/directorkit/internal/model"
)

// Catalog is a name-keyed set of backstories. Names are matched without
// regard to case or surrounding whitespace. Reads may run concurrently.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]*model.CharacterBackstory
}

func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]*model.CharacterBackstory)}
}

func key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Add stores b, replacing any backstory of the same character.
func (c *Catalog) Add(b *model.CharacterBackstory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(b.CharacterName)] = b
}

// Lookup finds the backstory of name. When a screenplay is given, a cue with
// an extension ("ANA (V.O.)") resolves to the cast member it belongs to.
func (c *Catalog) Lookup(name string, sp *model.Screenplay) (*model.CharacterBackstory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if b, ok := c.entries[key(name)]; ok {
		return b, true
	}
	if sp == nil {
		return nil, false
	}
	for _, ch := range sp.Characters {
		if !strings.EqualFold(castName(ch.Name), castName(name)) {
			continue
		}
		if b, ok := c.entries[key(castName(ch.Name))]; ok {
			return b, true
		}
	}
	return nil, false
}

// castName drops the extensions screenplays append to character cues,
// "ANA (V.O.)" and "ANA (CONT'D)" both speak as "ANA".
func castName(name string) string {
	if i := strings.Index(name, "("); i > 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// Names lists the catalogued characters, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.entries))
	for _, b := range c.entries {
		names = append(names, b.CharacterName)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// file is the on-disk layout of a backstory catalog
type file struct {
	Characters []*model.CharacterBackstory `yaml:"characters"`
}

// LoadFile reads a YAML catalog. A missing file yields an empty catalog.
func LoadFile(path string) (*Catalog, error) {
	c := NewCatalog()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Warn("Backstory catalog not found, continuing without backstories", "path", path)
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backstories: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse backstories %s: %w", path, err)
	}

	for i, b := range f.Characters {
		if b == nil || strings.TrimSpace(b.CharacterName) == "" {
			return nil, fmt.Errorf("%w: backstory %d in %s has no character name", model.ErrInvalidInput, i, path)
		}
		c.Add(b)
	}

	slog.Info("Loaded backstories", "path", path, "characters", c.Len())
	return c, nil
}

// WriteFile stores the catalog as YAML, characters sorted by name.
func (c *Catalog) WriteFile(path string) error {
	c.mu.RLock()
	f := file{Characters: make([]*model.CharacterBackstory, 0, len(c.entries))}
	for _, b := range c.entries {
		f.Characters = append(f.Characters, b)
	}
	c.mu.RUnlock()

	sort.Slice(f.Characters, func(i, j int) bool {
		return f.Characters[i].CharacterName < f.Characters[j].CharacterName
	})

	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
