package backstory

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/directorkit/internal/model"
)

const sample = `
characters:
  - character_name: Ana
    role: protagonist
    background:
      occupation: Painter and artist
      cultural_background: British
    personality_traits:
      - trait: confident
        intensity: 0.8
    relationships:
      - other_character: Tom
        relationship_type: romantic
        current_status: conflicted
        emotional_connection: 0.9
    objectives:
      - objective: Make Tom confess
        obstacle: His pride
        tactics: [provoke, charm]
        scene_number: 1
        urgency: high
  - character_name: TOM
    voice_profile:
      pitch: 0.3
      pace: 0.4
      volume: 0.6
      timbre: dark
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backstories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(writeSample(t))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Ana", "TOM"}, c.Names())

	ana, ok := c.Lookup("ANA", nil)
	require.True(t, ok)
	assert.Equal(t, model.RoleProtagonist, ana.Role)
	assert.Equal(t, "British", ana.Background.CulturalBackground)
	require.Len(t, ana.Objectives, 1)
	require.NotNil(t, ana.Objectives[0].SceneNumber)
	assert.Equal(t, 1, *ana.Objectives[0].SceneNumber)
	assert.Equal(t, []string{"provoke", "charm"}, ana.Objectives[0].Tactics)
	assert.Equal(t, model.RelationshipRomantic, ana.Relationships[0].RelationshipType)

	tom, ok := c.Lookup(" tom ", nil)
	require.True(t, ok)
	require.NotNil(t, tom.VoiceProfile)
	assert.Equal(t, model.TimbreDark, tom.VoiceProfile.Timbre)

	_, ok = c.Lookup("JEN", nil)
	assert.False(t, ok)
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	c, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadFileRejectsNamelessEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("characters:\n  - role: minor\n"), 0644))

	_, err := LoadFile(path)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestLookupThroughCastList(t *testing.T) {
	c := NewCatalog()
	c.Add(&model.CharacterBackstory{CharacterName: "Ana Ruiz"})

	sp := &model.Screenplay{Characters: []model.Character{{Name: "ANA RUIZ (V.O.)"}}}

	_, ok := c.Lookup("ana ruiz (cont'd)", nil)
	assert.False(t, ok)

	b, ok := c.Lookup("ana ruiz (cont'd)", sp)
	require.True(t, ok)
	assert.Equal(t, "Ana Ruiz", b.CharacterName)

	_, ok = c.Lookup("TOM (O.S.)", sp)
	assert.False(t, ok)
}

func TestWriteFileRoundTrip(t *testing.T) {
	c, err := LoadFile(writeSample(t))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, c.WriteFile(path))

	again, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, c.Names(), again.Names())

	ana, _ := again.Lookup("ana", nil)
	assert.Equal(t, "Make Tom confess", ana.Objectives[0].Objective)
}

func TestConcurrentLookups(t *testing.T) {
	c, err := LoadFile(writeSample(t))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, ok := c.Lookup("Ana", nil)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
