package screenplay

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/directorkit/internal/analyzer"
	"github.com/ivlev/directorkit/internal/model"
)

func TestLoadFountain(t *testing.T) {
	sp, err := Load(filepath.Join("testdata", "kitchen.fountain"))
	require.NoError(t, err)

	assert.Equal(t, "Kitchen", sp.Title)
	require.Len(t, sp.Scenes, 2)
	require.NoError(t, model.ValidateScreenplay(sp))

	kitchen := sp.Scenes[0]
	assert.Equal(t, 1, kitchen.SceneNumber)
	assert.Equal(t, model.SceneHeading{Location: "KITCHEN", TimeOfDay: "NIGHT", InteriorExterior: model.Interior}, kitchen.Heading)
	assert.Equal(t, []model.ActionLine{{Text: "Ana stands at the sink. She does not turn around."}}, kitchen.Action)
	assert.Equal(t, []model.DialogueBlock{
		{Character: "ANA", Dialogue: "I can't believe you did THAT."},
		{Character: "TOM", Dialogue: "I know.", Parenthetical: "quietly"},
		{Character: "TOM", Dialogue: "I'm sorry.", Parenthetical: "beat"},
	}, kitchen.Dialogue)
	assert.Equal(t, []model.Transition{
		{Type: model.TransitionFadeIn, TargetSceneNumber: 1},
		{Type: model.TransitionCut, TargetSceneNumber: 2},
	}, kitchen.Transitions)

	roof := sp.Scenes[1]
	assert.Equal(t, model.Exterior, roof.Heading.InteriorExterior)
	assert.Equal(t, "DAWN", roof.Heading.TimeOfDay)
	assert.Equal(t, []model.ActionLine{{Text: "Close on TOM's hands."}}, roof.Action)
	require.Len(t, roof.Dialogue, 2)
	assert.Equal(t, "McGee", roof.Dialogue[1].Character)
	assert.Equal(t, []model.Transition{{Type: model.TransitionFadeOut}}, roof.Transitions)

	var names []string
	for _, c := range sp.Characters {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"ANA", "TOM", "McGee"}, names)
}

func TestParsePagesAcrossPageBreak(t *testing.T) {
	c, err := analyzer.NewClassifier("format")
	require.NoError(t, err)

	pages := []string{
		"THE LONG NIGHT\n\nWritten by\nR. Vale",
		"INT. GARAGE - DAY\n\nJEN\nIf you leave now\n(MORE)\n\n2.",
		"JEN (CONT'D)\nyou don't come back.\n",
	}

	sp, err := ParsePages("The Long Night", pages, c)
	require.NoError(t, err)

	require.Len(t, sp.Scenes, 1)
	assert.Equal(t, "GARAGE", sp.Scenes[0].Heading.Location)
	assert.Equal(t, []model.DialogueBlock{
		{Character: "JEN", Dialogue: "If you leave now"},
		{Character: "JEN", Dialogue: "you don't come back."},
	}, sp.Scenes[0].Dialogue)
	assert.Empty(t, sp.Scenes[0].Action, "title page is dropped")
}

func TestParsePagesWithoutHeadings(t *testing.T) {
	sp, err := ParsePages("Sketch", []string{"A door creaks.\n\nANA\nHello?"}, analyzer.NewFormatClassifier())
	require.NoError(t, err)

	require.Len(t, sp.Scenes, 1)
	assert.Equal(t, 1, sp.Scenes[0].SceneNumber)
	assert.Empty(t, sp.Scenes[0].Heading.Location)
	assert.Len(t, sp.Scenes[0].Action, 1)
	assert.Len(t, sp.Scenes[0].Dialogue, 1)

	_, err = ParsePages("Empty", []string{"", "\n\n"}, analyzer.NewFormatClassifier())
	assert.True(t, errors.Is(err, ErrNoContent))
}

func TestParseHeading(t *testing.T) {
	tests := []struct {
		in   string
		want model.SceneHeading
	}{
		{"INT. KITCHEN - NIGHT", model.SceneHeading{Location: "KITCHEN", TimeOfDay: "NIGHT", InteriorExterior: model.Interior}},
		{"EXT. MAIN ST. - LATER - DAY", model.SceneHeading{Location: "MAIN ST. - LATER", TimeOfDay: "DAY", InteriorExterior: model.Exterior}},
		{"INT./EXT. CAR", model.SceneHeading{Location: "CAR", InteriorExterior: model.Interior}},
		{"FLASHBACK", model.SceneHeading{Location: "FLASHBACK", InteriorExterior: model.Interior}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseHeading(tt.in), tt.in)
	}
}

func TestLoadOSF(t *testing.T) {
	sp, err := Load(filepath.Join("testdata", "kitchen.osf"))
	require.NoError(t, err)

	assert.Equal(t, "Kitchen", sp.Title)
	require.NotNil(t, sp.Metadata)
	assert.Equal(t, "R. Vale", sp.Metadata.Author)
	require.Len(t, sp.Scenes, 2)

	s := sp.Scenes[0]
	require.Len(t, s.Action, 1)
	require.NotNil(t, s.Action[0].Timing)
	assert.Equal(t, 4.5, *s.Action[0].Timing)
	assert.Equal(t, "I know & I'm sorry.", s.Dialogue[1].Dialogue)
	assert.Equal(t, "quietly", s.Dialogue[1].Parenthetical)

	roof := sp.Scenes[1]
	assert.Equal(t, 3, roof.SceneNumber)
	assert.Equal(t, "DAY", roof.Heading.TimeOfDay)
	assert.Equal(t, model.Exterior, roof.Heading.InteriorExterior)
}

func TestOSFWriteThenParse(t *testing.T) {
	sp, err := Load(filepath.Join("testdata", "kitchen.fountain"))
	require.NoError(t, err)
	sp.Metadata = &model.ScreenplayMetadata{Author: "R. Vale <rv@example.com>"}

	var buf bytes.Buffer
	require.NoError(t, WriteOSF(&buf, sp))
	assert.Contains(t, buf.String(), `<scene number="2">`)
	assert.Contains(t, buf.String(), "&lt;rv@example.com&gt;")

	again, err := ParseOSF(&buf)
	require.NoError(t, err)
	assert.Equal(t, sp.Scenes[0].Dialogue, again.Scenes[0].Dialogue)
	assert.Equal(t, sp.Scenes[0].Transitions, again.Scenes[0].Transitions)
	assert.Equal(t, sp.Metadata.Author, again.Metadata.Author)
}

func TestParseOSFRejectsGarbage(t *testing.T) {
	_, err := ParseOSF(bytes.NewBufferString("<osf><scenes>"))
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	body := `
title: Kitchen
characters:
  - name: Ana
    role: protagonist
scenes:
  - scene_number: 1
    heading:
      location: KITCHEN
      time_of_day: NIGHT
      interior_exterior: INT
    dialogue:
      - character: Ana
        dialogue: I can't believe you did THAT.
    action:
      - text: She turns.
        timing: 1.5
`
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	sp, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sp.Scenes, 1)
	assert.Equal(t, "I can't believe you did THAT.", sp.Scenes[0].Dialogue[0].Dialogue)
	assert.Equal(t, 1.5, *sp.Scenes[0].Action[0].Timing)
	assert.Equal(t, model.RoleProtagonist, sp.Characters[0].Role)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sp))
	assert.Contains(t, buf.String(), "time_of_day: NIGHT")
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "The Long Night", TitleFromPath("scripts/the_long_night.pdf"))
	assert.Equal(t, "Élan Vital", TitleFromPath("élan-vital.fountain"))
}
