package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScreenplay(t *testing.T) {
	tests := []struct {
		name    string
		sp      *Screenplay
		wantErr bool
	}{
		{"nil", nil, true},
		{"empty", &Screenplay{Title: "Empty"}, false},
		{"gaps allowed", &Screenplay{Scenes: []ScreenplayScene{{SceneNumber: 1}, {SceneNumber: 4}}}, false},
		{"zero scene", &Screenplay{Scenes: []ScreenplayScene{{SceneNumber: 0}}}, true},
		{"not increasing", &Screenplay{Scenes: []ScreenplayScene{{SceneNumber: 2}, {SceneNumber: 2}}}, true},
		{"negative action", &Screenplay{Scenes: []ScreenplayScene{{
			SceneNumber: 1,
			Action:      []ActionLine{{Text: "Runs.", Timing: Duration(-1)}},
		}}}, true},
		{"negative dialogue", &Screenplay{Scenes: []ScreenplayScene{{
			SceneNumber: 1,
			Dialogue:    []DialogueBlock{{Character: "ANA", Dialogue: "Hi.", Timing: Duration(-0.5)}},
		}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScreenplay(tt.sp)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIDsAreStable(t *testing.T) {
	assert.Equal(t, ShotID(3, 2), ShotID(3, 2))
	assert.NotEqual(t, ShotID(3, 2), ShotID(2, 3))
	assert.Equal(t, BackstoryID("Ana"), BackstoryID(" ANA "))
	assert.NotEqual(t, SceneID(1), SceneID(2))

	b := &CharacterBackstory{CharacterName: "Tom"}
	assert.Equal(t, BackstoryID("tom"), b.ID())
}

func TestIndexOfDialogue(t *testing.T) {
	scene := ScreenplayScene{Dialogue: []DialogueBlock{
		{Character: "TOM", Dialogue: "Hey."},
		{Character: "JEN", Dialogue: "Hi."},
	}}

	assert.Equal(t, 1, scene.IndexOfDialogue(DialogueBlock{Character: "JEN", Dialogue: "Hi."}))
	assert.Equal(t, -1, scene.IndexOfDialogue(DialogueBlock{Character: "JEN", Dialogue: "Bye."}))
}
