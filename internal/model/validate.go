package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks a caller contract violation detected at the boundary.
var ErrInvalidInput = errors.New("invalid input")

// ValidateScreenplay checks the contract PlanScene relies on: scene numbers
// start at 1 or later and strictly increase, and no estimated duration is
// negative.
func ValidateScreenplay(sp *Screenplay) error {
	if sp == nil {
		return fmt.Errorf("%w: nil screenplay", ErrInvalidInput)
	}

	prev := 0
	for i, scene := range sp.Scenes {
		if scene.SceneNumber <= prev {
			return fmt.Errorf("%w: scene %d at index %d does not follow scene %d", ErrInvalidInput, scene.SceneNumber, i, prev)
		}
		prev = scene.SceneNumber

		if err := ValidateScene(&scene); err != nil {
			return err
		}
	}

	return nil
}

// ValidateScene checks a single scene's estimated durations.
func ValidateScene(scene *ScreenplayScene) error {
	if scene.SceneNumber < 1 {
		return fmt.Errorf("%w: scene number %d", ErrInvalidInput, scene.SceneNumber)
	}
	for i, a := range scene.Action {
		if a.Timing != nil && *a.Timing < 0 {
			return fmt.Errorf("%w: scene %d action %d has negative duration %.2f", ErrInvalidInput, scene.SceneNumber, i, *a.Timing)
		}
	}
	for i, d := range scene.Dialogue {
		if d.Timing != nil && *d.Timing < 0 {
			return fmt.Errorf("%w: scene %d dialogue %d has negative duration %.2f", ErrInvalidInput, scene.SceneNumber, i, *d.Timing)
		}
	}
	return nil
}

// IndexOfDialogue returns the position of d in the scene's dialogue, or -1.
func (s *ScreenplayScene) IndexOfDialogue(d DialogueBlock) int {
	for i, line := range s.Dialogue {
		if line.Character == d.Character && line.Dialogue == d.Dialogue && line.Parenthetical == d.Parenthetical {
			return i
		}
	}
	return -1
}
