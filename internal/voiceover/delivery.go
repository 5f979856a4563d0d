package voiceover

import (
	"fmt"
	"strings"

	"github.com/ivlev/directorkit/internal/model"
)

// PlanDelivery turns the backstory's objectives and the inferred emotion into
// acting notes with a single opening beat.
func (e *Engine) PlanDelivery(b *model.CharacterBackstory, emotion model.EmotionalContext) model.DeliveryInstructions {
	inst := model.DeliveryInstructions{
		Technique: model.TechniqueStanislavski,
		Focus:     model.FocusObjective,
		Notes:     deliveryNotes(emotion),
		Beats:     []model.Beat{},
	}

	if len(b.Objectives) == 0 {
		return inst
	}

	first := b.Objectives[0]
	if first.Obstacle != "" {
		inst.Focus = model.FocusObstacle
	}

	tactic := e.tuning.FallbackTactic
	if len(first.Tactics) > 0 {
		tactic = first.Tactics[0]
	}
	inst.Beats = append(inst.Beats, model.Beat{
		StartTime:      0,
		Duration:       e.tuning.BeatDuration,
		Objective:      first.Objective,
		Tactic:         tactic,
		EmotionalShift: emotion.PrimaryEmotion,
	})
	return inst
}

func deliveryNotes(emotion model.EmotionalContext) string {
	var notes []string
	if emotion.Subtext != "" {
		notes = append(notes, "Subtext: "+emotion.Subtext)
	}
	if rc := emotion.RelationshipContext; rc != nil {
		notes = append(notes, fmt.Sprintf("Relationship: %s with %s", rc.RelationshipType, rc.OtherCharacter))
	}
	return strings.Join(notes, "\n")
}
