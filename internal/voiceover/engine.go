// Package voiceover derives the audio rigging for a line of dialogue: the
// character's voice, the emotion behind the line, its timing and the acting
// notes for delivering it.
package voiceover

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/rules"
)

// Engine rigs dialogue. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	tuning config.Tuning

	pitch    rules.Table[float64]
	pace     rules.Table[float64]
	timbre   rules.Table[model.Timbre]
	accent   rules.Table[*model.Accent]
	emotion  rules.Table[model.Emotion]
	subtext  rules.Table[string]
	keywords map[string]bool
	stages   []DurationStage
}

// NewEngine builds an engine over the given tuning table
func NewEngine(t config.Tuning) *Engine {
	e := &Engine{
		tuning:   t,
		pitch:    pitchTable(t),
		pace:     paceTable(t),
		timbre:   timbreTable,
		accent:   accentTable(t),
		emotion:  emotionTable,
		subtext:  subtextTable,
		keywords: emphasisKeywords,
	}
	e.stages = e.durationStages()
	return e
}

// RigDialogue produces the rigging for one line. scene may be nil; without it
// no relationship context is found and only unscoped objectives apply.
func (e *Engine) RigDialogue(d model.DialogueBlock, b *model.CharacterBackstory, scene *model.ScreenplayScene) model.DialogueRigging {
	index := 0
	sceneNumber := 0
	if scene != nil {
		sceneNumber = scene.SceneNumber
		if i := scene.IndexOfDialogue(d); i >= 0 {
			index = i
		}
	}
	return e.rig(d, b, scene, model.RiggingID(sceneNumber, index, d))
}

// RigSceneLine rigs the index-th dialogue line of scene. It is what the shot
// planner uses, since a scene may repeat an identical line.
func (e *Engine) RigSceneLine(scene *model.ScreenplayScene, index int, b *model.CharacterBackstory) model.DialogueRigging {
	d := scene.Dialogue[index]
	return e.rig(d, b, scene, model.RiggingID(scene.SceneNumber, index, d))
}

// RigInScene is RigDialogue for callers outside the planner. It rejects a
// dialogue block that is not part of the given scene.
func (e *Engine) RigInScene(d model.DialogueBlock, b *model.CharacterBackstory, scene *model.ScreenplayScene) (model.DialogueRigging, error) {
	if b == nil {
		return model.DialogueRigging{}, fmt.Errorf("%w: no backstory for %q", model.ErrInvalidInput, d.Character)
	}
	if scene != nil && scene.IndexOfDialogue(d) < 0 {
		return model.DialogueRigging{}, fmt.Errorf("%w: dialogue by %q is not part of scene %d", model.ErrInvalidInput, d.Character, scene.SceneNumber)
	}
	return e.RigDialogue(d, b, scene), nil
}

func (e *Engine) rig(d model.DialogueBlock, b *model.CharacterBackstory, scene *model.ScreenplayScene, id uuid.UUID) model.DialogueRigging {
	if b == nil {
		b = &model.CharacterBackstory{CharacterName: d.Character}
	}

	voice := e.voiceFor(b)
	emotion := e.InferEmotion(d, b, scene)
	timing := e.ComputeTiming(d, voice, emotion)
	delivery := e.PlanDelivery(b, emotion)

	backstoryID := b.ID()

	slog.Debug("Rigged dialogue",
		"character", d.Character,
		"emotion", emotion.PrimaryEmotion,
		"duration", timing.Duration,
		"pauses", len(timing.Pauses),
		"emphasis", len(timing.EmphasisPoints),
	)

	return model.DialogueRigging{
		ID:                   id,
		Dialogue:             d,
		BackstoryID:          &backstoryID,
		Voice:                voice,
		Timing:               timing,
		EmotionalContext:     emotion,
		DeliveryInstructions: delivery,
	}
}
