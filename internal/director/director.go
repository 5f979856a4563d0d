// Package director turns screenplay scenes into shot lists, blocking and
// dialogue rigging.
package director

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/rules"
	"github.com/ivlev/directorkit/internal/voiceover"
)

// BackstoryResolver finds the backstory of a speaking character. The
// screenplay may be nil.
type BackstoryResolver interface {
	Lookup(name string, sp *model.Screenplay) (*model.CharacterBackstory, bool)
}

// Director plans scenes. It keeps no per-scene state, so one Director may
// plan many scenes concurrently as long as its resolver allows concurrent
// reads.
type Director struct {
	Tuning     config.Tuning
	Backstory  BackstoryResolver
	Rigging    *voiceover.Engine
	MaxWorkers int // Scenes planned in parallel by DirectProject
}

// NewDirector creates a Director. resolver may be nil, in which case every
// dialogue shot falls back to the word-rate estimate.
func NewDirector(t config.Tuning, resolver BackstoryResolver) *Director {
	return &Director{
		Tuning:     t,
		Backstory:  resolver,
		Rigging:    voiceover.NewEngine(t),
		MaxWorkers: runtime.NumCPU(),
	}
}

// hushedCue marks parentheticals that call for intimate coverage
var hushedCue = rules.Table[model.CameraType]{
	Rules: []rules.Rule[model.CameraType]{
		{Name: "hushed", Match: rules.Contains("whisper", "quiet"), Then: model.CameraCloseUp},
	},
	Fallback: model.CameraCloseUp,
}

var actionCamera = rules.Table[model.CameraType]{
	Rules: []rules.Rule[model.CameraType]{
		{Name: "close", Match: rules.Contains("close"), Then: model.CameraCloseUp},
		{Name: "wide", Match: rules.Contains("wide", "establish"), Then: model.CameraEstablishing},
	},
	Fallback: model.CameraMedium,
}

// PlanScene builds the shot list, blocking and riggings of one scene. The
// screenplay is optional and only used to resolve backstories.
func (d *Director) PlanScene(scene model.ScreenplayScene, sp *model.Screenplay) model.DirectedScene {
	var (
		timeline   Timeline
		shots      []model.Shot
		riggings   []model.DialogueRigging
		shotNumber = 1
	)

	addShot := func(shot model.Shot) {
		shot.ID = model.ShotID(scene.SceneNumber, shotNumber)
		shot.ShotNumber = shotNumber
		shot.Timing.StartTime = timeline.Advance(shot.Timing.Duration)
		shot.Timing.EndTime = shot.Timing.StartTime + shot.Timing.Duration
		shots = append(shots, shot)
		shotNumber++
	}

	if needsEstablishingShot(scene) {
		addShot(d.establishingShot(scene.Heading))
	}

	for i, line := range scene.Dialogue {
		shot := d.dialogueShot(line)

		if b, ok := d.lookup(line.Character, sp); ok {
			r := d.Rigging.RigSceneLine(&scene, i, b)
			shot.Timing.Duration = r.Timing.Duration
			r.Timing.StartTime = timeline.Now()
			riggings = append(riggings, r)
		}

		addShot(shot)
	}

	for _, line := range scene.Action {
		addShot(d.actionShot(line))
	}

	total := timeline.Now()
	slog.Debug("Planned scene",
		"scene", scene.SceneNumber,
		"shots", len(shots),
		"riggings", len(riggings),
		"duration", total,
	)

	return model.DirectedScene{
		ID:          model.SceneID(scene.SceneNumber),
		SceneNumber: scene.SceneNumber,
		Heading:     scene.Heading,
		Shots:       shots,
		Blocking:    d.GenerateBlocking(scene, shots),
		Riggings:    riggings,
		Timing: model.SceneTiming{
			EstimatedDuration: total,
			StartTime:         0,
			EndTime:           total,
		},
		Status: model.ScenePlanned,
	}
}

func (d *Director) lookup(name string, sp *model.Screenplay) (*model.CharacterBackstory, bool) {
	if d.Backstory == nil {
		return nil, false
	}
	b, ok := d.Backstory.Lookup(name, sp)
	return b, ok && b != nil
}

// needsEstablishingShot opens the first scene and every scene with a known location
func needsEstablishingShot(scene model.ScreenplayScene) bool {
	return scene.SceneNumber == 1 || strings.TrimSpace(scene.Heading.Location) != ""
}

// DialogueCamera classifies the coverage of a dialogue line. A hushed
// parenthetical wins, long lines get a medium, anything else a close-up.
func (d *Director) DialogueCamera(line model.DialogueBlock) model.CameraType {
	if camera, ok := hushedCue.Lookup(line.Parenthetical); ok {
		return camera
	}
	if utf8.RuneCountInString(line.Dialogue) > d.Tuning.LongDialogueChars {
		return model.CameraMedium
	}
	return hushedCue.Fallback
}

// ActionCamera classifies the coverage of an action line by its wording.
func ActionCamera(line model.ActionLine) model.CameraType {
	return actionCamera.Classify(line.Text)
}

// WordRateDuration is the spoken length of text without rigging.
func (d *Director) WordRateDuration(text string) float64 {
	if d.Tuning.WordsPerSecond <= 0 {
		return 0
	}
	return float64(len(strings.Fields(text))) / d.Tuning.WordsPerSecond
}

func (d *Director) establishingShot(h model.SceneHeading) model.Shot {
	lens := d.Tuning.EstablishingLens
	return model.Shot{
		Camera: model.CameraSetup{
			Position:    model.Vec3{0, 2, -5},
			FocalLength: lens.FocalLength,
			Aperture:    lens.Aperture,
			Type:        model.CameraEstablishing,
		},
		Framing: model.Framing{
			Composition:  model.CompositionCentered,
			RuleOfThirds: true,
			DepthOfField: model.DepthOfFieldDeep,
		},
		Timing:      model.ShotTiming{Duration: d.Tuning.EstablishingShotDuration},
		VisualNotes: fmt.Sprintf("Establishing shot of %s - %s", h.Location, h.TimeOfDay),
	}
}

func (d *Director) dialogueShot(line model.DialogueBlock) model.Shot {
	camera := d.DialogueCamera(line)
	lens := d.Tuning.DialogueLens
	if camera == model.CameraCloseUp {
		lens = d.Tuning.DialogueCloseLens
	}

	notes := line.Character
	if line.Parenthetical != "" {
		notes = fmt.Sprintf("%s (%s)", line.Character, line.Parenthetical)
	}

	return model.Shot{
		Camera: model.CameraSetup{
			Position:    model.Vec3{0, 1.6, -2},
			FocalLength: lens.FocalLength,
			Aperture:    lens.Aperture,
			Type:        camera,
		},
		Framing: model.Framing{
			Composition:  model.CompositionRuleOfThirds,
			RuleOfThirds: true,
			DepthOfField: model.DepthOfFieldShallow,
		},
		Dialogue:    []model.DialogueBlock{line},
		Timing:      model.ShotTiming{Duration: d.WordRateDuration(line.Dialogue)},
		VisualNotes: notes,
	}
}

func (d *Director) actionShot(line model.ActionLine) model.Shot {
	camera := ActionCamera(line)
	lens := d.Tuning.ActionLens
	if camera == model.CameraCloseUp {
		lens = d.Tuning.ActionCloseLens
	}

	duration := d.Tuning.ActionShotDefaultDuration
	if line.Timing != nil {
		duration = max(*line.Timing, 0)
	}

	return model.Shot{
		Camera: model.CameraSetup{
			Position:    model.Vec3{0, 1.6, -3},
			FocalLength: lens.FocalLength,
			Aperture:    lens.Aperture,
			Type:        camera,
		},
		Framing: model.Framing{
			Composition:  model.CompositionCentered,
			RuleOfThirds: false,
			DepthOfField: model.DepthOfFieldMedium,
		},
		Action:      []model.ActionLine{line},
		Timing:      model.ShotTiming{Duration: duration},
		VisualNotes: line.Text,
	}
}
