package director

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/model"
)

type backstories map[string]*model.CharacterBackstory

func (m backstories) Lookup(name string, _ *model.Screenplay) (*model.CharacterBackstory, bool) {
	b, ok := m[name]
	return b, ok
}

func kitchenScene() model.ScreenplayScene {
	return model.ScreenplayScene{
		SceneNumber: 1,
		Heading:     model.SceneHeading{Location: "KITCHEN", TimeOfDay: "NIGHT", InteriorExterior: model.Interior},
		Dialogue: []model.DialogueBlock{
			{Character: "Ana", Dialogue: "I can't believe you did THAT."},
		},
	}
}

func assertContiguous(t *testing.T, shots []model.Shot) {
	t.Helper()
	var sum float64
	for i, s := range shots {
		assert.Equal(t, i+1, s.ShotNumber, "shot numbers must be 1..n")
		assert.InDelta(t, sum, s.Timing.StartTime, 1e-9, "shot %d start", s.ShotNumber)
		assert.InDelta(t, s.Timing.StartTime+s.Timing.Duration, s.Timing.EndTime, 1e-9, "shot %d end", s.ShotNumber)
		assert.GreaterOrEqual(t, s.Timing.Duration, 0.0)
		sum += s.Timing.Duration
	}
}

func TestPlanSceneKitchen(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	scene := d.PlanScene(kitchenScene(), nil)

	require.Len(t, scene.Shots, 2)

	est := scene.Shots[0]
	assert.Equal(t, model.CameraEstablishing, est.Camera.Type)
	assert.Equal(t, 24.0, est.Camera.FocalLength)
	assert.Equal(t, 8.0, est.Camera.Aperture)
	assert.Equal(t, model.CompositionCentered, est.Framing.Composition)
	assert.Equal(t, model.DepthOfFieldDeep, est.Framing.DepthOfField)
	assert.Equal(t, model.ShotTiming{Duration: 3.0, StartTime: 0, EndTime: 3.0}, est.Timing)
	assert.Equal(t, "Establishing shot of KITCHEN - NIGHT", est.VisualNotes)

	line := scene.Shots[1]
	assert.Equal(t, model.CameraCloseUp, line.Camera.Type)
	assert.Equal(t, 85.0, line.Camera.FocalLength)
	assert.Equal(t, 2.8, line.Camera.Aperture)
	assert.Equal(t, model.CompositionRuleOfThirds, line.Framing.Composition)
	assert.Equal(t, model.DepthOfFieldShallow, line.Framing.DepthOfField)
	assert.InDelta(t, 2.4, line.Timing.Duration, 1e-9)
	assert.InDelta(t, 3.0, line.Timing.StartTime, 1e-9)
	assert.InDelta(t, 5.4, line.Timing.EndTime, 1e-9)
	assert.Equal(t, "Ana", line.VisualNotes)
	require.Len(t, line.Dialogue, 1)

	require.Len(t, scene.Blocking.CharacterPositions, 1)
	assert.Equal(t, "Ana", scene.Blocking.CharacterPositions[0].CharacterName)
	assert.Equal(t, model.Vec3{0, 0, 0}, scene.Blocking.CharacterPositions[0].Position)
	assert.Empty(t, scene.Blocking.InteractionPoints)
	assert.Empty(t, scene.Blocking.MovementPaths)

	assert.Empty(t, scene.Riggings)
	assert.Equal(t, model.ScenePlanned, scene.Status)
	assert.InDelta(t, 5.4, scene.Timing.EstimatedDuration, 1e-9)
	assert.Equal(t, 0.0, scene.Timing.StartTime)
	assert.InDelta(t, 5.4, scene.Timing.EndTime, 1e-9)
}

func TestPlanSceneUsesRiggingWhenBackstoryKnown(t *testing.T) {
	resolver := backstories{
		"Ana": {
			CharacterName:     "Ana",
			PersonalityTraits: []model.PersonalityTrait{{Trait: "thoughtful", Intensity: 0.9}},
		},
	}
	d := NewDirector(config.DefaultTuning(), resolver)

	sceneIn := kitchenScene()
	sceneIn.Dialogue[0].Parenthetical = "upset"
	scene := d.PlanScene(sceneIn, nil)

	require.Len(t, scene.Shots, 2)
	// 2.4s base, thoughtful pace 1.3x, sadness 1.2x
	want := 2.4 * 1.3 * 1.2
	assert.InDelta(t, want, scene.Shots[1].Timing.Duration, 1e-9)
	assert.Equal(t, "Ana (upset)", scene.Shots[1].VisualNotes)

	require.Len(t, scene.Riggings, 1)
	r := scene.Riggings[0]
	assert.InDelta(t, 3.0, r.Timing.StartTime, 1e-9)
	assert.InDelta(t, want, r.Timing.Duration, 1e-9)
	assert.Equal(t, model.EmotionSadness, r.EmotionalContext.PrimaryEmotion)
	assert.Equal(t, model.BackstoryID("Ana"), *r.BackstoryID)
}

func TestEstablishingShotTrigger(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	line := []model.DialogueBlock{{Character: "TOM", Dialogue: "Hi."}}

	tests := []struct {
		name        string
		number      int
		location    string
		establishes bool
	}{
		{"first scene without location", 1, "", true},
		{"later scene without location", 2, "", false},
		{"later scene with blank location", 2, "   ", false},
		{"later scene with location", 3, "DOCK", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := d.PlanScene(model.ScreenplayScene{
				SceneNumber: tt.number,
				Heading:     model.SceneHeading{Location: tt.location},
				Dialogue:    line,
			}, nil)

			require.NotEmpty(t, scene.Shots)
			assert.Equal(t, tt.establishes, scene.Shots[0].Camera.Type == model.CameraEstablishing)
			assertContiguous(t, scene.Shots)
		})
	}
}

func TestDialogueCamera(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	long := strings.Repeat("a", 101)

	tests := []struct {
		name          string
		dialogue      string
		parenthetical string
		want          model.CameraType
	}{
		{"short line", "Hello.", "", model.CameraCloseUp},
		{"exactly the limit", strings.Repeat("a", 100), "", model.CameraCloseUp},
		{"long line", long, "", model.CameraMedium},
		{"whisper beats length", long, "Whispering", model.CameraCloseUp},
		{"quiet beats length", long, "quietly", model.CameraCloseUp},
		{"counted in characters", strings.Repeat("é", 100), "", model.CameraCloseUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := model.DialogueBlock{Character: "A", Dialogue: tt.dialogue, Parenthetical: tt.parenthetical}
			assert.Equal(t, tt.want, d.DialogueCamera(line))
		})
	}

	scene := d.PlanScene(model.ScreenplayScene{
		SceneNumber: 2,
		Dialogue:    []model.DialogueBlock{{Character: "A", Dialogue: long}},
	}, nil)
	require.Len(t, scene.Shots, 1)
	assert.Equal(t, 50.0, scene.Shots[0].Camera.FocalLength)
}

func TestActionCamera(t *testing.T) {
	tests := []struct {
		text string
		want model.CameraType
	}{
		{"CLOSE on her hands.", model.CameraCloseUp},
		{"Wide view of the harbor.", model.CameraEstablishing},
		{"We establish the street.", model.CameraEstablishing},
		{"A close, wide shot.", model.CameraCloseUp},
		{"He sits down.", model.CameraMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ActionCamera(model.ActionLine{Text: tt.text}), tt.text)
	}
}

func TestPlanSceneNonOverlap(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), backstories{
		"JEN": {CharacterName: "JEN", PersonalityTraits: []model.PersonalityTrait{{Trait: "energetic"}}},
	})

	scene := d.PlanScene(model.ScreenplayScene{
		SceneNumber: 7,
		Heading:     model.SceneHeading{Location: "ROOF"},
		Dialogue: []model.DialogueBlock{
			{Character: "TOM", Dialogue: "We should go."},
			{Character: "JEN", Dialogue: "Not yet, I want to see it.", Parenthetical: "angry"},
			{Character: "TOM", Dialogue: ""},
		},
		Action: []model.ActionLine{
			{Text: "Close on the sky."},
			{Text: "They wait.", Timing: model.Duration(4.5)},
			{Text: "Nothing happens.", Timing: model.Duration(-2)},
		},
	}, nil)

	require.Len(t, scene.Shots, 7)
	assertContiguous(t, scene.Shots)

	assert.Equal(t, 0.0, scene.Shots[3].Timing.Duration, "empty line")
	assert.Equal(t, 2.0, scene.Shots[4].Timing.Duration, "default action")
	assert.Equal(t, 85.0, scene.Shots[4].Camera.FocalLength)
	assert.Equal(t, 4.5, scene.Shots[5].Timing.Duration)
	assert.Equal(t, 0.0, scene.Shots[6].Timing.Duration, "negative estimate clamps")
	assert.Equal(t, 35.0, scene.Shots[6].Camera.FocalLength)

	var sum float64
	for _, s := range scene.Shots {
		sum += s.Timing.Duration
	}
	assert.InDelta(t, sum, scene.Timing.EstimatedDuration, 1e-9)
	assert.Len(t, scene.Riggings, 1)
}

func TestPlanSceneIgnoresDialogueEstimate(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	scene := d.PlanScene(model.ScreenplayScene{
		SceneNumber: 2,
		Dialogue:    []model.DialogueBlock{{Character: "A", Dialogue: "one two three four five", Timing: model.Duration(10)}},
	}, nil)

	require.Len(t, scene.Shots, 1)
	assert.InDelta(t, 2.0, scene.Shots[0].Timing.Duration, 1e-9)
}

func TestPlanSceneIsDeterministic(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), backstories{"Ana": {CharacterName: "Ana"}})
	first := d.PlanScene(kitchenScene(), nil)
	second := d.PlanScene(kitchenScene(), nil)

	assert.Equal(t, first, second)
	assert.Equal(t, model.SceneID(1), first.ID)
	assert.Equal(t, model.ShotID(1, 2), first.Shots[1].ID)
}

func TestEmptyScene(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	scene := d.PlanScene(model.ScreenplayScene{SceneNumber: 4}, nil)

	assert.Empty(t, scene.Shots)
	assert.Empty(t, scene.Blocking.CharacterPositions)
	assert.Equal(t, 0.0, scene.Timing.EstimatedDuration)
}

func TestBlockingTomAndJen(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	scene := model.ScreenplayScene{
		SceneNumber: 2,
		Dialogue: []model.DialogueBlock{
			{Character: "Tom", Dialogue: "Morning."},
			{Character: "Jen", Dialogue: "Is it?"},
		},
	}

	plan := d.GenerateBlocking(scene, nil)

	require.Len(t, plan.CharacterPositions, 2)
	assert.Equal(t, "Tom", plan.CharacterPositions[0].CharacterName)
	assert.Equal(t, model.Vec3{-1, 0, 0}, plan.CharacterPositions[0].Position)
	assert.Equal(t, "Jen", plan.CharacterPositions[1].CharacterName)
	assert.Equal(t, model.Vec3{1, 0, 0}, plan.CharacterPositions[1].Position)

	require.Len(t, plan.InteractionPoints, 1)
	ip := plan.InteractionPoints[0]
	assert.Equal(t, []string{"Tom", "Jen"}, ip.Characters)
	assert.Equal(t, model.InteractionDialogue, ip.InteractionType)
	assert.Equal(t, model.Vec3{}, ip.Position)
	assert.Equal(t, 0.0, ip.Timing)
}

func TestBlockingSpeakersAndPartners(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	scene := model.ScreenplayScene{
		SceneNumber: 3,
		Dialogue: []model.DialogueBlock{
			{Character: "C", Dialogue: "1"},
			{Character: "A", Dialogue: "2"},
			{Character: "A", Dialogue: "3"},
			{Character: "B", Dialogue: "4"},
			{Character: "C", Dialogue: "5"},
		},
	}

	assert.Equal(t, []string{"C", "A", "B"}, Speakers(scene))

	plan := d.GenerateBlocking(scene, nil)
	var xs []float64
	for _, p := range plan.CharacterPositions {
		xs = append(xs, p.Position[0])
	}
	assert.Equal(t, []float64{-2, 0, 2}, xs)

	var pairs []string
	for _, ip := range plan.InteractionPoints {
		pairs = append(pairs, strings.Join(ip.Characters, ">"))
	}
	assert.Equal(t, []string{"C>A", "A>B", "B>C"}, pairs)
}

func TestTimelineAdvance(t *testing.T) {
	var tl Timeline
	assert.Equal(t, 0.0, tl.Advance(3))
	assert.Equal(t, 3.0, tl.Advance(2.5))
	assert.Equal(t, 5.5, tl.Advance(-1))
	assert.Equal(t, 5.5, tl.Advance(0))
	assert.Equal(t, 5.5, tl.Now())
}

func manyScenes(n int) *model.Screenplay {
	sp := &model.Screenplay{Title: "Harbor Lights"}
	for i := 1; i <= n; i++ {
		sp.Scenes = append(sp.Scenes, model.ScreenplayScene{
			SceneNumber: i * 2,
			Heading:     model.SceneHeading{Location: fmt.Sprintf("PIER %d", i)},
			Dialogue: []model.DialogueBlock{
				{Character: "TOM", Dialogue: strings.Repeat("word ", i)},
			},
		})
	}
	return sp
}

func TestDirectProjectKeepsSceneOrder(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	d.MaxWorkers = 3
	sp := manyScenes(20)

	project, err := d.DirectProject(context.Background(), sp)
	require.NoError(t, err)

	require.Len(t, project.Scenes, 20)
	var total float64
	for i, s := range project.Scenes {
		assert.Equal(t, sp.Scenes[i].SceneNumber, s.SceneNumber)
		assert.Equal(t, sp.Scenes[i].Heading, s.Heading)
		total += s.Timing.EstimatedDuration
	}
	assert.InDelta(t, total, project.TotalDuration, 1e-9)
	assert.Equal(t, model.ProjectID("Harbor Lights"), project.ID)
	assert.Equal(t, model.ProjectDraft, project.Status)

	again, err := d.DirectProject(context.Background(), sp)
	require.NoError(t, err)
	assert.Equal(t, project, again)
}

func TestDirectProjectRejectsInvalidScreenplay(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	sp := &model.Screenplay{Scenes: []model.ScreenplayScene{{SceneNumber: 2}, {SceneNumber: 2}}}

	_, err := d.DirectProject(context.Background(), sp)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = d.DirectProject(context.Background(), nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDirectProjectHonorsCancellation(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.DirectProject(ctx, manyScenes(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildTimelineIsContiguous(t *testing.T) {
	d := NewDirector(config.DefaultTuning(), nil)
	project, err := d.DirectProject(context.Background(), manyScenes(4))
	require.NoError(t, err)

	entries := BuildTimeline(project)

	shots := 0
	for _, s := range project.Scenes {
		shots += len(s.Shots)
	}
	require.Len(t, entries, shots)

	var prevEnd float64
	for _, e := range entries {
		assert.InDelta(t, prevEnd, e.Start, 1e-9)
		assert.GreaterOrEqual(t, e.Duration(), 0.0)
		prevEnd = e.End
	}
	assert.InDelta(t, project.TotalDuration, prevEnd, 1e-9)
	assert.Equal(t, 4, entries[2].SceneNumber)
	assert.Equal(t, model.CameraEstablishing, entries[2].CameraType)
}
