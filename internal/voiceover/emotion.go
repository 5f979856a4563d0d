package voiceover

import (
	"strings"

	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/rules"
)

// emotionTable reads the parenthetical direction
var emotionTable = rules.Table[model.Emotion]{
	Rules: []rules.Rule[model.Emotion]{
		{Name: "anger", Match: rules.Contains("angry", "furious"), Then: model.EmotionAnger},
		{Name: "sadness", Match: rules.Contains("sad", "upset"), Then: model.EmotionSadness},
		{Name: "joy", Match: rules.Contains("happy", "joyful"), Then: model.EmotionJoy},
		{Name: "fear", Match: rules.Contains("fear", "afraid"), Then: model.EmotionFear},
	},
	Fallback: model.EmotionNeutral,
}

// subtextTable reads the dialogue text
var subtextTable = rules.Table[string]{
	Rules: []rules.Rule[string]{
		{Name: "masking", Match: rules.All(rules.Contains("fine"), rules.Contains("not", "don't")), Then: "hiding true feelings"},
		{Name: "dismissive", Match: rules.Contains("whatever"), Then: "dismissive"},
		{Name: "defensive", Match: rules.Contains("i don't care"), Then: "defensive, cares deeply"},
	},
}

// InferEmotion builds the emotional context of a line from its parenthetical,
// its text, the backstory and the other speakers of the scene.
func (e *Engine) InferEmotion(d model.DialogueBlock, b *model.CharacterBackstory, scene *model.ScreenplayScene) model.EmotionalContext {
	return model.EmotionalContext{
		PrimaryEmotion:      e.emotion.Classify(d.Parenthetical),
		Intensity:           e.tuning.EmotionalIntensity,
		Subtext:             e.subtext.Classify(normalizeQuotes(d.Dialogue)),
		RelationshipContext: relationshipIn(d.Character, b, scene),
		SceneObjective:      objectiveFor(b, scene),
	}
}

// relationshipIn returns the first relationship the backstory holds with
// another speaker of the scene, in dialogue order.
func relationshipIn(speaker string, b *model.CharacterBackstory, scene *model.ScreenplayScene) *model.RelationshipContext {
	if scene == nil || len(b.Relationships) == 0 {
		return nil
	}
	for _, line := range scene.Dialogue {
		if strings.EqualFold(line.Character, speaker) {
			continue
		}
		for _, r := range b.Relationships {
			if strings.EqualFold(r.OtherCharacter, line.Character) {
				return &model.RelationshipContext{
					OtherCharacter:   r.OtherCharacter,
					RelationshipType: r.RelationshipType,
					CurrentStatus:    r.CurrentStatus,
					History:          r.History,
				}
			}
		}
	}
	return nil
}

// objectiveFor picks the objective scoped to the scene. Without a scene only
// unscoped objectives are considered.
func objectiveFor(b *model.CharacterBackstory, scene *model.ScreenplayScene) string {
	for _, o := range b.Objectives {
		if scene == nil {
			if o.SceneNumber == nil {
				return o.Objective
			}
			continue
		}
		if o.SceneNumber != nil && *o.SceneNumber == scene.SceneNumber {
			return o.Objective
		}
	}
	return ""
}

// normalizeQuotes folds typographic apostrophes so "don’t" matches "don't"
func normalizeQuotes(s string) string {
	return strings.ReplaceAll(s, "’", "'")
}
