package voiceover

import (
	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/rules"
)

func pitchTable(t config.Tuning) rules.Table[float64] {
	return rules.Table[float64]{
		Rules: []rules.Rule[float64]{
			{Name: "confident", Match: rules.Contains("confident"), Then: t.ConfidentPitch},
			{Name: "shy", Match: rules.Contains("shy"), Then: t.ShyPitch},
		},
		Fallback: t.BasePitch,
	}
}

func paceTable(t config.Tuning) rules.Table[float64] {
	return rules.Table[float64]{
		Rules: []rules.Rule[float64]{
			{Name: "energetic", Match: rules.Contains("energetic"), Then: t.EnergeticPace},
			{Name: "thoughtful", Match: rules.Contains("thoughtful"), Then: t.ThoughtfulPace},
		},
		Fallback: t.BasePace,
	}
}

var timbreTable = rules.Table[model.Timbre]{
	Rules: []rules.Rule[model.Timbre]{
		{Name: "lecturer", Match: rules.Contains("teacher", "professor"), Then: model.TimbreResonant},
		{Name: "artist", Match: rules.Contains("artist"), Then: model.TimbreWarm},
	},
	Fallback: model.TimbreNeutral,
}

func accentTable(t config.Tuning) rules.Table[*model.Accent] {
	return rules.Table[*model.Accent]{
		Rules: []rules.Rule[*model.Accent]{
			{Name: "british", Match: rules.Contains("british"), Then: &model.Accent{Type: model.AccentBritish, Strength: t.BritishAccent}},
			{Name: "southern", Match: rules.Contains("southern"), Then: &model.Accent{Type: model.AccentSouthern, Strength: t.SouthernAccent}},
		},
	}
}

// SynthesizeVoice derives a voice profile from personality traits, occupation
// and cultural background. It ignores any profile already on the backstory.
func (e *Engine) SynthesizeVoice(b *model.CharacterBackstory) model.VoiceProfile {
	traits := make([]string, 0, len(b.PersonalityTraits))
	for _, t := range b.PersonalityTraits {
		traits = append(traits, t.Trait)
	}

	voice := model.VoiceProfile{
		Pitch:  e.pitch.ClassifyAny(traits),
		Pace:   e.pace.ClassifyAny(traits),
		Volume: e.tuning.Volume,
		Timbre: e.timbre.Classify(b.Background.Occupation),
	}

	// table rows are shared, hand out a copy
	if accent := e.accent.Classify(b.Background.CulturalBackground); accent != nil {
		a := *accent
		voice.Accent = &a
	}

	return voice
}

func (e *Engine) voiceFor(b *model.CharacterBackstory) model.VoiceProfile {
	if b.VoiceProfile != nil {
		return *b.VoiceProfile
	}
	return e.SynthesizeVoice(b)
}
