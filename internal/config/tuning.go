package config

// Lens is a focal length / aperture pair
type Lens struct {
	FocalLength float64 `toml:"focal_length"` // mm
	Aperture    float64 `toml:"aperture"`     // f-stop
}

// Tuning holds every fixed constant of the planner and the rigging engine.
type Tuning struct {
	// Shot planner
	EstablishingShotDuration  float64 `toml:"establishing_shot_duration"`
	ActionShotDefaultDuration float64 `toml:"action_shot_default_duration"`
	WordsPerSecond            float64 `toml:"words_per_second"`
	LongDialogueChars         int     `toml:"long_dialogue_chars"`

	EstablishingLens  Lens `toml:"establishing_lens"`
	DialogueCloseLens Lens `toml:"dialogue_close_lens"`
	DialogueLens      Lens `toml:"dialogue_lens"`
	ActionCloseLens   Lens `toml:"action_close_lens"`
	ActionLens        Lens `toml:"action_lens"`

	// Blocking
	CharacterSpacing float64 `toml:"character_spacing"`

	// Rigging: voice
	BasePitch      float64 `toml:"base_pitch"`
	ConfidentPitch float64 `toml:"confident_pitch"`
	ShyPitch       float64 `toml:"shy_pitch"`
	BasePace       float64 `toml:"base_pace"`
	EnergeticPace  float64 `toml:"energetic_pace"`
	ThoughtfulPace float64 `toml:"thoughtful_pace"`
	Volume         float64 `toml:"volume"`
	BritishAccent  float64 `toml:"british_accent_strength"`
	SouthernAccent float64 `toml:"southern_accent_strength"`

	// Rigging: timing
	SlowPaceThreshold  float64 `toml:"slow_pace_threshold"`
	FastPaceThreshold  float64 `toml:"fast_pace_threshold"`
	SlowPaceFactor     float64 `toml:"slow_pace_factor"`
	FastPaceFactor     float64 `toml:"fast_pace_factor"`
	TenseEmotionFactor float64 `toml:"tense_emotion_factor"`
	SadnessFactor      float64 `toml:"sadness_factor"`
	WordDuration       float64 `toml:"word_duration"`
	PeriodPause        float64 `toml:"period_pause"`
	CommaPause         float64 `toml:"comma_pause"`
	DramaticPause      float64 `toml:"dramatic_pause"`
	MinEmphasisLength  int     `toml:"min_emphasis_length"`
	CapitalEmphasis    float64 `toml:"capital_emphasis"`
	KeywordEmphasis    float64 `toml:"keyword_emphasis"`

	// Rigging: emotion and delivery
	EmotionalIntensity float64 `toml:"emotional_intensity"`
	BeatDuration       float64 `toml:"beat_duration"`
	FallbackTactic     string  `toml:"fallback_tactic"`
}

// DefaultTuning returns the built-in constants.
func DefaultTuning() Tuning {
	return Tuning{
		EstablishingShotDuration:  3.0,
		ActionShotDefaultDuration: 2.0,
		WordsPerSecond:            2.5, // 150 words per minute
		LongDialogueChars:         100,

		EstablishingLens:  Lens{FocalLength: 24, Aperture: 8.0},
		DialogueCloseLens: Lens{FocalLength: 85, Aperture: 2.8},
		DialogueLens:      Lens{FocalLength: 50, Aperture: 2.8},
		ActionCloseLens:   Lens{FocalLength: 85, Aperture: 4.0},
		ActionLens:        Lens{FocalLength: 35, Aperture: 4.0},

		CharacterSpacing: 2.0,

		BasePitch:      0.5,
		ConfidentPitch: 0.6,
		ShyPitch:       0.4,
		BasePace:       0.5,
		EnergeticPace:  0.7,
		ThoughtfulPace: 0.3,
		Volume:         0.7,
		BritishAccent:  0.6,
		SouthernAccent: 0.5,

		SlowPaceThreshold:  0.4,
		FastPaceThreshold:  0.6,
		SlowPaceFactor:     1.3,
		FastPaceFactor:     0.8,
		TenseEmotionFactor: 0.9,
		SadnessFactor:      1.2,
		WordDuration:       0.4,
		PeriodPause:        0.5,
		CommaPause:         0.3,
		DramaticPause:      0.8,
		MinEmphasisLength:  4,
		CapitalEmphasis:    0.7,
		KeywordEmphasis:    0.8,

		EmotionalIntensity: 0.5,
		BeatDuration:       2.0,
		FallbackTactic:     "persuade",
	}
}
