package model

type Emotion string

const (
	EmotionNeutral  Emotion = "neutral"
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionAnger    Emotion = "anger"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionDisgust  Emotion = "disgust"
	EmotionContempt Emotion = "contempt"
	EmotionLove     Emotion = "love"
	EmotionShame    Emotion = "shame"
	EmotionGuilt    Emotion = "guilt"
)

type Timbre string

const (
	TimbreWarm     Timbre = "warm"
	TimbreBright   Timbre = "bright"
	TimbreDark     Timbre = "dark"
	TimbreNasal    Timbre = "nasal"
	TimbreBreathy  Timbre = "breathy"
	TimbreResonant Timbre = "resonant"
	TimbreNeutral  Timbre = "neutral"
)

type AccentType string

const (
	AccentAmerican   AccentType = "american"
	AccentBritish    AccentType = "british"
	AccentAustralian AccentType = "australian"
	AccentIrish      AccentType = "irish"
	AccentScottish   AccentType = "scottish"
	AccentSouthern   AccentType = "southern"
	AccentNewYork    AccentType = "new_york"
)

type Accent struct {
	Type     AccentType `json:"type" yaml:"type"`
	Strength float64    `json:"strength" yaml:"strength"` // 0.0-1.0
}

type VocalQuality string

const (
	VocalNormal   VocalQuality = "normal"
	VocalWhisper  VocalQuality = "whisper"
	VocalShout    VocalQuality = "shout"
	VocalStrained VocalQuality = "strained"
	VocalBreathy  VocalQuality = "breathy"
	VocalCrisp    VocalQuality = "crisp"
	VocalSoft     VocalQuality = "soft"
)

type VocalCharacteristic struct {
	Characteristic string  `json:"characteristic" yaml:"characteristic"`
	Intensity      float64 `json:"intensity" yaml:"intensity"`
}

// EmotionalDelivery shifts the base voice for one emotion. Modifications
// are in -1.0..1.0.
type EmotionalDelivery struct {
	Emotion            Emotion      `json:"emotion" yaml:"emotion"`
	PitchModification  float64      `json:"pitchModification" yaml:"pitch_modification"`
	PaceModification   float64      `json:"paceModification" yaml:"pace_modification"`
	VolumeModification float64      `json:"volumeModification" yaml:"volume_modification"`
	VocalQuality       VocalQuality `json:"vocalQuality,omitempty" yaml:"vocal_quality,omitempty"`
}

// VoiceProfile describes a synthesized voice. Pitch, pace and volume are
// normalized to 0.0-1.0.
type VoiceProfile struct {
	Pitch                float64               `json:"pitch" yaml:"pitch"`
	Pace                 float64               `json:"pace" yaml:"pace"`
	Volume               float64               `json:"volume" yaml:"volume"`
	Timbre               Timbre                `json:"timbre" yaml:"timbre"`
	Accent               *Accent               `json:"accent,omitempty" yaml:"accent,omitempty"`
	VocalCharacteristics []VocalCharacteristic `json:"vocalCharacteristics,omitempty" yaml:"vocal_characteristics,omitempty"`
	EmotionalDelivery    []EmotionalDelivery   `json:"emotionalDelivery,omitempty" yaml:"emotional_delivery,omitempty"`
}
