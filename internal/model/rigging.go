package model

import "github.com/google/uuid"

// DialogueRigging is the audio delivery plan for one dialogue line.
// BackstoryID is a lookup key into the backstory catalog, never a copy.
type DialogueRigging struct {
	ID                   uuid.UUID            `json:"id" yaml:"id"`
	Dialogue             DialogueBlock        `json:"dialogueBlock" yaml:"dialogue_block"`
	BackstoryID          *uuid.UUID           `json:"characterBackstoryId,omitempty" yaml:"character_backstory_id,omitempty"`
	Voice                VoiceProfile         `json:"voiceProfile" yaml:"voice_profile"`
	Timing               DialogueTiming       `json:"timing" yaml:"timing"`
	EmotionalContext     EmotionalContext     `json:"emotionalContext" yaml:"emotional_context"`
	DeliveryInstructions DeliveryInstructions `json:"deliveryInstructions" yaml:"delivery_instructions"`
}

type Pacing string

const (
	PacingSlow   Pacing = "slow"
	PacingNormal Pacing = "normal"
	PacingFast   Pacing = "fast"
	PacingVaried Pacing = "varied"
)

type DialogueTiming struct {
	StartTime      float64         `json:"startTime" yaml:"start_time"`
	Duration       float64         `json:"duration" yaml:"duration"`
	Pauses         []Pause         `json:"pauses" yaml:"pauses"`
	EmphasisPoints []EmphasisPoint `json:"emphasisPoints" yaml:"emphasis_points"`
	Pacing         Pacing          `json:"pacing" yaml:"pacing"`
}

type PauseType string

const (
	PauseNatural     PauseType = "natural"
	PauseDramatic    PauseType = "dramatic"
	PauseEmotional   PauseType = "emotional"
	PauseComedic     PauseType = "comedic"
	PauseSuspenseful PauseType = "suspenseful"
)

type PausePurpose string

const (
	PurposeBreath     PausePurpose = "breath"
	PurposeEmphasis   PausePurpose = "emphasis"
	PurposeReaction   PausePurpose = "reaction"
	PurposeTransition PausePurpose = "transition"
	PurposeSubtext    PausePurpose = "subtext"
)

// Pause is positioned in seconds from the start of the line
type Pause struct {
	Position float64      `json:"position" yaml:"position"`
	Duration float64      `json:"duration" yaml:"duration"`
	Type     PauseType    `json:"type" yaml:"type"`
	Purpose  PausePurpose `json:"purpose" yaml:"purpose"`
}

type EmphasisTechnique string

const (
	EmphasisVolume      EmphasisTechnique = "volume"
	EmphasisPitch       EmphasisTechnique = "pitch"
	EmphasisPace        EmphasisTechnique = "pace"
	EmphasisPause       EmphasisTechnique = "pause"
	EmphasisCombination EmphasisTechnique = "combination"
)

type EmphasisPoint struct {
	Position  float64           `json:"position" yaml:"position"`
	Word      string            `json:"word" yaml:"word"`
	Intensity float64           `json:"intensity" yaml:"intensity"`
	Technique EmphasisTechnique `json:"technique" yaml:"technique"`
}

type EmotionalContext struct {
	PrimaryEmotion      Emotion              `json:"primaryEmotion" yaml:"primary_emotion"`
	Intensity           float64              `json:"emotionalIntensity" yaml:"emotional_intensity"`
	Subtext             string               `json:"subtext,omitempty" yaml:"subtext,omitempty"`
	RelationshipContext *RelationshipContext `json:"relationshipContext,omitempty" yaml:"relationship_context,omitempty"`
	SceneObjective      string               `json:"sceneObjective,omitempty" yaml:"scene_objective,omitempty"`
}

type RelationshipContext struct {
	OtherCharacter   string             `json:"otherCharacter" yaml:"other_character"`
	RelationshipType RelationshipType   `json:"relationshipType" yaml:"relationship_type"`
	CurrentStatus    RelationshipStatus `json:"currentStatus" yaml:"current_status"`
	History          string             `json:"history,omitempty" yaml:"history,omitempty"`
}

type ActingTechnique string

const (
	TechniqueStanislavski ActingTechnique = "stanislavski"
	TechniqueMeisner      ActingTechnique = "meisner"
	TechniqueMethod       ActingTechnique = "method"
	TechniqueClassical    ActingTechnique = "classical"
	TechniqueNatural      ActingTechnique = "natural"
)

type DeliveryFocus string

const (
	FocusObjective          DeliveryFocus = "objective"
	FocusObstacle           DeliveryFocus = "obstacle"
	FocusPartner            DeliveryFocus = "partner"
	FocusEmotionalMemory    DeliveryFocus = "emotional_memory"
	FocusGivenCircumstances DeliveryFocus = "given_circumstances"
)

type DeliveryInstructions struct {
	Technique ActingTechnique `json:"technique" yaml:"technique"`
	Focus     DeliveryFocus   `json:"focus" yaml:"focus"`
	Notes     string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	Beats     []Beat          `json:"beats" yaml:"beats"`
}

type Beat struct {
	StartTime      float64 `json:"startTime" yaml:"start_time"`
	Duration       float64 `json:"duration" yaml:"duration"`
	Objective      string  `json:"objective" yaml:"objective"`
	Tactic         string  `json:"tactic" yaml:"tactic"`
	EmotionalShift Emotion `json:"emotionalShift,omitempty" yaml:"emotional_shift,omitempty"`
}
