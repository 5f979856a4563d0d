package model

import "github.com/google/uuid"

// CharacterBackstory is the actor's dossier for a character. It is owned by
// the backstory catalog; riggings only keep its ID.
type CharacterBackstory struct {
	CharacterName      string                  `json:"characterName" yaml:"character_name"`
	Role               CharacterRole           `json:"role,omitempty" yaml:"role,omitempty"`
	Biography          string                  `json:"biography,omitempty" yaml:"biography,omitempty"`
	Background         CharacterBackground     `json:"background" yaml:"background"`
	PersonalityTraits  []PersonalityTrait      `json:"personalityTraits,omitempty" yaml:"personality_traits,omitempty"`
	EmotionalRange     EmotionalRange          `json:"emotionalRange" yaml:"emotional_range"`
	VoiceProfile       *VoiceProfile           `json:"voiceProfile,omitempty" yaml:"voice_profile,omitempty"`
	Relationships      []CharacterRelationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
	Objectives         []CharacterObjective    `json:"objectives,omitempty" yaml:"objectives,omitempty"`
	Superobjective     string                  `json:"superobjective,omitempty" yaml:"superobjective,omitempty"`
	GivenCircumstances []string                `json:"givenCircumstances,omitempty" yaml:"given_circumstances,omitempty"`
}

// ID is the stable identity of the backstory, derived from the character name.
func (b *CharacterBackstory) ID() uuid.UUID {
	return BackstoryID(b.CharacterName)
}

type SocioeconomicStatus string

const (
	SocioeconomicLower       SocioeconomicStatus = "lower"
	SocioeconomicMiddle      SocioeconomicStatus = "middle"
	SocioeconomicUpperMiddle SocioeconomicStatus = "upper_middle"
	SocioeconomicUpper       SocioeconomicStatus = "upper"
)

type CharacterBackground struct {
	Age                int                 `json:"age,omitempty" yaml:"age,omitempty"`
	Occupation         string              `json:"occupation,omitempty" yaml:"occupation,omitempty"`
	Education          string              `json:"education,omitempty" yaml:"education,omitempty"`
	Socioeconomic      SocioeconomicStatus `json:"socioeconomicStatus,omitempty" yaml:"socioeconomic_status,omitempty"`
	CulturalBackground string              `json:"culturalBackground,omitempty" yaml:"cultural_background,omitempty"`
	Hometown           string              `json:"hometown,omitempty" yaml:"hometown,omitempty"`
	SignificantEvents  []SignificantEvent  `json:"significantEvents,omitempty" yaml:"significant_events,omitempty"`
}

type EventImpact string

const (
	ImpactLow       EventImpact = "low"
	ImpactModerate  EventImpact = "moderate"
	ImpactHigh      EventImpact = "high"
	ImpactTraumatic EventImpact = "traumatic"
)

type SignificantEvent struct {
	Description string      `json:"description" yaml:"description"`
	Age         int         `json:"age,omitempty" yaml:"age,omitempty"`
	Impact      EventImpact `json:"impact,omitempty" yaml:"impact,omitempty"`
}

type PersonalityTrait struct {
	Trait     string  `json:"trait" yaml:"trait"`
	Intensity float64 `json:"intensity" yaml:"intensity"` // 0.0-1.0
	Context   string  `json:"context,omitempty" yaml:"context,omitempty"`
}

type EmotionalDepth string

const (
	DepthShallow  EmotionalDepth = "shallow"
	DepthModerate EmotionalDepth = "moderate"
	DepthDeep     EmotionalDepth = "deep"
	DepthProfound EmotionalDepth = "profound"
)

type EmotionalRange struct {
	PrimaryEmotions []Emotion          `json:"primaryEmotions,omitempty" yaml:"primary_emotions,omitempty"`
	Depth           EmotionalDepth     `json:"depth,omitempty" yaml:"depth,omitempty"`
	Triggers        []EmotionalTrigger `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

type EmotionalTrigger struct {
	Trigger   string  `json:"trigger" yaml:"trigger"`
	Emotion   Emotion `json:"emotion" yaml:"emotion"`
	Intensity float64 `json:"intensity" yaml:"intensity"`
}

type RelationshipType string

const (
	RelationshipFamily       RelationshipType = "family"
	RelationshipFriend       RelationshipType = "friend"
	RelationshipRomantic     RelationshipType = "romantic"
	RelationshipProfessional RelationshipType = "professional"
	RelationshipEnemy        RelationshipType = "enemy"
	RelationshipAcquaintance RelationshipType = "acquaintance"
)

type RelationshipStatus string

const (
	StatusPositive   RelationshipStatus = "positive"
	StatusNeutral    RelationshipStatus = "neutral"
	StatusNegative   RelationshipStatus = "negative"
	StatusConflicted RelationshipStatus = "conflicted"
)

type CharacterRelationship struct {
	OtherCharacter      string             `json:"otherCharacter" yaml:"other_character"`
	RelationshipType    RelationshipType   `json:"relationshipType" yaml:"relationship_type"`
	CurrentStatus       RelationshipStatus `json:"currentStatus" yaml:"current_status"`
	History             string             `json:"history,omitempty" yaml:"history,omitempty"`
	EmotionalConnection float64            `json:"emotionalConnection" yaml:"emotional_connection"` // 0.0-1.0
}

type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyModerate Urgency = "moderate"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// CharacterObjective is what the character wants. SceneNumber scopes it to a
// single scene; nil means the objective is not tied to a scene.
type CharacterObjective struct {
	Objective   string   `json:"objective" yaml:"objective"`
	Obstacle    string   `json:"obstacle,omitempty" yaml:"obstacle,omitempty"`
	Tactics     []string `json:"tactics,omitempty" yaml:"tactics,omitempty"`
	SceneNumber *int     `json:"sceneNumber,omitempty" yaml:"scene_number,omitempty"`
	Urgency     Urgency  `json:"urgency,omitempty" yaml:"urgency,omitempty"`
}

// SceneScope returns a pointer to n, for CharacterObjective.SceneNumber.
func SceneScope(n int) *int {
	return &n
}
