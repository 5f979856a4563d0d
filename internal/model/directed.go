package model

import "github.com/google/uuid"

// Vec3 is an x, y, z triple in scene space
type Vec3 [3]float64

type CameraType string

const (
	CameraWide           CameraType = "wide"
	CameraMedium         CameraType = "medium"
	CameraCloseUp        CameraType = "close_up"
	CameraExtremeCloseUp CameraType = "extreme_close_up"
	CameraEstablishing   CameraType = "establishing"
	CameraOverShoulder   CameraType = "over_shoulder"
	CameraPointOfView    CameraType = "point_of_view"
)

type Composition string

const (
	CompositionCentered     Composition = "centered"
	CompositionRuleOfThirds Composition = "rule_of_thirds"
	CompositionLeadingLines Composition = "leading_lines"
	CompositionSymmetry     Composition = "symmetry"
	CompositionFraming      Composition = "framing"
)

type DepthOfField string

const (
	DepthOfFieldShallow DepthOfField = "shallow"
	DepthOfFieldMedium  DepthOfField = "medium"
	DepthOfFieldDeep    DepthOfField = "deep"
)

type SceneStatus string

const (
	ScenePlanned      SceneStatus = "planned"
	SceneStoryboarded SceneStatus = "storyboarded"
	SceneBlocked      SceneStatus = "blocked"
	SceneShot         SceneStatus = "shot"
	SceneEdited       SceneStatus = "edited"
	SceneCompleted    SceneStatus = "completed"
)

type ProjectStatus string

const (
	ProjectDraft          ProjectStatus = "draft"
	ProjectInProduction   ProjectStatus = "in_production"
	ProjectPostProduction ProjectStatus = "post_production"
	ProjectCompleted      ProjectStatus = "completed"
)

// DirectorProject is the whole directed screenplay
type DirectorProject struct {
	ID            uuid.UUID       `json:"id" yaml:"id"`
	Title         string          `json:"title" yaml:"title"`
	Scenes        []DirectedScene `json:"scenes" yaml:"scenes"`
	Status        ProjectStatus   `json:"status" yaml:"status"`
	TotalDuration float64         `json:"totalDuration" yaml:"total_duration"`
}

// DirectedScene is the planned coverage of one screenplay scene
type DirectedScene struct {
	ID          uuid.UUID         `json:"id" yaml:"id"`
	SceneNumber int               `json:"sceneNumber" yaml:"scene_number"`
	Heading     SceneHeading      `json:"heading" yaml:"heading"`
	Shots       []Shot            `json:"shots" yaml:"shots"`
	Blocking    BlockingPlan      `json:"blocking" yaml:"blocking"`
	Riggings    []DialogueRigging `json:"riggings,omitempty" yaml:"riggings,omitempty"`
	Timing      SceneTiming       `json:"timing" yaml:"timing"`
	Status      SceneStatus       `json:"status" yaml:"status"`
}

type SceneTiming struct {
	EstimatedDuration float64 `json:"estimatedDuration" yaml:"estimated_duration"`
	StartTime         float64 `json:"startTime" yaml:"start_time"`
	EndTime           float64 `json:"endTime" yaml:"end_time"`
}

// Shot is one continuous camera setup
type Shot struct {
	ID          uuid.UUID       `json:"id" yaml:"id"`
	ShotNumber  int             `json:"shotNumber" yaml:"shot_number"`
	Camera      CameraSetup     `json:"cameraSetup" yaml:"camera_setup"`
	Framing     Framing         `json:"framing" yaml:"framing"`
	Dialogue    []DialogueBlock `json:"dialogue,omitempty" yaml:"dialogue,omitempty"`
	Action      []ActionLine    `json:"action,omitempty" yaml:"action,omitempty"`
	Timing      ShotTiming      `json:"timing" yaml:"timing"`
	VisualNotes string          `json:"visualNotes,omitempty" yaml:"visual_notes,omitempty"`
}

type CameraSetup struct {
	Position    Vec3       `json:"position" yaml:"position,flow"`
	Rotation    Vec3       `json:"rotation" yaml:"rotation,flow"`
	FocalLength float64    `json:"focalLength" yaml:"focal_length"` // mm
	Aperture    float64    `json:"aperture" yaml:"aperture"`         // f-stop
	Type        CameraType `json:"cameraType" yaml:"camera_type"`
}

type Framing struct {
	Composition  Composition  `json:"composition" yaml:"composition"`
	RuleOfThirds bool         `json:"ruleOfThirds" yaml:"rule_of_thirds"`
	DepthOfField DepthOfField `json:"depthOfField" yaml:"depth_of_field"`
}

// ShotTiming is scene-relative. End is always Start + Duration.
type ShotTiming struct {
	Duration  float64 `json:"duration" yaml:"duration"`
	StartTime float64 `json:"startTime" yaml:"start_time"`
	EndTime   float64 `json:"endTime" yaml:"end_time"`
}

type InteractionType string

const (
	InteractionDialogue   InteractionType = "dialogue"
	InteractionPhysical   InteractionType = "physical"
	InteractionEyeContact InteractionType = "eye_contact"
	InteractionProximity  InteractionType = "proximity"
)

type BlockingPlan struct {
	CharacterPositions []CharacterPosition `json:"characterPositions" yaml:"character_positions"`
	MovementPaths      []MovementPath      `json:"movementPaths" yaml:"movement_paths"`
	InteractionPoints  []InteractionPoint  `json:"interactionPoints" yaml:"interaction_points"`
}

type CharacterPosition struct {
	CharacterName string  `json:"characterName" yaml:"character_name"`
	Position      Vec3    `json:"position" yaml:"position,flow"`
	Rotation      Vec3    `json:"rotation" yaml:"rotation,flow"`
	Timing        float64 `json:"timing" yaml:"timing"`
}

type MovementPath struct {
	CharacterName string  `json:"characterName" yaml:"character_name"`
	Waypoints     []Vec3  `json:"waypoints" yaml:"waypoints"`
	Duration      float64 `json:"duration" yaml:"duration"`
}

type InteractionPoint struct {
	Characters      []string        `json:"characters" yaml:"characters,flow"`
	Position        Vec3            `json:"position" yaml:"position,flow"`
	InteractionType InteractionType `json:"interactionType" yaml:"interaction_type"`
	Timing          float64         `json:"timing" yaml:"timing"`
}

// TimelineEntry places a shot on the project-wide timeline
type TimelineEntry struct {
	SceneNumber int        `json:"sceneNumber" yaml:"scene_number"`
	ShotNumber  int        `json:"shotNumber" yaml:"shot_number"`
	ShotID      uuid.UUID  `json:"shotId" yaml:"shot_id"`
	CameraType  CameraType `json:"cameraType" yaml:"camera_type"`
	Start       float64    `json:"start" yaml:"start"`
	End         float64    `json:"end" yaml:"end"`
	Notes       string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Duration of the entry in seconds.
func (e TimelineEntry) Duration() float64 {
	return e.End - e.Start
}
