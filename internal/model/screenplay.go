package model

// Screenplay is the parsed script handed to the director
type Screenplay struct {
	Title      string              `json:"title" yaml:"title"`
	Scenes     []ScreenplayScene   `json:"scenes" yaml:"scenes"`
	Characters []Character         `json:"characters,omitempty" yaml:"characters,omitempty"`
	Metadata   *ScreenplayMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// ScreenplayMetadata carries optional authoring information
type ScreenplayMetadata struct {
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Notes   string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ScreenplayScene is one scene of the script in source order
type ScreenplayScene struct {
	SceneNumber int             `json:"sceneNumber" yaml:"scene_number"`
	Heading     SceneHeading    `json:"heading" yaml:"heading"`
	Action      []ActionLine    `json:"action,omitempty" yaml:"action,omitempty"`
	Dialogue    []DialogueBlock `json:"dialogue,omitempty" yaml:"dialogue,omitempty"`
	Transitions []Transition    `json:"transitions,omitempty" yaml:"transitions,omitempty"`
}

type InteriorExterior string

const (
	Interior InteriorExterior = "INT"
	Exterior InteriorExterior = "EXT"
)

// SceneHeading is the slug line: INT. KITCHEN - DAY
type SceneHeading struct {
	Location         string           `json:"location" yaml:"location"`
	TimeOfDay        string           `json:"timeOfDay" yaml:"time_of_day"`
	InteriorExterior InteriorExterior `json:"interiorExterior" yaml:"interior_exterior"`
}

// ActionLine is a line of scene description. Timing is an optional
// estimated duration in seconds.
type ActionLine struct {
	Text   string   `json:"text" yaml:"text"`
	Timing *float64 `json:"timing,omitempty" yaml:"timing,omitempty"`
}

// DialogueBlock is one spoken line with its speaker
type DialogueBlock struct {
	Character     string   `json:"character" yaml:"character"`
	Dialogue      string   `json:"dialogue" yaml:"dialogue"`
	Parenthetical string   `json:"parenthetical,omitempty" yaml:"parenthetical,omitempty"`
	Timing        *float64 `json:"timing,omitempty" yaml:"timing,omitempty"`
}

type TransitionType string

const (
	TransitionCut      TransitionType = "CUT TO"
	TransitionFadeIn   TransitionType = "FADE IN"
	TransitionFadeOut  TransitionType = "FADE OUT"
	TransitionDissolve TransitionType = "DISSOLVE TO"
	TransitionMatchCut TransitionType = "MATCH CUT"
)

type Transition struct {
	Type              TransitionType `json:"type" yaml:"type"`
	TargetSceneNumber int            `json:"targetSceneNumber,omitempty" yaml:"target_scene_number,omitempty"`
}

type CharacterRole string

const (
	RoleProtagonist CharacterRole = "protagonist"
	RoleAntagonist  CharacterRole = "antagonist"
	RoleSupporting  CharacterRole = "supporting"
	RoleMinor       CharacterRole = "minor"
)

// Character is an entry of the screenplay's cast list
type Character struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Role        CharacterRole `json:"role" yaml:"role"`
}

// Duration returns a pointer to d, for the optional timing fields.
func Duration(d float64) *float64 {
	return &d
}
