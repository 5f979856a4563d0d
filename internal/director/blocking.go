package director

import "github.com/ivlev/directorkit/internal/model"

// Speakers returns the distinct speaking characters of a scene in order of
// first appearance.
func Speakers(scene model.ScreenplayScene) []string {
	seen := make(map[string]bool, len(scene.Dialogue))
	var names []string
	for _, line := range scene.Dialogue {
		if seen[line.Character] {
			continue
		}
		seen[line.Character] = true
		names = append(names, line.Character)
	}
	return names
}

// GenerateBlocking lays the scene's speakers out on a line centered on the
// origin and pairs every line with the speaker of the next one. The shot list
// is accepted for callers that stage against coverage; positions do not
// depend on it yet.
//
// Interaction points are all stamped at 0 rather than at the start of the
// line's shot.
func (d *Director) GenerateBlocking(scene model.ScreenplayScene, shots []model.Shot) model.BlockingPlan {
	speakers := Speakers(scene)
	n := float64(len(speakers))

	plan := model.BlockingPlan{
		CharacterPositions: make([]model.CharacterPosition, 0, len(speakers)),
		MovementPaths:      []model.MovementPath{},
		InteractionPoints:  []model.InteractionPoint{},
	}

	for i, name := range speakers {
		plan.CharacterPositions = append(plan.CharacterPositions, model.CharacterPosition{
			CharacterName: name,
			Position:      model.Vec3{float64(i)*d.Tuning.CharacterSpacing - (n - 1), 0, 0},
		})
	}

	for i, line := range scene.Dialogue {
		if i+1 >= len(scene.Dialogue) {
			break
		}
		partner := scene.Dialogue[i+1].Character
		if partner == line.Character {
			continue
		}
		plan.InteractionPoints = append(plan.InteractionPoints, model.InteractionPoint{
			Characters:      []string{line.Character, partner},
			InteractionType: model.InteractionDialogue,
		})
	}

	return plan
}
