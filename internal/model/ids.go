package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Namespace for all generated ids. Ids are name-based (SHA-1) so the same
// screenplay always produces the same tree.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ivlev/directorkit"))

func ProjectID(title string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte("project/"+title))
}

func SceneID(sceneNumber int) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(fmt.Sprintf("scene/%d", sceneNumber)))
}

func ShotID(sceneNumber, shotNumber int) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(fmt.Sprintf("scene/%d/shot/%d", sceneNumber, shotNumber)))
}

// RiggingID identifies the rigging of the index-th dialogue line of a scene.
// A sceneNumber of 0 is used for lines rigged without scene context.
func RiggingID(sceneNumber, index int, d DialogueBlock) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(fmt.Sprintf("scene/%d/line/%d/%s/%s", sceneNumber, index, d.Character, d.Dialogue)))
}

// BackstoryID is case-insensitive on the character name.
func BackstoryID(characterName string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte("character/"+strings.ToUpper(strings.TrimSpace(characterName))))
}
