package director

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/directorkit/internal/model"
)

// WriteProject writes a directed project to a YAML file
func WriteProject(project *model.DirectorProject, path string) error {
	data, err := yaml.Marshal(project)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadProject reads a directed project from a YAML file
func ReadProject(path string) (*model.DirectorProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var project model.DirectorProject
	if err := yaml.Unmarshal(data, &project); err != nil {
		return nil, err
	}

	return &project, nil
}
