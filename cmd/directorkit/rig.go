package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/screenplay"
	"github.com/ivlev/directorkit/internal/voiceover"
)

var (
	rigScene int
	rigLine  int
)

var rigCmd = &cobra.Command{
	Use:   "rig <screenplay>",
	Short: "Print the dialogue rigging of a scene as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := screenplay.Load(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		scene := findScene(sp, rigScene)
		if scene == nil {
			return fmt.Errorf("%w: screenplay has no scene %d", model.ErrInvalidInput, rigScene)
		}

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		lines := make([]int, 0, len(scene.Dialogue))
		switch {
		case rigLine < 0:
			for i := range scene.Dialogue {
				lines = append(lines, i)
			}
		case rigLine < len(scene.Dialogue):
			lines = append(lines, rigLine)
		default:
			return fmt.Errorf("%w: scene %d has %d dialogue lines", model.ErrInvalidInput, rigScene, len(scene.Dialogue))
		}

		engine := voiceover.NewEngine(cfg.Tuning)
		riggings := make([]model.DialogueRigging, 0, len(lines))
		for _, i := range lines {
			who := scene.Dialogue[i].Character
			b, ok := catalog.Lookup(who, sp)
			if !ok {
				fmt.Fprintf(os.Stderr, "[!] No backstory for %s, using defaults\n", who)
			}
			riggings = append(riggings, engine.RigSceneLine(scene, i, b))
		}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(riggings)
	},
}

func init() {
	rigCmd.Flags().IntVar(&rigScene, "scene", 1, "Scene number")
	rigCmd.Flags().IntVar(&rigLine, "line", -1, "Dialogue line index within the scene (default: all)")
	rootCmd.AddCommand(rigCmd)
}

func findScene(sp *model.Screenplay, number int) *model.ScreenplayScene {
	for i := range sp.Scenes {
		if sp.Scenes[i].SceneNumber == number {
			return &sp.Scenes[i]
		}
	}
	return nil
}
