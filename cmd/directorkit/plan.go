package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ivlev/directorkit/internal/director"
	"github.com/ivlev/directorkit/internal/screenplay"
	"github.com/ivlev/directorkit/internal/slate"
	"github.com/ivlev/directorkit/internal/store"
	"github.com/ivlev/directorkit/internal/system"
)

var (
	planOutput string
	planSave   bool
)

var planCmd = &cobra.Command{
	Use:   "plan [screenplay]",
	Short: "Direct a screenplay into a project file",
	Long: "Plans every scene of a screenplay (PDF, Fountain, text, OSF or YAML) and writes the\n" +
		"directed project as YAML. Without an argument the newest screenplay in <data-dir>/screenplays is used.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := screenplayArg(args)
		if err != nil {
			return err
		}

		sp, err := screenplay.Load(input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", input, err)
		}
		fmt.Printf("[*] Screenplay: %s | Scenes: %d\n", sp.Title, len(sp.Scenes))

		catalog, err := loadCatalog()
		if err != nil {
			return err
		}

		d := director.NewDirector(cfg.Tuning, catalog)
		d.MaxWorkers = cfg.Workers

		project, err := d.DirectProject(cmd.Context(), sp)
		if err != nil {
			return err
		}

		out := planOutput
		if out == "" {
			out = director.GenerateProjectPath(cfg.Data.ProjectDir, project.Title)
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := director.WriteProject(project, out); err != nil {
			return fmt.Errorf("writing project: %w", err)
		}

		if planSave {
			s, err := store.Open(dbPath())
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.SaveProject(cmd.Context(), project); err != nil {
				return fmt.Errorf("saving project: %w", err)
			}
			fmt.Printf("[*] Saved to %s\n", dbPath())
		}

		for _, e := range director.BuildTimeline(project) {
			logVerbose("  %s  scene %d shot %d  %-12s %s", slate.Timecode(e.Start), e.SceneNumber, e.ShotNumber, e.CameraType, e.Notes)
		}

		fmt.Printf("[+++] Done! %d scenes, %.1fs: %s\n", len(project.Scenes), project.TotalDuration, out)
		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Project file (default: timestamped file in the project dir)")
	planCmd.Flags().BoolVar(&planSave, "save", false, "Also store the project in the database")
	rootCmd.AddCommand(planCmd)
}

func screenplayArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	latest, err := system.FindLatestScreenplay(dataPath("screenplays"))
	if err != nil {
		return "", fmt.Errorf("%w; pass a screenplay or put one in %s", err, dataPath("screenplays"))
	}
	fmt.Printf("[*] Using %s\n", latest)
	return latest, nil
}

func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
