package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivlev/directorkit/internal/director"
	"github.com/ivlev/directorkit/internal/engine"
	"github.com/ivlev/directorkit/internal/system"
	"github.com/ivlev/directorkit/internal/video"
)

var (
	animaticOutput  string
	animaticWidth   int
	animaticHeight  int
	animaticFPS     int
	animaticQuality int
)

var animaticCmd = &cobra.Command{
	Use:   "animatic [project.yaml]",
	Short: "Render a directed project as a slate-per-shot preview video",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		system.InitResourceLimits()

		var input string
		if len(args) > 0 {
			input = args[0]
		} else {
			latest, err := director.FindLatestProject(cfg.Data.ProjectDir)
			if err != nil {
				return fmt.Errorf("%w; run 'directorkit plan' first", err)
			}
			input = latest
			fmt.Printf("[*] Using %s\n", input)
		}

		project, err := director.ReadProject(input)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("width") {
			cfg.Render.Width = animaticWidth
		}
		if cmd.Flags().Changed("height") {
			cfg.Render.Height = animaticHeight
		}
		if cmd.Flags().Changed("fps") {
			cfg.Render.FPS = animaticFPS
		}
		if cmd.Flags().Changed("quality") {
			cfg.Render.Quality = animaticQuality
		}

		codec := cfg.Render.VideoEncoder
		if codec == "" {
			codec = system.BestH264Encoder()
			if codec != "libx264" {
				fmt.Printf("[*] Hardware encoder: %s\n", codec)
			}
		}
		quality := cfg.Render.Quality
		if quality == 0 {
			quality = defaultQuality(codec)
		}

		out := animaticOutput
		if out == "" {
			timestamp := time.Now().Format("2006-01-02_15-04-05")
			out = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", director.Slug(project.Title), timestamp))
		}

		a := engine.NewAnimatic(cfg, project, video.NewFFmpegEncoder(codec, quality), out)
		if _, err := a.Run(cmd.Context()); err != nil {
			return err
		}

		if got, err := system.ProbeDuration(out); err == nil {
			logVerbose("encoded length %.2fs (planned %.2fs)", got, project.TotalDuration)
		}

		fmt.Printf("[+++] Done! Animatic: %s\n", out)
		return nil
	},
}

func init() {
	animaticCmd.Flags().StringVarP(&animaticOutput, "output", "o", "", "Video path (default: output/<title>_<timestamp>.mp4)")
	animaticCmd.Flags().IntVar(&animaticWidth, "width", 1280, "Width")
	animaticCmd.Flags().IntVar(&animaticHeight, "height", 720, "Height")
	animaticCmd.Flags().IntVar(&animaticFPS, "fps", 24, "FPS")
	animaticCmd.Flags().IntVar(&animaticQuality, "quality", 0, "Quality (0 = auto; x264 CRF, VideoToolbox bitrate = Q*100 kbit/s)")
	rootCmd.AddCommand(animaticCmd)
}

func defaultQuality(codec string) int {
	switch codec {
	case "h264_videotoolbox":
		return 75
	case "h264_nvenc":
		return 28
	default:
		return 23
	}
}
