// Package engine renders a directed project into an animatic: one slate
// per shot, held for the shot's duration and animated by its camera move,
// joined in timeline order.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/director"
	"github.com/ivlev/directorkit/internal/effects"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/slate"
	"github.com/ivlev/directorkit/internal/system"
	"github.com/ivlev/directorkit/internal/video"
)

var ErrEmptyTimeline = errors.New("timeline has no shots long enough to render")

// Segment is one shot to encode, with its duration snapped to whole frames.
type Segment struct {
	Index    int
	Entry    model.TimelineEntry
	Shot     model.Shot
	Frames   int
	Duration float64
}

// Stats is the performance report of a run
type Stats struct {
	Segments   int
	Skipped    int
	Workers    int
	Duration   float64
	Total      time.Duration
	RenderTime time.Duration
	EncodeTime time.Duration
	ConcatTime time.Duration
}

type Animatic struct {
	Config  *config.Config
	Project *model.DirectorProject
	Encoder video.VideoEncoder
	Slates  *slate.Renderer
	Output  string
	tempDir string
}

func NewAnimatic(cfg *config.Config, project *model.DirectorProject, enc video.VideoEncoder, output string) *Animatic {
	return &Animatic{
		Config:  cfg,
		Project: project,
		Encoder: enc,
		Slates:  slate.NewRenderer(cfg.Render.Width, cfg.Render.Height, system.NewImagePool()),
		Output:  output,
	}
}

// Segments lays the project timeline out in frames. Frame counts come from
// the absolute start and end so rounding never accumulates; shots shorter
// than one frame are dropped.
func (a *Animatic) Segments() (segments []Segment, skipped int) {
	fps := a.Config.Render.FPS
	shots := make(map[[2]int]model.Shot)
	for _, scene := range a.Project.Scenes {
		for _, shot := range scene.Shots {
			shots[[2]int{scene.SceneNumber, shot.ShotNumber}] = shot
		}
	}

	for _, e := range director.BuildTimeline(a.Project) {
		frames := frameAt(e.End, fps) - frameAt(e.Start, fps)
		if frames < 1 {
			skipped++
			continue
		}
		segments = append(segments, Segment{
			Index:    len(segments),
			Entry:    e,
			Shot:     shots[[2]int{e.SceneNumber, e.ShotNumber}],
			Frames:   frames,
			Duration: float64(frames) / float64(fps),
		})
	}
	return segments, skipped
}

func frameAt(t float64, fps int) int {
	return int(t*float64(fps) + 0.5)
}

// Run renders and encodes every segment on a bounded pool and then joins
// them into Output. The first failure cancels the rest.
func (a *Animatic) Run(ctx context.Context) (*Stats, error) {
	startTime := time.Now()

	segments, skipped := a.Segments()
	if len(segments) == 0 {
		return nil, ErrEmptyTimeline
	}

	var err error
	a.tempDir, err = os.MkdirTemp("", "directorkit_")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(a.tempDir)

	workers := system.RecommendedWorkers(a.Config.Workers, a.Slates.FrameBytes())
	stats := &Stats{Segments: len(segments), Skipped: skipped, Workers: workers}

	fmt.Printf("[*] Project: %s | Shots: %d (skipped %d)\n", a.Project.Title, len(segments), skipped)
	fmt.Printf("[*] Resolution: %dx%d @ %d FPS | Workers: %d\n", a.Config.Render.Width, a.Config.Render.Height, a.Config.Render.FPS, workers)

	var (
		renderNanos, encodeNanos atomic.Int64
		ready                    atomic.Int32
		results                  = make([]string, len(segments))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, seg := range segments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t0 := time.Now()
			img, err := a.Slates.Render(slate.Card{Title: a.Project.Title, Entry: seg.Entry, Shot: seg.Shot})
			if err != nil {
				return fmt.Errorf("slate %d.%d: %w", seg.Entry.SceneNumber, seg.Entry.ShotNumber, err)
			}
			defer a.Slates.Release(img)
			renderNanos.Add(int64(time.Since(t0)))

			params := a.segmentParams(seg)
			params.Filter = effects.ForCamera(seg.Entry.CameraType).GenerateFilter(params)

			segPath := filepath.Join(a.tempDir, fmt.Sprintf("s%04d.mp4", seg.Index))
			t1 := time.Now()
			if err := a.Encoder.EncodeSegment(gctx, img, segPath, params); err != nil {
				return fmt.Errorf("shot %d.%d: %w", seg.Entry.SceneNumber, seg.Entry.ShotNumber, err)
			}
			encodeNanos.Add(int64(time.Since(t1)))

			results[seg.Index] = segPath

			fmt.Printf("[>] Ready: %d/%d\n", ready.Add(1), len(segments))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Println("[*] Joining shots...")
	concatStart := time.Now()
	if err := a.Encoder.Concatenate(ctx, results, a.Output, a.tempDir); err != nil {
		return nil, fmt.Errorf("joining animatic: %w", err)
	}

	for _, s := range segments {
		stats.Duration += s.Duration
	}
	stats.ConcatTime = time.Since(concatStart)
	stats.RenderTime = time.Duration(renderNanos.Load())
	stats.EncodeTime = time.Duration(encodeNanos.Load())
	stats.Total = time.Since(startTime)

	slog.Info("Animatic rendered", "output", a.Output, "shots", stats.Segments, "duration", stats.Duration)

	if a.Config.Render.ShowStats {
		a.report(stats)
	}
	return stats, nil
}

func (a *Animatic) segmentParams(seg Segment) config.SegmentParams {
	return config.SegmentParams{
		Width:     a.Config.Render.Width,
		Height:    a.Config.Render.Height,
		FPS:       a.Config.Render.FPS,
		Duration:  seg.Duration,
		ZoomSpeed: a.Config.Render.ZoomSpeed,
		ShotIndex: seg.Index,
		Camera:    string(seg.Entry.CameraType),
		Debug:     a.Config.Render.Debug,
	}
}

func (a *Animatic) report(s *Stats) {
	fmt.Print(s.Report())

	logEntry := fmt.Sprintf("[%s] Project: %s | Shots: %d | Duration: %.2fs | Total: %.2fs | Render: %.2fs | Encode: %.2fs\n",
		time.Now().Format("2006-01-02 15:04:05"),
		a.Project.Title,
		s.Segments,
		s.Duration,
		s.Total.Seconds(),
		s.RenderTime.Seconds(),
		s.EncodeTime.Seconds(),
	)

	path := filepath.Join(filepath.Dir(a.Output), "benchmark.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Printf("[!] Cannot write %s: %v\n", path, err)
		return
	}
	defer f.Close()
	f.WriteString(logEntry)
}

// Report formats the stats block printed after a run.
func (s *Stats) Report() string {
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Shots: %d (skipped %d)\n"+
			"Animatic length: %.2fs\n"+
			"Total Time: %.2fs\n"+
			"Slates (CPU): %.2fs\n"+
			"Encoding: %.2fs\n"+
			"Concatenation: %.2fs\n"+
			"----------------------------\n",
		s.Segments, s.Skipped, s.Duration, s.Total.Seconds(), s.RenderTime.Seconds(), s.EncodeTime.Seconds(), s.ConcatTime.Seconds(),
	)
}
