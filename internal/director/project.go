package director

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/directorkit/internal/model"
)

// DirectProject validates the screenplay and plans all of its scenes, in
// parallel, returning them in screenplay order.
func (d *Director) DirectProject(ctx context.Context, sp *model.Screenplay) (*model.DirectorProject, error) {
	if err := model.ValidateScreenplay(sp); err != nil {
		return nil, err
	}

	scenes := make([]model.DirectedScene, len(sp.Scenes))

	g, ctx := errgroup.WithContext(ctx)
	if d.MaxWorkers > 0 {
		g.SetLimit(d.MaxWorkers)
	}

	for i := range sp.Scenes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scenes[i] = d.PlanScene(sp.Scenes[i], sp)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("directing %q: %w", sp.Title, err)
	}

	project := &model.DirectorProject{
		ID:     model.ProjectID(sp.Title),
		Title:  sp.Title,
		Scenes: scenes,
		Status: model.ProjectDraft,
	}
	for _, s := range scenes {
		project.TotalDuration += s.Timing.EstimatedDuration
	}

	slog.Info("Directed project", "title", sp.Title, "scenes", len(scenes), "duration", project.TotalDuration)
	return project, nil
}

// BuildTimeline flattens a project into one entry per shot on a single
// project-wide clock.
func BuildTimeline(project *model.DirectorProject) []model.TimelineEntry {
	var (
		timeline Timeline
		entries  []model.TimelineEntry
	)

	for _, scene := range project.Scenes {
		offset := timeline.Advance(scene.Timing.EstimatedDuration)
		for _, shot := range scene.Shots {
			entries = append(entries, model.TimelineEntry{
				SceneNumber: scene.SceneNumber,
				ShotNumber:  shot.ShotNumber,
				ShotID:      shot.ID,
				CameraType:  shot.Camera.Type,
				Start:       offset + shot.Timing.StartTime,
				End:         offset + shot.Timing.EndTime,
				Notes:       shot.VisualNotes,
			})
		}
	}

	return entries
}
