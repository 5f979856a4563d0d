// Package effects turns a shot's camera type into the ffmpeg filter that
// animates its slate.
package effects

import (
	"fmt"

	"github.com/ivlev/directorkit/internal/config"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/renderer"
)

// maxZoom caps how far a move travels regardless of shot length.
const maxZoom = 1.5

// sampleStep is how often eased moves are resampled, in seconds.
const sampleStep = 0.25

type Effect interface {
	GenerateFilter(p config.SegmentParams) string
}

// ForCamera picks the move for a camera type: establishing shots pull out,
// close-ups push in and everything else holds.
func ForCamera(t model.CameraType) Effect {
	switch t {
	case model.CameraEstablishing:
		return &Move{Name: "pull-out", Out: true}
	case model.CameraCloseUp, model.CameraExtremeCloseUp:
		return &Move{Name: "push-in", FocusY: 0.45}
	default:
		return &Hold{}
	}
}

// Hold shows the slate without camera movement.
type Hold struct{}

func (h *Hold) GenerateFilter(p config.SegmentParams) string {
	return withDebug(fmt.Sprintf("scale=%d:%d,setsar=1", p.Width, p.Height), p)
}

// Move zooms between full frame and a peak that depends on the zoom speed
// and the shot length. Out runs it backwards.
type Move struct {
	Name   string
	Out    bool
	FocusY float64
}

// Keyframes of the move over p.Duration.
func (m *Move) Keyframes(p config.SegmentParams) []renderer.Keyframe {
	speed := p.ZoomSpeed
	if speed <= 0 {
		speed = 0.001
	}
	peak := min(1.0+speed*float64(renderer.FrameCount(p.Duration, p.FPS)), maxZoom)

	focusY := m.FocusY
	if focusY == 0 {
		focusY = 0.5
	}

	start := renderer.Keyframe{Time: 0, CenterX: 0.5, CenterY: 0.5, Zoom: 1.0}
	end := renderer.Keyframe{Time: p.Duration, CenterX: 0.5, CenterY: focusY, Zoom: peak}
	if m.Out {
		start.Zoom, end.Zoom = end.Zoom, start.Zoom
		start.CenterY, end.CenterY = end.CenterY, start.CenterY
	}
	return renderer.Densify([]renderer.Keyframe{start, end}, sampleStep)
}

func (m *Move) GenerateFilter(p config.SegmentParams) string {
	// zoom in on a 2x canvas so the crop never upsamples
	aspect := fmt.Sprintf("scale=%d:%d", p.Width*2, p.Height*2)
	zoom := renderer.GenerateZoomPanFilter(m.Keyframes(p), p.Duration, p.FPS, p.Width, p.Height)
	return withDebug(fmt.Sprintf("%s,%s,setsar=1", aspect, zoom), p)
}

func withDebug(filter string, p config.SegmentParams) string {
	if !p.Debug {
		return filter
	}
	return fmt.Sprintf("%s,drawtext=text='Shot %d | %s':x=10:y=h-34:fontsize=20:fontcolor=yellow:box=1:boxcolor=black@0.5",
		filter, p.ShotIndex+1, p.Camera)
}
