package renderer

import (
	"fmt"
	"math"
	"strings"
)

// FrameCount is the number of frames a duration occupies at fps.
func FrameCount(duration float64, fps int) int {
	return int(math.Round(duration * float64(fps)))
}

// GenerateZoomPanFilter builds a zoompan filter that holds a single input
// frame for the whole duration and moves the camera through keyframes.
func GenerateZoomPanFilter(keyframes []Keyframe, duration float64, fps, width, height int) string {
	if len(keyframes) == 0 {
		return ""
	}

	zoomExpr := piecewise(keyframes, fps, func(k Keyframe) float64 { return k.Zoom })
	xExpr := fmt.Sprintf("(%s)*iw-iw/zoom/2", piecewise(keyframes, fps, func(k Keyframe) float64 { return k.CenterX }))
	yExpr := fmt.Sprintf("(%s)*ih-ih/zoom/2", piecewise(keyframes, fps, func(k Keyframe) float64 { return k.CenterY }))

	return fmt.Sprintf("zoompan=z='%s':x='%s':y='%s':d=%d:s=%dx%d:fps=%d",
		zoomExpr, xExpr, yExpr, max(FrameCount(duration, fps), 1), width, height, fps)
}

// piecewise is a nested if() over the output frame number that is linear
// between consecutive keyframes and constant after the last one.
func piecewise(keyframes []Keyframe, fps int, value func(Keyframe) float64) string {
	last := value(keyframes[len(keyframes)-1])

	var b strings.Builder
	open := 0
	for i := 0; i < len(keyframes)-1; i++ {
		startFrame := FrameCount(keyframes[i].Time, fps)
		endFrame := FrameCount(keyframes[i+1].Time, fps)
		if endFrame <= startFrame {
			continue
		}
		from, to := value(keyframes[i]), value(keyframes[i+1])
		fmt.Fprintf(&b, "if(lte(on,%d),%.6f+(on-%d)/%d*(%.6f),",
			endFrame, from, startFrame, endFrame-startFrame, to-from)
		open++
	}

	fmt.Fprintf(&b, "%.6f", last)
	b.WriteString(strings.Repeat(")", open))
	return b.String()
}
