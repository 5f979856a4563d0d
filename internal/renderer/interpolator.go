package renderer

import "math"

// Keyframe pins the virtual camera at a moment of a shot. The focus point
// is a fraction of the frame, so 0.5, 0.5 is the middle.
type Keyframe struct {
	Time    float64
	CenterX float64
	CenterY float64
	Zoom    float64
}

// CameraState is the interpolated camera at one instant
type CameraState struct {
	CenterX float64
	CenterY float64
	Zoom    float64 // 1.0 = full frame
}

func (k Keyframe) state() CameraState {
	return CameraState{CenterX: k.CenterX, CenterY: k.CenterY, Zoom: k.Zoom}
}

// InterpolateKeyframes returns the camera at time t with an ease-in-out
// between the surrounding keyframes. Keyframes must be sorted by time.
func InterpolateKeyframes(keyframes []Keyframe, t float64) CameraState {
	if len(keyframes) == 0 {
		return CameraState{CenterX: 0.5, CenterY: 0.5, Zoom: 1.0}
	}
	if t <= keyframes[0].Time {
		return keyframes[0].state()
	}
	last := keyframes[len(keyframes)-1]
	if t >= last.Time {
		return last.state()
	}

	var prev, next Keyframe
	for i := 0; i < len(keyframes)-1; i++ {
		if t >= keyframes[i].Time && t < keyframes[i+1].Time {
			prev, next = keyframes[i], keyframes[i+1]
			break
		}
	}

	span := next.Time - prev.Time
	if span == 0 {
		return next.state()
	}
	f := easeInOutCubic((t - prev.Time) / span)

	return CameraState{
		CenterX: lerp(prev.CenterX, next.CenterX, f),
		CenterY: lerp(prev.CenterY, next.CenterY, f),
		Zoom:    lerp(prev.Zoom, next.Zoom, f),
	}
}

// Densify resamples keyframes every step seconds through the eased
// interpolation, so a piecewise-linear ffmpeg expression follows the curve.
func Densify(keyframes []Keyframe, step float64) []Keyframe {
	if len(keyframes) < 2 || step <= 0 {
		return keyframes
	}
	start, end := keyframes[0].Time, keyframes[len(keyframes)-1].Time

	out := make([]Keyframe, 0, int((end-start)/step)+2)
	for t := start; t < end; t += step {
		s := InterpolateKeyframes(keyframes, t)
		out = append(out, Keyframe{Time: t, CenterX: s.CenterX, CenterY: s.CenterY, Zoom: s.Zoom})
	}
	return append(out, keyframes[len(keyframes)-1])
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
