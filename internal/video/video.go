package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ivlev/directorkit/internal/config"
)

type VideoEncoder interface {
	EncodeSegment(ctx context.Context, img image.Image, videoPath string, params config.SegmentParams) error
	Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string) error
}

// FFmpegEncoder shells out to ffmpeg. Codec is an ffmpeg encoder name;
// Quality is a CRF/CQ value, or a bitrate in 100 kbit/s steps for
// VideoToolbox.
type FFmpegEncoder struct {
	Codec   string
	Quality int
}

func NewFFmpegEncoder(codec string, quality int) *FFmpegEncoder {
	if codec == "" {
		codec = "libx264"
	}
	if quality <= 0 {
		quality = 23
	}
	return &FFmpegEncoder{Codec: codec, Quality: quality}
}

// EncodeSegment feeds one raw RGBA frame to ffmpeg; the filter stretches it
// over params.Duration.
func (e *FFmpegEncoder) EncodeSegment(ctx context.Context, img image.Image, videoPath string, params config.SegmentParams) error {
	inputW, inputH := img.Bounds().Dx(), img.Bounds().Dy()

	cmd := exec.CommandContext(ctx, "ffmpeg", e.buildFFmpegArgs(inputW, inputH, videoPath, params)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start: %w", err)
	}

	if err := writeRawRGBA(stdin, img); err != nil {
		stdin.Close()
		cmd.Wait()
		return fmt.Errorf("write raw frame: %w", err)
	}
	stdin.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg segment %s: %w\n%s", filepath.Base(videoPath), err, out.String())
	}
	return nil
}

func (e *FFmpegEncoder) buildFFmpegArgs(inputW, inputH int, videoPath string, params config.SegmentParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", inputW, inputH),
		"-i", "-",
		"-vf", params.Filter,
		"-t", fmt.Sprintf("%f", params.Duration),
		"-r", fmt.Sprintf("%d", params.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", e.Codec,
	}
	args = append(args, e.qualityArgs()...)
	return append(args, videoPath)
}

func (e *FFmpegEncoder) qualityArgs() []string {
	switch e.Codec {
	case "h264_videotoolbox":
		// no -crf here, so quality becomes a bitrate: 75 -> 7.5 Mbit/s
		return []string{"-b:v", fmt.Sprintf("%dk", e.Quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", e.Quality)}
	default:
		return []string{"-crf", fmt.Sprintf("%d", e.Quality), "-preset", "medium"}
	}
}

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}

// Concatenate joins segments with the concat demuxer. All segments share
// codec and resolution, so streams are copied.
func (e *FFmpegEncoder) Concatenate(ctx context.Context, segmentPaths []string, finalPath string, tmpDir string) error {
	if len(segmentPaths) == 0 {
		return fmt.Errorf("no segments to join")
	}

	listPath := filepath.Join(tmpDir, "inputs.txt")
	if err := writeConcatList(listPath, segmentPaths); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-f", "concat", "-safe", "0", "-i", listPath,
		"-c", "copy", finalPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg concat: %w\n%s", err, out)
	}
	return nil
}

func writeConcatList(path string, segmentPaths []string) error {
	var b bytes.Buffer
	for _, p := range segmentPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}
	return os.WriteFile(path, b.Bytes(), 0o644)
}
