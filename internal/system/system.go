package system

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// ScreenplayExtensions are the inputs the loader understands.
var ScreenplayExtensions = []string{".pdf", ".fountain", ".txt", ".osf", ".xml", ".yaml", ".yml"}

// InitResourceLimits raises the open file limit; every in-flight segment
// holds an ffmpeg pipe and an output file.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		slog.Warn("Cannot read open file limit", "error", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		slog.Warn("Cannot raise open file limit", "error", err)
		return
	}
	slog.Debug("Open file limit raised", "limit", rLimit.Cur)
}

// RecommendedWorkers sizes the render pool from the logical CPU count and
// the memory currently available, assuming each worker holds frameBytes
// worth of slate buffers. requested > 0 wins when it is lower.
func RecommendedWorkers(requested int, frameBytes uint64) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = 1
	}

	if vm, err := mem.VirtualMemory(); err == nil && frameBytes > 0 {
		// keep a quarter of what is free for ffmpeg itself
		budget := vm.Available / 4
		if byMem := int(budget / frameBytes); byMem < workers {
			workers = max(byMem, 1)
		}
	}

	if requested > 0 && requested < workers {
		workers = requested
	}
	return workers
}

// FindLatest returns the most recently modified file in dir whose
// extension is one of exts.
func FindLatest(dir string, exts ...string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), exts) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no %s files in %s", strings.Join(exts, "/"), dir)
	}
	return latestFile, nil
}

// FindLatestScreenplay picks the newest screenplay in dir.
func FindLatestScreenplay(dir string) (string, error) {
	return FindLatest(dir, ScreenplayExtensions...)
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ProbeDuration asks ffprobe for the length of a media file in seconds.
func ProbeDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	var duration float64
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration); err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return duration, nil
}

// BestH264Encoder returns the first hardware encoder ffmpeg reports,
// falling back to libx264.
func BestH264Encoder() string {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}
	return pickEncoder(string(out))
}

func pickEncoder(listing string) string {
	for _, name := range []string{"h264_videotoolbox", "h264_nvenc"} {
		if strings.Contains(listing, name) {
			return name
		}
	}
	return "libx264"
}
