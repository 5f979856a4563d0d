package system

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLatestScreenplay(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "draft.fountain")
	newer := filepath.Join(dir, "final.pdf")
	ignored := filepath.Join(dir, "notes.md")

	for _, p := range []string{old, newer, ignored} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	now := time.Now()
	require.NoError(t, os.Chtimes(old, now.Add(-time.Hour), now.Add(-time.Hour)))
	require.NoError(t, os.Chtimes(newer, now, now))
	require.NoError(t, os.Chtimes(ignored, now.Add(time.Hour), now.Add(time.Hour)))

	got, err := FindLatestScreenplay(dir)
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestFindLatestEmptyDir(t *testing.T) {
	_, err := FindLatest(t.TempDir(), ".osf")
	assert.Error(t, err)
}

func TestRecommendedWorkers(t *testing.T) {
	n := RecommendedWorkers(0, 1280*720*4)
	assert.GreaterOrEqual(t, n, 1)

	assert.Equal(t, 1, RecommendedWorkers(1, 1280*720*4))
}

func TestPickEncoder(t *testing.T) {
	assert.Equal(t, "h264_nvenc", pickEncoder(" V....D h264_nvenc  NVIDIA NVENC H.264 encoder"))
	assert.Equal(t, "libx264", pickEncoder(" V....D libx264  H.264"))
}

func TestImagePoolReusesBySize(t *testing.T) {
	pool := NewImagePool()
	rect := image.Rect(0, 0, 4, 2)

	img := pool.Get(rect)
	assert.Equal(t, rect, img.Rect)
	pool.Put(img)
	pool.Put(image.NewRGBA(image.Rect(0, 0, 8, 8)))

	assert.Equal(t, rect, pool.Get(rect).Rect)
}
