package slate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/directorkit/internal/model"
)

func sampleCard() Card {
	entry := model.TimelineEntry{
		SceneNumber: 1,
		ShotNumber:  2,
		ShotID:      model.ShotID(1, 2),
		CameraType:  model.CameraCloseUp,
		Start:       3.0,
		End:         5.4,
		Notes:       "ANA (furious)",
	}
	return Card{
		Title: "Kitchen",
		Entry: entry,
		Shot: model.Shot{
			ShotNumber: 2,
			Camera:     model.CameraSetup{Type: model.CameraCloseUp, FocalLength: 85, Aperture: 1.8},
		},
	}
}

func TestRenderProducesOutputSize(t *testing.T) {
	r := NewRenderer(640, 360, nil)

	img, err := r.Render(sampleCard())
	require.NoError(t, err)
	defer r.Release(img)

	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 360, img.Bounds().Dy())
	assert.Equal(t, uint64(640*360*4), r.FrameBytes())

	// top-left corner is the close-up background
	assert.Equal(t, background[model.CameraCloseUp], img.RGBAAt(0, 0))
}

func TestRenderUnknownCameraWithoutQR(t *testing.T) {
	r := NewRenderer(320, 180, nil)
	r.QRSize = 0

	c := sampleCard()
	c.Entry.CameraType = model.CameraPointOfView

	img, err := r.Render(c)
	require.NoError(t, err)
	defer r.Release(img)

	assert.Equal(t, fallbackBackground, img.RGBAAt(0, 0))
	assert.Equal(t, fallbackBackground, img.RGBAAt(319, 179))
}

func TestRenderRejectsEmptySize(t *testing.T) {
	_, err := NewRenderer(0, 360, nil).Render(sampleCard())
	assert.Error(t, err)
}

func TestTimecode(t *testing.T) {
	assert.Equal(t, "00:03.0", Timecode(3))
	assert.Equal(t, "01:05.4", Timecode(65.4))
	assert.Equal(t, "00:00.0", Timecode(-1))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"the quick", "brown fox"}, Wrap("the quick brown fox", 10))
	assert.Equal(t, []string{"abcd", "ef"}, Wrap("abcdef", 4))
	assert.Equal(t, []string{"one", "two"}, Wrap("one\ntwo", 20))
	assert.Nil(t, Wrap("", 10))
}

func TestQRPayloadCarriesShotID(t *testing.T) {
	c := sampleCard()
	assert.Contains(t, QRPayload(c.Entry), c.Entry.ShotID.String())
	assert.Contains(t, QRPayload(c.Entry), "t:3.00-5.40")
}
