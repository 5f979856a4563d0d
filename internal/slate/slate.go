// Package slate draws the placeholder frame shown for a shot in the
// animatic: a card with the scene and shot numbers, the camera setup, the
// shot's place on the timeline and a QR code carrying the shot id.
package slate

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/system"
)

// baseWidth is the width the card is laid out at before scaling to the
// output resolution.
const baseWidth = 320

const (
	margin     = 8
	lineHeight = 15
)

var (
	ink        = color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
	dim        = color.RGBA{0xa0, 0xa0, 0xa0, 0xff}
	background = map[model.CameraType]color.RGBA{
		model.CameraEstablishing: {0x1d, 0x35, 0x57, 0xff},
		model.CameraWide:         {0x1d, 0x45, 0x4f, 0xff},
		model.CameraMedium:       {0x2b, 0x2d, 0x42, 0xff},
		model.CameraCloseUp:      {0x5a, 0x23, 0x2d, 0xff},
	}
	fallbackBackground = color.RGBA{0x30, 0x30, 0x30, 0xff}
)

// Card is everything printed on one slate
type Card struct {
	Title string
	Entry model.TimelineEntry
	Shot  model.Shot
}

type Renderer struct {
	Width, Height int
	Pool          *system.ImagePool
	// QRSize is the QR code edge at base resolution; 0 disables it.
	QRSize int
}

func NewRenderer(width, height int, pool *system.ImagePool) *Renderer {
	if pool == nil {
		pool = system.NewImagePool()
	}
	return &Renderer{Width: width, Height: height, Pool: pool, QRSize: 64}
}

// FrameBytes is the size of one rendered slate.
func (r *Renderer) FrameBytes() uint64 {
	return uint64(r.Width) * uint64(r.Height) * 4
}

// Render draws the card at base resolution and scales it to Width x Height.
// The result comes from the pool; hand it back with Release.
func (r *Renderer) Render(c Card) (*image.RGBA, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("slate size %dx%d", r.Width, r.Height)
	}

	baseHeight := max(baseWidth*r.Height/r.Width, 4*lineHeight)
	canvas := image.NewRGBA(image.Rect(0, 0, baseWidth, baseHeight))

	bg, ok := background[c.Entry.CameraType]
	if !ok {
		bg = fallbackBackground
	}
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	y := margin + lineHeight
	y = drawLine(canvas, c.Title, ink, y)
	y = drawLine(canvas, fmt.Sprintf("SCENE %d  SHOT %d", c.Entry.SceneNumber, c.Entry.ShotNumber), ink, y)
	y = drawLine(canvas, cameraLine(c.Shot.Camera), ink, y)
	y = drawLine(canvas, fmt.Sprintf("%s - %s (%.1fs)", Timecode(c.Entry.Start), Timecode(c.Entry.End), c.Entry.Duration()), dim, y)

	textWidth := baseWidth - 2*margin
	if r.QRSize > 0 {
		textWidth -= r.QRSize + margin
	}
	for _, line := range Wrap(c.Entry.Notes, textWidth/basicfont.Face7x13.Advance) {
		if y > baseHeight-margin {
			break
		}
		y = drawLine(canvas, line, dim, y)
	}

	if r.QRSize > 0 {
		if err := r.drawQR(canvas, c.Entry); err != nil {
			return nil, err
		}
	}

	dst := r.Pool.Get(image.Rect(0, 0, r.Width, r.Height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return dst, nil
}

// Release returns a rendered slate to the pool.
func (r *Renderer) Release(img *image.RGBA) {
	r.Pool.Put(img)
}

func (r *Renderer) drawQR(canvas *image.RGBA, e model.TimelineEntry) error {
	q, err := qrcode.New(QRPayload(e), qrcode.Medium)
	if err != nil {
		return fmt.Errorf("slate qr for shot %d.%d: %w", e.SceneNumber, e.ShotNumber, err)
	}
	q.DisableBorder = true

	b := canvas.Bounds()
	at := image.Rect(b.Max.X-margin-r.QRSize, b.Max.Y-margin-r.QRSize, b.Max.X-margin, b.Max.Y-margin)
	draw.Draw(canvas, at, q.Image(r.QRSize), image.Point{}, draw.Src)
	return nil
}

// QRPayload is what the slate's QR code encodes.
func QRPayload(e model.TimelineEntry) string {
	return fmt.Sprintf("shot:%s scene:%d n:%d t:%.2f-%.2f", e.ShotID, e.SceneNumber, e.ShotNumber, e.Start, e.End)
}

func cameraLine(c model.CameraSetup) string {
	kind := strings.ToUpper(strings.ReplaceAll(string(c.Type), "_", " "))
	if c.FocalLength == 0 {
		return kind
	}
	return fmt.Sprintf("%s  %.0fmm f/%.1f", kind, c.FocalLength, c.Aperture)
}

func drawLine(dst *image.RGBA, s string, col color.Color, y int) int {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(margin, y),
	}
	d.DrawString(s)
	return y + lineHeight
}

// Timecode formats seconds as MM:SS.t
func Timecode(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	tenths := int(sec*10 + 0.5)
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}

// Wrap breaks s into lines of at most width runes, on word boundaries
// where possible.
func Wrap(s string, width int) []string {
	if width < 1 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			for len(w) > width {
				if len(cur) > 0 {
					lines = append(lines, string(cur))
					cur = nil
				}
				lines = append(lines, string(w[:width]))
				w = w[width:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, w...)
			case len(cur)+1+len(w) <= width:
				cur = append(append(cur, ' '), w...)
			default:
				lines = append(lines, string(cur))
				cur = append([]rune(nil), w...)
			}
		}
		if len(cur) > 0 {
			lines = append(lines, string(cur))
		}
	}
	return lines
}
