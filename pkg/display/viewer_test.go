package display

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonutz/prototype/draw"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWindow records the calls a frame makes. Methods it does not override
// panic through the nil embedded interface.
type fakeWindow struct {
	draw.Window

	width, height int
	pressed       map[draw.Key]bool
	drawErr       error

	closed     bool
	fullscreen []bool
	filled     [4]int
	drawn      [4]int
	drawnPath  string
}

func (w *fakeWindow) Close()                        { w.closed = true }
func (w *fakeWindow) Size() (int, int)              { return w.width, w.height }
func (w *fakeWindow) SetFullscreen(f bool)          { w.fullscreen = append(w.fullscreen, f) }
func (w *fakeWindow) WasKeyPressed(k draw.Key) bool { return w.pressed[k] }

func (w *fakeWindow) FillRect(x, y, width, height int, _ draw.Color) {
	w.filled = [4]int{x, y, width, height}
}

func (w *fakeWindow) DrawImageFileTo(path string, x, y, width, height, _ int) error {
	w.drawnPath = path
	w.drawn = [4]int{x, y, width, height}
	return w.drawErr
}

func writePNG(t *testing.T, width, height int) string {
	path := filepath.Join(t.TempDir(), "plot.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))))
	return path
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		name                   string
		imgW, imgH, winW, winH int
		x, y, w, h             int
	}{
		{"exact", 1152, 576, 1152, 576, 0, 0, 1152, 576},
		{"shrink wide window", 1152, 576, 1600, 576, 224, 0, 1152, 576},
		{"shrink tall window", 1152, 576, 576, 800, 0, 256, 576, 288},
		{"grow", 100, 50, 400, 400, 0, 100, 400, 200},
		{"empty window", 1152, 576, 0, 0, 0, 0, 0, 0},
		{"empty image", 0, 576, 800, 600, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := fitRect(tt.imgW, tt.imgH, tt.winW, tt.winH)
			assert.Equal(t, [4]int{tt.x, tt.y, tt.w, tt.h}, [4]int{x, y, w, h})
		})
	}
}

func TestNewViewer(t *testing.T) {
	assert.IsType(t, HeadlessViewer{}, NewViewer(true, "plot", 800, 600))

	v, ok := NewViewer(false, "plot", 800, 600).(*WindowViewer)
	assert.True(t, ok)
	assert.Equal(t, "plot", v.Title)
	assert.Equal(t, 800, v.Width)

	assert.NoError(t, HeadlessViewer{}.Show("does_not_matter.png"))
}

func TestFrameDrawsFittedImage(t *testing.T) {
	v := &WindowViewer{imgW: 1152, imgH: 576}
	window := &fakeWindow{width: 1600, height: 576}

	require.NoError(t, v.frame(window, "plot.png"))

	assert.False(t, window.closed)
	assert.Equal(t, []bool{false}, window.fullscreen)
	assert.Equal(t, [4]int{0, 0, 1600, 576}, window.filled)
	assert.Equal(t, [4]int{224, 0, 1152, 576}, window.drawn)
	assert.Equal(t, "plot.png", window.drawnPath)
}

func TestFrameEscapeCloses(t *testing.T) {
	v := &WindowViewer{imgW: 1152, imgH: 576}
	window := &fakeWindow{width: 800, height: 600, pressed: map[draw.Key]bool{draw.KeyEscape: true}}

	require.NoError(t, v.frame(window, "plot.png"))

	assert.True(t, window.closed)
	assert.Empty(t, window.drawnPath)
}

func TestFrameToggleFullscreen(t *testing.T) {
	v := &WindowViewer{imgW: 1152, imgH: 576}
	window := &fakeWindow{width: 800, height: 600, pressed: map[draw.Key]bool{draw.KeyF11: true}}

	require.NoError(t, v.frame(window, "plot.png"))
	require.NoError(t, v.frame(window, "plot.png"))

	window.pressed = nil
	require.NoError(t, v.frame(window, "plot.png"))

	assert.Equal(t, []bool{true, false, false}, window.fullscreen)
	assert.False(t, window.closed)
}

func TestFrameDrawErrorCloses(t *testing.T) {
	v := &WindowViewer{imgW: 1152, imgH: 576}
	failure := errors.New("unsupported image format")
	window := &fakeWindow{width: 800, height: 600, drawErr: failure}

	err := v.frame(window, "plot.png")
	assert.ErrorIs(t, err, failure)
	assert.True(t, window.closed)
}

func TestImageSize(t *testing.T) {
	w, h, err := imageSize(writePNG(t, 120, 60))
	require.NoError(t, err)
	assert.Equal(t, 120, w)
	assert.Equal(t, 60, h)

	_, _, err = imageSize(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not a png"), 0644))
	_, _, err = imageSize(garbage)
	assert.Error(t, err)
}

func TestShowMissingImage(t *testing.T) {
	v := NewViewer(false, "plot", 800, 600)
	err := v.Show(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
