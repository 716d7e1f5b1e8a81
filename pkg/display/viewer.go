package display

import (
	"image"
	_ "image/png"
	"os"

	"github.com/gonutz/prototype/draw"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Viewer interface {
	// Show blocks until the user is done looking at the image.
	Show(imagePath string) error
}

func NewViewer(headless bool, title string, width, height int) Viewer {
	if headless {
		return HeadlessViewer{}
	}
	return &WindowViewer{Title: title, Width: width, Height: height}
}

type HeadlessViewer struct{}

func (HeadlessViewer) Show(imagePath string) error {
	log.Debugf("Headless mode, not displaying %s", imagePath)
	return nil
}

// WindowViewer shows the saved figure scaled to the window. Escape closes
// the window, F11 toggles fullscreen.
type WindowViewer struct {
	Title  string
	Width  int
	Height int

	fullscreen bool
	imgW, imgH int
}

func (v *WindowViewer) Show(imagePath string) error {
	imgW, imgH, err := imageSize(imagePath)
	if err != nil {
		return errors.Wrapf(err, "displaying %s", imagePath)
	}
	v.imgW, v.imgH = imgW, imgH

	log.Info("Showing plot, press Escape to close the window")

	var drawErr error
	err = draw.RunWindow(v.Title, v.Width, v.Height, func(window draw.Window) {
		if err := v.frame(window, imagePath); err != nil {
			drawErr = err
		}
	})
	if err != nil {
		return errors.Wrap(err, "opening plot window")
	}

	return errors.Wrapf(drawErr, "displaying %s", imagePath)
}

// frame draws one update of the window. A drawing error closes the window.
func (v *WindowViewer) frame(window draw.Window, imagePath string) error {
	if window.WasKeyPressed(draw.KeyEscape) {
		window.Close()
		return nil
	}

	if window.WasKeyPressed(draw.KeyF11) {
		v.fullscreen = !v.fullscreen
	}
	window.SetFullscreen(v.fullscreen)

	winW, winH := window.Size()
	window.FillRect(0, 0, winW, winH, draw.White)

	x, y, w, h := fitRect(v.imgW, v.imgH, winW, winH)
	if err := window.DrawImageFileTo(imagePath, x, y, w, h, 0); err != nil {
		window.Close()
		return err
	}
	return nil
}

func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "decoding %s", path)
	}
	return cfg.Width, cfg.Height, nil
}

// fitRect scales an image into the window keeping its aspect ratio and
// centres it.
func fitRect(imgW, imgH, winW, winH int) (x, y, w, h int) {
	if imgW <= 0 || imgH <= 0 || winW <= 0 || winH <= 0 {
		return 0, 0, 0, 0
	}

	scale := float64(winW) / float64(imgW)
	if s := float64(winH) / float64(imgH); s < scale {
		scale = s
	}

	w = int(float64(imgW)*scale + 0.5)
	h = int(float64(imgH)*scale + 0.5)
	return (winW - w) / 2, (winH - h) / 2, w, h
}
