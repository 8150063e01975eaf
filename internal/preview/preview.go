// Package preview shows a rendered image on the Linux framebuffer console.
package preview

import (
	"context"
	"errors"
	"image"
	"time"
)

// ErrUnsupported is returned on platforms without a framebuffer console.
var ErrUnsupported = errors.New("preview: framebuffer not supported on this platform")

// DefaultDevice is the primary framebuffer.
const DefaultDevice = "/dev/fb0"

// Logger matches app.Logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Options controls a preview.
type Options struct {
	Device string
	// Hold is how long the image stays up before the console is restored.
	Hold   time.Duration
	Logger Logger
}

// Show displays img until opts.Hold elapses or ctx is done.
func Show(ctx context.Context, img image.Image, opts Options) error {
	if opts.Device == "" {
		opts.Device = DefaultDevice
	}
	if opts.Hold <= 0 {
		opts.Hold = 5 * time.Second
	}
	return show(ctx, img, opts)
}

// fitRect returns the largest rectangle with src's aspect ratio centered in dst.
func fitRect(dst image.Rectangle, src image.Rectangle) image.Rectangle {
	if src.Dx() == 0 || src.Dy() == 0 || dst.Dx() == 0 || dst.Dy() == 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	width := dst.Dx()
	height := src.Dy() * width / src.Dx()
	if height > dst.Dy() {
		height = dst.Dy()
		width = src.Dx() * height / src.Dy()
	}
	x0 := dst.Min.X + (dst.Dx()-width)/2
	y0 := dst.Min.Y + (dst.Dy()-height)/2
	return image.Rect(x0, y0, x0+width, y0+height)
}
