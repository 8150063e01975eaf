//go:build linux

package preview

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

func show(ctx context.Context, img image.Image, opts Options) error {
	dev, err := fb.Open(opts.Device)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.Device, err)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	if opts.Logger != nil {
		opts.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	// Graphics mode suppresses the console cursor; failures only cost cosmetics.
	if err := setConsoleMode(kdGraphics); err != nil && opts.Logger != nil {
		opts.Logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	}
	defer func() {
		if err := setConsoleMode(kdText); err != nil && opts.Logger != nil {
			opts.Logger.Errorf("tty", "KD_TEXT failed: %v", err)
		}
	}()

	frame := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	xdraw.NearestNeighbor.Scale(frame, fitRect(frame.Bounds(), img.Bounds()), img, img.Bounds(), xdraw.Over, nil)
	blitToFB(dev, frame)

	timer := time.NewTimer(opts.Hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// blitToFB copies frame onto the device pixel by pixel; the device does its
// own pixel format conversion in Set.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}

// setConsoleMode switches the active VT, trying /dev/tty before /dev/tty0.
func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	if lastErr != nil {
		return lastErr
	}
	return fmt.Errorf("KDSETMODE %d failed: %w", mode, os.ErrNotExist)
}
