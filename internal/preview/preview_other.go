//go:build !linux

package preview

import (
	"context"
	"image"
)

func show(ctx context.Context, img image.Image, opts Options) error {
	return ErrUnsupported
}
