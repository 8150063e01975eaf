package icons

import (
	"fmt"
	"image"

	"github.com/skycast/iconmaker/internal/render"
)

// Artifact is one output file of the icon set. Size is the edge length of
// the square image Compose returns.
type Artifact struct {
	File    string
	Label   string
	Size    int
	Compose func() (*render.Canvas, error)
}

// Artifacts lists the icon set in the order it is written.
func (t Theme) Artifacts() []Artifact {
	return []Artifact{
		{File: "icon.png", Label: "App icon", Size: AppIconSize, Compose: t.AppIcon},
		{File: "android-icon-foreground.png", Label: "Android foreground icon", Size: AppIconSize, Compose: t.AndroidForeground},
		{File: "android-icon-background.png", Label: "Android background icon", Size: AppIconSize, Compose: t.AndroidBackground},
		{File: "android-icon-monochrome.png", Label: "Android monochrome icon", Size: AppIconSize, Compose: t.AndroidMonochrome},
		{File: "splash-icon.png", Label: "Splash screen icon", Size: SplashSize, Compose: t.Splash},
		{File: "favicon.png", Label: "Favicon", Size: FaviconSize, Compose: t.Favicon},
	}
}

// ICOSizes are the resolutions bundled into favicon.ico.
var ICOSizes = []int{16, 32, 48}

// FaviconFrames renders the favicon once per size, smallest first.
func (t Theme) FaviconFrames(sizes ...int) ([]image.Image, error) {
	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		c, err := t.FaviconAt(size)
		if err != nil {
			return nil, fmt.Errorf("favicon %dpx: %w", size, err)
		}
		frames = append(frames, c.Image())
	}
	return frames, nil
}
