package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/skycast/iconmaker/internal/config"
	"github.com/skycast/iconmaker/internal/icons"
	"github.com/skycast/iconmaker/internal/output"
	"github.com/skycast/iconmaker/internal/preview"
)

// FaviconICO is the multi-resolution favicon written when Config.ICO is set.
const FaviconICO = "favicon.ico"

type App struct {
	Config config.Config
	Logger Logger
	// Out receives the progress lines meant for the person running the tool.
	Out io.Writer
	// Preview shows the contact sheet; replaced in tests.
	Preview func(ctx context.Context, img image.Image) error
}

// Written describes one file produced by a run.
type Written struct {
	Path   string
	Width  int
	Height int
}

func New(cfg config.Config) *App {
	app := &App{Config: cfg, Logger: NoopLogger{}, Out: os.Stdout}
	app.Preview = func(ctx context.Context, img image.Image) error {
		return preview.Show(ctx, img, preview.Options{Logger: app.Logger})
	}
	return app
}

// Run renders every artifact in order and writes it to the output directory.
// Optional outputs (favicon.ico, contact sheet, preview) run afterwards; their
// failures are logged and do not fail the run.
func (app *App) Run(ctx context.Context) ([]Written, error) {
	theme, err := app.Config.Theme()
	if err != nil {
		return nil, err
	}
	dir := app.Config.OutDir
	if err := output.EnsureDir(dir); err != nil {
		return nil, err
	}
	app.Logger.Infof("app", "output directory %s", dir)

	fmt.Fprintln(app.Out, "Generating icons...")
	var written []Written
	var sheetItems []icons.Labeled
	for _, artifact := range theme.Artifacts() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		fmt.Fprintf(app.Out, "✓ %s (%dx%d)...\n", artifact.Label, artifact.Size, artifact.Size)
		canvas, err := artifact.Compose()
		if err != nil {
			return written, fmt.Errorf("compose %s: %w", artifact.File, err)
		}

		path := filepath.Join(dir, artifact.File)
		if err := output.WritePNG(path, canvas.Image()); err != nil {
			return written, fmt.Errorf("save %s: %w", artifact.File, err)
		}
		app.Logger.Infof("icons", "wrote %s opaque=%t", path, canvas.Opaque())
		written = append(written, Written{Path: path, Width: canvas.Width(), Height: canvas.Height()})
		sheetItems = append(sheetItems, icons.Labeled{Label: artifact.Label, Image: canvas.Image()})
	}

	if app.Config.ICO {
		if w, err := app.writeICO(theme, dir); err != nil {
			app.Logger.Errorf("ico", "favicon.ico failed: %v", err)
		} else {
			fmt.Fprintf(app.Out, "✓ Favicon ICO (%d sizes)...\n", len(icons.ICOSizes))
			written = append(written, w)
		}
	}

	if app.Config.SheetPath != "" || app.Config.Preview {
		sheet := icons.ContactSheet(sheetItems, icons.NewSheetCaptioner(app.Logger))
		if app.Config.SheetPath != "" {
			if err := app.writeSheet(sheet); err != nil {
				app.Logger.Errorf("sheet", "contact sheet failed: %v", err)
			} else {
				fmt.Fprintf(app.Out, "✓ Contact sheet (%dx%d)...\n", sheet.Bounds().Dx(), sheet.Bounds().Dy())
				written = append(written, Written{Path: app.Config.SheetPath, Width: sheet.Bounds().Dx(), Height: sheet.Bounds().Dy()})
			}
		}
		if app.Config.Preview && app.Preview != nil {
			if err := app.Preview(ctx, sheet); err != nil {
				app.Logger.Errorf("preview", "preview failed: %v", err)
			}
		}
	}

	fmt.Fprintln(app.Out)
	fmt.Fprintln(app.Out, "All icons generated successfully!")
	fmt.Fprintf(app.Out, "Location: %s\n", dir)
	return written, nil
}

func (app *App) writeSheet(sheet image.Image) error {
	if err := output.EnsureDir(filepath.Dir(app.Config.SheetPath)); err != nil {
		return err
	}
	return output.WritePNG(app.Config.SheetPath, sheet)
}

func (app *App) writeICO(theme icons.Theme, dir string) (Written, error) {
	frames, err := theme.FaviconFrames(icons.ICOSizes...)
	if err != nil {
		return Written{}, err
	}
	path := filepath.Join(dir, FaviconICO)
	if err := output.WriteICO(path, frames); err != nil {
		return Written{}, err
	}
	largest := icons.ICOSizes[len(icons.ICOSizes)-1]
	app.Logger.Infof("ico", "wrote %s", path)
	return Written{Path: path, Width: largest, Height: largest}, nil
}
