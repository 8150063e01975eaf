package render

import (
	"fmt"
	"image"
	"strings"
	"testing"
)

type recordingLogger struct {
	infos, errors []string
}

func (l *recordingLogger) Infof(component string, format string, args ...interface{}) {
	l.infos = append(l.infos, component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component string, format string, args ...interface{}) {
	l.errors = append(l.errors, component+": "+fmt.Sprintf(format, args...))
}

func TestCaptionerLogsFontChoice(t *testing.T) {
	rec := &recordingLogger{}
	c := NewCaptioner(22, rec)
	if c.Logger != rec {
		t.Fatal("logger not stored on the captioner")
	}
	if len(rec.errors) != 0 {
		t.Errorf("unexpected errors: %v", rec.errors)
	}
	if len(rec.infos) != 1 || !strings.Contains(rec.infos[0], "caption: loaded Go Regular at 22pt") {
		t.Errorf("infos = %v", rec.infos)
	}
}

func TestCaptionerDrawsWithoutLogger(t *testing.T) {
	c := NewCaptioner(22, nil)
	width, ascent := c.Measure("Favicon")
	if width <= 0 || ascent <= 0 {
		t.Fatalf("Measure = %d,%d", width, ascent)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 200, 40))
	c.DrawCentered(dst, "Favicon", 100, 30, White)
	painted := false
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("caption drew no pixels")
	}
}
