package panzoom

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

// Screenshot queues a labeled capture of the view, taken at the end of the
// next Draw. The file name records the label, the interaction state and the
// scale at capture time.
func (s *Surface) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes every queued capture of the rendered frame.
func (s *Surface) flushScreenshots(screen *ebiten.Image) {
	if len(s.screenshotQueue) == 0 {
		return
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.screenshotDir, 0o755); err != nil {
		Logger().WithError(err).WithField("dir", s.screenshotDir).Warn("screenshot: cannot create directory")
		return
	}

	// ReadPixels yields premultiplied RGBA, which is image.RGBA's layout.
	// The PNG encoder converts it to straight alpha.
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		Logger().WithError(err).Warn("screenshot: encode failed")
		return
	}

	state := s.recognizer.State()
	t := s.recognizer.Transform()
	stamp := time.Now()
	for _, label := range s.screenshotQueue {
		path := filepath.Join(s.screenshotDir, screenshotName(stamp, label, state, t.Scale))
		log := Logger().WithFields(logrus.Fields{
			"path":        path,
			"state":       state.String(),
			"scale":       t.Scale,
			"translation": t.Translation,
		})
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			log.WithError(err).Warn("screenshot: write failed")
			continue
		}
		log.Info("screenshot written")
	}
}

// screenshotName builds "<stamp>_<label>_<state>_s<scale>.png".
func screenshotName(stamp time.Time, label string, state InteractionState, scale float32) string {
	return fmt.Sprintf("%s_%s_%s_s%.4g.png",
		stamp.Format("20060102_150405"), sanitizeLabel(label), stateSlug(state), scale)
}

// stateSlug is a short file-name-safe tag for s.
func stateSlug(s InteractionState) string {
	switch s := s.(type) {
	case Idle:
		if s.PreTapped {
			return "tapped"
		}
		return "idle"
	case PressIdle:
		return "pressed"
	case Panning:
		return "panning"
	case ZoomingIn:
		return "zoom-in"
	case ZoomingOut:
		return "zoom-out"
	default:
		panic(fmt.Sprintf("panzoom: unknown interaction state %T", s))
	}
}

// sanitizeLabel replaces characters unsafe in file names with underscores
// and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, label)
}
