package panzoom

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

const (
	hudRefresh     = 0.5 // seconds between FPS/TPS samples
	hudBannerFade  = 1.5 // seconds for the state banner to fade out
	hudLineHeight  = 14
	hudMargin      = 4
	hudPanelWidth  = 300
	hudPanelHeight = 4*hudLineHeight + 2*hudMargin
	hudBannerScale = 2
)

// hud is the debug overlay: a stats panel refreshed every half second and a
// banner naming the interaction state that fades out after each change.
type hud struct {
	face  text.Face
	panel *ebiten.Image

	sinceRefresh float64
	fps, tps     float64

	banner      string
	bannerAlpha float32
	bannerFade  *gween.Tween
}

func newHUD() *hud {
	return &hud{
		face:         text.NewGoXFace(basicfont.Face7x13),
		sinceRefresh: hudRefresh,
	}
}

// StateChanged restarts the banner fade. It makes hud a StateObserver.
func (h *hud) StateChanged(c StateChange) {
	h.banner = c.To.String()
	h.bannerAlpha = 1
	h.bannerFade = gween.New(1, 0, hudBannerFade, ease.InQuad)
}

func (h *hud) update(dt float64) {
	h.sinceRefresh += dt
	if h.sinceRefresh >= hudRefresh {
		h.sinceRefresh = 0
		h.fps = ebiten.ActualFPS()
		h.tps = ebiten.ActualTPS()
	}

	if h.bannerFade != nil {
		val, done := h.bannerFade.Update(float32(dt))
		h.bannerAlpha = val
		if done {
			h.bannerFade = nil
			h.bannerAlpha = 0
		}
	}
}

func (h *hud) draw(screen *ebiten.Image, state InteractionState, t TransformState) {
	if h.panel == nil {
		h.panel = ebiten.NewImage(hudPanelWidth, hudPanelHeight)
	}
	h.panel.Fill(color.RGBA{0, 0, 0, 128})

	lines := [...]string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", h.fps, h.tps),
		fmt.Sprintf("state: %s", state),
		fmt.Sprintf("scale: %.6g", t.Scale),
		fmt.Sprintf("center: (%.6g, %.6g)", t.Translation[0], t.Translation[1]),
	}
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin, float64(hudMargin+i*hudLineHeight))
		text.Draw(h.panel, line, h.face, op)
	}
	screen.DrawImage(h.panel, nil)

	if h.bannerAlpha <= 0 || h.banner == "" {
		return
	}
	b := screen.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Scale(hudBannerScale, hudBannerScale)
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())-3*hudLineHeight)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleAlpha(h.bannerAlpha)
	text.Draw(screen, h.banner, h.face, op)
}
