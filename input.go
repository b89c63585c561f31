package panzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource produces the raw contact events observed since the last
// call. Implementations append to dst and return it.
type PointerSource interface {
	Poll(now float64, dst []PointerEvent) []PointerEvent
}

// EbitenSource polls Ebitengine for the left mouse button and touches.
// Only one contact is tracked: whichever of mouse or touch goes down first
// owns the gesture until it is released, and any other contact is ignored.
type EbitenSource struct {
	mouseDown bool
	mouseX    int
	mouseY    int

	touching bool
	touch    ebiten.TouchID
	touchX   int
	touchY   int

	touchBuf []ebiten.TouchID
}

// NewEbitenSource returns a source with no contact held.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{mouseX: -1, mouseY: -1}
}

// Poll reads this tick's mouse and touch state. Moves are emitted before a
// press or release in the same tick so the press lands at the new position.
func (p *EbitenSource) Poll(now float64, dst []PointerEvent) []PointerEvent {
	if p.touching {
		return p.pollTouch(now, dst)
	}

	if !p.mouseDown {
		p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
		if len(p.touchBuf) > 0 {
			p.touching = true
			p.touch = p.touchBuf[0]
			p.touchX, p.touchY = ebiten.TouchPosition(p.touch)
			return append(dst, PointerEvent{
				Kind: PointerDown, X: float32(p.touchX), Y: float32(p.touchY), Timestamp: now,
			})
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx != p.mouseX || my != p.mouseY {
		p.mouseX, p.mouseY = mx, my
		dst = append(dst, PointerEvent{Kind: PointerMove, X: float32(mx), Y: float32(my), Timestamp: now})
	}

	switch {
	case !p.mouseDown && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		p.mouseDown = true
		dst = append(dst, PointerEvent{Kind: PointerDown, X: float32(mx), Y: float32(my), Timestamp: now})
	case p.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.mouseDown = false
		dst = append(dst, PointerEvent{Kind: PointerUp, X: float32(mx), Y: float32(my), Timestamp: now})
	}
	return dst
}

func (p *EbitenSource) pollTouch(now float64, dst []PointerEvent) []PointerEvent {
	if inpututil.IsTouchJustReleased(p.touch) {
		p.touching = false
		return append(dst, PointerEvent{
			Kind: PointerUp, X: float32(p.touchX), Y: float32(p.touchY), Timestamp: now,
		})
	}
	tx, ty := ebiten.TouchPosition(p.touch)
	if tx != p.touchX || ty != p.touchY {
		p.touchX, p.touchY = tx, ty
		dst = append(dst, PointerEvent{Kind: PointerMove, X: float32(tx), Y: float32(ty), Timestamp: now})
	}
	return dst
}
