package panzoom

import (
	"bytes"
	"encoding/binary"
	"math"
)

// UniformSize is the byte size of the GPU uniform block written by
// TransformState.MarshalBinary.
const UniformSize = 32

// TransformState is the view transform read by rendering once per frame.
// Only the Recognizer writes it.
type TransformState struct {
	// Translation is the pan offset in world units.
	Translation [2]float32
	// CursorNormalized is the latest cursor position divided by the viewport
	// size, clamped to [0, 1] and tracked regardless of interaction state.
	CursorNormalized [2]float32
	// Scale is the world extent visible across the viewport, within
	// [MinScale, MaxScale]. Smaller values mean deeper zoom.
	Scale float32
	// AspectRatio is viewport width over height.
	AspectRatio float32
}

// NewTransformState returns the initial transform: no translation,
// DefaultScale and a square aspect ratio.
func NewTransformState() TransformState {
	return TransformState{Scale: DefaultScale, AspectRatio: 1}
}

// uniformBlock mirrors the shader-side layout: two vec2, two scalars, then
// padding to a 32-byte block.
type uniformBlock struct {
	Translation [2]float32
	CursorPos   [2]float32
	Scale       float32
	AspectRatio float32
	_           [2]float32
}

// MarshalBinary encodes the transform as the 32-byte little-endian uniform
// block. binary.Write emits zeros for the blank padding field.
func (t TransformState) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(UniformSize)
	if err := binary.Write(&buf, binary.LittleEndian, t.block()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AppendUniforms appends the uniform block to dst without allocating when
// dst has room.
func (t TransformState) AppendUniforms(dst []byte) []byte {
	le := binary.LittleEndian
	dst = le.AppendUint32(dst, math.Float32bits(t.Translation[0]))
	dst = le.AppendUint32(dst, math.Float32bits(t.Translation[1]))
	dst = le.AppendUint32(dst, math.Float32bits(t.CursorNormalized[0]))
	dst = le.AppendUint32(dst, math.Float32bits(t.CursorNormalized[1]))
	dst = le.AppendUint32(dst, math.Float32bits(t.Scale))
	dst = le.AppendUint32(dst, math.Float32bits(t.AspectRatio))
	dst = le.AppendUint32(dst, 0)
	dst = le.AppendUint32(dst, 0)
	return dst
}

func (t TransformState) block() uniformBlock {
	return uniformBlock{
		Translation: t.Translation,
		CursorPos:   t.CursorNormalized,
		Scale:       t.Scale,
		AspectRatio: t.AspectRatio,
	}
}

// KageUniforms writes the transform into a Kage uniform map, keyed by the
// variable names declared in the Mandelbrot shader. The map is reused across
// frames to avoid per-frame allocation.
func (t TransformState) KageUniforms(u map[string]any) {
	u["Translation"] = []float32{t.Translation[0], t.Translation[1]}
	u["Cursor"] = []float32{t.CursorNormalized[0], t.CursorNormalized[1]}
	u["Scale"] = t.Scale
	u["AspectRatio"] = t.AspectRatio
}

// zoom multiplies the scale by ZoomSpeed^dt. Negative exponents grow it.
// The product is computed in float64 and clamped before narrowing.
func (t *TransformState) zoom(exponent float64) {
	s := float64(t.Scale) * math.Pow(ZoomSpeed, exponent)
	t.Scale = float32(min(max(s, MinScale), MaxScale))
}

// pan shifts the view by a normalized cursor delta, proportional to the
// current scale. Screen Y grows downward, world Y grows upward.
func (t *TransformState) pan(dx, dy float32) {
	t.Translation[0] -= dx * t.Scale
	t.Translation[1] += dy * t.Scale
}

// refresh updates the cursor-derived fields from a raw pixel position.
func (t *TransformState) refresh(cursor Vec2, viewport Size) {
	if !viewport.valid() {
		return
	}
	// Cursor positions outside the window are reported while dragging.
	t.CursorNormalized = [2]float32{
		min(max(cursor.X/viewport.Width, 0), 1),
		min(max(cursor.Y/viewport.Height, 0), 1),
	}
	t.AspectRatio = viewport.Width / viewport.Height
}
