package panzoom

import "github.com/hajimehoshi/ebiten/v2"

// mandelbrotShaderSrc renders the Mandelbrot set in the view described by
// TransformState. Pixel (0,0) is top-left; world Y grows upward. A faint
// halo follows the normalized cursor.
const mandelbrotShaderSrc = `//kage:unit pixels
package main

var Translation vec2
var Cursor vec2
var Scale float
var AspectRatio float
var Resolution vec2

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	uv := dst.xy / Resolution
	c := vec2((uv.x-0.5)*Scale*AspectRatio, (0.5-uv.y)*Scale) + Translation

	z := vec2(0)
	n := 0.0
	for i := 0; i < 256; i++ {
		if dot(z, z) <= 4.0 {
			z = vec2(z.x*z.x-z.y*z.y, 2.0*z.x*z.y) + c
			n += 1.0
		}
	}

	col := vec3(0)
	if n < 256.0 {
		t := n / 64.0
		col = vec3(0.5) + 0.5*cos(6.28318*(vec3(t)+vec3(0.0, 0.33, 0.67)))
	}

	d := distance(uv*vec2(AspectRatio, 1), Cursor*vec2(AspectRatio, 1))
	halo := 0.25 * (1.0 - smoothstep(0.0, 0.04, d))
	return vec4(clamp(col+vec3(halo), vec3(0), vec3(1)), 1)
}
`

// Lazy compilation. Surfaces run on Ebitengine's single game goroutine.
var mandelbrotShader *ebiten.Shader

func ensureMandelbrotShader() *ebiten.Shader {
	if mandelbrotShader == nil {
		s, err := ebiten.NewShader([]byte(mandelbrotShaderSrc))
		if err != nil {
			panic("panzoom: failed to compile mandelbrot shader: " + err.Error())
		}
		mandelbrotShader = s
	}
	return mandelbrotShader
}
