package slay

import (
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"golang.org/x/image/vector"
)

type ImageId uint32

var imageIds = make([]*image.RGBA, 1, 64) // first image is the zero image!

// this function is mostly for the backend
func LookupImage(id ImageId) *image.RGBA {
	return imageIds[int(id)]
}

type glowKey struct {
	w, h    int
	corners [4]uint8
	blur    uint16
	spread  uint16
	r, g, b uint8
	a       uint8
}

var _glowMap = make(map[glowKey]ImageId)

// returns an image handle! images are cached by shape and color
func _IMGlow(size Vec2, corners Vec4, radius float32, spread float32, clr Vec4) ImageId {
	var c = HSLAColor(clr)
	var params = glowKey{
		w:       int(size[0]),
		h:       int(size[1]),
		corners: [4]uint8{uint8(corners[0]), uint8(corners[1]), uint8(corners[2]), uint8(corners[3])},
		blur:    uint16(radius * 10),
		spread:  uint16(spread * 10),
		r:       c.R,
		g:       c.G,
		b:       c.B,
		a:       c.A,
	}
	imageId, ok := _glowMap[params]
	if ok {
		return imageId
	}
	img := _GenerateGlow(size, corners, radius, spread, clr)
	imageId = ImageId(len(imageIds))
	imageIds = append(imageIds, img)
	_glowMap[params] = imageId
	Log.Trace("generated glow", "id", imageId, "size", size, "blur", radius, "spread", spread)
	return imageId
}

// _GenerateGlow paints the rounded rect grown by spread, then blurs it. The
// image is larger than the rect by spread+2*radius on every side.
func _GenerateGlow(size Vec2, corners Vec4, radius float32, spread float32, clr Vec4) *image.RGBA {
	var margin = spread + radius*2
	width := size[0] + margin*2
	height := size[1] + margin*2

	var rect = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))

	var p = vector.NewRasterizer(int(width), int(height))
	p.DrawOp = draw.Over

	// based on gio/op/clip/shapes.go
	// based on https://pomax.github.io/bezierinfo/#circles_cubic
	const q = 4 * (math.Sqrt2 - 1) / 3
	const iq = 1 - q

	// corners order: top-left | top-right | bottom-right | bottom-left
	var cr Vec4
	for i := range cr {
		cr[i] = corners[i] + spread
	}
	nw, ne, se, sw := cr[0], cr[1], cr[2], cr[3]

	w := radius * 2
	n := radius * 2
	e := w + size[0] + spread*2
	s := n + size[1] + spread*2

	p.MoveTo(w+nw, n)
	p.LineTo(e-ne, n) // N
	p.CubeTo(         // NE
		e-ne*iq, n,
		e, n+ne*iq,
		e, n+ne)
	p.LineTo(e, s-se) // E
	p.CubeTo(         // SE
		e, s-se*iq,
		e-se*iq, s,
		e-se, s)
	p.LineTo(w+sw, s) // S
	p.CubeTo(         // SW
		w+sw*iq, s,
		w, s-sw*iq,
		w, s-sw)
	p.LineTo(w, n+nw) // W
	p.CubeTo(         // NW
		w, n+nw*iq,
		w+nw*iq, n,
		w+nw, n)
	p.ClosePath()

	src := image.NewUniform(HSLAColor(clr))
	p.Draw(rect, rect.Bounds(), src, image.Point{})

	if radius <= 0 {
		return rect
	}
	return blur.Gaussian(rect, bildRadius(radius))
}

// bildRadius converts a css blur radius (twice the gaussian sigma) to the
// radius bild expects: its kernel is exp(-x²/4r), so sigma² = 2r.
func bildRadius(cssBlur float32) float64 {
	var sigma = float64(cssBlur) / 2
	return max(1, math.Round(sigma*sigma/2))
}
