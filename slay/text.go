package slay

const DefaultTextSize = 14

type TextAttrs struct {
	Size     f32
	Color    Vec4
	Families []string
	Weight   Weight
	Style    Style
}

func DefaultTextAttrs() TextAttrs {
	return TextAttrs{
		Size:   DefaultTextSize,
		Color:  Vec4{0, 0, 10, 1},
		Weight: WeightNormal,
		Style:  StyleNormal,
	}
}

// line height as a factor of the text size
const lineSpacing = 1.25

// advance used for runes no font can display
const missingGlyphAdvance = 0.5

type glyphKey struct {
	ch     rune
	family string
	aspect FontAspect
}

type glyphInfo struct {
	fontId  FontId
	glyphId GlyphId
	advance f32 // in em units
}

var glyphsCache = make(map[glyphKey]glyphInfo)

func resolveGlyph(ch rune, attrs TextAttrs) glyphInfo {
	var aspect = FontAspect{Style: attrs.Style, Weight: attrs.Weight, Stretch: StretchNormal}
	var family string
	if len(attrs.Families) > 0 {
		family = attrs.Families[0]
	}
	var key = glyphKey{ch: ch, family: family, aspect: aspect}
	if info, ok := glyphsCache[key]; ok {
		return info
	}

	var info glyphInfo
	for _, f := range attrs.Families {
		fid := LookupFace(FaceLookupKey{f, aspect})
		if gid := LookupGlyph(fid, ch); gid != 0 {
			info.fontId, info.glyphId = fid, gid
			break
		}
	}
	if info.glyphId == 0 {
		info.fontId, info.glyphId = FallbackFontFor(ch, aspect)
	}

	if info.glyphId != 0 {
		info.advance = XAdvance(info.fontId, info.glyphId) * ScaleFactor(info.fontId)
	} else {
		info.advance = missingGlyphAdvance
	}

	// faces only get parsed lazily, so don't cache misses before fonts are loaded
	if len(faces) > 1 {
		glyphsCache[key] = info
	}
	return info
}

// Text lays out a single line, one container per glyph, with the text
// color as the glyph's fill.
func Text(text string, attrs TextAttrs) {
	if attrs.Size == 0 {
		attrs.Size = DefaultTextSize
	}
	var pad = attrs.Size * (lineSpacing - 1) / 2
	Layout(Attrs{Row: true, Padding: PaddingVH(pad, 0), ClickThrough: true}, func() {
		for _, ch := range text {
			info := resolveGlyph(ch, attrs)
			size := Vec2{info.advance * attrs.Size, attrs.Size}
			Layout(Attrs{MinSize: size, MaxSize: size, Background: attrs.Color}, func() {
				current.fontId = info.fontId
				current.glyphId = info.glyphId
			})
		}
	})
}

// TextWidth measures text the way Text would lay it out
func TextWidth(text string, attrs TextAttrs) f32 {
	if attrs.Size == 0 {
		attrs.Size = DefaultTextSize
	}
	var w f32
	for _, ch := range text {
		w += resolveGlyph(ch, attrs).advance * attrs.Size
	}
	return w
}
