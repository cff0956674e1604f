package slay

import (
	"time"

	"github.com/hashicorp/go-hclog"
	"go.hasen.dev/generic"
	g "go.hasen.dev/generic"
)

type FrameFn func()

// for the backend
var requested = false

func RequestNextFrame() {
	requested = true
}

// Log is used by the core and the backends; the application replaces it
var Log hclog.Logger = hclog.NewNullLogger()

func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	Log = l
}

type MouseButton uint8

// mirrors the values in gioui
const (
	MousePrimary MouseButton = iota
	MouseSecondary
	MouseTertiary
)

type MouseAction uint8

const (
	MouseClick MouseAction = 1 + iota
	MouseRelease
)

type Modifiers uint32

// mirrors the values in gioui
const (
	ModCtrl Modifiers = 1 << iota
	ModCmd
	ModShift
	ModAlt
	ModSuper
)

const ModNone Modifiers = 0

// persistent input state
var InputState struct {
	MousePoint  Vec2
	MouseButton MouseButton

	DownKeys []KeyCode

	Modifiers Modifiers
}

// transient (frame level) input state
var FrameInput struct {
	Mouse  MouseAction
	Motion Vec2 // mouse movement

	Key KeyCode
}

// to be set by backend
var WindowSize Vec2

var FrameNumber int64

var hoverList []any

// to be filled by the backend
var TotalFrameTime time.Duration

// to be filled here
var LayoutTime time.Duration

type FrameOutputData struct {
	Surfaces []Surface

	NextFrameRequested bool
	FrameHasChanges    bool
}

// RunFrameFn is meant to be called by the app & rendering backend
func RunFrameFn(frameFn FrameFn) FrameOutputData {
	frameStart := time.Now()
	FrameNumber++

	// detect hovers based on last frame artifacts; topmost first
	g.ResetSlice(&hoverList)
	for i := len(hoverables) - 1; i >= 0; i-- {
		hoverable := hoverables[i]
		if RectContainsPoint(hoverable.Rect, InputState.MousePoint) {
			for _, id := range hoverable.chain {
				g.Append(&hoverList, id)
			}
			break
		}
	}

	g.ResetSlice(&surfaces)
	requested = false

	type root_type int

	root := new(Container)
	current = root
	current.Id = root_type(0)
	current.scope = scopeIdFrom(current.Id)
	current.MinSize = WindowSize
	current.MaxSize = WindowSize

	frameFn()

	resolveSizeFromInside(root)
	performLayout(root)

	generic.Reset(&FrameInput)

	var output FrameOutputData
	output.Surfaces = surfaces
	var newSurfacesHash = computeSurfacesHash(surfaces)
	if surfaceHash != newSurfacesHash {
		output.FrameHasChanges = true
	}
	output.NextFrameRequested = requested || output.FrameHasChanges
	surfaceHash = newSurfacesHash

	renderData = renderDataNext
	renderDataNext = nil
	generic.InitMap(&renderDataNext)

	// unused hooks are removed in the subsequent frame
	hooksMap = hooksMapNext
	hooksMapNext = nil
	generic.InitMap(&hooksMapNext)

	LayoutTime = time.Since(frameStart)

	return output
}

// -----------------------------------------------------------------------------
//      Surfaces
// -----------------------------------------------------------------------------
// A surface is a rectangle with rounded corners and a vertical gradient fill,
// a stroke, a glyph, or a pre-rendered image (glows). Everything on screen is
// a list of surfaces painted in order.

type f32 = float32

type Vec2 = [2]f32
type Vec4 = [4]f32

func N4(v f32) Vec4 {
	return [4]f32{v, v, v, v}
}

type Rect struct {
	Origin Vec2
	Size   Vec2
}

func RectContainsPoint(r Rect, p Vec2) bool {
	tl := r.Origin                  // top left
	br := Vec2Add(r.Origin, r.Size) // bottom right
	return p[0] >= tl[0] && p[0] < br[0] && p[1] >= tl[1] && p[1] < br[1]
}

type Surface struct {
	Rect    Rect
	Color1  Vec4
	Color2  Vec4
	Corners Vec4 // corner radius

	Stroke  float32 // for borders!
	ImageId ImageId

	FontId      FontId
	GlyphId     GlyphId
	GlyphOffset Vec2
}

func Vec2Add(v1 Vec2, v2 Vec2) Vec2 {
	return Vec2{
		v1[0] + v2[0],
		v1[1] + v2[1],
	}
}

func Vec2Sub(v1 Vec2, v2 Vec2) Vec2 {
	return Vec2{
		v1[0] - v2[0],
		v1[1] - v2[1],
	}
}

func Vec2Mul(v1 Vec2, f float32) Vec2 {
	return Vec2{
		v1[0] * f,
		v1[1] * f,
	}
}

func Vec4Add(v1 Vec4, v2 Vec4) Vec4 {
	return Vec4{
		v1[0] + v2[0],
		v1[1] + v2[1],
		v1[2] + v2[2],
		v1[3] + v2[3],
	}
}

var surfaces = make([]Surface, 0, 1024)

func PushSurface(s Surface) {
	g.Append(&surfaces, s)
}

var surfaceHash uint64

// -----------------------------------------------------------------------------
//      Containers
// -----------------------------------------------------------------------------
// Containers are the units of layout: a single flex line, row or column,
// with padding, gaps, alignment and growth.

// Note: when Vec4 is used as color, the convention is HLSA with
// H: 0-360
// S: 0-100
// L: 0-100
// A: 0-1

const (
	HUE        = 0
	SATURATION = 1
	LIGHT      = 2
	ALPHA      = 3
)

type Border struct {
	BorderColor Vec4
	BorderWidth f32
}

type Alignment int

const (
	AlignUnset Alignment = iota

	AlignStart
	AlignMiddle
	AlignEnd
)

type Attrs struct {

	// padding order is: top right bottom left
	Padding Vec4

	Gap float32

	MainAlign  Alignment
	CrossAlign Alignment

	// properties for self with respect to parent!
	Grow      float32
	SelfAlign Alignment // override the parent's cross-align setting

	MinSize Vec2
	MaxSize Vec2

	Float Vec2

	Background Vec4
	Gradient   Vec4 // diff applied to background

	Border

	Shadow

	Corners Vec4

	Row          bool
	ExpandAcross bool
	Floats       bool

	ClickThrough bool
}

// Shadow is a blurred copy of the container's rounded rect painted behind it.
// Spread grows the shape before blurring; a zero Offset makes it a glow.
type Shadow struct {
	Offset Vec2
	Blur   f32
	Spread f32
	Color  Vec4
}

const PAD_TOP = 0
const PAD_RIGHT = 1
const PAD_BOTTOM = 2
const PAD_LEFT = 3

func PaddingVH(v float32, h float32) Vec4 {
	return Vec4{v, h, v, h}
}

func PadSize(padding Vec4) Vec2 {
	var size Vec2
	size[0] = padding[PAD_LEFT] + padding[PAD_RIGHT]
	size[1] = padding[PAD_TOP] + padding[PAD_BOTTOM]
	return size
}

type Container struct {
	Id any
	Attrs

	scope scopeId

	// text!
	fontId      FontId
	glyphId     GlyphId
	glyphOffset Vec2

	resolvedSize   Vec2
	relativeOrigin Vec2
	resolvedOrigin Vec2

	contentSize Vec2

	parent     *Container
	children   []Container
	nextAutoId int
}

type RenderData struct {
	Attrs
	parentId       any
	ResolvedSize   Vec2
	ResolvedOrigin Vec2
}

var renderData = make(map[any]RenderData)
var renderDataNext = make(map[any]RenderData)

// builder stuff
var current *Container

func Layout(attrs Attrs, builder func()) {
	LayoutId(nil, attrs, builder)
}

// open/close a container
func LayoutId(id any, attrs Attrs, builder func()) {
	// no id: derive one from the parent scope and the child position
	var newScope scopeId
	if id == nil {
		newScope = addChildScope(current.scope, current.nextAutoId)
		id = newScope
		current.nextAutoId++
	} else {
		switch sid := id.(type) {
		case scopeId:
			newScope = sid
		default:
			newScope = scopeIdFrom(id)
		}
	}

	// note: current is still the parent here
	if current.ClickThrough {
		attrs.ClickThrough = true
	}

	var c = generic.AllocAppend(&current.children)
	c.Id = id
	c.scope = newScope
	c.Attrs = attrs
	c.parent = current
	current = c

	if builder != nil {
		builder()
	}

	resolveSizeFromInside(c)

	current = c.parent
}

func Element(attrs Attrs) {
	LayoutId(nil, attrs, nil)
}

func Nil() {
	LayoutId(nil, Attrs{}, nil)
}

func ModAttrs(fns ...func(*Attrs)) {
	if len(current.children) > 0 {
		panic("ATTRS SHOULD BE CHANGED **BEFORE** ADD CHILD ELEMENTS!")
	}
	for _, fn := range fns {
		fn(&current.Attrs)
	}
}

// PressAction reports a completed click: pressed and released over the
// current container.
// IdReleased reports whether the container with this id, pressed on an earlier
// frame, is released over itself this frame. It reads last frame's hover state
// and changes nothing, so it can be asked before the container is declared.
func IdReleased(id any) bool {
	return active != nil && active == id && FrameInput.Mouse == MouseRelease && IdIsHovered(id)
}

func PressAction() bool {
	var action bool
	if IsHovered() {
		if FrameInput.Mouse == MouseClick {
			SetActive()
		}
	}
	if IsActive() {
		if FrameInput.Mouse == MouseRelease {
			UnsetActive()
			action = IsHovered() // if released while over the target!
		}
	}
	if action {
		RequestNextFrame()
	}
	return action
}

func MainCrossAxes(row bool) (int, int) {
	if row {
		return 0, 1
	} else {
		return 1, 0
	}
}

func performLayout(root *Container) {
	resolveSizesFromOutside(root)
	resolveOrigins(root)
	beginRenderToSurfaces(root)
}

// called during the build up of the layout, children first
func resolveSizeFromInside(container *Container) {
	attrs := container.Attrs
	mainAxis, crossAxis := MainCrossAxes(container.Row)

	var contentSize Vec2
	var count int
	for _, child := range container.children {
		if child.Floats {
			continue
		}
		if count > 0 {
			contentSize[mainAxis] += container.Gap
		}
		contentSize[mainAxis] += child.resolvedSize[mainAxis]
		contentSize[crossAxis] = max(contentSize[crossAxis], child.resolvedSize[crossAxis])
		count++
	}
	container.contentSize = contentSize

	size := Vec2Add(contentSize, PadSize(attrs.Padding))

	size[0] = max(size[0], attrs.MinSize[0])
	size[1] = max(size[1], attrs.MinSize[1])

	// max size set to zero does not count!
	if attrs.MaxSize[0] > 0 {
		size[0] = min(size[0], attrs.MaxSize[0])
	}
	if attrs.MaxSize[1] > 0 {
		size[1] = min(size[1], attrs.MaxSize[1])
	}

	container.resolvedSize = size
}

// expand on the cross axis and the main axis (flex-grow), then recurse
func resolveSizesFromOutside(container *Container) {
	mainAxis, crossAxis := MainCrossAxes(container.Row)

	availableSize := Vec2Sub(container.resolvedSize, PadSize(container.Padding))
	roomForGrowth := availableSize[mainAxis] - container.contentSize[mainAxis]

	var growthRequest float32
	for i := range container.children {
		child := &container.children[i]
		if child.Floats {
			continue
		}
		growthRequest += child.Grow
		if child.ExpandAcross {
			child.resolvedSize[crossAxis] = availableSize[crossAxis]
		}
	}

	if roomForGrowth > 0 && growthRequest > 0 {
		growthFactor := roomForGrowth / growthRequest
		for i := range container.children {
			child := &container.children[i]
			if child.Floats {
				continue
			}
			growthAmount := child.Grow * growthFactor
			child.resolvedSize[mainAxis] += growthAmount
			// keep alignment in sync with the grown content
			container.contentSize[mainAxis] += growthAmount
		}
	}

	for i := range container.children {
		resolveSizesFromOutside(&container.children[i])
	}
}

func resolveOrigins(container *Container) {
	mainAxis, crossAxis := MainCrossAxes(container.Row)

	availableSize := Vec2Sub(container.resolvedSize, PadSize(container.Padding))

	var next Vec2
	next[0] = container.Padding[PAD_LEFT]
	next[1] = container.Padding[PAD_TOP]

	switch container.MainAlign {
	case AlignMiddle:
		next[mainAxis] += (availableSize[mainAxis] - container.contentSize[mainAxis]) / 2
	case AlignEnd:
		next[mainAxis] += availableSize[mainAxis] - container.contentSize[mainAxis]
	}

	for i := range container.children {
		child := &container.children[i]
		if child.Floats {
			child.relativeOrigin = child.Float
		} else {
			child.relativeOrigin = next
			var crossAlign = container.CrossAlign
			if child.SelfAlign != AlignUnset {
				crossAlign = child.SelfAlign
			}
			var room = availableSize[crossAxis] - child.resolvedSize[crossAxis]
			switch crossAlign {
			case AlignMiddle:
				child.relativeOrigin[crossAxis] += room / 2
			case AlignEnd:
				child.relativeOrigin[crossAxis] += room
			}
			next[mainAxis] += child.resolvedSize[mainAxis] + container.Gap
		}
		child.resolvedOrigin = Vec2Add(container.resolvedOrigin, child.relativeOrigin)
		resolveOrigins(child)
	}

	var parentId any
	if container.parent != nil {
		parentId = container.parent.Id
	}
	renderDataNext[container.Id] = RenderData{
		parentId:       parentId,
		Attrs:          container.Attrs,
		ResolvedSize:   container.resolvedSize,
		ResolvedOrigin: container.resolvedOrigin,
	}
}

type HoverableArtifacts struct {
	Rect Rect
	// the container id followed by the ids of its hoverable ancestors
	chain []any
}

var hoverables []HoverableArtifacts

var active any // active means it's being engaged with the mouse

var SurfaceCount int

func beginRenderToSurfaces(root *Container) {
	g.ResetSlice(&surfaces)
	g.ResetSlice(&hoverables)

	_renderToSurfaces(root)
	SurfaceCount = len(surfaces)
}

// should only be called from beginRenderToSurfaces
func _renderToSurfaces(container *Container) {
	resolvedRect := Rect{
		Origin: container.resolvedOrigin,
		Size:   container.resolvedSize,
	}

	if container.Shadow.Color[ALPHA] > 0 {
		sh := container.Shadow
		// the glow image has room for the spread and the blur around the rect
		var margin = sh.Spread + sh.Blur*2
		var shRect = resolvedRect
		shRect.Origin = Vec2Add(shRect.Origin, sh.Offset)
		shRect.Origin = Vec2Sub(shRect.Origin, Vec2{margin, margin})
		shRect.Size = Vec2Add(shRect.Size, Vec2{margin * 2, margin * 2})

		PushSurface(Surface{
			Rect:    shRect,
			ImageId: _IMGlow(resolvedRect.Size, container.Corners, sh.Blur, sh.Spread, sh.Color),
		})
	}

	PushSurface(Surface{
		Rect:    resolvedRect,
		Color1:  container.Background,
		Color2:  Vec4Add(container.Background, container.Gradient),
		Corners: container.Corners,

		FontId:      container.fontId,
		GlyphId:     container.glyphId,
		GlyphOffset: container.glyphOffset,
	})

	if !container.ClickThrough {
		var chain []any
		for c := container; c != nil; c = c.parent {
			if !c.ClickThrough {
				chain = append(chain, c.Id)
			}
		}
		g.Append(&hoverables, HoverableArtifacts{
			Rect:  resolvedRect,
			chain: chain,
		})
	}

	for i := range container.children {
		_renderToSurfaces(&container.children[i])
	}

	if container.BorderWidth > 0 {
		PushSurface(Surface{
			Rect:    resolvedRect,
			Color1:  container.BorderColor,
			Color2:  container.BorderColor,
			Corners: container.Corners,
			Stroke:  container.BorderWidth,
		})
	}
}

func IdIsHovered(id any) bool {
	for _, h := range hoverList {
		if h == id {
			return true
		}
	}
	return false
}

func IsHovered() bool {
	return IdIsHovered(current.Id)
}

func SetActive() {
	active = current.Id
}

func UnsetActive() {
	active = nil
}

func IsActive() bool {
	return active != nil && active == current.Id
}

func CurrentId() any {
	return current.Id
}

// from the previous frame
func GetResolvedSize() Vec2 {
	return renderData[current.Id].ResolvedSize
}

func GetResolvedRectOf(target any) Rect {
	var rd = renderData[target]
	return Rect{
		Origin: rd.ResolvedOrigin,
		Size:   rd.ResolvedSize,
	}
}
