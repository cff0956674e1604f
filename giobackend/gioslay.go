package giobackend

import (
	"fmt"
	"image"
	"os"
	"time"
	"unicode/utf8"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/dboslee/lru"
	ot "github.com/go-text/typesetting/font/opentype"
	"go.hasen.dev/generic"

	"go.hasen.dev/thermo/slay"
)

var window *app.Window

func SetupWindow(title string, width int, height int) {
	window = new(app.Window)
	window.Option(app.Title(title))
	window.Option(app.Size(unit.Dp(width), unit.Dp(height)))
}

// Invalidate asks for a new frame; safe to call from any goroutine
func Invalidate() {
	if window != nil {
		window.Invalidate()
	}
}

type Options struct {
	// take precedence over the system font directories
	FontDirs []string

	// called once when the window is closed, before the process exits
	OnClose func(err error)
}

var frameMacro op.CallOp

// Run drives frameFn from the window's event loop. It never returns: the
// process exits when the window is closed.
func Run(frameFn slay.FrameFn, opts Options) {
	if window == nil {
		SetupWindow("slay", 800, 600)
	}
	slay.InitFontSubsystem(opts.FontDirs...)

	// hard limit fps so we don't eat up cpu resources during mouse movements, resize, etc
	const fps = 60
	const syncMS = 1000 / fps
	frameTicker := time.NewTicker(time.Millisecond * syncMS)

	// force at least one frame per second
	slowTicker := time.NewTicker(time.Second)
	go func() {
		for range slowTicker.C {
			window.Invalidate()
		}
	}()

	var lastEventTime time.Time

	var tag = new(int) // just a thing that gio events can attach to
	go func() {
		for {
			switch e := window.Event().(type) {
			case app.DestroyEvent:
				if e.Err != nil {
					slay.Log.Error("window destroyed", "error", e.Err)
				}
				if opts.OnClose != nil {
					opts.OnClose(e.Err)
				}
				if e.Err != nil {
					os.Exit(1)
				}
				os.Exit(0)
			case app.FrameEvent:
				<-frameTicker.C

				var now = time.Now()
				dpi = e.Metric.PxPerDp
				ctx := app.NewContext(new(op.Ops), e)
				slay.WindowSize = slay.Vec2Mul(imgVec2(e.Size), 1/dpi)

				// to not receive events about mouse movement outside window
				clip.Rect{Max: e.Size}.Push(ctx.Ops)

				ctx.Execute(key.FocusCmd{Tag: tag})
				event.Op(ctx.Ops, tag)

				for {
					ev, ok := ctx.Event(
						pointer.Filter{
							Target: tag,
							Kinds:  pointer.Press | pointer.Release | pointer.Move | pointer.Drag,
						},
						key.Filter{
							Focus:    tag,
							Optional: key.ModSuper | key.ModAlt | key.ModCommand | key.ModShift | key.ModCtrl,
						},
						key.FocusFilter{Target: tag},
					)
					if !ok {
						break
					}
					lastEventTime = now
					handleEvent(ev)
				}

				frameData := slay.RunFrameFn(frameFn)

				if frameData.FrameHasChanges {
					frameMacro = renderSurfaces(frameData.Surfaces)
				}

				frameMacro.Add(ctx.Ops)
				e.Frame(ctx.Ops)

				slay.TotalFrameTime = time.Since(now)

				if frameData.NextFrameRequested || time.Since(lastEventTime) < time.Second {
					window.Invalidate()
				}
			}
		}
	}()
	app.Main()
}

func handleEvent(ev event.Event) {
	switch e := ev.(type) {
	case pointer.Event:
		prevMousePoint := slay.InputState.MousePoint
		slay.InputState.MousePoint = slay.Vec2Mul(f32Vec2(e.Position), 1/dpi)
		slay.InputState.MouseButton = slay.MouseButton(e.Buttons)
		slay.FrameInput.Motion = slay.Vec2Add(slay.FrameInput.Motion, slay.Vec2Sub(slay.InputState.MousePoint, prevMousePoint))
		switch e.Kind {
		case pointer.Press:
			slay.FrameInput.Mouse = slay.MouseClick
		case pointer.Release:
			slay.FrameInput.Mouse = slay.MouseRelease
		}
	case key.Event:
		slay.InputState.Modifiers = slay.Modifiers(e.Modifiers)
		keyCode := mapKeyCode(e.Name)
		if keyCode == slay.KeyCodeNone {
			return
		}
		switch e.State {
		case key.Press:
			slay.FrameInput.Key = keyCode
			generic.SliceAddUniq(&slay.InputState.DownKeys, keyCode)
		case key.Release:
			generic.SliceRemove(&slay.InputState.DownKeys, keyCode)
		}
	case key.FocusEvent:
		if !e.Focus {
			generic.ResetSlice(&slay.InputState.DownKeys)
		}
	default:
		slay.Log.Trace("unhandled event", "type", fmt.Sprintf("%T", ev))
	}
}

func imgPoint(v slay.Vec2) image.Point {
	return image.Point{
		X: int(v[0]),
		Y: int(v[1]),
	}
}

func f32Point(v slay.Vec2) f32.Point {
	return f32.Pt(v[0], v[1])
}

func f32Vec2(p f32.Point) slay.Vec2 {
	return slay.Vec2{p.X, p.Y}
}

func imgVec2(p image.Point) slay.Vec2 {
	return slay.Vec2{float32(p.X), float32(p.Y)}
}

var dpi float32 = 1

func renderSurfaces(surfaces []slay.Surface) op.CallOp {
	ops := new(op.Ops)
	macro := op.Record(ops)

	// support hidpi
	op.Affine(f32.Affine2D{}.Scale(f32.Pt(0, 0), f32.Pt(dpi, dpi))).Add(ops)

	for _, s := range surfaces {
		r := s.Rect
		grad := paint.LinearGradientOp{
			Stop1:  f32.Pt(r.Origin[0]*dpi, r.Origin[1]*dpi),
			Stop2:  f32.Pt(r.Origin[0]*dpi, (r.Origin[1]+r.Size[1])*dpi),
			Color1: slay.HSLAColor(s.Color1),
			Color2: slay.HSLAColor(s.Color2),
		}

		// css order: top-left, top-right, bottom-right, bottom-left
		rrect := clip.RRect{
			Rect: image.Rectangle{
				Min: imgPoint(r.Origin),
				Max: imgPoint(slay.Vec2Add(r.Origin, r.Size)),
			},
			NW: int(s.Corners[0]),
			NE: int(s.Corners[1]),
			SE: int(s.Corners[2]),
			SW: int(s.Corners[3]),
		}

		switch {
		case s.FontId > 0 && s.GlyphId > 0:
			face := slay.GetFace(s.FontId)
			sh := clip.Outline{
				Path: FontGlyphPathSpec(s.FontId, s.GlyphId),
			}.Op()

			// font quirks: position it relative to top left and fix direction
			var affine f32.Affine2D
			affine = affine.Scale(f32.Pt(0, 0), f32.Pt(1, -1))
			affine = affine.Offset(f32Point(s.GlyphOffset))

			// scale it to match rectangle height (width may leak outside)
			scale := r.Size[1] * face.InvUPM
			affine = affine.Scale(f32.Pt(0, 0), f32.Pt(scale, scale))
			affine = affine.Offset(f32Point(r.Origin))

			// baseline at 0.82 of the height
			affine = affine.Offset(f32.Pt(0, r.Size[1]*0.82))

			stack := op.Affine(affine).Push(ops)
			stack2 := sh.Push(ops)
			grad.Add(ops)
			paint.PaintOp{}.Add(ops)
			stack2.Pop()
			stack.Pop()

		case s.ImageId > 0:
			img := slay.LookupImage(s.ImageId)
			imgOp, ok := imageOps.Get(s.ImageId)
			if !ok {
				imgOp = paint.NewImageOp(img)
				imageOps.Set(s.ImageId, imgOp)
			}
			stack := op.Offset(imgPoint(r.Origin)).Push(ops)
			imgOp.Add(ops)
			paint.PaintOp{}.Add(ops)
			stack.Pop()

		default:
			var sh clip.Op
			if s.Stroke == 0 {
				sh = rrect.Op(ops)
			} else {
				sh = clip.Stroke{Path: rrect.Path(ops), Width: s.Stroke}.Op()
			}
			stack := sh.Push(ops)
			grad.Add(ops)
			paint.PaintOp{}.Add(ops)
			stack.Pop()
		}
	}

	return macro.Stop()
}

var imageOps = lru.New[slay.ImageId, paint.ImageOp]()

// -----------------------------------------------------------------------------
//      Text Rendering
// -----------------------------------------------------------------------------

type FontGlyphKey struct {
	FontId  slay.FontId
	GlyphId slay.GlyphId
}

var glyphPathCache = lru.New[FontGlyphKey, clip.PathSpec]()

func FontGlyphPathSpec(fontId slay.FontId, glyphId slay.GlyphId) clip.PathSpec {
	key := FontGlyphKey{FontId: fontId, GlyphId: glyphId}
	if cached, ok := glyphPathCache.Get(key); ok {
		return cached
	}

	outline := slay.GlyphOutline(fontId, glyphId)
	ops := new(op.Ops)

	var path clip.Path
	path.Begin(ops)

	for _, segment := range outline.Segments {
		switch segment.Op {
		case ot.SegmentOpMoveTo:
			path.MoveTo(f32.Point(segment.Args[0]))
		case ot.SegmentOpLineTo:
			path.LineTo(f32.Point(segment.Args[0]))
		case ot.SegmentOpQuadTo:
			path.QuadTo(f32.Point(segment.Args[0]), f32.Point(segment.Args[1]))
		case ot.SegmentOpCubeTo:
			path.CubeTo(f32.Point(segment.Args[0]), f32.Point(segment.Args[1]), f32.Point(segment.Args[2]))
		}
	}

	pathSpec := path.End()

	// don't cache the empty outline of a face that failed to load
	if len(outline.Segments) > 0 {
		glyphPathCache.Set(key, pathSpec)
	}

	return pathSpec
}

func mapKeyCode(name key.Name) slay.KeyCode {
	switch name {
	case key.NameLeftArrow:
		return slay.KeyLeft
	case key.NameRightArrow:
		return slay.KeyRight
	case key.NameUpArrow:
		return slay.KeyUp
	case key.NameDownArrow:
		return slay.KeyDown
	case key.NameReturn, key.NameEnter:
		return slay.KeyEnter
	case key.NameEscape:
		return slay.KeyEscape
	case key.NameHome:
		return slay.KeyHome
	case key.NameEnd:
		return slay.KeyEnd
	case key.NameTab:
		return slay.KeyTab
	case key.NameSpace:
		return slay.KeySpace
	}
	if utf8.RuneCountInString(string(name)) == 1 {
		r, _ := utf8.DecodeRuneInString(string(name))
		if r < 128 {
			return slay.KeyCode(r)
		}
	}
	return slay.KeyCodeNone
}
