package slay

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/fontscan"
	"github.com/hashicorp/go-hclog"
	"go.hasen.dev/generic"
)

var Monospace = []string{"Noto Sans Mono", "Menlo", "Terminus", "Consolas", "Lucida Console"}

func defaultFontFamilies() []string {
	return []string{
		"Noto Sans", "Noto Sans Mono",
		"Arial", "Helvetica", "DejaVu Sans",
		"Menlo", "Consolas",
		// the extreme labels carry an emoji
		"Noto Emoji", "Noto Color Emoji", "Apple Color Emoji", "Segoe UI Emoji",
	}
}

// must be called by backend before starting event loop; extra directories
// are scanned after the system ones
func InitFontSubsystem(extraDirs ...string) {
	// This imposes a small startup penalty on the order of 200ms
	useSystemFontDirectories()
	UseFontsDirectories(extraDirs...)
}

func FallbackFontFor(ch rune, aspect FontAspect) (FontId, GlyphId) {
	for _, family := range defaultFontFamilies() {
		fid := LookupFace(FaceLookupKey{family, aspect})
		gid := LookupGlyph(fid, ch)
		if gid != 0 {
			return fid, gid
		}
	}

	// no match with given aspect, use default aspect!
	if aspect == DefaultFontAspect() {
		return 0, 0
	}
	return FallbackFontFor(ch, DefaultFontAspect())
}

type Font = font.Face

type Style = font.Style
type Weight = font.Weight

const StyleNormal = font.StyleNormal
const StyleItalic = font.StyleItalic

const WeightNormal = font.WeightNormal
const WeightMedium = font.WeightMedium
const WeightSemibold = font.WeightSemibold
const WeightBold = font.WeightBold

const StretchNormal = font.StretchNormal

type FontAspect = font.Aspect

func DefaultFontAspect() FontAspect {
	return FontAspect{Style: StyleNormal, Weight: WeightNormal, Stretch: StretchNormal}
}

type FontId int32
type GlyphId = opentype.GID

type FaceLookupKey struct {
	Family string
	Aspect FontAspect
}

var faces = make([]FontFace, 1) // array with one element so that element 0 is nil-like
var faceMap = make(map[FaceLookupKey]FontId)

func GetFace(f FontId) FontFace {
	var idx = int(f)
	if idx < 0 || idx >= len(faces) {
		idx = 0
	}
	return faces[idx]
}

// GetParsedFont parses the file behind f on first use. Every face found in
// the file is filled in at the same time.
func GetParsedFont(f FontId) *Font {
	if f == 0 {
		return nil
	}
	face := GetFace(f)
	if face.parsed != nil || face.parseError != nil {
		return face.parsed
	}

	func() {
		defer func() {
			if err := recover(); err != nil {
				Log.Warn("font parser panicked", "file", face.Filepath, "error", err)
			}
		}()
		_faceIdLock.Lock()
		defer _faceIdLock.Unlock()

		osFile, err := os.Open(face.Filepath)
		if err != nil {
			// removed after the directory scan
			Log.Warn("font file not found", "family", face.Family, "file", face.Filepath)
			face.parseError = err
			faces[face.FontId] = face
			return
		}
		defer osFile.Close()

		parsed, err := font.ParseTTC(osFile)
		if err != nil {
			Log.Debug("font file parse error", "file", face.Filepath, "error", err)
			face.parseError = err
			faces[face.FontId] = face
			return
		}

		for _, ttf := range parsed {
			fid := faceMap[lowerKey(FaceLookupKey(ttf.Describe()))]
			if fid == 0 {
				continue
			}
			other := faces[fid]
			fexts, _ := ttf.FontHExtents()
			other.InvUPM = 1 / float32(ttf.Upem())
			other.Ascender = fexts.Ascender
			other.Descender = fexts.Descender
			other.parsed = ttf
			faces[fid] = other
		}
	}()
	return GetFace(f).parsed
}

func lowerKey(key FaceLookupKey) FaceLookupKey {
	key.Family = strings.ToLower(key.Family)
	return key
}

func LookupFace(key FaceLookupKey) FontId {
	return faceMap[lowerKey(key)]
}

func LookupGlyph(fontId FontId, ch rune) GlyphId {
	ttf := GetParsedFont(fontId)
	if ttf == nil {
		return 0
	}
	gid, _ := ttf.NominalGlyph(ch)
	return gid
}

func XAdvance(fontId FontId, glyphId GlyphId) float32 {
	ttf := GetParsedFont(fontId)
	if ttf == nil {
		return 0
	}
	return ttf.HorizontalAdvance(glyphId)
}

func GlyphOutline(fontId FontId, glyphId GlyphId) font.GlyphOutline {
	var empty font.GlyphOutline

	ttf := GetParsedFont(fontId)
	if ttf == nil {
		return empty
	}

	switch v := ttf.GlyphData(glyphId).(type) {
	case font.GlyphOutline:
		return v
	case font.GlyphSVG:
		return v.Outline
	}
	return empty
}

// FontFace holds some generic traits/info about the font face
type FontFace struct {
	FontId FontId

	FaceLookupKey

	Filepath string

	parseError error

	// only available after parsing the head table

	// Inverted "Units Per eM"
	InvUPM float32

	Ascender  float32
	Descender float32

	// should not be read directly; call GetParsedFont instead
	parsed *Font
}

func ScaleFactor(fontId FontId) float32 {
	return GetFace(fontId).InvUPM
}

var _faceIdLock sync.Mutex

func _nextFace() *FontFace {
	_faceIdLock.Lock()
	defer _faceIdLock.Unlock()

	id := FontId(len(faces))
	face := generic.AllocAppend(&faces)
	face.FontId = id
	return face
}

var _familiesLock sync.Mutex

func _mapFace(key FaceLookupKey, fid FontId) {
	_familiesLock.Lock()
	defer _familiesLock.Unlock()

	faceMap[lowerKey(key)] = fid
}

// UseFontFile registers the faces in fpath; glyph data is parsed on demand
func UseFontFile(fpath string) {
	ffile, err := os.Open(fpath)
	if err != nil {
		Log.Trace("error reading font", "file", fpath, "error", err)
		return
	}
	defer ffile.Close()

	loaders, err := opentype.NewLoaders(ffile)
	if err != nil {
		Log.Trace("error scanning font", "file", fpath, "error", err)
		return
	}

	for idx := range loaders {
		desc, _ := font.Describe(loaders[idx], nil)

		face := _nextFace()
		face.Filepath = fpath
		face.FaceLookupKey = FaceLookupKey(desc)

		Log.Trace("registered face", "file", filepath.Base(fpath), "family", desc.Family)
		_mapFace(face.FaceLookupKey, face.FontId)
	}
}

var extensions = []string{".ttf", ".otf", ".ttc", ".otc"}

func UseFontsDirectories(dirpaths ...string) {
	for _, dirpath := range dirpaths {
		filepath.WalkDir(dirpath, func(fpath string, entry fs.DirEntry, err error) error {
			if err != nil {
				Log.Trace("font directory walk", "path", fpath, "error", err)
				return err
			}
			if entry.IsDir() {
				return nil // aka continue
			}
			for _, ext := range extensions {
				if strings.HasSuffix(strings.ToLower(fpath), ext) {
					UseFontFile(fpath)
					break
				}
			}
			return nil
		})
	}
}

func useSystemFontDirectories() {
	start := time.Now()
	var logger = Log.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})
	dirs, _ := fontscan.DefaultFontDirectories(logger)
	UseFontsDirectories(dirs...)
	if dur := time.Since(start); dur > time.Millisecond*500 {
		Log.Info("system fonts scan", "duration", dur, "faces", len(faces)-1)
	}
}
