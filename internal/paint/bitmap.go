package paint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"
	"strings"
	"sync"
	"unicode"

	"fyne.io/fyne/v2/theme"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce sync.Once
	fontList []*opentype.Font
	fontErr  error
)

// loadFonts returns the text font followed by the emoji fallback. The
// fallback is missing when the toolkit was built without emoji.
func loadFonts() ([]*opentype.Font, error) {
	fontOnce.Do(func() {
		base, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse sticker font: %w", err)
			return
		}
		fontList = append(fontList, base)
		res := theme.DefaultEmojiFont()
		if res == nil {
			return
		}
		emoji, err := opentype.Parse(res.Content())
		if err != nil {
			log.Printf("[PAINT] Emoji font unusable: %v", err)
			return
		}
		fontList = append(fontList, emoji)
	})
	return fontList, fontErr
}

type faceKey struct {
	font int
	size float64
}

type textRun struct {
	face font.Face
	text string
}

type attrs struct {
	lineWidth float64
	lineCap   LineCap
	stroke    color.Color
	fill      color.Color
	alpha     float64
	fontSize  float64
}

func defaultAttrs() attrs {
	return attrs{
		lineWidth: 1,
		lineCap:   CapButt,
		stroke:    color.Black,
		fill:      color.Black,
		alpha:     1,
		fontSize:  10,
	}
}

type point struct{ x, y float64 }

// Bitmap is a Surface that rasterises onto an RGBA image. All coordinates,
// widths and font sizes are multiplied by Scale, so the same commands can
// be replayed onto a larger offscreen image for export.
type Bitmap struct {
	Background color.Color

	img   *image.RGBA
	scale float64

	cur   attrs
	stack []attrs

	path     [][]point
	scanner  *rasterx.ScannerGV
	dasher   *rasterx.Dasher
	filler   *rasterx.Filler
	fonts    []*opentype.Font
	faces    map[faceKey]font.Face
	glyphBuf sfnt.Buffer
	fontFail bool
}

var _ Surface = (*Bitmap)(nil)

// NewBitmap creates a width×height bitmap (in canvas units) rendered at the
// given scale. The backing image is ceil(width*scale)×ceil(height*scale).
func NewBitmap(width, height int, scale float64) *Bitmap {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())

	b := &Bitmap{
		Background: color.White,
		img:        img,
		scale:      scale,
		cur:        defaultAttrs(),
		scanner:    scanner,
		dasher:     rasterx.NewDasher(w, h, scanner),
		filler:     rasterx.NewFiller(w, h, scanner),
		faces:      make(map[faceKey]font.Face),
	}
	fonts, err := loadFonts()
	if err != nil {
		b.fontFail = true
	} else {
		b.fonts = fonts
	}
	return b
}

// Image returns the backing image. It is updated in place by later calls.
func (b *Bitmap) Image() *image.RGBA {
	return b.img
}

func (b *Bitmap) Scale() float64 {
	return b.scale
}

func (b *Bitmap) Clear() {
	bg := b.Background
	if bg == nil {
		bg = color.Transparent
	}
	draw.Draw(b.img, b.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (b *Bitmap) Save() {
	b.stack = append(b.stack, b.cur)
}

func (b *Bitmap) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.cur = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Bitmap) SetLineWidth(w float64) {
	if w > 0 {
		b.cur.lineWidth = w
	}
}

func (b *Bitmap) SetLineCap(c LineCap)         { b.cur.lineCap = c }
func (b *Bitmap) SetStrokeColor(c color.Color) { b.cur.stroke = c }
func (b *Bitmap) SetFillColor(c color.Color)   { b.cur.fill = c }

func (b *Bitmap) SetGlobalAlpha(a float64) {
	b.cur.alpha = max(0, min(1, a))
}

func (b *Bitmap) SetFont(size float64) {
	if size > 0 {
		b.cur.fontSize = size
	}
}

func (b *Bitmap) BeginPath() {
	b.path = b.path[:0]
}

func (b *Bitmap) MoveTo(x, y float64) {
	b.path = append(b.path, []point{{x * b.scale, y * b.scale}})
}

func (b *Bitmap) LineTo(x, y float64) {
	if len(b.path) == 0 {
		b.MoveTo(x, y)
		return
	}
	last := len(b.path) - 1
	b.path[last] = append(b.path[last], point{x * b.scale, y * b.scale})
}

func (b *Bitmap) Stroke() {
	width := b.cur.lineWidth * b.scale
	clr := b.withAlpha(b.cur.stroke)
	for _, sub := range b.path {
		if isDegenerate(sub) {
			// rasterx does not reliably cap sub-pixel segments, so the
			// cap is painted directly.
			b.fillCap(sub[0], width, clr)
			continue
		}
		b.dasher.Clear()
		capFn := capFunc(b.cur.lineCap)
		b.dasher.SetStroke(fixed.Int26_6(width*64), 4<<6, capFn, capFn, rasterx.RoundGap, rasterx.Round, nil, 0)
		b.dasher.SetColor(clr)
		b.dasher.Start(rasterx.ToFixedP(sub[0].x, sub[0].y))
		for _, p := range sub[1:] {
			b.dasher.Line(rasterx.ToFixedP(p.x, p.y))
		}
		b.dasher.Stop(false)
		b.dasher.Draw()
		b.dasher.Clear()
	}
}

func (b *Bitmap) StrokeCircle(x, y, r float64) {
	if r <= 0 {
		return
	}
	s := b.scale
	b.dasher.Clear()
	b.dasher.SetStroke(fixed.Int26_6(b.cur.lineWidth*s*64), 4<<6, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	b.dasher.SetColor(b.withAlpha(b.cur.stroke))
	rasterx.AddCircle(x*s, y*s, r*s, b.dasher)
	b.dasher.Draw()
	b.dasher.Clear()
}

// FillText draws text centred on (x, y). Runes the text font lacks are
// drawn from the emoji font.
func (b *Bitmap) FillText(text string, x, y float64) {
	runs := b.textRuns(text, b.cur.fontSize*b.scale)
	if len(runs) == 0 {
		return
	}
	d := &font.Drawer{
		Dst: b.img,
		Src: image.NewUniform(b.withAlpha(b.cur.fill)),
	}
	var adv, ascent, descent fixed.Int26_6
	for _, r := range runs {
		d.Face = r.face
		adv += d.MeasureString(r.text)
		m := r.face.Metrics()
		ascent = max(ascent, m.Ascent)
		descent = max(descent, m.Descent)
	}
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(x*b.scale*64) - adv/2,
		Y: fixed.Int26_6(y*b.scale*64) + (ascent-descent)/2,
	}
	for _, r := range runs {
		d.Face = r.face
		d.DrawString(r.text)
	}
}

// textRuns splits text into runs that share a font. Variation selectors
// are dropped since neither font maps them.
func (b *Bitmap) textRuns(text string, size float64) []textRun {
	if b.fontFail || size <= 0 || text == "" {
		return nil
	}
	var (
		runs []textRun
		sb   strings.Builder
		cur  = -1
	)
	flush := func() bool {
		if sb.Len() == 0 {
			return true
		}
		face := b.face(cur, size)
		if face == nil {
			return false
		}
		runs = append(runs, textRun{face: face, text: sb.String()})
		sb.Reset()
		return true
	}
	for _, r := range text {
		if unicode.Is(unicode.Variation_Selector, r) {
			continue
		}
		if i := b.fontFor(r); i != cur {
			if !flush() {
				return nil
			}
			cur = i
		}
		sb.WriteRune(r)
	}
	if !flush() {
		return nil
	}
	return runs
}

// fontFor returns the index of the first font with a glyph for r, or the
// text font when none has one.
func (b *Bitmap) fontFor(r rune) int {
	for i, f := range b.fonts {
		if gi, err := f.GlyphIndex(&b.glyphBuf, r); err == nil && gi != 0 {
			return i
		}
	}
	return 0
}

func (b *Bitmap) face(idx int, size float64) font.Face {
	if b.fontFail || size <= 0 || idx < 0 || idx >= len(b.fonts) {
		return nil
	}
	key := faceKey{font: idx, size: size}
	if f, ok := b.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(b.fonts[idx], &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		b.fontFail = true
		return nil
	}
	b.faces[key] = f
	return f
}

func (b *Bitmap) fillCap(p point, width float64, clr color.Color) {
	half := width / 2
	b.filler.Clear()
	b.filler.SetColor(clr)
	switch b.cur.lineCap {
	case CapRound:
		rasterx.AddCircle(p.x, p.y, half, b.filler)
	case CapSquare:
		rasterx.AddRect(p.x-half, p.y-half, p.x+half, p.y+half, 0, b.filler)
	default:
		return
	}
	b.filler.Draw()
	b.filler.Clear()
}

func (b *Bitmap) withAlpha(c color.Color) color.Color {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * b.cur.alpha))
	return n
}

func capFunc(c LineCap) rasterx.CapFunc {
	switch c {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

// isDegenerate reports whether a subpath stays within half a device pixel
// of its start.
func isDegenerate(sub []point) bool {
	const tol = 0.5
	first := sub[0]
	for _, p := range sub[1:] {
		if math.Abs(p.x-first.x) > tol || math.Abs(p.y-first.y) > tol {
			return false
		}
	}
	return true
}
