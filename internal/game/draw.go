package game

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/birthday-celebration/internal/celebration"
)

const glyphWidth = 6 // debug font advance

var (
	white     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cardColor = color.RGBA{R: 118, G: 75, B: 162, A: 255}
	cakeBase  = color.RGBA{R: 139, G: 90, B: 60, A: 255}
	frosting  = color.RGBA{R: 255, G: 182, B: 193, A: 255}
	giftColor = color.RGBA{R: 245, G: 87, B: 108, A: 255}
	ribbon    = color.RGBA{R: 255, G: 217, B: 61, A: 255}
	flame     = color.RGBA{R: 255, G: 170, B: 40, A: 255}

	// triangles need a source image to sample from
	whiteSubImage *ebiten.Image
)

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	if g.sky.img != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(0.85)
		screen.DrawImage(g.sky.img, op)
	}

	now := g.cel.Now()
	g.drawBalloons(screen)
	g.drawTitle(screen)
	g.drawCake(screen)
	g.drawGift(screen)
	g.drawWishes(screen)
	g.drawThumbs(screen)
	g.drawConfetti(screen)

	for _, s := range g.cel.Sparkles {
		p := s.Progress(now)
		x := s.X + s.DX*p
		y := s.Y + s.DY*p
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(5*(1-p)), withAlpha(white, 1-p), true)
	}
	for _, m := range g.cel.Messages {
		g.drawLabel(screen, m.Text, float64(g.width)/2, float64(g.height)/2, 4*m.Scale(now), m.Opacity(now))
	}

	for i := buttonID(0); i < buttonCount; i++ {
		g.drawButton(screen, i)
	}
	g.drawLightbox(screen)

	status := "Space: party on/off, F: launch a firework, click the cake, the gift and the cards"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Slow gradient; the music level brightens it.
	const band = 4
	pulse := 1 + 0.8*g.level
	for y := 0; y < g.height; y += band {
		ratio := float64(y) / float64(max(g.height, 1))
		r := uint8(clamp01((15+20*math.Sin(g.time*0.5+ratio*math.Pi))*pulse/255) * 255)
		gv := uint8(clamp01((12+15*math.Cos(g.time*0.3+ratio*math.Pi))*pulse/255) * 255)
		b := uint8(clamp01((41+25*math.Sin(g.time*0.7+ratio*math.Pi))*pulse/255) * 255)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), band, color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	hue := g.time * 40
	r, gv, b := hsvToRgb(hue, 0.5, 1)
	g.drawLabel(screen, "Happy Birthday!", float64(g.width)/2, float64(g.height)*0.18, 3, 1)
	vector.StrokeLine(screen, float32(g.width)/2-140, float32(g.height)*0.18+30, float32(g.width)/2+140, float32(g.height)*0.18+30, 2, color.RGBA{R: r, G: gv, B: b, A: 255}, true)
}

func (g *Game) drawBalloons(screen *ebiten.Image) {
	now := g.cel.Now()
	w, h := float64(g.width), float64(g.height)
	for _, bl := range g.cel.Balloons {
		p := celebration.EaseInOutSine(bl.Progress(now))
		x := bl.Left*w + 15*math.Sin(p*4*math.Pi)
		y := h + 60 - p*(h+180)

		vector.StrokeLine(screen, float32(x), float32(y+30), float32(x+4*math.Sin(p*6*math.Pi)), float32(y+90), 1, withAlpha(white, 0.6), true)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 30, bl.Shade, true)
		vector.DrawFilledCircle(screen, float32(x-4), float32(y-4), 25, bl.Color, true)
		vector.DrawFilledCircle(screen, float32(x-12), float32(y-12), 6, withAlpha(white, 0.35), true)
	}
}

func (g *Game) drawConfetti(screen *ebiten.Image) {
	now := g.cel.Now()
	w, h := float64(g.width), float64(g.height)
	for _, c := range g.cel.Confetti {
		p := c.Progress(now)
		if p == 0 {
			continue
		}
		x := c.Left*w + 20*math.Sin(p*4*math.Pi)
		y := -10 + p*(h+20)
		alpha := 1 - clamp01((p-0.8)/0.2)
		col := withAlpha(c.Color, alpha)

		switch c.Shape {
		case celebration.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(x), float32(y), 5, col, true)
		case celebration.ShapeSquare:
			vector.DrawFilledRect(screen, float32(x-5), float32(y-5), 10, 10, col, true)
		case celebration.ShapeTriangle:
			fillTriangle(screen, x, y-5, x-5, y+5, x+5, y+5, col)
		}
	}
}

func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, col color.NRGBA) {
	var path vector.Path
	path.MoveTo(float32(x0), float32(y0))
	path.LineTo(float32(x1), float32(y1))
	path.LineTo(float32(x2), float32(y2))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, gv, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r*a, gv*a, b*a, a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

func (g *Game) drawCake(screen *ebiten.Image) {
	c := g.scene.cake
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y+40), float32(c.W), float32(c.H-40), cakeBase, true)
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Y+40), float32(c.W), 16, frosting, true)
	vector.DrawFilledRect(screen, float32(c.X+c.W/2-4), float32(c.Y+8), 8, 32, white, true)

	if !g.cel.Session.CandleBlown {
		flicker := 1 + 0.15*math.Sin(g.time*25)
		vector.DrawFilledCircle(screen, float32(c.X+c.W/2), float32(c.Y), float32(7*flicker), flame, true)
	}
}

func (g *Game) drawGift(screen *ebiten.Image) {
	b := g.scene.gift
	lift := g.cel.GiftLid() * 40
	vector.DrawFilledRect(screen, float32(b.X+5), float32(b.Y+25), float32(b.W-10), float32(b.H-25), giftColor, true)
	vector.DrawFilledRect(screen, float32(b.X+b.W/2-6), float32(b.Y+25), 12, float32(b.H-25), ribbon, true)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y+5-lift), float32(b.W), 20, giftColor, true)
	vector.DrawFilledRect(screen, float32(b.X+b.W/2-6), float32(b.Y+5-lift), 12, 20, ribbon, true)
}

func (g *Game) drawWishes(screen *ebiten.Image) {
	for i, r := range g.scene.wishes {
		bob := 4 * math.Sin(g.time*2+float64(i))
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y+bob), float32(r.W), float32(r.H), withAlpha(cardColor, 0.8), true)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y+bob), float32(r.W), float32(r.H), 2, withAlpha(white, 0.6), true)
		cx, cy := r.center()
		g.drawLabel(screen, wishCards[i], cx, cy+bob, 1, 1)
	}
}

func (g *Game) drawThumbs(screen *ebiten.Image) {
	items := g.cel.Gallery.Items()
	for i, r := range g.scene.thumbs {
		img := g.photos.get(items[i])
		if img == nil {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(white, 0.15), true)
			g.drawLabel(screen, filepath.Base(items[i]), r.X+r.W/2, r.Y+r.H/2, 1, 0.8)
		} else {
			drawFitted(screen, img, r, 1, 1)
		}
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, withAlpha(white, 0.8), true)
	}
}

func (g *Game) lightboxPhotoRect() rect {
	gallery := g.cel.Gallery
	if gallery.Len() == 0 {
		return rect{}
	}
	img := g.photos.get(gallery.Items()[gallery.Shown()])
	if img == nil {
		return g.scene.lightboxPhoto.fit(4, 3, gallery.PhotoScale())
	}
	b := img.Bounds()
	return g.scene.lightboxPhoto.fit(float64(b.Dx()), float64(b.Dy()), gallery.PhotoScale())
}

func (g *Game) drawLightbox(screen *ebiten.Image) {
	gallery := g.cel.Gallery
	if !gallery.Visible() || gallery.Len() == 0 {
		return
	}
	alpha := gallery.Opacity()
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), color.NRGBA{A: uint8(0.95 * alpha * 255)}, false)

	photo := g.lightboxPhotoRect()
	if img := g.photos.get(gallery.Items()[gallery.Shown()]); img != nil {
		drawFitted(screen, img, photo, 1, alpha)
	} else {
		vector.DrawFilledRect(screen, float32(photo.X), float32(photo.Y), float32(photo.W), float32(photo.H), withAlpha(white, 0.1*alpha), true)
	}

	for _, b := range []struct {
		r     rect
		label string
	}{
		{g.scene.lightboxClose, "X"},
		{g.scene.lightboxPrev, "<"},
		{g.scene.lightboxNext, ">"},
	} {
		cx, cy := b.r.center()
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(b.r.W/2), withAlpha(white, 0.2*alpha), true)
		g.drawLabel(screen, b.label, cx, cy, 2, alpha)
	}
}

func drawFitted(dst, img *ebiten.Image, r rect, zoom, alpha float64) {
	b := img.Bounds()
	fitted := r.fit(float64(b.Dx()), float64(b.Dy()), zoom)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(fitted.W/float64(b.Dx()), fitted.H/float64(b.Dy()))
	op.GeoM.Translate(fitted.X, fitted.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (g *Game) drawButton(screen *ebiten.Image, id buttonID) {
	r := g.scene.buttons[id]

	var bgColor color.Color
	switch {
	case g.pressed == id:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case g.hovered == id:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	if id == buttonMusic && g.cel.Session.MusicPlaying {
		bgColor = color.RGBA{R: 17, G: 153, B: 142, A: 255}
	}

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bgColor, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	cx, cy := r.center()
	g.drawLabel(screen, g.buttonLabel(id), cx, cy, 1, 1)
}

func (g *Game) buttonLabel(id buttonID) string {
	switch id {
	case buttonCelebrate:
		if g.cel.Session.Celebrating {
			return "Partying..."
		}
		return "Start the party"
	case buttonMusic:
		if g.cel.Session.MusicPlaying {
			return "Mute music"
		}
		return "Birthday music"
	case buttonPhotos:
		return "Add photos"
	}
	return ""
}

// drawLabel prints text centred on (cx, cy) at the given scale.
func (g *Game) drawLabel(screen *ebiten.Image, text string, cx, cy, scale, alpha float64) {
	if scale <= 0 || alpha <= 0 {
		return
	}
	img := g.labels.get(text)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

// labelCache renders debug-font text once per string.
type labelCache struct {
	images map[string]*ebiten.Image
}

func newLabelCache() *labelCache {
	return &labelCache{images: make(map[string]*ebiten.Image)}
}

func (c *labelCache) get(text string) *ebiten.Image {
	if img, ok := c.images[text]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(text)*glyphWidth, 1), 16)
	ebitenutil.DebugPrint(img, text)
	c.images[text] = img
	return img
}

// photoCache loads gallery images on first use. Failures are logged once
// and the photo is drawn as a placeholder.
type photoCache struct {
	images map[string]*ebiten.Image
}

func newPhotoCache() *photoCache {
	return &photoCache{images: make(map[string]*ebiten.Image)}
}

func (c *photoCache) get(path string) *ebiten.Image {
	if img, ok := c.images[path]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("[Game] Failed to load photo %s: %v", path, err)
		img = nil
	}
	c.images[path] = img
	return img
}
