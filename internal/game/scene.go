package game

import "github.com/iburimskiy/birthday-celebration/internal/config"

// rect is an axis-aligned screen region.
type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r rect) center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// fit scales an iw×ih image to fit inside r keeping its aspect ratio,
// centred, at the given zoom.
func (r rect) fit(iw, ih, zoom float64) rect {
	if iw <= 0 || ih <= 0 {
		return rect{X: r.X + r.W/2, Y: r.Y + r.H/2}
	}
	s := min(r.W/iw, r.H/ih) * zoom
	w, h := iw*s, ih*s
	return rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

type buttonID int

const (
	buttonCelebrate buttonID = iota
	buttonMusic
	buttonPhotos
	buttonCount
)

// wishCards are the greetings shown on the clickable cards.
var wishCards = []string{
	"Good health",
	"Lots of laughter",
	"Dreams come true",
}

const (
	thumbWidth  = 96
	thumbHeight = 72
	thumbGap    = 12
	lightboxBtn = 50
)

// scene is the hit-test layout for one screen size.
type scene struct {
	width, height float64

	buttons [buttonCount]rect
	cake    rect
	gift    rect
	wishes  []rect
	thumbs  []rect

	lightboxPhoto rect
	lightboxClose rect
	lightboxPrev  rect
	lightboxNext  rect
}

// layoutScene places every prop for a width×height screen and a gallery of
// the given size. Thumbnails that do not fit are left out.
func layoutScene(width, height float64, photos int) scene {
	s := scene{width: width, height: height}

	for i := range s.buttons {
		s.buttons[i] = rect{
			X: config.ButtonX + float64(i)*(config.ButtonWidth+config.ButtonGap),
			Y: config.ButtonY,
			W: config.ButtonWidth,
			H: config.ButtonHeight,
		}
	}

	s.cake = rect{X: width/2 - 80, Y: height*0.42 - 55, W: 160, H: 110}
	s.gift = rect{X: width*0.8 - 50, Y: height*0.42 - 50, W: 100, H: 100}

	const cardW, cardH, cardGap = 180.0, 56.0, 24.0
	total := float64(len(wishCards))*cardW + float64(len(wishCards)-1)*cardGap
	left := (width - total) / 2
	for i := range wishCards {
		s.wishes = append(s.wishes, rect{
			X: left + float64(i)*(cardW+cardGap),
			Y: height * 0.64,
			W: cardW,
			H: cardH,
		})
	}

	fits := int((width + thumbGap) / (thumbWidth + thumbGap))
	n := max(min(photos, fits), 0)
	strip := float64(n)*thumbWidth + float64(max(n-1, 0))*thumbGap
	left = (width - strip) / 2
	for i := 0; i < n; i++ {
		s.thumbs = append(s.thumbs, rect{
			X: left + float64(i)*(thumbWidth+thumbGap),
			Y: height - thumbHeight - 24,
			W: thumbWidth,
			H: thumbHeight,
		})
	}

	s.lightboxPhoto = rect{X: width * 0.05, Y: height * 0.05, W: width * 0.9, H: height * 0.9}
	s.lightboxClose = rect{X: width - 32 - lightboxBtn, Y: 32, W: lightboxBtn, H: lightboxBtn}
	s.lightboxPrev = rect{X: 32, Y: height/2 - lightboxBtn/2, W: lightboxBtn, H: lightboxBtn}
	s.lightboxNext = rect{X: width - 32 - lightboxBtn, Y: height/2 - lightboxBtn/2, W: lightboxBtn, H: lightboxBtn}

	return s
}

// target is what a click landed on.
type target struct {
	kind  targetKind
	index int
}

type targetKind int

const (
	targetNone targetKind = iota
	targetButton
	targetCake
	targetGift
	targetWish
	targetThumb
	targetSky
)

// hit resolves a click on the page (lightbox closed). Buttons are on top.
func (s scene) hit(x, y float64) target {
	for i, b := range s.buttons {
		if b.contains(x, y) {
			return target{kind: targetButton, index: i}
		}
	}
	if s.cake.contains(x, y) {
		return target{kind: targetCake}
	}
	if s.gift.contains(x, y) {
		return target{kind: targetGift}
	}
	for i, w := range s.wishes {
		if w.contains(x, y) {
			return target{kind: targetWish, index: i}
		}
	}
	for i, t := range s.thumbs {
		if t.contains(x, y) {
			return target{kind: targetThumb, index: i}
		}
	}
	if x < 0 || y < 0 || x > s.width || y > s.height {
		return target{kind: targetNone}
	}
	return target{kind: targetSky}
}

type lightboxAction int

const (
	lightboxNothing lightboxAction = iota
	lightboxClose
	lightboxPrev
	lightboxNext
)

// hitLightbox resolves a click while the lightbox is open. Clicks on the
// backdrop close it; clicks on the photo do nothing.
func (s scene) hitLightbox(x, y float64, photo rect) lightboxAction {
	switch {
	case s.lightboxClose.contains(x, y):
		return lightboxClose
	case s.lightboxPrev.contains(x, y):
		return lightboxPrev
	case s.lightboxNext.contains(x, y):
		return lightboxNext
	case photo.contains(x, y):
		return lightboxNothing
	default:
		return lightboxClose
	}
}
