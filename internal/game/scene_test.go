package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutButtonsInARow(t *testing.T) {
	s := layoutScene(1024, 640, 0)
	for i := 1; i < len(s.buttons); i++ {
		assert.Equal(t, s.buttons[0].Y, s.buttons[i].Y)
		assert.Greater(t, s.buttons[i].X, s.buttons[i-1].X+s.buttons[i-1].W)
	}
}

func TestLayoutThumbsFitWidth(t *testing.T) {
	tests := []struct {
		name   string
		width  float64
		photos int
		want   int
	}{
		{"no photos", 1024, 0, 0},
		{"all fit", 1024, 5, 5},
		{"narrow window", 300, 5, 2},
		{"zero width", 0, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := layoutScene(tt.width, 640, tt.photos)
			require.Len(t, s.thumbs, tt.want)
			for _, th := range s.thumbs {
				assert.GreaterOrEqual(t, th.X, 0.0)
				assert.LessOrEqual(t, th.X+th.W, tt.width)
			}
		})
	}
}

func TestHit(t *testing.T) {
	s := layoutScene(1024, 640, 3)

	bx, by := s.buttons[buttonMusic].center()
	assert.Equal(t, target{kind: targetButton, index: int(buttonMusic)}, s.hit(bx, by))

	cx, cy := s.cake.center()
	assert.Equal(t, targetCake, s.hit(cx, cy).kind)

	gx, gy := s.gift.center()
	assert.Equal(t, targetGift, s.hit(gx, gy).kind)

	wx, wy := s.wishes[2].center()
	assert.Equal(t, target{kind: targetWish, index: 2}, s.hit(wx, wy))

	tx, ty := s.thumbs[1].center()
	assert.Equal(t, target{kind: targetThumb, index: 1}, s.hit(tx, ty))

	assert.Equal(t, targetSky, s.hit(5, 300).kind)
	assert.Equal(t, targetNone, s.hit(-5, 300).kind)
}

func TestHitLightbox(t *testing.T) {
	s := layoutScene(1024, 640, 3)
	photo := s.lightboxPhoto.fit(400, 300, 1)

	cx, cy := s.lightboxClose.center()
	assert.Equal(t, lightboxClose, s.hitLightbox(cx, cy, photo))
	px, py := s.lightboxPrev.center()
	assert.Equal(t, lightboxPrev, s.hitLightbox(px, py, photo))
	nx, ny := s.lightboxNext.center()
	assert.Equal(t, lightboxNext, s.hitLightbox(nx, ny, photo))

	mx, my := photo.center()
	assert.Equal(t, lightboxNothing, s.hitLightbox(mx, my, photo))
	assert.Equal(t, lightboxClose, s.hitLightbox(100, 620, photo), "backdrop closes")
}

func TestFitKeepsAspect(t *testing.T) {
	r := rect{X: 0, Y: 0, W: 800, H: 600}
	got := r.fit(400, 100, 1)
	assert.Equal(t, rect{X: 0, Y: 200, W: 800, H: 200}, got)

	half := r.fit(400, 100, 0.5)
	assert.Equal(t, 400.0, half.W)
	assert.Equal(t, 200.0, half.X)

	empty := r.fit(0, 0, 1)
	assert.Zero(t, empty.W)
}
