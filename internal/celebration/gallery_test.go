package celebration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/birthday-celebration/internal/timer"
)

func newTestGallery() (*Gallery, *timer.Scheduler) {
	sched := timer.New()
	return NewGallery(sched, "a.jpg", "b.jpg", "c.jpg"), sched
}

func TestGalleryOpenRejectsOutOfRange(t *testing.T) {
	g, _ := newTestGallery()
	assert.False(t, g.Open(-1))
	assert.False(t, g.Open(3))
	assert.False(t, g.IsOpen())
	assert.False(t, g.Visible())
}

func TestGalleryNavigateWraps(t *testing.T) {
	g, sched := newTestGallery()
	require.True(t, g.Open(0))

	g.Navigate(-1)
	assert.Equal(t, 2, g.Index())
	g.Navigate(1)
	assert.Equal(t, 0, g.Index())
	g.Navigate(4)
	assert.Equal(t, 1, g.Index())

	// the displayed photo follows after the swap fade
	assert.Equal(t, 0, g.Shown())
	sched.Advance(photoSwap)
	assert.Equal(t, 1, g.Shown())
}

func TestGalleryKeys(t *testing.T) {
	g, sched := newTestGallery()
	assert.False(t, g.HandleKey(KeyRight), "closed lightbox ignores keys")

	g.Open(1)
	assert.True(t, g.HandleKey(KeyRight))
	assert.Equal(t, 2, g.Index())
	assert.True(t, g.HandleKey(KeyLeft))
	assert.Equal(t, 1, g.Index())
	assert.False(t, g.HandleKey(Key(42)))

	assert.True(t, g.HandleKey(KeyEscape))
	assert.False(t, g.IsOpen())
	assert.True(t, g.Visible(), "still fading out")

	sched.Advance(lightboxFade)
	assert.False(t, g.Visible())
	assert.Equal(t, 0.0, g.Opacity())
}

func TestGalleryFades(t *testing.T) {
	g, sched := newTestGallery()
	g.Open(0)
	assert.Equal(t, 0.0, g.Opacity())
	assert.InDelta(t, 0.8, g.PhotoScale(), 1e-9)

	sched.Advance(lightboxFade)
	assert.Equal(t, 1.0, g.Opacity())
	assert.InDelta(t, 1.0, g.PhotoScale(), 1e-9)

	g.Navigate(1)
	assert.InDelta(t, 0.8, g.PhotoScale(), 1e-9)
	sched.Advance(photoSwap + lightboxFade)
	assert.InDelta(t, 1.0, g.PhotoScale(), 1e-9)

	g.Close()
	sched.Advance(lightboxFade / 2)
	assert.InDelta(t, 0.5, g.Opacity(), 1e-9)
}

func TestGalleryReopenCancelsHide(t *testing.T) {
	g, sched := newTestGallery()
	g.Open(0)
	g.Close()
	sched.Advance(100 * time.Millisecond)
	g.Open(2)
	sched.Advance(time.Second)

	assert.True(t, g.Visible())
	assert.True(t, g.IsOpen())
	assert.Equal(t, 2, g.Shown())
}

func TestEmptyGalleryIsInert(t *testing.T) {
	g := NewGallery(timer.New())
	assert.False(t, g.Open(0))
	g.Navigate(1)
	g.Close()
	assert.Zero(t, g.Len())

	g.Add("x.png")
	assert.True(t, g.Open(0))
	g.Navigate(1)
	assert.Equal(t, 0, g.Index())
}
