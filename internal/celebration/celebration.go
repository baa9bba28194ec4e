package celebration

import (
	"errors"
	"image/color"
	"log"
	"time"

	"github.com/iburimskiy/birthday-celebration/internal/config"
	"github.com/iburimskiy/birthday-celebration/internal/fireworks"
	"github.com/iburimskiy/birthday-celebration/internal/timer"
)

const (
	giftRevealDelay    = 500 * time.Millisecond
	giftResetDelay     = 3 * time.Second
	candleRelightDelay = 3 * time.Second
	messageLifetime    = 2 * time.Second
	sparkleLifetime    = time.Second
	sparkleReach       = 100.0
)

// Wishes shown when the gift box opens.
var Wishes = []string{
	"Happy Birthday!",
	"You are so special!",
	"A new year full of joy!",
	"Happiness forever!",
	"May your dreams come true!",
}

// ErrNoMusic is returned by ToggleMusic without a player.
var ErrNoMusic = errors.New("no music player")

// Session is the state of one celebration window.
type Session struct {
	Celebrating  bool
	MusicPlaying bool
	GiftOpened   bool
	CandleBlown  bool
}

// Music plays the birthday track.
type Music interface {
	Play() error
	Pause()
}

// Celebration owns the session flags, the timed ambient emitters and the
// click handlers of the page props.
type Celebration struct {
	Session Session

	Balloons []Balloon
	Confetti []Confetti
	Sparkles []Sparkle
	Messages []Message
	Gallery  *Gallery

	cfg     config.AmbientConfig
	palette []color.RGBA
	src     fireworks.Source
	sched   *timer.Scheduler

	balloonTimer  timer.ID
	confettiTimer timer.ID

	giftOpenedAt time.Duration
}

// New creates an idle celebration. Nothing spawns until AutoStart or
// ToggleCelebrate.
func New(cfg *config.Config, src fireworks.Source) *Celebration {
	sched := timer.New()
	return &Celebration{
		cfg:     cfg.Ambient,
		palette: cfg.Palette(),
		src:     src,
		sched:   sched,
		Gallery: NewGallery(sched, cfg.Photos...),
	}
}

// Now is the celebration clock.
func (c *Celebration) Now() time.Duration {
	return c.sched.Now()
}

// Update advances timers by dt and drops expired elements.
func (c *Celebration) Update(dt time.Duration) {
	c.sched.Advance(dt)
	c.cull()
}

func (c *Celebration) cull() {
	now := c.Now()
	c.Balloons = filter(c.Balloons, func(b Balloon) bool { return now-b.Born < c.cfg.BalloonLifetime })
	c.Confetti = filter(c.Confetti, func(p Confetti) bool { return now-p.Born < c.cfg.ConfettiLifetime })
	c.Sparkles = filter(c.Sparkles, func(s Sparkle) bool { return now-s.Born < sparkleLifetime })
	c.Messages = filter(c.Messages, func(m Message) bool { return now-m.Born < messageLifetime })
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

// SpawnBalloon adds one balloon with random colour, position and timing.
func (c *Celebration) SpawnBalloon() {
	col := c.color()
	c.Balloons = append(c.Balloons, Balloon{
		Color:    col,
		Shade:    shade(col, -30),
		Left:     c.src.Float64(),
		Duration: c.seconds(5, 3),
		Delay:    c.seconds(0, 2),
		Born:     c.Now(),
	})
}

// SpawnConfetti adds one confetti piece.
func (c *Celebration) SpawnConfetti() {
	c.Confetti = append(c.Confetti, Confetti{
		Shape:    Shape(c.index(3)),
		Color:    c.color(),
		Left:     c.src.Float64(),
		Duration: c.seconds(2, 2),
		Delay:    c.seconds(0, 1),
		Born:     c.Now(),
	})
}

// StartBalloons releases the opening wave and keeps one balloon per
// interval coming while celebrating.
func (c *Celebration) StartBalloons() {
	for i := 0; i < c.cfg.BalloonCount; i++ {
		c.sched.After(time.Duration(i)*c.cfg.BalloonStagger, c.SpawnBalloon)
	}
	if c.balloonTimer != 0 {
		return
	}
	c.balloonTimer = c.sched.Every(c.cfg.BalloonInterval, func() bool {
		if !c.Session.Celebrating {
			c.balloonTimer = 0
			return false
		}
		c.SpawnBalloon()
		return true
	})
}

// StartConfetti releases a staggered confetti burst.
func (c *Celebration) StartConfetti() {
	c.burst(c.cfg.ConfettiCount, c.cfg.ConfettiStagger)
}

func (c *Celebration) burst(n int, stagger time.Duration) {
	for i := 0; i < n; i++ {
		c.sched.After(time.Duration(i)*stagger, c.SpawnConfetti)
	}
}

func (c *Celebration) streamConfetti() {
	if c.confettiTimer != 0 {
		return
	}
	c.confettiTimer = c.sched.Every(c.cfg.ConfettiInterval, func() bool {
		if !c.Session.Celebrating {
			c.confettiTimer = 0
			return false
		}
		for i := 0; i < c.cfg.ConfettiPerTick; i++ {
			c.SpawnConfetti()
		}
		return true
	})
}

// AutoStart turns the celebration on after the configured delay.
func (c *Celebration) AutoStart() {
	c.sched.After(c.cfg.AutoStartDelay, func() {
		c.Session.Celebrating = true
		c.StartBalloons()
		c.burst(c.cfg.AutoConfetti, c.cfg.AutoStagger)
		log.Printf("[Celebration] Party started")
	})
}

// ToggleCelebrate flips the celebrating flag and returns the new value.
// Turning it on starts balloons and a confetti stream; turning it off lets
// both wind down on their next tick.
func (c *Celebration) ToggleCelebrate() bool {
	c.Session.Celebrating = !c.Session.Celebrating
	if c.Session.Celebrating {
		c.StartBalloons()
		c.StartConfetti()
		c.streamConfetti()
	}
	return c.Session.Celebrating
}

// ToggleMusic plays or pauses the track. The flag only flips when the
// player accepts the change.
func (c *Celebration) ToggleMusic(m Music) error {
	if m == nil {
		return ErrNoMusic
	}
	if c.Session.MusicPlaying {
		m.Pause()
		c.Session.MusicPlaying = false
		return nil
	}
	if err := m.Play(); err != nil {
		return err
	}
	c.Session.MusicPlaying = true
	return nil
}

// OpenGift opens the box, reveals a wish and confetti, then closes it
// again. Clicks while open are ignored.
func (c *Celebration) OpenGift() bool {
	if c.Session.GiftOpened {
		return false
	}
	c.Session.GiftOpened = true
	c.giftOpenedAt = c.Now()

	c.sched.After(giftRevealDelay, func() {
		c.StartConfetti()
		c.Messages = append(c.Messages, Message{
			Text: Wishes[c.index(len(Wishes))],
			Born: c.Now(),
		})
	})
	c.sched.After(giftResetDelay, func() {
		c.Session.GiftOpened = false
	})
	return true
}

// GiftLid is how far the lid is lifted, in [0, 1].
func (c *Celebration) GiftLid() float64 {
	if !c.Session.GiftOpened {
		return 0
	}
	return EaseOutQuad(progress(c.Now()-c.giftOpenedAt, giftRevealDelay))
}

// BlowCandle puts the flame out, throws confetti and relights after a
// while. Clicks while blown are ignored.
func (c *Celebration) BlowCandle() bool {
	if c.Session.CandleBlown {
		return false
	}
	c.Session.CandleBlown = true
	c.StartConfetti()
	c.sched.After(candleRelightDelay, func() {
		c.Session.CandleBlown = false
	})
	return true
}

// ClickWish bursts sparkles out of a wish card centred at (x, y).
func (c *Celebration) ClickWish(x, y float64) {
	for i := 0; i < c.cfg.SparklesPerClick; i++ {
		c.Sparkles = append(c.Sparkles, Sparkle{
			X:    x,
			Y:    y,
			DX:   (c.src.Float64()*2 - 1) * sparkleReach,
			DY:   (c.src.Float64()*2 - 1) * sparkleReach,
			Born: c.Now(),
		})
	}
}

func (c *Celebration) color() color.RGBA {
	if len(c.palette) == 0 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c.palette[c.index(len(c.palette))]
}

func (c *Celebration) index(n int) int {
	return min(int(c.src.Float64()*float64(n)), n-1)
}

func (c *Celebration) seconds(base, spread float64) time.Duration {
	return time.Duration((base + c.src.Float64()*spread) * float64(time.Second))
}
