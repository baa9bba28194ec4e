package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/birthday-celebration/internal/audio"
	"github.com/iburimskiy/birthday-celebration/internal/celebration"
	"github.com/iburimskiy/birthday-celebration/internal/config"
	"github.com/iburimskiy/birthday-celebration/internal/dialog"
	"github.com/iburimskiy/birthday-celebration/internal/fireworks"
)

// Game is the celebration window. It implements ebiten.Game.
type Game struct {
	cel    *celebration.Celebration
	field  *fireworks.Field
	player *audio.Player
	sky    canvas
	photos *photoCache
	labels *labelCache

	width, height int
	scene         scene

	// audio pulse in [0, 1]
	level float64
	time  float64

	// button state
	hovered buttonID
	pressed buttonID

	stopped atomic.Bool
	lastErr error
}

// New builds the window state. src feeds every random draw.
func New(cfg *config.Config, src fireworks.Source) *Game {
	g := &Game{
		cel:     celebration.New(cfg, src),
		field:   fireworks.NewField(src, fireworks.ParamsFromConfig(cfg)),
		player:  audio.NewPlayer(cfg.Music),
		photos:  newPhotoCache(),
		labels:  newLabelCache(),
		width:   config.WindowWidth,
		height:  config.WindowHeight,
		hovered: -1,
		pressed: -1,
	}
	g.cel.AutoStart()
	return g
}

// Stop makes the next Update end the game loop.
func (g *Game) Stop() {
	g.stopped.Store(true)
}

// Close releases audio resources.
func (g *Game) Close() {
	g.player.Close()
}

func (g *Game) Update() error {
	if g.stopped.Load() {
		return ebiten.Termination
	}

	g.scene = layoutScene(float64(g.width), float64(g.height), g.cel.Gallery.Len())

	if err := g.handleKeys(); err != nil {
		return err
	}
	g.handleMouse()

	dt := time.Second / time.Duration(ebiten.TPS())
	g.time += dt.Seconds()
	g.cel.Update(dt)
	g.level = g.player.Level()

	g.sky.resize(g.width, g.height)
	g.field.Step(&g.sky, g.cel.Session.Celebrating)

	return nil
}

func (g *Game) handleKeys() error {
	gallery := g.cel.Gallery
	if gallery.IsOpen() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			gallery.HandleKey(celebration.KeyEscape)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
			gallery.HandleKey(celebration.KeyLeft)
		case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
			gallery.HandleKey(celebration.KeyRight)
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cel.ToggleCelebrate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.field.Launch(g.sky.Size())
	}
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	gallery := g.cel.Gallery
	if gallery.Visible() {
		g.hovered = -1
		if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || !gallery.IsOpen() {
			return
		}
		switch g.scene.hitLightbox(x, y, g.lightboxPhotoRect()) {
		case lightboxClose:
			gallery.Close()
		case lightboxPrev:
			gallery.Navigate(-1)
		case lightboxNext:
			gallery.Navigate(1)
		}
		return
	}

	hit := g.scene.hit(x, y)
	g.hovered = -1
	if hit.kind == targetButton {
		g.hovered = buttonID(hit.index)
	}

	// buttons fire on release over the button they were pressed on
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.hovered >= 0 {
		g.pressed = g.hovered
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.pressed >= 0 && g.pressed == g.hovered {
			g.clickButton(g.pressed)
		}
		g.pressed = -1
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	switch hit.kind {
	case targetCake:
		g.cel.BlowCandle()
	case targetGift:
		g.cel.OpenGift()
	case targetWish:
		cx, cy := g.scene.wishes[hit.index].center()
		g.cel.ClickWish(cx, cy)
	case targetThumb:
		gallery.Open(hit.index)
	}
}

func (g *Game) clickButton(id buttonID) {
	switch id {
	case buttonCelebrate:
		g.cel.ToggleCelebrate()
	case buttonMusic:
		g.lastErr = g.toggleMusic()
	case buttonPhotos:
		g.lastErr = g.addPhotos()
	}
}

func (g *Game) toggleMusic() error {
	if g.player.Path() == "" {
		path, err := dialog.SelectTrack()
		if err != nil || path == "" {
			return err
		}
		g.player.SetTrack(path)
	}
	if err := g.cel.ToggleMusic(g.player); err != nil {
		if errors.Is(err, audio.ErrNoTrack) {
			return nil
		}
		log.Printf("[Game] Music failed: %v", err)
		return fmt.Errorf("music: %w", err)
	}
	return nil
}

func (g *Game) addPhotos() error {
	files, err := dialog.SelectPhotos()
	if err != nil {
		return err
	}
	if len(files) > 0 {
		g.cel.Gallery.Add(files...)
		log.Printf("[Game] Added %d photos", len(files))
	}
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
