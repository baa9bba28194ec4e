package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/birthday-celebration/internal/config"
)

// ErrNoTrack is returned by Play before a track is chosen.
var ErrNoTrack = errors.New("no music track selected")

// Player loops the birthday track through the speaker. It is driven from
// the frame loop goroutine.
type Player struct {
	path string

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *visualTap

	level    float64
	paused   bool
	initDone bool
}

// NewPlayer creates a player for the track at path; path may be empty.
func NewPlayer(path string) *Player {
	return &Player{path: path}
}

// Path is the selected track.
func (p *Player) Path() string {
	return p.path
}

// SetTrack switches to another track, stopping the current one.
func (p *Player) SetTrack(path string) {
	p.stopCurrent()
	p.path = path
}

// Play starts the track or resumes it after Pause.
func (p *Player) Play() error {
	if p.ctrl != nil {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.paused = false
		return nil
	}
	if p.path == "" {
		return ErrNoTrack
	}
	return p.loadAndPlay(p.path)
}

// Pause silences the track, keeping its position.
func (p *Player) Pause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.paused = true
}

// Playing reports whether the track is loaded and unpaused.
func (p *Player) Playing() bool {
	return p.ctrl != nil && !p.paused
}

// Level samples the current loudness, smoothed across calls. Call it once
// per frame.
func (p *Player) Level() float64 {
	var mag float64
	if p.tap != nil && !p.paused {
		mag = p.tap.loudness(2048)
	}
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
	return p.level
}

// Close stops playback and releases the file.
func (p *Player) Close() {
	p.stopCurrent()
}

func (p *Player) stopCurrent() {
	if p.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.paused = false
}

func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var dec func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch ext {
	case ".wav":
		dec = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	case ".mp3":
		dec = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	case ".flac":
		dec = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }
	default:
		return nil, nil, beep.Format{}, fmt.Errorf("unsupported file type: %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, fmt.Errorf("failed to open track: %w", err)
	}
	streamer, format, err := dec(f)
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, nil
}

func (p *Player) loadAndPlay(path string) error {
	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	// streamer -> loop -> tap -> ctrl
	t := newVisualTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if p.initDone {
			speaker.Lock()
			speaker.Clear()
			speaker.Unlock()
		}
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		p.initDone = true
	}

	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false

	speaker.Play(ctrl)
	log.Printf("[Audio] Playing %s", filepath.Base(path))
	return nil
}
