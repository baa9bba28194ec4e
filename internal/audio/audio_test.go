package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(v float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

func TestTapPassesSamplesThrough(t *testing.T) {
	tap := newVisualTap(constant(0.25), 16)
	buf := make([][2]float64, 8)
	n, ok := tap.Stream(buf)

	assert.Equal(t, 8, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.25, 0.25}, buf[7])
	assert.NoError(t, tap.Err())
}

func TestTapLoudness(t *testing.T) {
	tap := newVisualTap(constant(0.5), 64)
	assert.Equal(t, 0.0, tap.loudness(32), "empty tap is silent")

	buf := make([][2]float64, 100)
	tap.Stream(buf)
	assert.InDelta(t, math.Pow(0.5, 0.3), tap.loudness(32), 1e-9)
	assert.InDelta(t, math.Pow(0.5, 0.3), tap.loudness(1000), 1e-9)
}

func TestTapLoudnessUsesMostRecentSamples(t *testing.T) {
	tap := newVisualTap(beep.Silence(-1), 8)
	tap.Stream(make([][2]float64, 8))

	tap.Source = constant(1)
	tap.Stream(make([][2]float64, 4))

	assert.InDelta(t, 1.0, tap.loudness(4), 1e-9)
	assert.InDelta(t, math.Pow(math.Sqrt(0.5), 0.3), tap.loudness(8), 1e-9)
}

func TestPlayWithoutTrack(t *testing.T) {
	p := NewPlayer("")
	assert.ErrorIs(t, p.Play(), ErrNoTrack)
	assert.False(t, p.Playing())
	assert.Equal(t, 0.0, p.Level())
	p.Pause()
	p.Close()
}

func TestPlayRejectsBadTracks(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("la la la"), 0o644))

	p := NewPlayer(text)
	err := p.Play()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")

	p.SetTrack(filepath.Join(dir, "missing.mp3"))
	err = p.Play()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "broken.wav")
	require.NoError(t, os.WriteFile(garbage, []byte("not a wav"), 0o644))
	p.SetTrack(garbage)
	err = p.Play()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode broken.wav")
	assert.False(t, p.Playing())
}
