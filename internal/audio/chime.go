// Package audio plays the phase transition chime.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/rs/zerolog"
)

// ErrPlaybackUnavailable is recorded when the chime cannot be decoded or
// the output device cannot be opened.
var ErrPlaybackUnavailable = errors.New("playback unavailable")

// Output is the sound device the chime is written to.
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(streamer beep.Streamer)
}

// SpeakerOutput plays through the system speaker.
type SpeakerOutput struct{}

// Init opens the speaker.
func (SpeakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

// Play queues the streamer on the speaker mixer.
func (SpeakerOutput) Play(streamer beep.Streamer) {
	speaker.Play(streamer)
}

// Options configures a Player.
type Options struct {
	Enabled bool
	// Volume is a linear level in [0, 1].
	Volume float64
	Output Output
	Logger zerolog.Logger
}

// Player decodes the chime once and plays it on demand.
type Player struct {
	mu      sync.Mutex
	data    []byte
	output  Output
	logger  zerolog.Logger
	enabled bool
	volume  float64

	loadOnce sync.Once
	buffer   *beep.Buffer
	loadErr  error
}

// NewPlayer creates a Player for the given WAV data.
func NewPlayer(data []byte, options Options) *Player {
	if options.Output == nil {
		options.Output = SpeakerOutput{}
	}
	return &Player{
		data:    data,
		output:  options.Output,
		logger:  options.Logger,
		enabled: options.Enabled,
		volume:  clampVolume(options.Volume),
	}
}

// Configure updates the enabled flag and the volume.
func (player *Player) Configure(enabled bool, volume float64) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.enabled = enabled
	player.volume = clampVolume(volume)
}

// Chime plays the chime once. Failures are logged on first occurrence and
// otherwise ignored.
func (player *Player) Chime() {
	player.mu.Lock()
	enabled := player.enabled
	volume := player.volume
	player.mu.Unlock()

	exponent, silent := volumeExponent(volume)
	if !enabled || silent {
		return
	}

	player.loadOnce.Do(func() {
		buffer, err := player.load()
		if err != nil {
			player.logger.Warn().Err(err).Msg("chime disabled")
		}
		player.mu.Lock()
		player.buffer, player.loadErr = buffer, err
		player.mu.Unlock()
	})

	player.mu.Lock()
	buffer := player.buffer
	player.mu.Unlock()
	if buffer == nil {
		return
	}

	player.output.Play(&effects.Volume{
		Streamer: buffer.Streamer(0, buffer.Len()),
		Base:     2,
		Volume:   exponent,
	})
}

// Err returns the load failure, if any.
func (player *Player) Err() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.loadErr
}

func (player *Player) load() (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(bytes.NewReader(player.data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode chime: %v", ErrPlaybackUnavailable, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	if buffer.Len() == 0 {
		return nil, fmt.Errorf("%w: chime is empty", ErrPlaybackUnavailable)
	}

	if err := player.output.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("%w: init speaker: %v", ErrPlaybackUnavailable, err)
	}
	return buffer, nil
}

func clampVolume(volume float64) float64 {
	if volume < 0 || math.IsNaN(volume) {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}

// volumeExponent maps a linear level onto the base-2 exponent used by
// effects.Volume.
func volumeExponent(volume float64) (float64, bool) {
	if volume <= 0 {
		return 0, true
	}
	return math.Log2(volume), false
}
