// Package sfx plays the little chiptune blips for splashes and catches.
package sfx

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	SampleRate = 44100
	Volume     = 0.4

	bytesPerFrame = 4 // 16-bit little endian, stereo
	amplitude     = 0.2
)

// Note is one square-wave tone.
type Note struct {
	Freq     float64
	Duration time.Duration
}

var (
	SplashNotes = []Note{{Freq: 196, Duration: 60 * time.Millisecond}}
	CatchNotes  = []Note{
		{Freq: 523, Duration: 70 * time.Millisecond},
		{Freq: 784, Duration: 110 * time.Millisecond},
	}
)

// Render synthesises notes back to back as 16-bit stereo PCM. Each note
// decays linearly to silence so consecutive blips do not click.
func Render(notes []Note, sampleRate int) []byte {
	var buf []byte
	for _, n := range notes {
		frames := int(n.Duration.Seconds() * float64(sampleRate))
		for i := 0; i < frames; i++ {
			val := -amplitude
			phase := int(float64(i) * n.Freq * 2 / float64(sampleRate))
			if phase%2 == 0 {
				val = amplitude
			}
			val *= 1 - float64(i)/float64(frames)

			v := int16(math.Round(val * math.MaxInt16))
			buf = append(buf, byte(v), byte(v>>8), byte(v), byte(v>>8))
		}
	}
	return buf
}

// Player plays pre-rendered effects. A nil *Player is silent.
type Player struct {
	ctx    *audio.Context
	splash []byte
	catch  []byte
}

// New creates the audio context. Ebiten allows only one per process.
func New() *Player {
	return &Player{
		ctx:    audio.NewContext(SampleRate),
		splash: Render(SplashNotes, SampleRate),
		catch:  Render(CatchNotes, SampleRate),
	}
}

func (p *Player) Splash() {
	if p != nil {
		p.play(p.splash)
	}
}

func (p *Player) Catch() {
	if p != nil {
		p.play(p.catch)
	}
}

func (p *Player) play(pcm []byte) {
	if p.ctx == nil {
		return
	}
	if err := p.ctx.Err(); err != nil {
		log.Printf("audio unavailable, muting: %v", err)
		p.ctx = nil
		return
	}
	ap := p.ctx.NewPlayerFromBytes(pcm)
	ap.SetVolume(Volume)
	ap.Play()
}
