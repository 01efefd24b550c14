package assets

import (
	"math"
	"time"
)

// SampleRate is the playback rate for all generated tones. The audio context
// must be created with the same rate.
const SampleRate = 44100

// Tone synthesizes a sine beep as 16-bit little-endian stereo PCM.
func Tone(freq float64, duration time.Duration, volume float64) []byte {
	sampleCount := int(float64(SampleRate) * duration.Seconds())
	out := make([]byte, sampleCount*4)

	for i := 0; i < sampleCount; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / SampleRate)
		sample := int16(v * volume * math.MaxInt16)

		lo, hi := byte(sample), byte(sample>>8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

// ShootTone is the player cannon report.
func ShootTone() []byte { return Tone(800, 100*time.Millisecond, 0.5) }

// HitTone plays when anything is destroyed.
func HitTone() []byte { return Tone(1000, 120*time.Millisecond, 0.5) }

// AlienShootTone is the descending-bullet effect.
func AlienShootTone() []byte { return Tone(600, 150*time.Millisecond, 0.5) }
