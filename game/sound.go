package game

// SoundID names the synthesized effects.
type SoundID int

const (
	SoundShoot SoundID = iota
	SoundHit
	SoundAlienShoot
)

// SoundQueue collects effects requested during a tick. AudioSystem drains it;
// in headless runs it just accumulates and gets reset.
type SoundQueue struct {
	Pending []SoundID
}

// Push queues a sound for playback at the end of the tick.
func (q *SoundQueue) Push(id SoundID) {
	q.Pending = append(q.Pending, id)
}
