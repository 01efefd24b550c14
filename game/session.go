package game

// Session is the singleton game-state machine. Systems read Mode to decide
// whether to simulate; ControlSystem is the only writer of Mode.
type Session struct {
	Mode       Mode
	Difficulty Difficulty

	Score      int
	Lives      int
	Level      int
	ShotsFired int

	// Set when the run just ended with a score worth recording; the HUD
	// switches to initials entry and KeyboardSystem routes typed characters
	// into Initials.
	EnteringInitials bool
	Initials         string

	// Quit is latched by ControlSystem; the entry point translates it into
	// loop termination.
	Quit bool
}

// Formation is the shared state of the alien grid: march direction, speed,
// and the two-frame walk animation.
type Formation struct {
	Direction float64 // +1 right, -1 left
	Speed     float64 // px/s, grows per wave
	AnimTimer float64
	Frame     int // 0 or 1
}

// MysteryClock counts down to the next bonus-ship spawn.
type MysteryClock struct {
	Cooldown float64 // seconds until next spawn attempt
}

// FireClock counts down to the next alien shot attempt.
type FireClock struct {
	Cooldown float64
}
