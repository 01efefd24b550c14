package game

// Intent is the device-independent input singleton. KeyboardSystem (or a
// test) fills it each tick; the simulation systems only ever read it. Edge
// fields are true for exactly one tick.
type Intent struct {
	MoveLeft  bool
	MoveRight bool

	// Edges.
	Fire    bool
	Pause   bool
	Restart bool
	Quit    bool

	// Difficulty selection on the menu screen.
	PickedDifficulty bool
	Difficulty       Difficulty

	// Cheats, also edges.
	GrantLife     bool
	GrantScore    bool
	SummonMystery bool

	// Initials entry.
	Typed     []rune
	Backspace bool
	Submit    bool
}

// Reset clears the intent for the next tick. Typed keeps its backing array.
func (in *Intent) Reset() {
	typed := in.Typed[:0]
	*in = Intent{Typed: typed}
}
