package game

//go:generate go run golang.org/x/tools/cmd/stringer -type=AlienKind,Owner,Mode,Difficulty -output=kinds_string.go

// AlienKind identifies the three classic alien rows.
type AlienKind int

const (
	Squid AlienKind = iota
	Crab
	Octopus
)

// Owner tags which side fired a bullet. Bullets only collide with the
// opposing side.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerAlien
)

// Mode is the session finite-state machine.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
	ModeVictory
)

// Difficulty selects alien fire rate and the score multiplier.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Multiplier returns the score multiplier for the difficulty.
func (d Difficulty) Multiplier() int {
	switch d {
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 1
	}
}

// FireCooldown returns the alien shooting cooldown in seconds.
func (d Difficulty) FireCooldown() float64 {
	switch d {
	case Medium:
		return MediumFireCooldown
	case Hard:
		return HardFireCooldown
	default:
		return EasyFireCooldown
	}
}
