package game

const (
	WorldW  = 1000.0
	WorldH  = 800.0
	GroundH = 50.0

	PlayerW     = 60.0
	PlayerH     = 40.0
	PlayerSpeed = 200.0 // px/s

	BulletW           = 5.0
	BulletH           = 15.0
	PlayerBulletSpeed = 400.0 // px/s, upward
	AlienBulletSpeed  = 300.0 // px/s, downward

	AlienW            = 40.0
	AlienH            = 30.0
	AlienRows         = 5
	AlienCols         = 11
	AlienOriginX      = 50.0
	AlienOriginY      = 50.0
	AlienPitchX       = 50.0
	AlienPitchY       = 40.0
	AlienBaseSpeed    = 200.0 // px/s horizontal
	AlienSpeedPerWave = 40.0  // added per cleared wave
	AlienDescendStep  = 20.0  // px per edge bounce
	AlienAnimInterval = 0.25  // seconds per animation frame
	AlienColorCount   = 6

	// Hit detection is slightly forgiving around aliens.
	AlienHitPadding = 5.0

	AlienFireChance    = 0.3
	EasyFireCooldown   = 0.75
	MediumFireCooldown = 0.35
	HardFireCooldown   = 0.15

	MysteryW           = 60.0
	MysteryH           = 30.0
	MysterySpeed       = 100.0 // px/s
	MysteryY           = 50.0
	MysteryCooldownMin = 30.0 // seconds
	MysteryCooldownMax = 50.0
)

// Rules is the configurable part of the game balance, held as a singleton so
// tests and the entry point can override it.
type Rules struct {
	ScoreTable  ScoreTable
	MysteryBase int
	MysteryCap  int
	StartLives  int
	FinalLevel  int
}

// ScoreTable maps alien kinds to their point values before the difficulty
// multiplier.
type ScoreTable struct {
	Squid   int
	Crab    int
	Octopus int
}

// Points returns the point value for an alien kind.
func (t ScoreTable) Points(kind AlienKind) int {
	switch kind {
	case Squid:
		return t.Squid
	case Crab:
		return t.Crab
	default:
		return t.Octopus
	}
}

// DefaultRules returns the classic balance: squid 30, crab 20, octopus 10,
// mystery bonus 50-300, three lives, five waves to victory.
func DefaultRules() Rules {
	return Rules{
		ScoreTable:  ScoreTable{Squid: 30, Crab: 20, Octopus: 10},
		MysteryBase: 50,
		MysteryCap:  300,
		StartLives:  3,
		FinalLevel:  5,
	}
}

// MysteryBonus computes the mystery-ship bonus from the number of shots the
// player has fired, clamped to the configured bounds.
func (r Rules) MysteryBonus(shotsFired int) int {
	increment := ((shotsFired + 22) % 15) * 50
	bonus := r.MysteryBase + increment
	if bonus > r.MysteryCap {
		return r.MysteryCap
	}
	return bonus
}
