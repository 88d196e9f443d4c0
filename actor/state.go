package actor

// VisibleState is the set of presentation flags derived every tick.
type VisibleState struct {
	Moving    bool
	Attacking bool
	Dying     bool
}

// Phase is the single visible state shown by animation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseAttacking
	PhaseDying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseAttacking:
		return "attacking"
	case PhaseDying:
		return "dying"
	default:
		return "unknown"
	}
}

// Phase collapses the flags, dying first, then attacking, then moving.
func (s VisibleState) Phase() Phase {
	switch {
	case s.Dying:
		return PhaseDying
	case s.Attacking:
		return PhaseAttacking
	case s.Moving:
		return PhaseMoving
	default:
		return PhaseIdle
	}
}

// Facing is the horizontal direction an actor looks.
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Scale returns the sprite x-scale for this facing given the left-facing
// scale.
func (f Facing) Scale(left float64) float64 {
	if f == FacingRight {
		return -left
	}
	return left
}
