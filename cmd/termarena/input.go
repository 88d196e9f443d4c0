package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
)

// holdTime is how long a key press keeps counting as held. Terminals only
// report presses and auto-repeats, never releases.
const holdTime = 0.18

const aimReach = 100

// keyInput turns terminal key presses into player intents.
type keyInput struct {
	moveX, moveY float64
	moveLeft     float64
	fireLeft     float64
	claimed      bool
	lastDir      cp.Vector

	origin  func() cp.Vector
	victory func() bool
}

func newKeyInput() *keyInput {
	return &keyInput{lastDir: cp.Vector{X: 1}}
}

// press handles one key event and reports whether it was a movement or
// fire key.
func (k *keyInput) press(ev *tcell.EventKey) bool {
	dx, dy := 0.0, 0.0
	switch ev.Key() {
	case tcell.KeyLeft:
		dx = -1
	case tcell.KeyRight:
		dx = 1
	case tcell.KeyUp:
		dy = -1
	case tcell.KeyDown:
		dy = 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			dx = -1
		case 'd', 'l':
			dx = 1
		case 'w', 'k':
			dy = -1
		case 's', 'j':
			dy = 1
		case ' ', 'f':
			k.fireLeft = holdTime
			return true
		case 'v':
			k.claimed = true
			return true
		default:
			return false
		}
	default:
		return false
	}
	k.moveX, k.moveY = dx, dy
	k.moveLeft = holdTime
	k.lastDir = cp.Vector{X: dx, Y: dy}
	return true
}

// tick ages held keys by dt.
func (k *keyInput) tick(dt float64) {
	k.moveLeft -= dt
	if k.moveLeft <= 0 {
		k.moveX, k.moveY = 0, 0
	}
	k.fireLeft -= dt
	k.claimed = false
}

func (k *keyInput) Axis() (x, y float64) { return k.moveX, k.moveY }

func (k *keyInput) Trigger() bool { return k.fireLeft > 0 }

// Aim points along the last movement direction.
func (k *keyInput) Aim() cp.Vector {
	var from cp.Vector
	if k.origin != nil {
		from = k.origin()
	}
	return from.Add(k.lastDir.Mult(aimReach))
}

// Victory is claimed with v, or automatically once the arena is cleared.
func (k *keyInput) Victory() bool {
	return k.claimed || (k.victory != nil && k.victory())
}
