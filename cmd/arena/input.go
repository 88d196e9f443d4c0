package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

const (
	stickDeadzone = 0.2
	// aimReach is how far ahead of the player a stick aim points.
	aimReach = 100
)

// Input polls keyboard, mouse and the first gamepad once per frame and
// serves the result to the player variant.
type Input struct {
	moveX, moveY float64
	trigger      bool
	aim          cp.Vector
	stickAim     cp.Vector

	pausePressed   bool
	restartPressed bool
	quitPressed    bool
	victoryPressed bool

	origin  func() cp.Vector
	victory func() bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.pausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.restartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.quitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.victoryPressed = inpututil.IsKeyJustPressed(ebiten.KeyV)

	moveX, moveY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveY += 1
	}
	trigger := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)

	mx, my := ebiten.CursorPosition()
	i.aim = cp.Vector{X: float64(mx), Y: float64(my)}
	i.stickAim = cp.Vector{}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX, moveY = lx, ly
		}

		trigger = trigger || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		i.pausePressed = i.pausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		i.restartPressed = i.restartPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			i.stickAim = cp.Vector{X: rx, Y: ry}.Normalize().Mult(aimReach)
		}
	}

	i.moveX, i.moveY = moveX, moveY
	i.trigger = trigger
}

func (i *Input) Axis() (x, y float64) { return i.moveX, i.moveY }

func (i *Input) Trigger() bool { return i.trigger }

// Aim is the cursor in world space, or a point along the right stick when
// it is held.
func (i *Input) Aim() cp.Vector {
	if i.stickAim.Length() > 0 && i.origin != nil {
		return i.origin().Add(i.stickAim)
	}
	return i.aim
}

// Victory is claimed with V, or automatically once the arena is cleared.
func (i *Input) Victory() bool {
	return i.victoryPressed || (i.victory != nil && i.victory())
}
