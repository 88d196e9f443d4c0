package component

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// FlashDuration is how long a damage flash takes to fade back to neutral.
const FlashDuration = 0.25

var (
	// FlashShield tints a hit the shield fully absorbed.
	FlashShield = colorful.Color{R: 0, G: 1, B: 0}
	// FlashHealth tints a hit that reached health.
	FlashHealth = colorful.Color{R: 1, G: 0, B: 0}
	// FlashNeutral is the untinted sprite colour.
	FlashNeutral = colorful.Color{R: 1, G: 1, B: 1}
)

// FlashStart picks the starting tint for a damage flash.
func FlashStart(absorbed bool) colorful.Color {
	if absorbed {
		return FlashShield
	}
	return FlashHealth
}

// FlashColor blends from the hit colour to neutral. progress 0 is the hit
// colour, 1 is neutral.
func FlashColor(from colorful.Color, progress float64) color.Color {
	if progress <= 0 {
		return from
	}
	if progress >= 1 {
		return FlashNeutral
	}
	return from.BlendRgb(FlashNeutral, progress)
}
