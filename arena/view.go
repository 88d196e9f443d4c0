package arena

import (
	"image/color"

	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/component"
)

// View is what a front end draws for one combatant. The actor writes to it
// through the Presentation and Renderer interfaces.
type View struct {
	State          actor.VisibleState
	Stats          map[component.StatKind]actor.StatChange
	ScaleX         float64
	Tint           color.Color
	LocatorVisible bool
}

func newView() *View {
	return &View{
		Stats:  make(map[component.StatKind]actor.StatChange, 4),
		ScaleX: 1,
		Tint:   component.FlashNeutral,
	}
}

func (v *View) StateChanged(s actor.VisibleState) { v.State = s }
func (v *View) StatChanged(c actor.StatChange)    { v.Stats[c.Kind] = c }
func (v *View) SetFacing(scaleX float64)          { v.ScaleX = scaleX }
func (v *View) SetTint(c color.Color)             { v.Tint = c }
func (v *View) SetLocatorVisible(visible bool)    { v.LocatorVisible = visible }

// Fill returns the bar fill for kind in [0, 1].
func (v *View) Fill(kind component.StatKind) float64 {
	c, ok := v.Stats[kind]
	if !ok || c.Max <= 0 {
		return 0
	}
	return c.Current / c.Max
}
