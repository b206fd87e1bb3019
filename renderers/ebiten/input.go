package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tdewolff/shapes2d"
)

// WheelNotch is the scroll delta of one wheel notch.
const WheelNotch = 120

// InputReader reads the pointer state of each frame.
type InputReader struct {
	prev shapes2d.Input
}

// Read returns the pointer state of the current frame together with that of the previous call.
func (r *InputReader) Read() shapes2d.Input {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()

	var buttons shapes2d.ButtonState
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= shapes2d.Primary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= shapes2d.Secondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= shapes2d.Tertiary
	}
	r.prev = nextInput(r.prev, x, y, wheel, buttons)
	return r.prev
}

func nextInput(prev shapes2d.Input, x, y int, wheel float64, buttons shapes2d.ButtonState) shapes2d.Input {
	return shapes2d.Input{
		Pointer:     shapes2d.Point{X: float64(x), Y: float64(y)},
		PrevPointer: prev.Pointer,
		Scroll:      int(math.Round(wheel * WheelNotch)),
		Buttons:     buttons,
		PrevButtons: prev.Buttons,
	}
}
