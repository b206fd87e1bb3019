package ebiten

import (
	"testing"

	"github.com/tdewolff/shapes2d"
	"github.com/tdewolff/test"
)

func TestNextInput(t *testing.T) {
	in := nextInput(shapes2d.Input{}, 10, 20, 0.0, shapes2d.Primary)
	test.T(t, in.Pointer, shapes2d.Point{10, 20})
	test.That(t, in.Pressed(shapes2d.Primary))

	in = nextInput(in, 12, 20, -1.0, shapes2d.Primary|shapes2d.Tertiary)
	test.T(t, in.PrevPointer, shapes2d.Point{10, 20})
	test.T(t, in.Scroll, -WheelNotch)
	test.That(t, !in.Pressed(shapes2d.Primary))
	test.That(t, in.Pressed(shapes2d.Tertiary))
}
