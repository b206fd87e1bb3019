package opengl

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestOrthographic(t *testing.T) {
	m := Orthographic(800.0, 400.0)
	var tests = []struct {
		x, y   float32
		cx, cy float32
	}{
		{0, 0, -1, 1},
		{800, 400, 1, -1},
		{400, 200, 0, 0},
		{800, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.x, ",", tt.y), func(t *testing.T) {
			cx, cy := Project(m, tt.x, tt.y)
			test.That(t, math.Abs(float64(cx-tt.cx)) < 1e-6, cx)
			test.That(t, math.Abs(float64(cy-tt.cy)) < 1e-6, cy)
		})
	}
}
