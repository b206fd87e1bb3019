package shapes2d

import (
	"image/color"
)

// ButtonState is a set of pressed pointer buttons.
type ButtonState uint8

// see ButtonState
const (
	Primary ButtonState = 1 << iota
	Secondary
	Tertiary
)

// Has returns true if button b is pressed.
func (s ButtonState) Has(b ButtonState) bool {
	return s&b != 0
}

// Input is the state of the pointer for the current and previous frame.
type Input struct {
	Pointer     Point
	PrevPointer Point
	Scroll      int // wheel delta since the previous frame
	Buttons     ButtonState
	PrevButtons ButtonState
}

// Pressed returns true if b went down this frame.
func (in Input) Pressed(b ButtonState) bool {
	return in.Buttons.Has(b) && !in.PrevButtons.Has(b)
}

// Painter paints the fills of the primitives of a batch that lie within a radius of the pointer, measured to their position. The primary button paints a new color, the secondary button erases the fill, and a click of the tertiary button toggles all fills on or off.
type Painter struct {
	*Batch
	Highlight color.RGBA // stroke of primitives within the radius
	Paint     ColorFunc

	radiusSquared float64
	toggle        *toggleState
}

type toggleState struct {
	prims  []*Primitive
	before []color.RGBA
	after  []color.RGBA
}

// NewPainter returns a painter over batch with the given squared radius, painting with colors from paint.
func NewPainter(batch *Batch, radiusSquared float64, paint ColorFunc) *Painter {
	if paint == nil {
		paint = Solid(RGB(255, 255, 255))
	}
	return &Painter{
		Batch:         batch,
		Highlight:     Highlight,
		Paint:         paint,
		radiusSquared: max(radiusSquared, 0.0),
	}
}

// RadiusSquared returns the squared paint radius.
func (p *Painter) RadiusSquared() float64 {
	return p.radiusSquared
}

// SetRadiusSquared sets the squared paint radius, floored at zero.
func (p *Painter) SetRadiusSquared(r2 float64) {
	p.radiusSquared = max(r2, 0.0)
}

// Update applies one frame of input and returns true if the primitives were visited. Nothing happens unless the wheel scrolled, the toggle was clicked, the pointer moved, or the primary or secondary button is held.
func (p *Painter) Update(in Input) bool {
	if in.Scroll != 0 {
		p.SetRadiusSquared(p.radiusSquared + float64(in.Scroll)/2.0)
	}
	toggle := in.Pressed(Tertiary)
	if in.Scroll == 0 && !toggle && in.Pointer == in.PrevPointer && !in.Buttons.Has(Primary) && !in.Buttons.Has(Secondary) {
		return false
	}

	if toggle {
		p.Toggle()
	}
	for _, prim := range p.Primitives {
		if prim.Position.Sub(in.Pointer).LengthSquared() < p.radiusSquared {
			if prim.IsShape() {
				if in.Buttons.Has(Primary) {
					p.setFill(prim, p.Paint())
				} else if in.Buttons.Has(Secondary) {
					p.setFill(prim, Transparent)
				}
			}
			prim.Stroke = p.Highlight
		} else {
			prim.Stroke = Transparent
		}
	}
	return true
}

// Toggle turns all fills on when the first shape has no fill, and off otherwise. Fills turned on get a new paint color, except when directly undoing the previous toggle, which restores the fills from before it.
func (p *Painter) Toggle() {
	var on, decided bool
	var prims []*Primitive
	for _, prim := range p.Primitives {
		if !prim.IsShape() {
			continue
		} else if !decided {
			on, decided = IsTransparent(prim.Fill), true
		}
		prims = append(prims, prim)
	}
	if !decided {
		return
	}

	if p.toggle != nil && p.toggle.undoes(prims) {
		for i, prim := range prims {
			prim.Fill = p.toggle.before[i]
		}
		p.toggle = nil
		return
	}

	state := &toggleState{
		prims:  prims,
		before: make([]color.RGBA, len(prims)),
		after:  make([]color.RGBA, len(prims)),
	}
	for i, prim := range prims {
		state.before[i] = prim.Fill
		if on {
			prim.Fill = p.Paint()
		} else {
			prim.Fill = Transparent
		}
		state.after[i] = prim.Fill
	}
	p.toggle = state
}

// undoes returns true if prims still hold exactly the fills set by the toggle.
func (s *toggleState) undoes(prims []*Primitive) bool {
	if len(prims) != len(s.prims) {
		return false
	}
	for i, prim := range prims {
		if prim != s.prims[i] || prim.Fill != s.after[i] {
			return false
		}
	}
	return true
}

func (p *Painter) setFill(prim *Primitive, c color.RGBA) {
	if prim.Fill != c {
		p.toggle = nil
	}
	prim.Fill = c
}
