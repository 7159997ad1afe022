package surface

import (
	"math"
)

const (
	// CornerSeed is the height given to the four lattice corners before displacement,
	// and the jitter amplitude the recursion starts from.
	CornerSeed float32 = 0.05
)

// DecayFactor divides the jitter amplitude once per displacement step.
var DecayFactor = float32(math.Pow(2, 1.2))

// Random is the uniform source used for jitter. *rand.Rand satisfies it.
type Random interface {
	// Float32 returns a value in [0, 1).
	Float32() float32
}

// Step describes one displacement call that passed the size guard.
type Step struct {
	X, Y   int
	Size   int
	Jitter float32 // amplitude used by this step's square and diamond draws
}

// Engine runs the diamond-square recursion over a lattice. The jitter amplitude is
// shared by the whole recursion and shrinks after every step, siblings included.
//
// The schedule is irregular: size is incremented before halving and the
// recursion visits the centre, top-left, top-right and bottom-left sub-cells only.
// For sizes that are not powers of two the integer halving stops short of single
// cells. Do not normalize this without re-baselining every generated surface.
type Engine struct {
	lattice *Lattice
	rnd     Random
	jitter  float32
	steps   int

	// Trace, when set, is called at the start of every step.
	Trace func(Step)
}

// NewEngine binds an engine to lattice, drawing jitter from rnd.
func NewEngine(lattice *Lattice, rnd Random) *Engine {
	return &Engine{lattice: lattice, rnd: rnd, jitter: CornerSeed}
}

// Jitter is the current amplitude of the random perturbation.
func (e *Engine) Jitter() float32 {
	return e.jitter
}

// Steps is the number of steps run since the last Run.
func (e *Engine) Steps() int {
	return e.steps
}

// Run flattens the lattice, seeds the corners and displaces the whole grid.
func (e *Engine) Run() {
	e.lattice.ResetHeights()
	e.SeedCorners()
	e.Displace(0, 0, e.lattice.resolution)
}

// SeedCorners sets the four corners to CornerSeed and restores the initial jitter.
func (e *Engine) SeedCorners() {
	r := e.lattice.resolution
	e.lattice.SetHeight(0, 0, CornerSeed)
	e.lattice.SetHeight(r, 0, CornerSeed)
	e.lattice.SetHeight(0, r, CornerSeed)
	e.lattice.SetHeight(r, r, CornerSeed)
	e.jitter = CornerSeed
	e.steps = 0
}

// Displace runs one square step and four diamond steps for the size×size cell at
// (x, y), decays the jitter and recurses.
func (e *Engine) Displace(x, y, size int) {
	if size < 2 {
		return
	}
	if e.Trace != nil {
		e.Trace(Step{X: x, Y: y, Size: size, Jitter: e.jitter})
	}
	e.steps++

	e.Square(x, y, size)

	e.Diamond(x+size/2, y, size)
	e.Diamond(x, y+size/2, size)
	e.Diamond(x+size/2, y+size, size)
	e.Diamond(x+size, y+size/2, size)

	e.jitter /= DecayFactor

	size++
	e.Displace(x+size/2, y+size/2, size/2)
	e.Displace(x, y, size/2)
	e.Displace(x+size/2, y, size/2)
	e.Displace(x, y+size/2, size/2)
}

// Square sets the cell midpoint to the average of the cell corners plus jitter.
func (e *Engine) Square(x, y, size int) {
	r := e.lattice.resolution
	xp := Wrap(x, size, r)
	yp := Wrap(y, size, r)

	l := e.lattice
	average := l.Height(x, y) + l.Height(xp, y) + l.Height(x, yp) + l.Height(xp, yp)
	average /= 4
	e.set(x+size/2, y+size/2, average+e.draw())
}

// Diamond sets (x, y) from four neighbours half a cell away: left, the diagonal
// below-right, right and above.
func (e *Engine) Diamond(x, y, size int) {
	size /= 2
	r := e.lattice.resolution
	xm := WrapLow(x, size)
	xp := Wrap(x, size, r)
	ym := WrapLow(y, size)
	yp := Wrap(y, size, r)

	l := e.lattice
	average := l.Height(xm, y) + l.Height(xp, yp) + l.Height(xp, y) + l.Height(x, ym)
	average /= 4
	e.set(x, y, average+e.draw())
}

// set writes a displaced height. Targets past the lattice edge are dropped and the
// corner seeds are never overwritten.
func (e *Engine) set(x, y int, height float32) {
	if e.lattice.IsCorner(x, y) {
		return
	}
	e.lattice.SetHeight(x, y, height)
}

// draw returns a uniform value in [0, jitter).
func (e *Engine) draw() float32 {
	return e.rnd.Float32() * e.jitter
}

// Wrap returns c+offset, folded back by resolution when it runs past the far edge.
//
//	c+offset <= resolution  ->  c+offset
//	c+offset >  resolution  ->  c+offset-resolution
//
// The result can still exceed resolution when c itself is past the edge; lattice
// reads clamp it.
func Wrap(c, offset, resolution int) int {
	if c+offset > resolution {
		return c + offset - resolution
	}
	return c + offset
}

// WrapLow returns c-offset, reflected to |offset| when it would go below zero.
//
//	c-offset >= 0  ->  c-offset
//	c-offset <  0  ->  |offset|
func WrapLow(c, offset int) int {
	if c-offset < 0 {
		if offset < 0 {
			return -offset
		}
		return offset
	}
	return c - offset
}
