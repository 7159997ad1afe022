package surface

import (
	"GopherSurface/internal/noise"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorMapper turns a scalar in [0, 1] into a vertex color.
type ColorMapper interface {
	Evaluate(t float32) mgl32.Vec4
}

// EulerRotation builds the rotation for Euler angles in degrees, applied around z,
// then x, then y.
func EulerRotation(degrees mgl32.Vec3) mgl32.Quat {
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(degrees.X()), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(degrees.Y()), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(degrees.Z()), mgl32.Vec3{0, 0, 1})
	return rotationY.Mul(rotationX).Mul(rotationZ)
}

// Corners returns the four corners of the noise sampling square: the unit square in
// the XY plane, rotated and then offset.
func Corners(offset, rotation mgl32.Vec3) (point00, point10, point01, point11 mgl32.Vec3) {
	q := EulerRotation(rotation)
	point00 = q.Rotate(mgl32.Vec3{-0.5, -0.5, 0}).Add(offset)
	point10 = q.Rotate(mgl32.Vec3{0.5, -0.5, 0}).Add(offset)
	point01 = q.Rotate(mgl32.Vec3{-0.5, 0.5, 0}).Add(offset)
	point11 = q.Rotate(mgl32.Vec3{0.5, 0.5, 0}).Add(offset)
	return
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Normalize centers a raw noise sample around zero: value noise is shifted down by
// half, the centered kinds are halved.
func Normalize(kind noise.Kind, sample float32) float32 {
	if kind.Centered() {
		return sample * 0.5
	}
	return sample - 0.5
}

// Shade colors one normalized sample. With coloringForStrength the gradient sees the
// raw sample and the amplitude is applied afterwards; otherwise it sees the scaled
// sample. The returned height is the scaled sample in both cases.
func Shade(mapper ColorMapper, sample, amplitude float32, coloringForStrength bool) (color mgl32.Vec4, height float32) {
	if coloringForStrength {
		color = mapper.Evaluate(sample + 0.5)
		sample *= amplitude
	} else {
		sample *= amplitude
		color = mapper.Evaluate(sample + 0.5)
	}
	return color, sample
}

// colorize samples the noise over the lattice and writes the color buffer. The
// scaled sample is not applied to heights; relief comes from the displacement
// engine alone.
func colorize(grid *Grid, config Config, sampler noise.Sampler, mapper ColorMapper) {
	resolution := grid.Resolution
	point00, point10, point01, point11 := Corners(config.Offset, config.Rotation)

	kind := config.NoiseKind()
	amplitude := config.Amplitude()
	stepSize := 1 / float32(resolution)

	for v, y := 0, 0; y <= resolution; y++ {
		point0 := lerp(point00, point01, float32(y)*stepSize)
		point1 := lerp(point10, point11, float32(y)*stepSize)
		for x := 0; x <= resolution; x, v = x+1, v+1 {
			point := lerp(point0, point1, float32(x)*stepSize)
			sample := sampler.Sum(kind, config.Dimensions, point, config.Frequency, config.Octaves, config.Lacunarity, config.Persistence)
			grid.Colors[v], _ = Shade(mapper, Normalize(kind, sample), amplitude, config.ColoringForStrength)
		}
	}
}
