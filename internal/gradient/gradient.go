package gradient

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode controls how a Gradient interpolates between keys.
type Mode int

const (
	// Blend interpolates linearly between neighbouring keys.
	Blend Mode = iota
	// Fixed returns the value of the first key at or after the evaluated time.
	Fixed
)

func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "blend":
		return Blend, nil
	case "fixed":
		return Fixed, nil
	}
	return Blend, fmt.Errorf("unknown gradient mode %q", name)
}

func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}
	return "blend"
}

type ColorKey struct {
	Time  float32
	Color mgl32.Vec3
}

type AlphaKey struct {
	Time  float32
	Alpha float32
}

var ErrNoKeys = errors.New("gradient needs at least one color key")

// Gradient maps a scalar in [0, 1] to an RGBA color. Color and alpha are keyed
// separately.
type Gradient struct {
	mode      Mode
	colorKeys []ColorKey
	alphaKeys []AlphaKey
}

// New sorts the keys by time. Without alpha keys the gradient is fully opaque.
func New(mode Mode, colorKeys []ColorKey, alphaKeys []AlphaKey) (*Gradient, error) {
	if len(colorKeys) == 0 {
		return nil, ErrNoKeys
	}

	g := &Gradient{
		mode:      mode,
		colorKeys: append([]ColorKey(nil), colorKeys...),
		alphaKeys: append([]AlphaKey(nil), alphaKeys...),
	}
	if len(g.alphaKeys) == 0 {
		g.alphaKeys = []AlphaKey{{Time: 0, Alpha: 1}}
	}

	sort.SliceStable(g.colorKeys, func(i, j int) bool { return g.colorKeys[i].Time < g.colorKeys[j].Time })
	sort.SliceStable(g.alphaKeys, func(i, j int) bool { return g.alphaKeys[i].Time < g.alphaKeys[j].Time })
	return g, nil
}

// Default is an opaque black to white ramp.
func Default() *Gradient {
	g, _ := New(Blend, []ColorKey{
		{Time: 0, Color: mgl32.Vec3{0, 0, 0}},
		{Time: 1, Color: mgl32.Vec3{1, 1, 1}},
	}, nil)
	return g
}

func (g *Gradient) Mode() Mode {
	return g.mode
}

// Evaluate returns the color at t. Values outside the key range take the nearest key.
func (g *Gradient) Evaluate(t float32) mgl32.Vec4 {
	rgb := g.evaluateColor(t)
	return rgb.Vec4(g.evaluateAlpha(t))
}

func (g *Gradient) evaluateColor(t float32) mgl32.Vec3 {
	keys := g.colorKeys
	if t <= keys[0].Time {
		return keys[0].Color
	}
	last := len(keys) - 1
	if t >= keys[last].Time {
		return keys[last].Color
	}

	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time >= t })
	next := keys[i]
	if g.mode == Fixed || next.Time == t {
		return next.Color
	}
	prev := keys[i-1]
	f := (t - prev.Time) / (next.Time - prev.Time)
	return prev.Color.Add(next.Color.Sub(prev.Color).Mul(f))
}

func (g *Gradient) evaluateAlpha(t float32) float32 {
	keys := g.alphaKeys
	if t <= keys[0].Time {
		return keys[0].Alpha
	}
	last := len(keys) - 1
	if t >= keys[last].Time {
		return keys[last].Alpha
	}

	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time >= t })
	next := keys[i]
	if g.mode == Fixed || next.Time == t {
		return next.Alpha
	}
	prev := keys[i-1]
	f := (t - prev.Time) / (next.Time - prev.Time)
	return prev.Alpha + (next.Alpha-prev.Alpha)*f
}

// ParseHex reads "#rrggbb" or "rrggbb" into a color with components in [0, 1].
func ParseHex(s string) (mgl32.Vec3, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return mgl32.Vec3{
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}
