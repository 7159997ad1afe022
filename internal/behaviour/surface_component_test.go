package behaviour

import (
	"errors"
	"math/rand"
	"testing"

	"GopherSurface/internal/gradient"
	"GopherSurface/internal/surface"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestSurface(resolution int) *SurfaceComponent {
	config := surface.DefaultConfig()
	config.Resolution = resolution
	return NewSurfaceComponent(config, surface.WithRandom(rand.New(rand.NewSource(1))))
}

func TestSurfaceComponentRefreshesOnEnable(t *testing.T) {
	comp := newTestSurface(4)
	if comp.Mesh() != nil {
		t.Fatal("Mesh should be nil before Awake")
	}

	obj := NewGameObject("Surface")
	obj.AddComponent(comp)

	if comp.Refreshes() != 1 {
		t.Fatalf("Expected 1 refresh after enable, got %d", comp.Refreshes())
	}
	if comp.LastError() != nil {
		t.Fatalf("Unexpected refresh error: %v", comp.LastError())
	}
	if got := comp.Mesh().VertexCount(); got != 25 {
		t.Errorf("Expected 25 vertices, got %d", got)
	}
}

func TestSurfaceComponentUpdateOnlyOnChange(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Surface")
	comp := newTestSurface(2)
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll()
	cm.UpdateAll()
	if comp.Refreshes() != 1 {
		t.Fatalf("Unchanged config should not refresh, got %d refreshes", comp.Refreshes())
	}

	comp.Config.Resolution = 3
	cm.UpdateAll()

	if comp.Refreshes() != 2 {
		t.Fatalf("Expected refresh after config change, got %d", comp.Refreshes())
	}
	if got := comp.Mesh().VertexCount(); got != 16 {
		t.Errorf("Expected 16 vertices after resize, got %d", got)
	}
}

func TestSurfaceComponentRefreshesOnReenable(t *testing.T) {
	obj := NewGameObject("Surface")
	comp := newTestSurface(2)
	obj.AddComponent(comp)

	SetEnabled(comp, false)
	SetEnabled(comp, true)

	if comp.Refreshes() != 2 {
		t.Errorf("Expected refresh on re-enable, got %d", comp.Refreshes())
	}
}

func TestSurfaceComponentKeepsError(t *testing.T) {
	obj := NewGameObject("Surface")
	comp := newTestSurface(0)
	obj.AddComponent(comp)

	if !errors.Is(comp.LastError(), surface.ErrInvalidResolution) {
		t.Fatalf("Expected ErrInvalidResolution, got %v", comp.LastError())
	}

	comp.Config.Resolution = 1
	obj.tick()

	if comp.LastError() != nil {
		t.Errorf("Expected error cleared after valid refresh, got %v", comp.LastError())
	}
	if got := comp.Mesh().VertexCount(); got != 4 {
		t.Errorf("Expected 4 vertices, got %d", got)
	}
}

func TestSurfaceComponentFollowsGradientChange(t *testing.T) {
	obj := NewGameObject("Surface")
	comp := newTestSurface(2)
	comp.Config.Gradient = gradient.Config{
		Mode:      "fixed",
		ColorKeys: []gradient.ColorKeyConfig{{Time: 0, Color: "#ff0000"}},
	}
	obj.AddComponent(comp)

	if got := comp.Creator().Grid().Colors[0]; got != (mgl32.Vec4{1, 0, 0, 1}) {
		t.Fatalf("Expected red surface, got %v", got)
	}

	comp.Config.Gradient.ColorKeys[0].Color = "#00ff00"
	obj.tick()

	if comp.Refreshes() != 2 {
		t.Fatalf("Gradient edit should trigger a refresh, got %d refreshes", comp.Refreshes())
	}
	for v, c := range comp.Creator().Grid().Colors {
		if c != (mgl32.Vec4{0, 1, 0, 1}) {
			t.Errorf("Vertex %d: expected green, got %v", v, c)
		}
	}
}

func TestSurfaceComponentRejectsBadFrequency(t *testing.T) {
	obj := NewGameObject("Surface")
	comp := newTestSurface(2)
	comp.Config.Damping = true
	comp.Config.Frequency = 0
	obj.AddComponent(comp)

	if !errors.Is(comp.LastError(), surface.ErrInvalidFrequency) {
		t.Errorf("Expected ErrInvalidFrequency, got %v", comp.LastError())
	}
}
