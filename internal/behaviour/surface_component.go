package behaviour

import (
	"reflect"

	"GopherSurface/internal/logger"
	"GopherSurface/internal/mesh"
	"GopherSurface/internal/surface"

	"go.uber.org/zap"
)

// SurfaceComponent keeps a generated surface in sync with its Config. It refreshes
// every time it is enabled and on any Update after Config changed.
type SurfaceComponent struct {
	BaseComponent
	Config surface.Config

	options   []surface.Option
	creator   *surface.Creator
	applied   surface.Config
	refreshes int
	lastErr   error
}

func NewSurfaceComponent(config surface.Config, opts ...surface.Option) *SurfaceComponent {
	return &SurfaceComponent{Config: config, options: opts}
}

func (s *SurfaceComponent) TypeName() string {
	return "SurfaceComponent"
}

func (s *SurfaceComponent) Awake() {
	s.creator = surface.NewCreator(s.Config, s.options...)
}

func (s *SurfaceComponent) OnEnable() {
	s.Refresh()
}

func (s *SurfaceComponent) Update() {
	if !reflect.DeepEqual(s.Config, s.applied) {
		s.Refresh()
	}
}

// Refresh regenerates the surface from Config. On error the previous mesh stays
// in place and the error is kept for LastError.
func (s *SurfaceComponent) Refresh() {
	if s.creator == nil {
		s.Awake()
	}
	s.creator.Config = s.Config
	s.applied = s.Config.Clone()
	s.refreshes++

	s.lastErr = s.creator.Refresh()
	if s.lastErr != nil {
		logger.Log.Error("Surface refresh failed",
			zap.String("object", s.ownerName()),
			zap.Error(s.lastErr))
	}
}

func (s *SurfaceComponent) ownerName() string {
	if owner := s.Owner(); owner != nil {
		return owner.Name
	}
	return ""
}

// Mesh is the model the surface uploads into, nil before Awake.
func (s *SurfaceComponent) Mesh() *mesh.Model {
	if s.creator == nil {
		return nil
	}
	return s.creator.Model()
}

func (s *SurfaceComponent) Creator() *surface.Creator {
	return s.creator
}

// Refreshes counts refresh attempts, failed ones included.
func (s *SurfaceComponent) Refreshes() int {
	return s.refreshes
}

func (s *SurfaceComponent) LastError() error {
	return s.lastErr
}
