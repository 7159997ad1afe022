package surface

import (
	"fmt"
	"math/rand"
	"reflect"
	"time"

	"GopherSurface/internal/gradient"
	"GopherSurface/internal/logger"
	"GopherSurface/internal/mesh"
	"GopherSurface/internal/noise"

	"go.uber.org/zap"
)

// Creator owns a surface mesh and regenerates it from Config on every Refresh.
// It is not safe for concurrent use.
type Creator struct {
	Config Config

	sampler noise.Sampler
	mapper  ColorMapper
	rnd     Random
	normals NormalCalculator

	// fixedMapper is set by WithColorMapper; otherwise mapper is built from
	// Config.Gradient and rebuilt when builtGradient differs from it.
	fixedMapper   bool
	builtGradient gradient.Config

	model             *mesh.Model
	grid              *Grid
	engine            *Engine
	currentResolution int
}

// Option overrides one of the collaborators NewCreator would otherwise default.
type Option func(*Creator)

// WithSampler sets the noise source used by the coloring pass.
func WithSampler(sampler noise.Sampler) Option {
	return func(c *Creator) { c.sampler = sampler }
}

// WithColorMapper replaces the gradient built from Config.Gradient. Later gradient
// config changes are then ignored.
func WithColorMapper(mapper ColorMapper) Option {
	return func(c *Creator) {
		c.mapper = mapper
		c.fixedMapper = mapper != nil
	}
}

// WithRandom sets the jitter source. Without it a time-seeded source is used.
func WithRandom(rnd Random) Option {
	return func(c *Creator) { c.rnd = rnd }
}

// WithNormalCalculator sets the normal pass run after displacement.
func WithNormalCalculator(normals NormalCalculator) Option {
	return func(c *Creator) { c.normals = normals }
}

// WithModel makes the creator upload into an existing model.
func WithModel(model *mesh.Model) Option {
	return func(c *Creator) { c.model = model }
}

// NewCreator builds a creator for config. Nothing is generated until Refresh.
func NewCreator(config Config, opts ...Option) *Creator {
	c := &Creator{Config: config}
	for _, opt := range opts {
		opt(c)
	}

	if c.sampler == nil {
		c.sampler = noise.NewGenerator(0)
	}
	if c.rnd == nil {
		c.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.normals == nil {
		c.normals = mesh.RecalculateNormals
	}
	if c.model == nil {
		c.model = mesh.NewModel("Surface Mesh")
	}
	return c
}

// Refresh regenerates the surface: it rebuilds the grid if the resolution changed,
// colors the vertices from noise, displaces heights and uploads the buffers.
// An invalid Config or gradient is reported before anything is touched.
func (c *Creator) Refresh() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if err := c.updateMapper(); err != nil {
		return err
	}

	if c.grid == nil || c.Config.Resolution != c.currentResolution {
		if err := c.createGrid(); err != nil {
			return err
		}
	}

	colorize(c.grid, c.Config, c.sampler, c.mapper)
	c.engine.Run()
	Assemble(c.grid, c.model, c.normals)

	logger.Log.Debug("Surface refreshed",
		zap.Int("resolution", c.grid.Resolution),
		zap.Int("steps", c.engine.Steps()),
		zap.Float32("jitter", c.engine.Jitter()))
	return nil
}

func (c *Creator) updateMapper() error {
	if c.fixedMapper || (c.mapper != nil && reflect.DeepEqual(c.builtGradient, c.Config.Gradient)) {
		return nil
	}

	mapper, err := c.Config.Gradient.Build()
	if err != nil {
		return fmt.Errorf("invalid gradient: %w", err)
	}
	c.mapper = mapper
	c.builtGradient = c.Config.Gradient.Clone()
	logger.Log.Debug("Surface gradient built", zap.Stringer("mode", mapper.Mode()))
	return nil
}

func (c *Creator) createGrid() error {
	grid, err := NewGrid(c.Config.Resolution)
	if err != nil {
		return err
	}

	c.currentResolution = c.Config.Resolution
	c.grid = grid
	c.engine = NewEngine(grid.Lattice, c.rnd)

	c.model.Clear()
	c.model.SetVertices(grid.Vertices)
	c.model.SetColors(grid.Colors)
	c.model.SetNormals(grid.Normals)
	c.model.SetTextureCoords(grid.UV)
	c.model.SetTriangles(grid.Triangles)

	logger.Log.Info("Surface grid created",
		zap.Int("resolution", grid.Resolution),
		zap.Int("vertices", len(grid.Vertices)),
		zap.Int("triangles", len(grid.Triangles)/3))
	return nil
}

// Model is the mesh the creator uploads into.
func (c *Creator) Model() *mesh.Model {
	return c.model
}

// Grid is the grid for the current resolution, nil before the first Refresh.
func (c *Creator) Grid() *Grid {
	return c.grid
}

// Engine is the displacement engine bound to the current grid.
func (c *Creator) Engine() *Engine {
	return c.engine
}
