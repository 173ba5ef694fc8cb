package generator

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strings"
	"time"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/dungeon/raster"
	"dungeonforge/pkg/engine/world"
	"dungeonforge/pkg/game/floor"
)

var (
	// ErrUnknownGenerator is returned by ByName for names no generator answers to
	ErrUnknownGenerator = errors.New("unknown generator")
	// ErrNoRooms is returned when a pipeline ends up with nothing to carve
	ErrNoRooms = errors.New("no rooms placed")
	// ErrInvalidGrid is returned when a carved grid fails validation
	ErrInvalidGrid = errors.New("generated invalid grid")
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(level int) (*world.Grid, error)
	Name() string
}

// DetailedGenerator also reports what went into the grid
type DetailedGenerator interface {
	GridGenerator
	GenerateDetailed(level int) (*Result, error)
}

// Config is shared by all generators. The zero value draws a fresh seed per
// generation, lets the rasterizer pick corridor strategies and logs nothing.
type Config struct {
	Seed       int64
	Rasterizer dungeon.PassageRasterizerType
	Logger     *log.Logger
}

func (c Config) source() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

func (c Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.Logger
}

// Result is a generated floor with the numbers behind it
type Result struct {
	Generator string
	Level     int
	Seed      int64
	Theme     floor.Theme

	Grid  *world.Grid
	Rooms []dungeon.GridRoom[string]

	Connections int
	Placed      int
	Dropped     int
	// Stitched counts the corridors added to join rooms whose connections
	// were lost with dropped rooms
	Stitched int
	Carved   raster.Stats
}

// Available generators
var (
	RoomsAndCorridors = &RoomsAndCorridorsGenerator{}
	Isaac             = &IsaacGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator DetailedGenerator = RoomsAndCorridors

// ByName returns a generator configured with cfg. name is either a short key
// ("rooms", "isaac") or a generator's Name, case-insensitive.
func ByName(name string, cfg Config) (DetailedGenerator, error) {
	switch key := strings.ToLower(strings.TrimSpace(name)); key {
	case "", "rooms", strings.ToLower(RoomsAndCorridors.Name()):
		return &RoomsAndCorridorsGenerator{Config: cfg}, nil
	case "isaac", strings.ToLower(Isaac.Name()):
		return &IsaacGenerator{Config: cfg}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownGenerator)
	}
}

// Names lists the short keys ByName accepts
func Names() []string {
	return []string{"rooms", "isaac"}
}

func validate(name string, level int, grid *world.Grid) error {
	if msg := grid.Validate(); msg != "" {
		return fmt.Errorf("%s level %d: %w: %s", name, level, ErrInvalidGrid, msg)
	}
	return nil
}
