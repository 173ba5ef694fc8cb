// Package layout embeds an abstract dungeon graph into a bounded grid by
// placing each room as a rectangle with rejection sampling.
package layout

import (
	"io"
	"log"
	"maps"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"dungeonforge/pkg/dungeon"
)

// Defaults for Config
const (
	DefaultMinRoomSize     = 4
	DefaultMaxRoomSize     = 9
	DefaultRoomMoatSize    = 1
	DefaultMaxTriesPerRoom = 1000
)

// Config holds the placement parameters. All fields may be changed before a
// placement run.
type Config struct {
	MinRoomSize     int
	MaxRoomSize     int
	RoomMoatSize    int
	MaxTriesPerRoom int

	// Rasterizer is attached to every connection of the placed graph
	Rasterizer dungeon.PassageRasterizerType

	// RoomSizes, when set, replaces the square Min/MaxRoomSize range of the
	// built-in generator with per-axis ranges
	RoomSizes *dungeon.RoomSizeData

	Rand   *rand.Rand
	IDs    *dungeon.IDSource
	Logger *log.Logger
}

// DefaultConfig returns the default placement parameters with a time-seeded
// random source.
func DefaultConfig() Config {
	return Config{
		MinRoomSize:     DefaultMinRoomSize,
		MaxRoomSize:     DefaultMaxRoomSize,
		RoomMoatSize:    DefaultRoomMoatSize,
		MaxTriesPerRoom: DefaultMaxTriesPerRoom,
		Rasterizer:      dungeon.Unspecified,
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:          log.New(io.Discard, "", 0),
	}
}

// Option customises a Config
type Option func(*Config)

// WithConfig replaces the whole configuration
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithRand sets the random source
func WithRand(rng *rand.Rand) Option {
	return func(c *Config) { c.Rand = rng }
}

// WithSeed sets a random source seeded with seed
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Rand = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger that reports dropped rooms
func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithRasterizer sets the strategy attached to placed connections
func WithRasterizer(t dungeon.PassageRasterizerType) Option {
	return func(c *Config) { c.Rasterizer = t }
}

// WithRoomSizes uses per-axis size ranges and the preset's moat
func WithRoomSizes(s dungeon.RoomSizeData) Option {
	return func(c *Config) {
		c.RoomSizes = &s
		c.RoomMoatSize = s.Moat
	}
}

// WithIDSource sets the identity source of the placed graph
func WithIDSource(ids *dungeon.IDSource) Option {
	return func(c *Config) { c.IDs = ids }
}

// RandomSpatialLayout places the rooms of a dungeon graph on a grid. Rooms are
// placed one at a time in graph node order; a room that finds no free spot
// within MaxTriesPerRoom draws is dropped together with its connections.
// A RandomSpatialLayout is not safe for concurrent use.
type RandomSpatialLayout[R any, C comparable] struct {
	Config

	gridWidth  int
	gridHeight int
	graph      *dungeon.Graph[R, C]

	placed      map[int]dungeon.GridRoom[R]
	placedOrder []dungeon.GridRoom[R]
	dropped     []int
	attempts    int
}

// New creates a layout for graph on a gridWidth x gridHeight grid
func New[R any, C comparable](gridWidth, gridHeight int, graph *dungeon.Graph[R, C], opts ...Option) *RandomSpatialLayout[R, C] {
	l := &RandomSpatialLayout[R, C]{
		Config:     DefaultConfig(),
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		graph:      graph,
		placed:     make(map[int]dungeon.GridRoom[R]),
	}
	for _, opt := range opts {
		opt(&l.Config)
	}
	return l
}

// GridWidth returns the width of the target grid
func (l *RandomSpatialLayout[R, C]) GridWidth() int {
	return l.gridWidth
}

// GridHeight returns the height of the target grid
func (l *RandomSpatialLayout[R, C]) GridHeight() int {
	return l.gridHeight
}

// Bounds returns the grid extents and square size range handed to generators
func (l *RandomSpatialLayout[R, C]) Bounds() Bounds {
	return Bounds{
		GridWidth:   l.gridWidth,
		GridHeight:  l.gridHeight,
		MinRoomSize: l.MinRoomSize,
		MaxRoomSize: l.MaxRoomSize,
	}
}

// RandomRoomPlacement places rooms with the built-in generator
func (l *RandomSpatialLayout[R, C]) RandomRoomPlacement() *dungeon.Graph[dungeon.GridRoom[R], dungeon.GridPassageConnectionData[C]] {
	if l.RoomSizes != nil {
		return l.PlaceRooms(SizedRoomGenerator[R]{Sizes: *l.RoomSizes})
	}
	return l.PlaceRooms(UniformRoomGenerator[R]{})
}

// PlaceRooms places rooms with gen and returns the graph of placed rooms.
// Each output room has one exit and weight 1; each surviving connection keeps
// its weight and carries the configured rasterizer.
func (l *RandomSpatialLayout[R, C]) PlaceRooms(gen RoomGenerator[R]) *dungeon.Graph[dungeon.GridRoom[R], dungeon.GridPassageConnectionData[C]] {
	l.reset()

	out := dungeon.NewBuilder[dungeon.GridRoom[R], dungeon.GridPassageConnectionData[C]](l.IDs)
	mapping := make(map[int]int)
	bounds := l.Bounds()

	for _, room := range l.graph.Rooms() {
		placed, ok := l.tryPlaceRoom(room, gen, bounds)
		if !ok {
			l.dropped = append(l.dropped, room.ID)
			l.logger().Printf("room %d dropped after %d tries", room.ID, l.MaxTriesPerRoom)
			continue
		}
		l.placed[room.ID] = placed
		l.placedOrder = append(l.placedOrder, placed)
		mapping[room.ID] = out.AddRoom(1, 1, placed)
	}

	dropped := l.DroppedRoomIDs()
	for _, c := range l.graph.Connections() {
		if dropped.Has(c.From.RoomID) || dropped.Has(c.To.RoomID) {
			l.logger().Printf("connection %d-%d lost with a dropped room", c.From.RoomID, c.To.RoomID)
			continue
		}
		from, okFrom := mapping[c.From.RoomID]
		to, okTo := mapping[c.To.RoomID]
		if !okFrom || !okTo {
			continue
		}
		out.AddConnectionWithExits(
			dungeon.Endpoint{RoomID: from, Exit: c.From.Exit},
			dungeon.Endpoint{RoomID: to, Exit: c.To.Exit},
			dungeon.NewGridPassageConnectionData(c.Data, l.Rasterizer),
			c.Weight,
		)
	}

	return out.Build()
}

func (l *RandomSpatialLayout[R, C]) tryPlaceRoom(room dungeon.Room[R], gen RoomGenerator[R], bounds Bounds) (dungeon.GridRoom[R], bool) {
	rng := l.source()
	for try := 0; try < l.MaxTriesPerRoom; try++ {
		l.attempts++
		candidate, ok := gen.Generate(room, bounds, rng)
		if !ok || !bounds.Fits(candidate.MinX, candidate.MinY, candidate.Width, candidate.Height) {
			continue
		}
		if l.canPlace(candidate) {
			return candidate, true
		}
	}
	var none dungeon.GridRoom[R]
	return none, false
}

// canPlace checks the moat against every room placed so far. With a zero
// moat rooms may touch but never share a cell.
func (l *RandomSpatialLayout[R, C]) canPlace(candidate dungeon.GridRoom[R]) bool {
	for _, p := range l.placedOrder {
		if dungeon.RoomDistance(p, candidate)-l.RoomMoatSize < 0 {
			return false
		}
		if l.RoomMoatSize <= 0 && p.Overlaps(candidate) {
			return false
		}
	}
	return true
}

func (l *RandomSpatialLayout[R, C]) reset() {
	l.placed = make(map[int]dungeon.GridRoom[R])
	l.placedOrder = nil
	l.dropped = nil
	l.attempts = 0
}

func (l *RandomSpatialLayout[R, C]) source() *rand.Rand {
	if l.Rand == nil {
		l.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return l.Rand
}

func (l *RandomSpatialLayout[R, C]) logger() *log.Logger {
	if l.Logger == nil {
		l.Logger = log.New(io.Discard, "", 0)
	}
	return l.Logger
}

// Placed returns the rectangles of the last run keyed by input room identity
func (l *RandomSpatialLayout[R, C]) Placed() map[int]dungeon.GridRoom[R] {
	return maps.Clone(l.placed)
}

// Dropped returns the input room identities that could not be placed in the last run
func (l *RandomSpatialLayout[R, C]) Dropped() []int {
	dropped := make([]int, len(l.dropped))
	copy(dropped, l.dropped)
	return dropped
}

// Attempts returns the number of candidate draws made in the last run
func (l *RandomSpatialLayout[R, C]) Attempts() int {
	return l.attempts
}

// DroppedRoomIDs collects the identities of dropped rooms as a set
func (l *RandomSpatialLayout[R, C]) DroppedRoomIDs() mapset.Set[int] {
	set := mapset.New[int]()
	for _, id := range l.dropped {
		set.Put(id)
	}
	return set
}
