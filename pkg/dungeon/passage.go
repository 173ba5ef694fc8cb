package dungeon

// PassageRasterizerType selects how a connection is carved into a grid.
type PassageRasterizerType int

const (
	// Unspecified is resolved to a random concrete strategy at carve time
	Unspecified PassageRasterizerType = iota
	// None carves nothing; the rooms abut
	None
	// Opening carves a doorway through a shared border
	Opening
	// Elbow carves one horizontal and one vertical run between room centres
	Elbow
	// ShortestPathBetweenRooms is reserved and cannot be carved
	ShortestPathBetweenRooms
	// ShortestPathUsingExisting searches the grid, preferring open passages
	ShortestPathUsingExisting
	// RandomWalk is reserved and cannot be carved
	RandomWalk
)

// String returns the strategy name
func (t PassageRasterizerType) String() string {
	switch t {
	case Unspecified:
		return "Unspecified"
	case None:
		return "None"
	case Opening:
		return "Opening"
	case Elbow:
		return "Elbow"
	case ShortestPathBetweenRooms:
		return "ShortestPathBetweenRooms"
	case ShortestPathUsingExisting:
		return "ShortestPathUsingExisting"
	case RandomWalk:
		return "RandomWalk"
	default:
		return "Unknown"
	}
}

// IsReserved returns true for strategies that are declared but not carvable
func (t PassageRasterizerType) IsReserved() bool {
	return t == ShortestPathBetweenRooms || t == RandomWalk
}

// IsConcrete returns true for strategies that carve something
func (t PassageRasterizerType) IsConcrete() bool {
	return t == Opening || t == Elbow || t == ShortestPathUsingExisting
}

// ParseRasterizer returns the strategy with the given name
func ParseRasterizer(name string) (PassageRasterizerType, bool) {
	for t := Unspecified; t <= RandomWalk; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return Unspecified, false
}

// GridPassageConnectionData is the payload of a connection between placed
// rooms: the source connection payload plus the strategy used to carve it.
type GridPassageConnectionData[C comparable] struct {
	Data       C
	Rasterizer PassageRasterizerType
}

// NewGridPassageConnectionData wraps data with a rasterizer strategy
func NewGridPassageConnectionData[C comparable](data C, rasterizer PassageRasterizerType) GridPassageConnectionData[C] {
	return GridPassageConnectionData[C]{Data: data, Rasterizer: rasterizer}
}
