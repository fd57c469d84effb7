package blockade

// Direction of a pawn move. Orthogonal moves cover one or two cells, diagonals one.
type Direction int

const (
	NorthNorth Direction = iota
	WestWest
	EastEast
	SouthSouth
	NorthWest
	NorthEast
	SouthWest
	SouthEast
	North
	West
	East
	South
)

var directionNames = [...]string{
	"NN", "WW", "EE", "SS", "NW", "NE", "SW", "SE", "N", "W", "E", "S",
}

var directionOffsets = [...][2]int{
	{-2, 0}, {0, -2}, {0, 2}, {2, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	{-1, 0}, {0, -1}, {0, 1}, {1, 0},
}

func (that Direction) Offset() (int, int) {
	o := directionOffsets[that]

	return o[0], o[1]
}

func (that Direction) String() string {
	return directionNames[that]
}

// orthogonal pairs a single step with its double.
type orthogonal struct {
	single Direction
	double Direction
}

// orthogonals and diagonals fix the order moves are generated in.
var (
	orthogonals = [...]orthogonal{
		{single: North, double: NorthNorth},
		{single: West, double: WestWest},
		{single: East, double: EastEast},
		{single: South, double: SouthSouth},
	}

	diagonals = [...]Direction{NorthWest, NorthEast, SouthWest, SouthEast}
)

// directionBetween finds the direction for a from/to pair, or false if no pawn move connects them.
func directionBetween(dRow, dCol int) (Direction, bool) {
	for d, o := range directionOffsets {
		if o[0] == dRow && o[1] == dCol {
			return Direction(d), true
		}
	}

	return 0, false
}
