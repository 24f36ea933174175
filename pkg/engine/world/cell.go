// Package world provides the dense 2D tile grid that every generation stage
// mutates. It is an engine-level primitive with no knowledge of rooms,
// corridors or spawn rules.
package world

// NoRoom is the room id of a cell outside any room.
const NoRoom = -1

// Point is an integer grid coordinate.
type Point struct {
	X int
	Z int
}

// Add returns p offset by the given delta
func (p Point) Add(dx, dz int) Point {
	return Point{X: p.X + dx, Z: p.Z + dz}
}

// IsAdjacent reports whether q is one step from p, diagonals included.
func (p Point) IsAdjacent(q Point) bool {
	dx, dz := abs(p.X-q.X), abs(p.Z-q.Z)
	return dx <= 1 && dz <= 1 && dx+dz > 0
}

// Cell represents a single cell/tile in the grid.
type Cell struct {
	X int
	Z int

	Type   TileType
	RoomID int

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type.
	GameData interface{}
}

// Pos returns the cell position
func (c Cell) Pos() Point {
	return Point{X: c.X, Z: c.Z}
}

// InRoom returns true if the cell carries a room label
func (c Cell) InRoom() bool {
	return c.RoomID != NoRoom
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
