package world

import (
	"fmt"
	"strings"
)

// Grid is the arena holding every cell of a level by value.
// Cells are stored row-major: index = z*width + x.
type Grid struct {
	width  int
	height int
	cells  []Cell

	seed int64
}

// NewGrid creates a grid with every cell set to Wall and no room label
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for z := 0; z < height; z++ {
		for x := 0; x < width; x++ {
			g.cells[z*width+x] = Cell{X: x, Z: z, Type: TileWall, RoomID: NoRoom}
		}
	}
	return g, nil
}

// Width returns the number of columns (x extent)
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows (z extent)
func (g *Grid) Height() int {
	return g.height
}

// Len returns the total number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// Seed returns the seed the grid was generated with
func (g *Grid) Seed() int64 {
	return g.seed
}

// SetSeed records the generation seed
func (g *Grid) SetSeed(seed int64) {
	g.seed = seed
}

// InBounds checks if an x/z position is within grid bounds
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.width && z >= 0 && z < g.height
}

// Contains is InBounds for a Point
func (g *Grid) Contains(p Point) bool {
	return g.InBounds(p.X, p.Z)
}

// Index returns the dense index of an in-bounds position.
// It does not check bounds.
func (g *Grid) Index(x, z int) int {
	return z*g.width + x
}

// PointAt returns the position of a dense index
func (g *Grid) PointAt(idx int) Point {
	return Point{X: idx % g.width, Z: idx / g.width}
}

func (g *Grid) checked(x, z int) (int, error) {
	if !g.InBounds(x, z) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, z, g.width, g.height)
	}
	return z*g.width + x, nil
}

// CellAt returns a copy of the cell at the given position
func (g *Grid) CellAt(x, z int) (Cell, error) {
	idx, err := g.checked(x, z)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[idx], nil
}

// TypeAt returns the tile type at the given position
func (g *Grid) TypeAt(x, z int) (TileType, error) {
	idx, err := g.checked(x, z)
	if err != nil {
		return TileWall, err
	}
	return g.cells[idx].Type, nil
}

// RoomAt returns the room id at the given position
func (g *Grid) RoomAt(x, z int) (int, error) {
	idx, err := g.checked(x, z)
	if err != nil {
		return NoRoom, err
	}
	return g.cells[idx].RoomID, nil
}

// Type is TypeAt for callers that have already bounds-checked p.
// Out-of-bounds points read as Wall.
func (g *Grid) Type(p Point) TileType {
	if !g.Contains(p) {
		return TileWall
	}
	return g.cells[p.Z*g.width+p.X].Type
}

// SetType changes the tile type of a single cell
func (g *Grid) SetType(x, z int, t TileType) error {
	idx, err := g.checked(x, z)
	if err != nil {
		return err
	}
	g.cells[idx].Type = t
	return nil
}

// SetRoom changes the room label of a single cell
func (g *Grid) SetRoom(x, z int, roomID int) error {
	idx, err := g.checked(x, z)
	if err != nil {
		return err
	}
	g.cells[idx].RoomID = roomID
	return nil
}

// SetGameData attaches game-specific data to a cell
func (g *Grid) SetGameData(x, z int, data interface{}) error {
	idx, err := g.checked(x, z)
	if err != nil {
		return err
	}
	g.cells[idx].GameData = data
	return nil
}

// ForEachCell calls fn for every cell in row-major order
func (g *Grid) ForEachCell(fn func(c Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Find returns the positions of every cell of type t in row-major order
func (g *Grid) Find(t TileType) []Point {
	var pts []Point
	for _, c := range g.cells {
		if c.Type == t {
			pts = append(pts, c.Pos())
		}
	}
	return pts
}

// Count returns the number of cells of type t
func (g *Grid) Count(t TileType) int {
	n := 0
	for _, c := range g.cells {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid. GameData is copied by reference.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, seed: g.seed}
	out.cells = make([]Cell, len(g.cells))
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether two grids have the same bounds, tile types and room ids
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Type != other.cells[i].Type || g.cells[i].RoomID != other.cells[i].RoomID {
			return false
		}
	}
	return true
}

// Tiles copies the tile types out as a [z][x] array
func (g *Grid) Tiles() [][]TileType {
	out := make([][]TileType, g.height)
	for z := range out {
		row := make([]TileType, g.width)
		for x := range row {
			row[x] = g.cells[z*g.width+x].Type
		}
		out[z] = row
	}
	return out
}

// RoomIDs copies the room labels out as a [z][x] array
func (g *Grid) RoomIDs() [][]int {
	out := make([][]int, g.height)
	for z := range out {
		row := make([]int, g.width)
		for x := range row {
			row[x] = g.cells[z*g.width+x].RoomID
		}
		out[z] = row
	}
	return out
}

// FromTiles rebuilds a grid from arrays produced by Tiles and RoomIDs.
// rooms may be nil, in which case every cell gets NoRoom.
func FromTiles(tiles [][]TileType, rooms [][]int) (*Grid, error) {
	height := len(tiles)
	if height == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len(tiles[0])
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	if rooms != nil && len(rooms) != height {
		return nil, fmt.Errorf("%w: %d tile rows, %d room rows", ErrShapeMismatch, height, len(rooms))
	}

	for z, row := range tiles {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrShapeMismatch, z, len(row), width)
		}
		if rooms != nil && len(rooms[z]) != width {
			return nil, fmt.Errorf("%w: room row %d has %d cells, want %d", ErrShapeMismatch, z, len(rooms[z]), width)
		}
		for x, t := range row {
			c := &g.cells[z*width+x]
			c.Type = t
			if rooms != nil {
				c.RoomID = rooms[z][x]
			}
		}
	}
	return g, nil
}

// String renders the grid with one rune per cell, for debugging
func (g *Grid) String() string {
	var sb strings.Builder
	for z := 0; z < g.height; z++ {
		for x := 0; x < g.width; x++ {
			if g.cells[z*g.width+x].Type.IsTraversable() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
