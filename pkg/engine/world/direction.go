package world

// Direction represents one of the eight compass directions
type Direction int

// Direction constants. The cardinal directions come first so
// callers needing 4-connectivity can take a prefix.
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// CardinalDirections returns the four face-sharing directions
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// AllDirections returns all eight directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass points
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsCardinal returns true for N/E/S/W
func (d Direction) IsCardinal() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case SouthEast:
		return NorthWest
	case NorthWest:
		return SouthEast
	default:
		return d
	}
}

// Delta returns the x and z offsets for this direction.
// North is towards smaller z, matching the row order of ASCII dumps.
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}
