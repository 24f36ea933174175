package generator

import (
	"errors"
	"fmt"

	"towergen/pkg/engine/pathfind"
	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
	"towergen/pkg/game/levelgen"
)

// Recoverable conditions. They never abort generation and only show up
// wrapped in Level.Warnings.
var (
	ErrDegenerateRoom     = errors.New("generator: degenerate room")
	ErrInsufficientRooms  = errors.New("generator: insufficient rooms")
	ErrSelectorBudget     = errors.New("generator: selector budget exhausted")
	ErrNoSpawnCandidates  = errors.New("generator: not enough floor for spawn and exit")
	ErrUnreachableEndings = errors.New("generator: spawn and exit not connected before guarantee pass")
)

// Warning is a non-fatal condition raised by one pipeline stage.
type Warning struct {
	Stage string
	Err   error
}

// Error returns the stage-qualified message
func (w Warning) Error() string {
	return w.Stage + ": " + w.Err.Error()
}

// Unwrap exposes the sentinel for errors.Is
func (w Warning) Unwrap() error {
	return w.Err
}

func warnf(stage string, sentinel error, format string, args ...interface{}) Warning {
	return Warning{Stage: stage, Err: fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)}
}

// Rect is an axis-aligned cell rectangle.
type Rect struct {
	X, Z          int
	Width, Height int
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p world.Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Z >= r.Z && p.Z < r.Z+r.Height
}

// Room is a group of cells sharing a room id, recovered from grid labels.
type Room struct {
	ID    int
	Cells []world.Point

	// CentroidX and CentroidZ are the mean member coordinates.
	CentroidX float64
	CentroidZ float64

	// Anchor is the member cell nearest the centroid; corridors start and end here.
	Anchor world.Point
	Bounds Rect
}

// RoomEdge is one corridor chosen by the connector.
type RoomEdge struct {
	From int
	To   int
}

// Level is the result of one generation run.
type Level struct {
	Grid   *world.Grid
	Params config.Params
	Layout string

	Rooms     []Room
	Corridors []RoomEdge

	Spawn world.Point
	Exit  world.Point
	// TargetDistance is the requested distance after clamping to what the
	// layout allows; SpawnExitDistance is what the selector achieved.
	TargetDistance    int
	SpawnExitDistance int

	GuaranteedPath pathfind.Path
	OpenedWalls    int

	Population levelgen.Stats
	Warnings   []Warning
}

func (l *Level) warn(ws ...Warning) {
	l.Warnings = append(l.Warnings, ws...)
}

// HasWarning reports whether any warning wraps target
func (l *Level) HasWarning(target error) bool {
	for _, w := range l.Warnings {
		if errors.Is(w, target) {
			return true
		}
	}
	return false
}

// RoomByID returns the room with the given id
func (l *Level) RoomByID(id int) (Room, bool) {
	for _, r := range l.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}
