package world

// TileType is the content of a single grid cell.
type TileType int

// Tile types. TileWall is the zero value so a fresh grid is solid rock.
// Values past TileBreakable are free for game-specific extensions.
const (
	TileWall TileType = iota
	TileEmpty
	TilePlayer
	TileExit
	TileEnemy
	TileEnemyShooter
	TileCoin
	TileHealth
	TileBreakable
)

// NumBuiltinTiles is the number of tile types known to the engine.
const NumBuiltinTiles = int(TileBreakable) + 1

// AllTiles returns the built-in tile types for iteration
func AllTiles() []TileType {
	return []TileType{
		TileWall, TileEmpty, TilePlayer, TileExit, TileEnemy,
		TileEnemyShooter, TileCoin, TileHealth, TileBreakable,
	}
}

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileEmpty:
		return "Empty"
	case TilePlayer:
		return "Player"
	case TileExit:
		return "Exit"
	case TileEnemy:
		return "Enemy"
	case TileEnemyShooter:
		return "EnemyShooter"
	case TileCoin:
		return "Coin"
	case TileHealth:
		return "Health"
	case TileBreakable:
		return "Breakable"
	default:
		return "Unknown"
	}
}

// IsTraversable reports whether normal movement can enter a cell of this type.
// Everything except plain wall is traversable, extensions included.
func (t TileType) IsTraversable() bool {
	return t != TileWall
}

// IsWall returns true for solid wall cells
func (t TileType) IsWall() bool {
	return t == TileWall
}
