package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
	"towergen/pkg/game/generator"
	gameworld "towergen/pkg/game/world"
)

// Level file format versions written into every file.
const (
	FormatVersion = "v1"
	LevelVersion  = "v1"
)

// ErrMalformedLevel is returned when a level file is missing required sections.
var ErrMalformedLevel = errors.New("devtools: malformed level file")

// ErrNoLevel is returned when a writer is handed a nil level.
var ErrNoLevel = errors.New("devtools: no level")

const sectionRule = "# ==================================="

// LevelFileName returns the conventional file name for a level id
func LevelFileName(levelID int) string {
	return fmt.Sprintf("LEVEL_%04d_%s_%s.ini", levelID, LevelVersion, FormatVersion)
}

// SaveLevelINI writes lvl to dir under LevelFileName(levelID) and returns
// the path written.
func SaveLevelINI(lvl *generator.Level, dir string, levelID int, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, LevelFileName(levelID))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLevelINI(f, lvl, levelID, now); err != nil {
		return "", err
	}
	return path, f.Close()
}

// WriteLevelINI writes a level in the sectioned INI layout game importers
// read: cell types, level config, generation parameters and the ASCII grid.
func WriteLevelINI(w io.Writer, lvl *generator.Level, levelID int, now time.Time) error {
	if lvl == nil || lvl.Grid == nil {
		return ErrNoLevel
	}
	ew := &errWriter{w: w}
	p := lvl.Params

	ew.printf("# === LEVEL DATASET %s ===\n", FormatVersion)
	ew.println("# Generator: towergen")
	ew.printf("# Export Date: %s\n", now.Format("2006-01-02 15:04:05"))
	ew.println("# Encoding: UTF-8")
	ew.println(sectionRule)
	ew.println("")

	ew.println("[CELL_TYPES]")
	ew.println("# ID=Symbol,Name,Passable,Prefab_Index")
	for _, info := range gameworld.All() {
		ew.printf("%d=%c,%s,%t,%d\n", info.Prefab, info.Symbol, info.Name, info.Passable, info.Prefab)
	}
	ew.println("")

	ew.println("[LEVEL_CONFIG]")
	ew.printf("VERSION=%s\n", LevelVersion)
	ew.printf("FORMAT_VERSION=%s\n", FormatVersion)
	ew.printf("LEVEL_NAME=Generated Level %04d\n", levelID)
	ew.printf("LEVEL_ID=%04d\n", levelID)
	ew.printf("GRID_WIDTH=%d\n", lvl.Grid.Width())
	ew.printf("GRID_HEIGHT=%d\n", lvl.Grid.Height())
	ew.println("")

	ew.println("[GENERATION_PARAMS]")
	for _, kv := range paramPairs(p) {
		ew.printf("%s=%s\n", strings.ToUpper(kv[0]), kv[1])
	}
	ew.println("")

	ew.println("[GRID_ASCII]")
	for _, row := range EncodeASCII(lvl.Grid) {
		ew.println(row)
	}
	ew.println("")
	ew.println(sectionRule)
	ew.printf("# END OF LEVEL %04d\n", levelID)
	ew.println(sectionRule)
	return ew.err
}

// paramPairs lists parameters in file order as lower-case name/value pairs
func paramPairs(p config.Params) [][2]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return [][2]string{
		{"seed", strconv.FormatInt(p.Seed, 10)},
		{"room_count", strconv.Itoa(p.RoomCount)},
		{"enemy_density", f(p.EnemyDensity)},
		{"loot_density", f(p.LootDensity)},
		{"coin_density", f(p.CoinDensity)},
		{"health_density", f(p.HealthDensity)},
		{"breakable_density", f(p.BreakableDensity)},
		{"edge_wall_bias", f(p.EdgeWallBias)},
		{"noise_scale", f(p.NoiseScale)},
		{"noise_threshold", f(p.NoiseThreshold)},
		{"min_room_size", strconv.Itoa(p.MinRoomSize)},
		{"max_room_size", strconv.Itoa(p.MaxRoomSize)},
		{"min_player_exit_dist", strconv.Itoa(p.MinPlayerExitDist)},
		{"layout", p.Layout},
	}
}

// LevelFile is the parsed content of a level INI file.
type LevelFile struct {
	Config map[string]string
	Params config.Params
	Grid   *world.Grid
}

// ReadLevelINI parses a file written by WriteLevelINI. Comment lines and
// unknown sections are skipped.
func ReadLevelINI(r io.Reader) (*LevelFile, error) {
	lf := &LevelFile{Config: map[string]string{}}
	params := map[string]string{}
	var rows []string
	section := ""

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") && section != "GRID_ASCII" {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line[1 : len(line)-1]
			continue
		}

		switch section {
		case "LEVEL_CONFIG", "GENERATION_PARAMS":
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				return nil, fmt.Errorf("%w: %q in [%s]", ErrMalformedLevel, line, section)
			}
			if section == "LEVEL_CONFIG" {
				lf.Config[strings.TrimSpace(key)] = strings.TrimSpace(value)
			} else {
				params[strings.ToLower(strings.TrimSpace(key))] = value
			}
		case "GRID_ASCII":
			if strings.HasPrefix(line, sectionRule) {
				section = ""
				continue
			}
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no [GRID_ASCII] rows", ErrMalformedLevel)
	}

	var err error
	if lf.Params, err = config.FromMap(params); err != nil {
		return nil, err
	}
	if lf.Grid, err = DecodeASCII(rows); err != nil {
		return nil, err
	}
	lf.Grid.SetSeed(lf.Params.Seed)

	if w, ok := lf.Config["GRID_WIDTH"]; ok && w != strconv.Itoa(lf.Grid.Width()) {
		return nil, fmt.Errorf("%w: GRID_WIDTH=%s but rows are %d wide", ErrMalformedLevel, w, lf.Grid.Width())
	}
	if h, ok := lf.Config["GRID_HEIGHT"]; ok && h != strconv.Itoa(lf.Grid.Height()) {
		return nil, fmt.Errorf("%w: GRID_HEIGHT=%s but there are %d rows", ErrMalformedLevel, h, lf.Grid.Height())
	}
	return lf, nil
}
