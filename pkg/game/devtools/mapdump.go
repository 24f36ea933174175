package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/generator"
	"towergen/pkg/game/verify"
	gameworld "towergen/pkg/game/world"
)

const mapDumpFilename = "map.txt"

// DumpLevel writes a full debug dump: metadata, legend, the map, rooms,
// corridors, population and warnings. Format is plain sections of
// key: value lines.
func DumpLevel(w io.Writer, lvl *generator.Level) error {
	if lvl == nil || lvl.Grid == nil {
		return ErrNoLevel
	}
	g := lvl.Grid
	p := lvl.Params
	ew := &errWriter{w: w}

	// --- Metadata ---
	ew.println("=== LEVEL DUMP ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("seed: %d\n", g.Seed())
	ew.printf("layout: %s\n", lvl.Layout)
	ew.printf("grid_width: %d\n", g.Width())
	ew.printf("grid_height: %d\n", g.Height())
	ew.printf("coordinate_system: x,z (0-based, x=column, z=row)\n")
	ew.printf("spawn: %d,%d\n", lvl.Spawn.X, lvl.Spawn.Z)
	ew.printf("exit: %d,%d\n", lvl.Exit.X, lvl.Exit.Z)
	ew.printf("requested_distance: %d\n", p.MinPlayerExitDist)
	ew.printf("target_distance: %d\n", lvl.TargetDistance)
	ew.printf("spawn_exit_distance: %d\n", lvl.SpawnExitDistance)
	ew.printf("guaranteed_path_length: %d\n", lvl.GuaranteedPath.Len())
	ew.printf("opened_walls: %d\n", lvl.OpenedWalls)
	ew.printf("gatekeeper_rooms: %v\n", verify.Gatekeepers(g, lvl.Spawn, lvl.Exit))
	ew.println("")

	// --- Legend ---
	ew.println("--- Legend ---")
	for _, info := range gameworld.All() {
		ew.printf("%c  %s\n", info.Symbol, gameworld.DisplayName(info.Type))
	}
	ew.println("")

	// --- Map ---
	ew.println("--- Map ---")
	for _, row := range EncodeASCII(g) {
		ew.println(row)
	}
	ew.println("")

	// --- Rooms ---
	ew.printf("--- Rooms (%d) ---\n", len(lvl.Rooms))
	for _, r := range lvl.Rooms {
		ew.printf("room %d: cells=%d centroid=%.2f,%.2f anchor=%d,%d bounds=%d,%d %dx%d\n",
			r.ID, len(r.Cells), r.CentroidX, r.CentroidZ, r.Anchor.X, r.Anchor.Z,
			r.Bounds.X, r.Bounds.Z, r.Bounds.Width, r.Bounds.Height)
	}
	ew.println("")

	ew.printf("--- Corridors (%d) ---\n", len(lvl.Corridors))
	for _, e := range lvl.Corridors {
		ew.printf("%d -> %d\n", e.From, e.To)
	}
	ew.println("")

	// --- Population ---
	pop := lvl.Population
	ew.println("--- Population ---")
	ew.printf("enemies: %d\n", pop.Enemies)
	ew.printf("shooters: %d\n", pop.Shooters)
	ew.printf("coins: %d\n", pop.LootCount(world.TileCoin))
	ew.printf("health: %d\n", pop.LootCount(world.TileHealth))
	ew.printf("breakable_edge: %d\n", pop.BreakableEdge)
	ew.printf("breakable_thick: %d\n", pop.BreakableThick)
	ew.println("")

	ew.printf("--- Warnings (%d) ---\n", len(lvl.Warnings))
	for _, warn := range lvl.Warnings {
		ew.println(warn.Error())
	}
	return ew.err
}

// DumpLevelToFile writes DumpLevel output to dir/map.txt and returns the
// absolute path.
func DumpLevelToFile(lvl *generator.Level, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpLevel(f, lvl); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// errWriter keeps the first write error so long dumps need one check.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
