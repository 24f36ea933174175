package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"towergen/pkg/engine/terminal"
	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
	"towergen/pkg/game/devtools"
	"towergen/pkg/game/generator"
	"towergen/pkg/game/renderer"
	"towergen/pkg/game/renderer/ebiten"
	"towergen/pkg/game/renderer/tui"
	"towergen/pkg/game/state"
	gameworld "towergen/pkg/game/world"
)

// options holds everything the command line selects besides Params
type options struct {
	width, height int

	lang   string
	color  bool
	glyphs bool

	interactive bool
	window      bool
	devMap      bool
	html        bool
	dumpDir     string

	check []string

	iniDir  string
	count   int
	ramp    bool
	workers int
}

// paramFlag feeds "-param name=value" into Params
type paramFlag struct {
	p *config.Params
}

func (f paramFlag) String() string { return "" }

func (f paramFlag) Set(s string) error {
	name, value, err := config.ParseAssignment(s)
	if err != nil {
		return err
	}
	return f.p.Set(name, value)
}

// paramNames are exposed as individual flags, e.g. -room_count 8
var paramNames = []string{
	"seed", "room_count", "min_room_size", "max_room_size",
	"noise_scale", "noise_threshold",
	"enemy_density", "loot_density", "coin_density", "health_density",
	"breakable_density", "edge_wall_bias", "min_player_exit_dist", "layout",
}

// parseFlags parses args into generation parameters and options. Parameters
// are applied in command line order over config.Defaults.
func parseFlags(args []string) (config.Params, options, error) {
	p := config.Defaults()
	var o options

	fs := flag.NewFlagSet("towergen", flag.ContinueOnError)
	fs.IntVar(&o.width, "width", 40, "grid width in cells")
	fs.IntVar(&o.height, "height", 24, "grid height in cells")

	for _, name := range paramNames {
		fs.Func(name, "generation parameter "+name, func(v string) error {
			return p.Set(name, v)
		})
	}
	fs.Var(paramFlag{&p}, "param", "generation parameter as name=value (repeatable)")

	fs.StringVar(&o.lang, "lang", "en", "message language")
	fs.BoolVar(&o.color, "color", terminal.IsTerminal(), "colour terminal output")
	fs.BoolVar(&o.glyphs, "glyphs", true, "draw Unicode glyphs instead of level file symbols")

	fs.BoolVar(&o.interactive, "i", false, "browse seeds interactively in the terminal")
	fs.BoolVar(&o.window, "window", false, "preview in a window")
	fs.BoolVar(&o.devMap, "devmap", false, "show every tile type instead of generating")
	fs.BoolVar(&o.html, "html", false, "save an HTML snapshot of the level")
	fs.StringVar(&o.dumpDir, "dump", "", "write a map.txt dump into this directory")

	fs.Func("check", "verify a level file instead of generating (repeatable)", func(v string) error {
		o.check = append(o.check, v)
		return nil
	})

	fs.StringVar(&o.iniDir, "ini", "", "export level files into this directory")
	fs.IntVar(&o.count, "count", 1, "number of floors to export with -ini")
	fs.BoolVar(&o.ramp, "ramp", false, "raise difficulty on each exported floor")
	fs.IntVar(&o.workers, "workers", 0, "parallel generators for -ini (0 = one per CPU)")

	if err := fs.Parse(args); err != nil {
		return config.Params{}, options{}, err
	}
	if fs.NArg() > 0 {
		return config.Params{}, options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return p, o, nil
}

func main() {
	p, o, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Fatalf("%v", err)
	}

	if err := gameworld.SetLanguage(o.lang); err != nil {
		log.Printf("Warning: %v", err)
	}

	out := tui.New()
	out.Color = o.color
	out.Glyphs = o.glyphs

	if o.devMap {
		if err := out.Render(&generator.Level{Grid: devtools.DevMap()}, nil); err != nil {
			log.Fatalf("Cannot render dev map: %v", err)
		}
		return
	}

	if len(o.check) > 0 {
		if failed := checkFiles(o.check); failed > 0 {
			log.Fatalf("%d of %d level files failed", failed, len(o.check))
		}
		return
	}

	if o.iniDir != "" {
		if err := exportTower(p, o); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		return
	}

	s, err := state.NewSession(p, o.width, o.height)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := s.Regenerate(); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	logWarnings(s.Level)

	if !o.window && terminal.IsTerminal() && !terminal.Fits(o.width, o.height+4) {
		cols, rows := terminal.GetSize()
		log.Printf("Warning: %dx%d grid is larger than the %dx%d terminal", o.width, o.height, cols, rows)
	}

	if err := writeArtifacts(s.Level, o); err != nil {
		log.Fatalf("%v", err)
	}

	var pv renderer.Previewer = out
	switch {
	case o.interactive:
		err = browse(s, out, os.Stdin, o)
	case o.window:
		pv = ebiten.New()
		err = pv.Preview(s)
	default:
		err = pv.Preview(s)
	}
	if err != nil {
		log.Fatalf("%s: %v", pv.Name(), err)
	}
}

// writeArtifacts saves the dump and snapshot files that o asks for
func writeArtifacts(lvl *generator.Level, o options) error {
	if o.dumpDir != "" {
		path, err := devtools.DumpLevelToFile(lvl, o.dumpDir)
		if err != nil {
			return fmt.Errorf("cannot dump map: %w", err)
		}
		log.Printf("Map dump written to %s", path)
	}
	if o.html {
		path, err := devtools.SaveScreenshotHTML(lvl)
		if err != nil {
			return fmt.Errorf("cannot save screenshot: %w", err)
		}
		log.Printf("Screenshot saved to %s", path)
	}
	return nil
}

func logWarnings(lvl *generator.Level) {
	for _, w := range lvl.Warnings {
		log.Printf("Warning: seed %d: %v", lvl.Grid.Seed(), w)
	}
}

// tileLegend lists the symbols used in level files, for help output
func tileLegend() string {
	var parts []string
	for _, info := range gameworld.All() {
		if info.Type == world.TileWall || info.Type == world.TileEmpty {
			continue
		}
		parts = append(parts, fmt.Sprintf("%c=%s", info.Symbol, gameworld.DisplayName(info.Type)))
	}
	return strings.Join(parts, " ")
}
