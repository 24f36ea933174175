// Package tui draws levels as coloured text in the terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"towergen/pkg/engine/terminal"
	"towergen/pkg/engine/world"
	"towergen/pkg/game/generator"
	"towergen/pkg/game/state"
	gameworld "towergen/pkg/game/world"
)

// TUIRenderer is the terminal preview
type TUIRenderer struct {
	Out io.Writer
	// Color turns on ANSI styling; Glyphs uses Unicode glyphs instead of
	// the ASCII symbols of level files.
	Color  bool
	Glyphs bool

	styles      map[world.TileType]color.Style
	colorHeader color.Style
	colorSubtle color.Style
	colorWarn   color.Style
}

// New creates a terminal renderer writing to stdout, with colour when stdout is a terminal
func New() *TUIRenderer {
	t := &TUIRenderer{Out: os.Stdout, Color: terminal.IsTerminal(), Glyphs: true}
	t.Init()
	return t
}

// Init initializes the colour styles
func (t *TUIRenderer) Init() {
	t.styles = map[world.TileType]color.Style{
		world.TileWall:         {color.FgGray},
		world.TileEmpty:        {color.FgDarkGray},
		world.TilePlayer:       {color.FgGreen, color.BgBlack, color.OpBold},
		world.TileExit:         {color.FgMagenta, color.OpBold},
		world.TileEnemy:        {color.FgRed},
		world.TileEnemyShooter: {color.FgLightRed, color.OpBold},
		world.TileCoin:         {color.FgYellow, color.OpBold},
		world.TileHealth:       {color.FgLightGreen},
		world.TileBreakable:    {color.FgYellow},
	}
	t.colorHeader = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorWarn = color.Style{color.FgYellow}
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	return "terminal"
}

// Preview prints the session's level once
func (t *TUIRenderer) Preview(s *state.Session) error {
	if s.Level == nil {
		if err := s.Regenerate(); err != nil {
			return err
		}
	}
	return t.Render(s.Level, s.Messages)
}

func (t *TUIRenderer) style(st color.Style, text string) string {
	if !t.Color {
		return text
	}
	return st.Sprint(text)
}

// Cell returns the styled text for one tile
func (t *TUIRenderer) Cell(tile world.TileType) string {
	info, ok := gameworld.Info(tile)
	if !ok {
		return "?"
	}
	text := string(info.Symbol)
	if t.Glyphs && info.Glyph != "" {
		text = info.Glyph
	}
	if st, ok := t.styles[tile]; ok {
		return t.style(st, text)
	}
	return text
}

// Render writes the summary, map, legend and messages
func (t *TUIRenderer) Render(lvl *generator.Level, messages []string) error {
	g := lvl.Grid
	var sb strings.Builder

	sb.WriteString(t.style(t.colorHeader, gameworld.T("LEVEL_SUMMARY", g.Seed(), g.Width(), g.Height(), len(lvl.Rooms),
		lvl.Spawn.X, lvl.Spawn.Z, lvl.Exit.X, lvl.Exit.Z, lvl.SpawnExitDistance, lvl.TargetDistance)))
	sb.WriteString("\n")
	pop := lvl.Population
	sb.WriteString(t.style(t.colorSubtle, gameworld.T("POPULATION_SUMMARY", pop.Enemies, pop.Shooters,
		pop.LootCount(world.TileCoin), pop.LootCount(world.TileHealth), pop.Breakables())))
	sb.WriteString("\n\n")

	for z := 0; z < g.Height(); z++ {
		for x := 0; x < g.Width(); x++ {
			sb.WriteString(t.Cell(g.Type(world.Point{X: x, Z: z})))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(t.style(t.colorSubtle, gameworld.T("LEGEND")+":"))
	for _, info := range gameworld.All() {
		fmt.Fprintf(&sb, " %s %s", t.Cell(info.Type), gameworld.DisplayName(info.Type))
	}
	sb.WriteString("\n")

	for _, msg := range messages {
		sb.WriteString(t.style(t.colorWarn, msg))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(t.Out, sb.String())
	return err
}
