package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/state"
	gameworld "towergen/pkg/game/world"
)

// Preview shows a session's level in a window. R regenerates with the next
// seed, P toggles the spawn-exit path overlay, +/- zoom and Esc closes.
type Preview struct {
	session  *state.Session
	tileSize int
	showPath bool
}

// New creates a preview with the default tile size
func New() *Preview {
	return &Preview{tileSize: defaultTileSize, showPath: true}
}

// Name returns the previewer name
func (p *Preview) Name() string {
	return "window"
}

// Preview opens the window and blocks until it is closed
func (p *Preview) Preview(s *state.Session) error {
	if s.Level == nil {
		if err := s.Regenerate(); err != nil {
			return err
		}
	}
	p.session = s
	p.tileSize = fitTileSize(s.Width, s.Height, p.tileSize)

	w, h := p.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("towergen - seed %d", s.Params.Seed))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(p)
}

// Update handles input (Ebiten interface)
func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := p.session.NextSeed(); err != nil {
			p.session.AddMessage(err.Error())
		}
		ebiten.SetWindowTitle(fmt.Sprintf("towergen - seed %d", p.session.Params.Seed))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.showPath = !p.showPath
	}

	p.handleZoom()
	return nil
}

func (p *Preview) handleZoom() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		p.tileSize = zoom(p.tileSize, tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		p.tileSize = zoom(p.tileSize, -tileSizeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		p.tileSize = defaultTileSize
	}
}

// Draw renders the level (Ebiten interface)
func (p *Preview) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	lvl := p.session.Level
	if lvl == nil {
		return
	}

	ts := float32(p.tileSize)
	lvl.Grid.ForEachCell(func(c world.Cell) {
		clr := colorMissing
		if info, ok := gameworld.Info(c.Type); ok {
			clr = info.Color
		}
		vector.DrawFilledRect(screen, float32(c.X)*ts, float32(c.Z)*ts, ts, ts, clr, false)
	})

	if p.showPath && p.tileSize >= 8 {
		inset := ts / 3
		for _, pt := range lvl.GuaranteedPath {
			if pt == lvl.Spawn || pt == lvl.Exit {
				continue
			}
			vector.DrawFilledRect(screen, float32(pt.X)*ts+inset, float32(pt.Z)*ts+inset, ts-2*inset, ts-2*inset, colorPathMarker, false)
		}
	}

	y := lvl.Grid.Height() * p.tileSize
	ebitenutil.DebugPrintAt(screen, statusLine(p.session), 4, y+4)
	if n := len(p.session.Messages); n > 0 {
		ebitenutil.DebugPrintAt(screen, p.session.Messages[n-1], 4, y+22)
	}
}

// Layout returns the logical screen size (Ebiten interface)
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := p.screenSize()
	return max(w, outsideWidth), max(h, outsideHeight)
}

func (p *Preview) screenSize() (int, int) {
	if p.session == nil {
		return 0, 0
	}
	return p.session.Width * p.tileSize, p.session.Height*p.tileSize + statusHeight
}

func statusLine(s *state.Session) string {
	lvl := s.Level
	return fmt.Sprintf("seed %d  rooms %d  dist %d/%d  [R] next  [P] path  [+/-] zoom  [Esc] quit",
		s.Params.Seed, len(lvl.Rooms), lvl.SpawnExitDistance, lvl.TargetDistance)
}

// fitTileSize shrinks size until a width x height grid fits the maximum window
func fitTileSize(width, height, size int) int {
	for size > minTileSize && (width*size > maxWindowWidth || height*size+statusHeight > maxWindowHeight) {
		size -= tileSizeStep
	}
	return max(size, minTileSize)
}

func zoom(size, step int) int {
	return min(max(size+step, minTileSize), maxTileSize)
}
