package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"towergen/pkg/engine/input"
	"towergen/pkg/game/config"
	"towergen/pkg/game/devtools"
	"towergen/pkg/game/generator"
	"towergen/pkg/game/renderer/tui"
	"towergen/pkg/game/state"
)

// browse renders the session's level, then reads commands from r until quit
// or end of input.
func browse(s *state.Session, out *tui.TUIRenderer, r io.Reader, o options) error {
	in := input.NewReader(r)
	in.Echo = out.Out

	for {
		if err := out.Render(s.Level, s.Messages); err != nil {
			return err
		}
		fmt.Fprint(out.Out, "> ")

		intent, err := in.Next()
		if errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}

		if quit := handleIntent(s, intent, o); quit {
			return nil
		}
	}
}

// handleIntent applies one command to the session. Failures are reported as
// session messages so the loop keeps running.
func handleIntent(s *state.Session, intent input.Intent, o options) (quit bool) {
	switch intent.Action {
	case input.ActionQuit:
		return true

	case input.ActionNextSeed:
		if err := s.NextSeed(); err != nil {
			s.AddMessage(err.Error())
		}

	case input.ActionPrevSeed:
		s.Params.Seed--
		if err := s.Regenerate(); err != nil {
			s.Params.Seed++
			s.AddMessage(err.Error())
		}

	case input.ActionSet:
		setParam(s, intent.Arg)

	case input.ActionShowParams:
		s.ClearMessages()
		s.AddMessage(formatParams(s.Params))

	case input.ActionDump:
		dir := intent.Arg
		if dir == "" {
			dir = "."
		}
		path, err := devtools.DumpLevelToFile(s.Level, dir)
		report(s, "Map dump written to "+path, err)

	case input.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(s.Level)
		report(s, "Screenshot saved to "+path, err)

	case input.ActionExportINI:
		dir := intent.Arg
		if dir == "" {
			dir = o.iniDir
		}
		if dir == "" {
			dir = "."
		}
		path, err := devtools.SaveLevelINI(s.Level, dir, s.Generation, timeNow())
		report(s, "Level written to "+path, err)

	case input.ActionDevMap:
		s.Level = &generator.Level{Grid: devtools.DevMap()}
		s.ClearMessages()
		s.AddMessage("Dev map: n returns to generated levels")

	case input.ActionHelp:
		s.ClearMessages()
		s.AddMessage(helpText())
		s.AddMessage(tileLegend())

	default:
		s.AddMessage(fmt.Sprintf("Unknown command %q, ? for help", intent.Arg))
	}
	return false
}

// setParam applies "name=value" and regenerates, restoring the previous
// parameters when the new ones are rejected.
func setParam(s *state.Session, arg string) {
	name, value, err := config.ParseAssignment(arg)
	if err != nil {
		s.AddMessage(err.Error())
		return
	}

	prev := s.Params
	if err := s.Params.Set(name, value); err != nil {
		s.AddMessage(err.Error())
		return
	}
	if name == "layout" {
		gen, err := generator.ForLayout(s.Params.Layout)
		if err != nil {
			s.Params = prev
			s.AddMessage(err.Error())
			return
		}
		s.Generator = gen
	}
	if err := s.Regenerate(); err != nil {
		s.Params = prev
		if gen, lerr := generator.ForLayout(prev.Layout); lerr == nil {
			s.Generator = gen
		}
		s.AddMessage(err.Error())
	}
}

func report(s *state.Session, done string, err error) {
	if err != nil {
		s.AddMessage(err.Error())
		return
	}
	s.AddMessage(done)
}

func formatParams(p config.Params) string {
	m := map[string]string{
		"seed":                 fmt.Sprint(p.Seed),
		"room_count":           fmt.Sprint(p.RoomCount),
		"min_room_size":        fmt.Sprint(p.MinRoomSize),
		"max_room_size":        fmt.Sprint(p.MaxRoomSize),
		"noise_scale":          fmt.Sprint(p.NoiseScale),
		"noise_threshold":      fmt.Sprint(p.NoiseThreshold),
		"enemy_density":        fmt.Sprint(p.EnemyDensity),
		"loot_density":         fmt.Sprint(p.LootDensity),
		"coin_density":         fmt.Sprint(p.CoinDensity),
		"health_density":       fmt.Sprint(p.HealthDensity),
		"breakable_density":    fmt.Sprint(p.BreakableDensity),
		"edge_wall_bias":       fmt.Sprint(p.EdgeWallBias),
		"min_player_exit_dist": fmt.Sprint(p.MinPlayerExitDist),
		"layout":               p.Layout,
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + m[k]
	}
	return strings.Join(parts, " ")
}

func helpText() string {
	byAction := input.GetBindingsByAction()
	actions := []input.Action{
		input.ActionNextSeed, input.ActionPrevSeed, input.ActionSet, input.ActionShowParams,
		input.ActionDump, input.ActionScreenshot, input.ActionExportINI, input.ActionDevMap,
		input.ActionHelp, input.ActionQuit,
	}

	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s [%s]", input.ActionName(a), strings.Join(byAction[a], "/")))
	}
	return strings.Join(parts, ", ")
}
