package input

import (
	"sort"
	"strings"
)

// Action represents a high-level intent of the person browsing levels.
type Action int

const (
	ActionNone Action = iota

	// Seed navigation
	ActionNextSeed
	ActionPrevSeed

	// Parameters
	ActionSet
	ActionShowParams

	// Exports
	ActionDump
	ActionScreenshot
	ActionExportINI

	// Meta / UI
	ActionDevMap
	ActionHelp
	ActionQuit
)

// Intent is what a line of input resolves to. Arg holds anything typed after
// the command word, e.g. "noise_scale=0.1" for set.
type Intent struct {
	Action Action
	Arg    string
}

// bindings maps input codes to actions. Multiple codes may point to the
// same Action.
var bindings = map[string]Action{
	"":            ActionNextSeed,
	"enter":       ActionNextSeed,
	"n":           ActionNextSeed,
	"next":        ActionNextSeed,
	"arrow_right": ActionNextSeed,
	"arrow_down":  ActionNextSeed,

	"p":          ActionPrevSeed,
	"prev":       ActionPrevSeed,
	"arrow_left": ActionPrevSeed,
	"arrow_up":   ActionPrevSeed,

	"set":    ActionSet,
	"params": ActionShowParams,

	"dump":       ActionDump,
	"d":          ActionDump,
	"screenshot": ActionScreenshot,
	"html":       ActionScreenshot,
	"ini":        ActionExportINI,
	"export":     ActionExportINI,

	"devmap": ActionDevMap,
	"f9":     ActionDevMap,

	"?":    ActionHelp,
	"help": ActionHelp,

	"quit":   ActionQuit,
	"q":      ActionQuit,
	"exit":   ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent resolves a line of input. The first word selects the action,
// the remainder is passed through as Arg.
func MapToIntent(line string) Intent {
	line = strings.TrimSpace(line)
	code, arg, _ := strings.Cut(line, " ")
	code = strings.ToLower(code)

	if act, ok := bindings[code]; ok {
		return Intent{Action: act, Arg: strings.TrimSpace(arg)}
	}
	return Intent{Action: ActionNone, Arg: line}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionNextSeed:
		return "Next Seed"
	case ActionPrevSeed:
		return "Previous Seed"
	case ActionSet:
		return "Set Parameter"
	case ActionShowParams:
		return "Show Parameters"
	case ActionDump:
		return "Dump Map"
	case ActionScreenshot:
		return "Screenshot"
	case ActionExportINI:
		return "Export Level"
	case ActionDevMap:
		return "Dev Map"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action, codes sorted.
// The empty code (a bare Enter) is reported as "enter".
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		if code == "" {
			continue
		}
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
