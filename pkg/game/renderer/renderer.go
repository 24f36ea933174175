// Package renderer defines how a generation session is shown to a user.
package renderer

import "towergen/pkg/game/state"

// Previewer displays the session's current level.
type Previewer interface {
	Name() string
	// Preview shows s.Level, regenerating it through s as the previewer allows.
	Preview(s *state.Session) error
}
