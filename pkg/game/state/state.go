// Package state holds what a host keeps between generations: the current
// parameters and bounds, the last level, and a short message log.
package state

import (
	"towergen/pkg/game/config"
	"towergen/pkg/game/generator"
	gameworld "towergen/pkg/game/world"
)

// Session represents one interactive generation session
type Session struct {
	Params config.Params
	Width  int
	Height int

	Generator generator.GridGenerator
	Level     *generator.Level

	Messages []string

	// Generation counts completed regenerations
	Generation int
}

// NewSession creates a session for the given parameters and bounds
func NewSession(p config.Params, width, height int) (*Session, error) {
	gen, err := generator.ForLayout(p.Layout)
	if err != nil {
		return nil, err
	}
	return &Session{
		Params:    p,
		Width:     width,
		Height:    height,
		Generator: gen,
		Messages:  make([]string, 0),
	}, nil
}

// Regenerate builds a level from the current parameters. On error the
// previous level is kept.
func (s *Session) Regenerate() error {
	lvl, err := s.Generator.Generate(s.Params, s.Width, s.Height)
	if err != nil {
		return err
	}
	s.Level = lvl
	s.Generation++

	s.ClearMessages()
	for _, w := range lvl.Warnings {
		s.AddMessage(gameworld.T("WARNING", w.Error()))
	}
	return nil
}

// NextSeed advances the seed by one and regenerates
func (s *Session) NextSeed() error {
	s.Params.Seed++
	if err := s.Regenerate(); err != nil {
		s.Params.Seed--
		return err
	}
	return nil
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
