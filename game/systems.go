package game

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// InputSystem applies queued player actions to the session.
type InputSystem struct {
	Input loop.Singleton[InputQueue]
	Play  loop.Singleton[Play]

	Log zerolog.Logger
}

func (s *InputSystem) Execute(frame *loop.UpdateFrame) {
	play := s.Play.Get()

	for action := range s.Input.Get().Drain() {
		play.Tally.Actions++

		if action == ActionQuit {
			play.QuitRequested = true
			s.Log.Info().Msg("quit requested")
			continue
		}

		res, ok := Apply(play.Session, action, frame.Now)
		s.Log.Trace().
			Stringer("action", action).
			Bool("applied", ok).
			Stringer("state", play.Session.State()).
			Msg("input")
		play.observe(res, frame.Now)
	}
}

// GravitySystem advances the drop timer.
type GravitySystem struct {
	Play loop.Singleton[Play]
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	play := s.Play.Get()
	play.observe(play.Session.Tick(frame.Now), frame.Now)
}

// PresentSystem hands a snapshot to the presenter once the frame's systems
// have settled.
type PresentSystem struct {
	Play loop.Singleton[Play]

	Presenter tetris.Presenter
}

func (s *PresentSystem) Execute(frame *loop.UpdateFrame) {
	if s.Presenter == nil {
		return
	}
	snap := s.Play.Get().Session.Snapshot()
	frame.Commands.Defer(func() {
		s.Presenter.Present(snap)
	})
}
