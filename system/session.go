package system

import (
	"log"

	"github.com/milk9111/pharaoh/component"
)

// State is the top-level screen the game is on.
type State int

const (
	StateMenu State = iota
	StateSettings
	StateGame
	StatePause
	StateGameWin
)

var stateNames = [...]string{"menu", "settings", "game", "pause", "win"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Session drives the screens around a LevelManager: menu, settings, play,
// pause and the win screen.
type Session struct {
	levels     *LevelManager
	levelCount int
	state      State
	quit       bool
}

func NewSession(lm *LevelManager, levelCount int) *Session {
	return &Session{levels: lm, levelCount: max(levelCount, 1)}
}

// Update advances the session by one tick.
func (s *Session) Update(in component.Input) {
	if in.QuitPressed {
		s.quit = true
		return
	}

	switch s.state {
	case StateMenu:
		if in.ConfirmPressed {
			s.Start()
		}
	case StateSettings:
	case StatePause:
		if in.PausePressed {
			s.Resume()
		}
	case StateGame:
		if in.PausePressed {
			s.Pause()
			return
		}
		s.updateGame(in)
	case StateGameWin:
		if in.ConfirmPressed || in.PointerPressed {
			s.levels.Reset()
			s.setState(StateMenu)
		}
	}
}

func (s *Session) updateGame(in component.Input) {
	lm := s.levels
	last := s.lastLevel()
	if lm.Update(in) {
		if lm.Level() >= last {
			s.setState(StateGameWin)
			return
		}
		lm.NextLevel()
	}
	if lm.Player().DeathAnimationDone() || lm.Level() > last {
		lm.Reset()
		s.setState(StateMenu)
	}
}

// lastLevel is the configured level count, capped by the levels that
// actually exist.
func (s *Session) lastLevel() int {
	if n := s.levels.Available(); n > 0 && n < s.levelCount {
		return n
	}
	return s.levelCount
}

func (s *Session) setState(next State) {
	if s.state == next {
		return
	}
	log.Printf("system: %s -> %s", s.state, next)
	s.state = next
}

// Start begins play at the current level.
func (s *Session) Start() {
	if s.state == StateMenu || s.state == StateSettings {
		s.setState(StateGame)
	}
}

func (s *Session) OpenSettings() {
	if s.state == StateMenu {
		s.setState(StateSettings)
	}
}

func (s *Session) CloseSettings() {
	if s.state == StateSettings {
		s.setState(StateMenu)
	}
}

func (s *Session) Pause() {
	if s.state == StateGame {
		s.setState(StatePause)
	}
}

func (s *Session) Resume() {
	if s.state == StatePause {
		s.setState(StateGame)
	}
}

// QuitToMenu abandons the run.
func (s *Session) QuitToMenu() {
	s.levels.Reset()
	s.setState(StateMenu)
}

func (s *Session) Quit()                 { s.quit = true }
func (s *Session) Quitting() bool        { return s.quit }
func (s *Session) State() State          { return s.state }
func (s *Session) Levels() *LevelManager { return s.levels }
func (s *Session) LevelCount() int       { return s.levelCount }

// SetTuning hands new tuning to the level manager. It takes effect on the
// next level rebuild.
func (s *Session) SetTuning(t Tuning) {
	s.levels.SetTuning(t)
	s.levelCount = max(t.Game.LevelCount, 1)
}
