package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/prefabs"
	"github.com/milk9111/pharaoh/system"
)

// Scales offered on the settings screen.
var windowScales = []float64{0.5, 0.75, 1}

type Game struct {
	session *system.Session
	watcher *prefabs.Watcher
	palette palette

	debug        bool
	showHitboxes bool
	scale        float64

	menuUI     *ebitenui.UI
	settingsUI *ebitenui.UI
	pauseUI    *ebitenui.UI
	settings   *settingsPanel
}

func NewGame(session *system.Session, debug bool) *Game {
	g := &Game{
		session:      session,
		palette:      loadPalette(),
		debug:        debug,
		showHitboxes: debug,
		scale:        1,
	}
	g.menuUI = NewMenuUI(g)
	g.settingsUI, g.settings = NewSettingsUI(g)
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.reloadSpecs()

	camera := g.session.Levels().Camera()
	g.session.Update(pollInput(camera))
	if g.session.Quitting() {
		return ebiten.Termination
	}

	switch g.session.State() {
	case system.StateMenu:
		g.menuUI.Update()
	case system.StateSettings:
		g.settingsUI.Update()
	case system.StatePause:
		g.pauseUI.Update()
	}
	return nil
}

// reloadSpecs picks up prefab edits made while running with -debug.
func (g *Game) reloadSpecs() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	log.Printf("main: prefab change: %v", changed)

	tuning, err := system.LoadTuning()
	if err != nil {
		log.Printf("main: reload tuning: %v", err)
	}
	g.session.SetTuning(tuning)
	g.palette = loadPalette()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.background)

	switch g.session.State() {
	case system.StateMenu:
		g.menuUI.Draw(screen)
	case system.StateSettings:
		g.settingsUI.Draw(screen)
	case system.StateGame:
		g.drawWorld(screen)
		g.drawHUD(screen)
	case system.StatePause:
		g.drawWorld(screen)
		g.pauseUI.Draw(screen)
	case system.StateGameWin:
		g.drawWorld(screen)
		g.drawWin(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) setScale(s float64) {
	if s <= 0 {
		s = 1
	}
	g.scale = s
	ebiten.SetWindowSize(int(common.ScreenWidth*s), int(common.ScreenHeight*s))
	if g.settings != nil {
		g.settings.refresh(g)
	}
}

func (g *Game) cycleScale() {
	next := windowScales[0]
	for i, s := range windowScales {
		if s == g.scale {
			next = windowScales[(i+1)%len(windowScales)]
			break
		}
	}
	g.setScale(next)
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("main: close watcher: %v", err)
	}
}
