package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// settingsPanel keeps the buttons whose labels track game settings.
type settingsPanel struct {
	scale    *widget.Button
	hitboxes *widget.Button
}

func (s *settingsPanel) refresh(g *Game) {
	setLabel(s.scale, fmt.Sprintf("Window scale: %.2fx", g.scale))
	setLabel(s.hitboxes, "Hitboxes: "+onOff(g.showHitboxes))
}

func setLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if text := b.Text(); text != nil {
		text.Label = label
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func NewSettingsUI(g *Game) (*ebitenui.UI, *settingsPanel) {
	k := newMenuKit()
	s := &settingsPanel{}
	s.scale = k.button("Window scale", func() {
		g.cycleScale()
		s.refresh(g)
	})
	s.hitboxes = k.button("Hitboxes", func() {
		g.showHitboxes = !g.showHitboxes
		s.refresh(g)
	})
	s.refresh(g)

	ui := k.screen(
		k.title("Settings"),
		s.scale,
		s.hitboxes,
		k.button("Back", g.session.CloseSettings),
	)
	return ui, s
}
