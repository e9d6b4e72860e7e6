package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/obj"
	"github.com/milk9111/pharaoh/prefabs"
	"golang.org/x/image/colornames"
)

type palette struct {
	background color.Color
	winTile    color.Color
	hitbox     color.Color
	tiles      [obj.TileKinds]color.Color
}

var tileKeys = map[string]obj.Tile{
	"top_left":     obj.TileTopLeft,
	"top_right":    obj.TileTopRight,
	"top_grass":    obj.TileTopGrass,
	"rock":         obj.TileRock,
	"under_left":   obj.TileUnderLeft,
	"under_right":  obj.TileUnderRight,
	"moss_bricks":  obj.TileMossBricks,
	"under_middle": obj.TileUnderMiddle,
}

func defaultPalette() palette {
	p := palette{
		background: colornames.Midnightblue,
		winTile:    colornames.Gold,
		hitbox:     color.NRGBA{R: 0xff, A: 0x80},
	}
	p.tiles = [obj.TileKinds]color.Color{
		obj.TileEmpty:       color.Transparent,
		obj.TileTopLeft:     colornames.Olivedrab,
		obj.TileTopRight:    colornames.Olivedrab,
		obj.TileTopGrass:    colornames.Forestgreen,
		obj.TileRock:        colornames.Dimgray,
		obj.TileUnderLeft:   colornames.Saddlebrown,
		obj.TileUnderRight:  colornames.Saddlebrown,
		obj.TileMossBricks:  colornames.Darkolivegreen,
		obj.TileUnderMiddle: colornames.Sienna,
	}
	return p
}

// loadPalette reads palette.yaml over the built-in colors.
func loadPalette() palette {
	p := defaultPalette()
	spec, err := prefabs.LoadSpec[prefabs.PaletteSpec]("palette.yaml")
	if err != nil {
		log.Printf("main: palette: %v", err)
		return p
	}
	if spec.Background != nil {
		p.background = spec.Background.Color
	}
	if spec.WinTile != nil {
		p.winTile = spec.WinTile.Color
	}
	if spec.Hitbox != nil {
		p.hitbox = spec.Hitbox.Color
	}
	for name, c := range spec.Tiles {
		t, ok := tileKeys[name]
		if !ok {
			log.Printf("main: palette: unknown tile %q", name)
			continue
		}
		p.tiles[t] = c.Color
	}
	return p
}

// view maps world rects to screen space for one frame.
type view struct {
	dst    *ebiten.Image
	ox, oy float64
}

func (v view) fill(r common.Rect, c color.Color) {
	vector.FillRect(v.dst, float32(float64(r.X)+v.ox), float32(float64(r.Y)+v.oy), float32(r.Width), float32(r.Height), c, false)
}

func (v view) stroke(r common.Rect, c color.Color) {
	vector.StrokeRect(v.dst, float32(float64(r.X)+v.ox), float32(float64(r.Y)+v.oy), float32(r.Width), float32(r.Height), 2, c, false)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	lm := g.session.Levels()
	ox, oy := lm.Camera().Offset()
	v := view{dst: screen, ox: ox, oy: oy}

	graph := lm.Graph()
	for y := 0; y < graph.Height(); y++ {
		for x := 0; x < graph.Width(); x++ {
			cell := graph.At(x, y)
			if cell.IsWall() {
				v.fill(cell.Rect, g.palette.tiles[cell.Tile()])
			}
		}
	}
	if win := lm.WinTile(); win != nil {
		v.fill(win.Rect, g.palette.winTile)
	}

	for _, l := range lm.Puzzles().Locks() {
		if l.Unlocked() {
			continue
		}
		v.fill(l.Rect, l.Color.RGBA())
		v.stroke(l.Rect, colornames.Black)
	}
	for _, k := range lm.Puzzles().Keys() {
		if k.Used() {
			continue
		}
		v.fill(k.Rect, k.Color.RGBA())
	}

	for _, e := range lm.Enemies().Enemies() {
		c := color.Color(colornames.Darkred)
		switch {
		case e.Flashing():
			c = colornames.White
		case e.Corpse():
			c = colornames.Dimgray
		case e.Regenerating():
			c = colornames.Indianred
		}
		v.fill(e.Rect, c)
		if !e.Corpse() {
			g.drawHealthBar(v, e.Rect, e.Health(), e.MaxHealth())
		}
		if g.showHitboxes {
			v.stroke(e.Rect, g.palette.hitbox)
			if r := e.AttackRange(); !r.Empty() {
				v.fill(r, g.palette.hitbox)
			}
		}
	}

	p := lm.Player()
	pc := color.Color(colornames.Goldenrod)
	if p.State() == obj.PlayerHit {
		pc = colornames.Orangered
	}
	v.fill(p.Rect, pc)
	for _, pr := range p.GiveProjectiles() {
		v.fill(pr.Rect, colornames.Lightskyblue)
		if g.showHitboxes {
			v.stroke(pr.Rect, g.palette.hitbox)
		}
	}
	if g.showHitboxes {
		v.stroke(p.Rect, g.palette.hitbox)
	}
}

func (g *Game) drawHealthBar(v view, r common.Rect, current, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	bar := common.NewRect(r.X, r.Y-15, r.Width, 8)
	v.fill(bar, colornames.Black)
	bar.Width = r.Width * max(current, 0) / maxHealth
	v.fill(bar, colornames.Limegreen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lm := g.session.Levels()
	p := lm.Player()
	msg := fmt.Sprintf("Level %d/%d  Health %d/%d", lm.Level(), g.session.LevelCount(), p.Health(), p.MaxHealth())
	if g.debug {
		msg += fmt.Sprintf("\nTPS %.1f  FPS %.1f  state %s  frame %d", ebiten.ActualTPS(), ebiten.ActualFPS(), p.State(), p.Frame())
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) drawWin(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "The tomb is yours. Press Enter.", common.ScreenWidth/2-90, common.ScreenHeight/2)
}
