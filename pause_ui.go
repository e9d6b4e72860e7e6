package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pharaoh/common"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor   = color.NRGBA{A: 200}
	buttonColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	pressedColor = color.NRGBA{R: 0x55, G: 0x44, B: 0x22, A: 0xff}
	labelColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// menuKit holds the shared look of every screen.
type menuKit struct {
	face     ebtext.Face
	btnImage *widget.ButtonImage
	btnText  *widget.ButtonTextColor
}

func newMenuKit() *menuKit {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &menuKit{
		face: face,
		btnImage: &widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonColor),
			Pressed: imageui.NewNineSliceColor(pressedColor),
		},
		btnText: &widget.ButtonTextColor{Idle: labelColor},
	}
}

func (k *menuKit) title(s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, &k.face, labelColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func (k *menuKit) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(k.btnImage),
		widget.ButtonOpts.Text(label, &k.face, k.btnText),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// screen centers a vertical panel holding children.
func (k *menuKit) screen(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ScreenWidth/4, common.ScreenHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func NewMenuUI(g *Game) *ebitenui.UI {
	k := newMenuKit()
	return k.screen(
		k.title("PHARAOH"),
		k.button("Start", g.session.Start),
		k.button("Settings", g.session.OpenSettings),
		k.button("Quit", g.session.Quit),
	)
}

func NewPauseUI(g *Game) *ebitenui.UI {
	k := newMenuKit()
	return k.screen(
		k.title("Paused"),
		k.button("Resume", g.session.Resume),
		k.button("Quit to menu", g.session.QuitToMenu),
	)
}
