package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/component"
	"github.com/milk9111/pharaoh/obj"
)

const stickDeadzone = 0.3

// pollInput reads keyboard, mouse and the first gamepad into one snapshot.
// D wins over A when both are held.
func pollInput(camera *obj.Camera) component.Input {
	var in component.Input

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyD):
		in.MoveX = 1
	case ebiten.IsKeyPressed(ebiten.KeyA):
		in.MoveX = -1
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyW)
	in.Attack = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Interact = ebiten.IsKeyPressed(ebiten.KeyE)

	in.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.ConfirmPressed = in.PausePressed
	in.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	mx, my := ebiten.CursorPosition()
	in.Pointer = common.Point{X: mx, Y: my}
	if camera != nil {
		in.Pointer = camera.ToWorld(in.Pointer)
	}
	in.PointerPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return in
	}
	gid := ids[0]

	if in.MoveX == 0 {
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			in.MoveX = -1
		} else if leftX > stickDeadzone {
			in.MoveX = 1
		}
	}
	in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	in.Attack = in.Attack || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	in.Interact = in.Interact || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightLeft)

	start := inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	in.PausePressed = in.PausePressed || start
	in.ConfirmPressed = in.ConfirmPressed || start
	return in
}
