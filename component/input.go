package component

import "github.com/milk9111/pharaoh/common"

// Input is one frame's snapshot of the controls. Held fields are level
// triggered; Pressed fields are true only on the frame the key went down.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX    int
	Jump     bool
	Attack   bool
	Interact bool

	PausePressed   bool
	ConfirmPressed bool
	QuitPressed    bool

	// Pointer is the cursor in world coordinates.
	Pointer        common.Point
	PointerPressed bool
}

func (in Input) Left() bool  { return in.MoveX < 0 }
func (in Input) Right() bool { return in.MoveX > 0 }
