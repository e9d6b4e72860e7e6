package obj

import (
	"math"

	"github.com/milk9111/pharaoh/common"
)

// Camera keeps the followed rectangle centered horizontally and a fixed
// world row centered vertically.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int
	focusY  float64
	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth  float64
	snapped bool
}

func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{
		screenW: cfg.ScreenWidth,
		screenH: cfg.ScreenHeight,
		focusY:  float64(cfg.FocusY),
	}
	c.SetSmooth(cfg.Smooth)
	c.PosX = float64(c.screenW) / 2.0
	c.PosY = c.focusY
	return c
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = math.Max(0, math.Min(f, 1))
}

// FollowObject moves the camera toward the center of r. The first call after
// a Reset snaps instead of easing.
func (c *Camera) FollowObject(r common.Rect) {
	targetX := float64(r.X) + float64(r.Width)/2.0
	if c.smooth <= 0 || !c.snapped {
		c.PosX = targetX
		c.snapped = true
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
	}
	c.PosY = c.focusY
}

// Reset makes the next FollowObject snap.
func (c *Camera) Reset() { c.snapped = false }

// Offset is the translation that maps world coordinates to the screen.
func (c *Camera) Offset() (float64, float64) {
	return math.Round(float64(c.screenW)/2.0 - c.PosX), math.Round(float64(c.screenH)/2.0 - c.PosY)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	x, y := c.Offset()
	return -x, -y
}

// ToWorld converts a screen point to world coordinates.
func (c *Camera) ToWorld(p common.Point) common.Point {
	x, y := c.ViewTopLeft()
	return common.Point{X: p.X + int(x), Y: p.Y + int(y)}
}
