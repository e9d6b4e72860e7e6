package component

import "github.com/milk9111/pharaoh/common"

// ProbeInset is how far the two bottom corner probes sit inside the box.
const ProbeInset = 10

// ProbeMode selects when probe points are sampled while walking colliders.
type ProbeMode int

const (
	// ProbePerCollider samples the probes again after every collider, so an
	// earlier snap moves the probes tested against later colliders.
	ProbePerCollider ProbeMode = iota
	// ProbeOnce samples the probes a single time before the loop.
	ProbeOnce
)

// Probes are the six points around a bounding box used to pick a snap.
type Probes struct {
	Top, Bottom             common.Point
	Left, Right             common.Point
	BottomLeft, BottomRight common.Point
}

// ProbesFor samples the six probe points of r.
func ProbesFor(r common.Rect) Probes {
	cx := r.X + r.Width/2
	cy := r.Y + r.Height/2
	return Probes{
		Top:         common.Point{X: cx, Y: r.Y},
		Bottom:      common.Point{X: cx, Y: r.Bottom()},
		Left:        common.Point{X: r.X, Y: cy},
		Right:       common.Point{X: r.Right(), Y: cy},
		BottomLeft:  common.Point{X: r.X + ProbeInset, Y: r.Bottom()},
		BottomRight: common.Point{X: r.Right() - ProbeInset, Y: r.Bottom()},
	}
}

// Snap applies the first matching probe rule for a single collider. Bottom
// and right snaps use the fixed tile size, not the box size.
func Snap(r common.Rect, p Probes, c common.Rect) common.Rect {
	switch {
	case c.Contains(p.Top):
		r.Y = c.Bottom()
	case c.Contains(p.Bottom):
		r.Y = c.Y - common.TileSize
	case c.Contains(p.Left):
		r.X = c.Right()
	case c.Contains(p.Right):
		r.X = c.X - common.TileSize
	case c.Contains(p.BottomRight), c.Contains(p.BottomLeft):
		r.Y = c.Y - common.TileSize
	}
	return r
}

// ResolveCollisions walks colliders in order and returns r after snapping.
// The result depends on collider order.
func ResolveCollisions(r common.Rect, colliders []common.Rect, mode ProbeMode) common.Rect {
	p := ProbesFor(r)
	for _, c := range colliders {
		if mode == ProbePerCollider {
			p = ProbesFor(r)
		}
		r = Snap(r, p, c)
	}
	return r
}

// Grounded reports whether the bottom-center probe of r is inside any
// collider.
func Grounded(r common.Rect, colliders []common.Rect) bool {
	bottom := ProbesFor(r).Bottom
	for _, c := range colliders {
		if c.Contains(bottom) {
			return true
		}
	}
	return false
}
