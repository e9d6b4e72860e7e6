package obj

import (
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/component"
)

// Lock opens one wall tile next to it when a key of its color is brought
// close and the interact key is pressed. Unlocking cannot be undone.
type Lock struct {
	Rect      common.Rect
	Color     KeyColor
	Direction Direction

	cfg      PuzzleConfig
	unlocked bool

	keys  KeySource
	graph PassageOpener
}

func NewLock(rect common.Rect, c KeyColor, dir Direction, cfg PuzzleConfig, keys KeySource, graph PassageOpener) *Lock {
	return &Lock{Rect: rect, Color: c, Direction: dir, cfg: cfg, keys: keys, graph: graph}
}

// Update checks the first key of the lock's color and, once unlocked, keeps
// its passage open.
func (l *Lock) Update(in component.Input) {
	if !l.unlocked {
		if key := l.matchingKey(); key != nil && in.Interact &&
			common.Distance(key.Rect.Center(), l.Rect.Center()) < l.cfg.UnlockDistance {
			key.Use()
			l.unlocked = true
		}
	}
	if l.unlocked {
		l.Resolve()
	}
}

// Resolve opens the neighbor of the lock's tile in the lock's direction.
// Calling it again is harmless.
func (l *Lock) Resolve() bool {
	if l.graph == nil {
		return false
	}
	v := l.graph.FindVertex(l.Rect.Center())
	if v == nil {
		return false
	}
	return l.graph.OpenPassage(v, l.Direction)
}

func (l *Lock) matchingKey() *Key {
	for _, k := range keysOf(l.keys) {
		if k != nil && k.Color == l.Color {
			return k
		}
	}
	return nil
}

func (l *Lock) Unlocked() bool { return l.unlocked }
