package system

import (
	"github.com/milk9111/pharaoh/component"
	"github.com/milk9111/pharaoh/levels"
	"github.com/milk9111/pharaoh/obj"
)

// PuzzleManager owns the keys and locks of one level.
type PuzzleManager struct {
	keys  []*obj.Key
	locks []*obj.Lock
}

// NewPuzzleManager builds keys that follow player and locks that open
// passages in graph.
func NewPuzzleManager(p levels.Puzzle, cfg obj.PuzzleConfig, player obj.PositionProvider, graph obj.PassageOpener) *PuzzleManager {
	pm := &PuzzleManager{}
	pm.keys = spawnKeys(p.Keys, cfg, player)
	pm.locks = spawnLocks(p.Locks, cfg, pm, graph)
	return pm
}

// Update runs every lock, then every key.
func (pm *PuzzleManager) Update(in component.Input) {
	for _, l := range pm.locks {
		l.Update(in)
	}
	for _, k := range pm.keys {
		k.Update()
	}
}

// GiveKeys implements obj.KeySource.
func (pm *PuzzleManager) GiveKeys() []*obj.Key { return pm.keys }

func (pm *PuzzleManager) Keys() []*obj.Key   { return pm.keys }
func (pm *PuzzleManager) Locks() []*obj.Lock { return pm.locks }
