package system

import (
	"log"

	"github.com/milk9111/pharaoh/levels"
	"github.com/milk9111/pharaoh/obj"
)

// buildGraph creates the level grid from whatever collision and texture
// rows were read.
func buildGraph(lvl *levels.Level, width, height int) *obj.Graph {
	g := obj.NewGraph(width, height)
	if lvl == nil {
		return g
	}
	g.ApplyCollision(lvl.Collision)
	g.ApplyTextures(lvl.Textures)
	return g
}

func spawnEnemies(records []levels.EnemyRecord, cfg obj.EnemyConfig, walls obj.CollidableSource, player obj.PositionProvider, projectiles obj.ProjectileSource) []*obj.Enemy {
	enemies := make([]*obj.Enemy, 0, len(records))
	for _, rec := range records {
		enemies = append(enemies, obj.NewEnemy(rec.Rect, rec.RightDistance, rec.LeftDistance, cfg, walls, player, projectiles))
	}
	return enemies
}

func spawnKeys(records []levels.KeyRecord, cfg obj.PuzzleConfig, player obj.PositionProvider) []*obj.Key {
	keys := make([]*obj.Key, 0, len(records))
	for _, rec := range records {
		c, err := obj.ParseKeyColor(rec.Color)
		if err != nil {
			log.Printf("system: skip key at (%d,%d): %v", rec.Rect.X, rec.Rect.Y, err)
			continue
		}
		keys = append(keys, obj.NewKey(rec.Rect, c, cfg, player))
	}
	return keys
}

func spawnLocks(records []levels.LockRecord, cfg obj.PuzzleConfig, keys obj.KeySource, graph obj.PassageOpener) []*obj.Lock {
	locks := make([]*obj.Lock, 0, len(records))
	for _, rec := range records {
		c, err := obj.ParseKeyColor(rec.Color)
		if err != nil {
			log.Printf("system: skip lock at (%d,%d): %v", rec.Rect.X, rec.Rect.Y, err)
			continue
		}
		dir := obj.ParseDirection(rec.Direction)
		if dir.String() != rec.Direction {
			log.Printf("system: lock at (%d,%d): unknown direction %q, using %s", rec.Rect.X, rec.Rect.Y, rec.Direction, dir)
		}
		locks = append(locks, obj.NewLock(rec.Rect, c, dir, cfg, keys, graph))
	}
	return locks
}
