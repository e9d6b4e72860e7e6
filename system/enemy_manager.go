package system

import (
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/levels"
	"github.com/milk9111/pharaoh/obj"
)

// EnemyManager owns the enemies of the current level.
type EnemyManager struct {
	cfg      obj.EnemyConfig
	enemies  []*obj.Enemy
	hitboxes []common.Rect
}

func NewEnemyManager(cfg obj.EnemyConfig) *EnemyManager {
	return &EnemyManager{cfg: cfg}
}

// Instantiate replaces the current enemies with ones built from records.
func (m *EnemyManager) Instantiate(records []levels.EnemyRecord, walls obj.CollidableSource, player obj.PositionProvider, projectiles obj.ProjectileSource) {
	m.enemies = spawnEnemies(records, m.cfg, walls, player, projectiles)
	m.hitboxes = m.hitboxes[:0]
}

func (m *EnemyManager) Update() {
	for _, e := range m.enemies {
		e.Update()
	}
}

// GiveAttackHitboxes implements obj.AttackHitboxSource. It has one entry
// per enemy, empty for enemies not mid-swing. The slice is reused between
// calls.
func (m *EnemyManager) GiveAttackHitboxes() []common.Rect {
	m.hitboxes = m.hitboxes[:0]
	for _, e := range m.enemies {
		m.hitboxes = append(m.hitboxes, e.AttackRange())
	}
	return m.hitboxes
}

func (m *EnemyManager) Enemies() []*obj.Enemy { return m.enemies }
