package obj

import "github.com/milk9111/pharaoh/common"

// Entities never hold each other. Each reads its collaborators once per
// tick through one of these queries, wired in when it is constructed. A nil
// source reads as empty.

// PositionProvider gives an entity's current bounding rectangle.
type PositionProvider interface {
	GivePosition() common.Rect
}

// CollidableSource gives the wall rectangles entities collide with.
type CollidableSource interface {
	GiveCollidables() []common.Rect
}

// ProjectileSource gives the projectiles currently in flight.
type ProjectileSource interface {
	GiveProjectiles() []*Projectile
}

// AttackHitboxSource gives every active enemy attack rectangle. Inactive
// attackers may report empty rectangles.
type AttackHitboxSource interface {
	GiveAttackHitboxes() []common.Rect
}

// KeySource gives the keys of the current level.
type KeySource interface {
	GiveKeys() []*Key
}

// PassageOpener is the part of the level grid a Lock needs to open its gate.
type PassageOpener interface {
	FindVertex(p common.Point) *Vertex
	OpenPassage(v *Vertex, d Direction) bool
}

// PositionFunc adapts a function to PositionProvider.
type PositionFunc func() common.Rect

func (f PositionFunc) GivePosition() common.Rect { return f() }

// CollidableFunc adapts a function to CollidableSource.
type CollidableFunc func() []common.Rect

func (f CollidableFunc) GiveCollidables() []common.Rect { return f() }

// ProjectileFunc adapts a function to ProjectileSource.
type ProjectileFunc func() []*Projectile

func (f ProjectileFunc) GiveProjectiles() []*Projectile { return f() }

// AttackHitboxFunc adapts a function to AttackHitboxSource.
type AttackHitboxFunc func() []common.Rect

func (f AttackHitboxFunc) GiveAttackHitboxes() []common.Rect { return f() }

// KeyFunc adapts a function to KeySource.
type KeyFunc func() []*Key

func (f KeyFunc) GiveKeys() []*Key { return f() }

func positionOf(src PositionProvider) (common.Rect, bool) {
	if src == nil {
		return common.Rect{}, false
	}
	return src.GivePosition(), true
}

func collidablesOf(src CollidableSource) []common.Rect {
	if src == nil {
		return nil
	}
	return src.GiveCollidables()
}

func projectilesOf(src ProjectileSource) []*Projectile {
	if src == nil {
		return nil
	}
	return src.GiveProjectiles()
}

func attackHitboxesOf(src AttackHitboxSource) []common.Rect {
	if src == nil {
		return nil
	}
	return src.GiveAttackHitboxes()
}

func keysOf(src KeySource) []*Key {
	if src == nil {
		return nil
	}
	return src.GiveKeys()
}
