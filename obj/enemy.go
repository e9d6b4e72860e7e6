package obj

import (
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/component"
)

// Enemy is a patrolling skeleton. It walks between two bounds around the
// point where it first stood, swings at the player when they come close,
// and rises again some time after being killed.
type Enemy struct {
	Rect common.Rect

	cfg    EnemyConfig
	health *component.Health
	state  enemyState
	anim   *component.Animation
	anims  [enemyStateCount]*component.Animation

	rightDistance int
	leftDistance  int
	start         common.Point
	hasStart      bool
	turningBack   bool
	facingLeft    bool

	attacking      bool
	corpse         bool
	resurrectTimer int
	regenerating   bool
	hitTimer       int

	walls       CollidableSource
	player      PositionProvider
	projectiles ProjectileSource
}

// NewEnemy creates an enemy in the Walking state. rightDistance and
// leftDistance bound its patrol around its starting center.
func NewEnemy(rect common.Rect, rightDistance, leftDistance int, cfg EnemyConfig, walls CollidableSource, player PositionProvider, projectiles ProjectileSource) *Enemy {
	e := &Enemy{
		Rect:           rect,
		cfg:            cfg,
		health:         component.NewHealth(cfg.Health),
		rightDistance:  rightDistance,
		leftDistance:   leftDistance,
		resurrectTimer: cfg.ResurrectTicks,
		walls:          walls,
		player:         player,
		projectiles:    projectiles,
	}
	e.anims[EnemyWalking] = cfg.Walk.build(true)
	e.anims[EnemyAttacking] = cfg.Attack.build(false)
	e.anims[EnemyDeath] = cfg.Death.build(false)
	e.anims[EnemyResurrect] = cfg.Death.build(false)
	e.state = stateEnemyWalking
	e.anim = e.anims[EnemyWalking]
	return e
}

// Update runs one tick: the hit flash countdown, projectile hits, gravity,
// wall snapping, state transitions, then animation and regeneration.
func (e *Enemy) Update() {
	if e.hitTimer > 0 {
		e.hitTimer--
	}
	e.takeHits()

	e.Rect.Y += e.cfg.Gravity
	e.Rect = component.ResolveCollisions(e.Rect, collidablesOf(e.walls), component.ProbeOnce)

	e.state.Think(e)
	e.state.Animate(e)

	if e.regenerating && e.health.Heal(e.cfg.RegenPerTick) {
		e.regenerating = false
	}
}

func (e *Enemy) takeHits() {
	for _, proj := range projectilesOf(e.projectiles) {
		if proj == nil || proj.Hit() || e.health.Depleted() {
			continue
		}
		if !proj.Rect.Intersects(e.Rect) {
			continue
		}
		proj.MarkHit()
		e.health.ApplyDamage(e.cfg.ProjectileDamage)
		e.hitTimer = e.cfg.HitFlashTicks
	}
}

func (e *Enemy) patrol() {
	if !e.hasStart {
		e.start = e.Rect.Center()
		e.hasStart = true
	}
	if !e.turningBack {
		e.facingLeft = false
		e.Rect.X += e.cfg.MoveSpeed
		if e.Rect.X >= e.start.X+e.rightDistance {
			e.turningBack = true
		}
		return
	}
	e.facingLeft = true
	e.Rect.X -= e.cfg.MoveSpeed
	if e.Rect.X <= e.start.X-e.leftDistance {
		e.turningBack = false
	}
}

// playerInReach reports whether the player's center is close to the point
// the enemy swings at.
func (e *Enemy) playerInReach() bool {
	target, ok := positionOf(e.player)
	if !ok {
		return false
	}
	reach := common.Point{
		X: e.Rect.X - e.Rect.Width/2 + e.cfg.AggroOffsetX,
		Y: e.Rect.Y + e.Rect.Height/2,
	}
	return common.Distance(target.Center(), reach) < e.cfg.AggroDistance
}

func (e *Enemy) inActiveWindow() bool {
	f := e.anim.Frame()
	return f >= e.cfg.ActiveFirstFrame && f <= e.cfg.ActiveLastFrame
}

// AttackRange is the rectangle that hurts the player, empty outside the
// active frames of an attack.
func (e *Enemy) AttackRange() common.Rect {
	if !e.attacking {
		return common.Rect{}
	}
	b := e.cfg.AttackBox
	return common.NewRect(e.Rect.X+b.OffsetX, e.Rect.Y+b.OffsetY, b.Width, b.Height)
}

func (e *Enemy) State() EnemyState  { return e.state.ID() }
func (e *Enemy) Frame() int         { return e.anim.Frame() }
func (e *Enemy) FacingLeft() bool   { return e.facingLeft }
func (e *Enemy) Health() int        { return e.health.Current }
func (e *Enemy) MaxHealth() int     { return e.health.Max }
func (e *Enemy) Flashing() bool     { return e.hitTimer > 0 }
func (e *Enemy) Corpse() bool       { return e.corpse }
func (e *Enemy) Regenerating() bool { return e.regenerating }

// Start is the patrol anchor, valid once the enemy has walked.
func (e *Enemy) Start() (common.Point, bool) { return e.start, e.hasStart }
