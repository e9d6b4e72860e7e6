package obj

import (
	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/component"
)

// Player is the controllable character. It reads walls and enemy attacks
// through the sources given to NewPlayer and owns its projectiles.
type Player struct {
	Rect common.Rect

	cfg    PlayerConfig
	health *component.Health
	state  playerState
	anim   *component.Animation
	anims  [playerStateCount]*component.Animation

	facingLeft  bool
	jumping     bool
	jumpCounter int

	projectiles    []*Projectile
	shotThisAttack bool
	attackCooldown int

	dead      bool
	deathDone bool

	walls   CollidableSource
	attacks AttackHitboxSource
}

// NewPlayer creates a player at start, facing left, in the Idle state.
func NewPlayer(start common.Rect, cfg PlayerConfig, walls CollidableSource, attacks AttackHitboxSource) *Player {
	p := &Player{
		Rect:       start,
		cfg:        cfg,
		health:     component.NewHealth(cfg.Health),
		facingLeft: true,
		walls:      walls,
		attacks:    attacks,
	}
	p.anims[PlayerIdle] = cfg.Idle.build(true)
	p.anims[PlayerWalking] = cfg.Walk.build(true)
	p.anims[PlayerAttacking] = cfg.Attack.build(false)
	p.anims[PlayerHit] = cfg.Hit.build(false)
	p.anims[PlayerDeath] = cfg.Death.build(false)
	p.state = stateIdle
	p.anim = p.anims[PlayerIdle]
	return p
}

// Update runs one tick: state input, jumping and gravity, projectiles,
// cooldowns, enemy hits, death, wall snapping, then animation.
func (p *Player) Update(in component.Input) {
	walls := collidablesOf(p.walls)

	p.state.HandleInput(p, in)
	p.updateVertical(in, walls)
	p.updateProjectiles(walls)

	p.attackCooldown--
	if p.attackCooldown <= 0 {
		p.attackCooldown = 0
		p.shotThisAttack = false
	}

	p.takeHits()

	if p.health.Depleted() && !p.dead {
		p.dead = true
		p.setState(stateDeath)
	}

	p.Rect = component.ResolveCollisions(p.Rect, walls, component.ProbePerCollider)
	if p.Rect.Y < p.cfg.CeilingY {
		p.Rect.Y = p.cfg.CeilingY
	}

	if p.anim.Update() {
		p.state.OnAnimationEnd(p)
	}
}

func (p *Player) updateVertical(in component.Input, walls []common.Rect) {
	if in.Jump && p.state != stateHit && component.Grounded(p.Rect, walls) {
		p.jumping = true
		p.jumpCounter = p.cfg.JumpTicks
	}
	p.jumpCounter--
	if p.jumpCounter <= 0 {
		p.jumping = false
		p.jumpCounter = 0
	}

	if p.state == stateAttacking || p.state == stateDeath {
		return
	}
	switch {
	case !p.jumping && p.jumpCounter == 0:
		p.Rect.Y += p.cfg.Gravity
	case p.jumping:
		p.Rect.Y -= p.cfg.JumpSpeed
	}
}

func (p *Player) updateProjectiles(walls []common.Rect) {
	if len(p.projectiles) == 0 {
		return
	}
	writeIdx := 0
	for _, proj := range p.projectiles {
		proj.Update(walls)
		if proj.Spent() {
			continue
		}
		p.projectiles[writeIdx] = proj
		writeIdx++
	}
	clear(p.projectiles[writeIdx:])
	p.projectiles = p.projectiles[:writeIdx]
}

// takeHits applies at most one enemy hit per tick and opens the cooldown.
func (p *Player) takeHits() {
	if p.attacks == nil || p.state == stateDeath {
		return
	}
	if p.health.Invulnerable() {
		p.health.Tick()
		return
	}
	for _, attack := range attackHitboxesOf(p.attacks) {
		if !p.Rect.Intersects(attack) {
			continue
		}
		p.health.ApplyDamage(p.cfg.HitDamage)
		p.health.StartIFrames(p.cfg.HitCooldown)
		p.setState(stateHit)
		return
	}
}

func (p *Player) move(in component.Input, turn bool) {
	switch {
	case in.Right():
		p.Rect.X += p.cfg.MoveSpeed
		if turn {
			p.facingLeft = false
		}
	case in.Left():
		p.Rect.X -= p.cfg.MoveSpeed
		if turn {
			p.facingLeft = true
		}
	}
}

func (p *Player) canAttack(in component.Input) bool {
	return in.Attack && !p.shotThisAttack && p.attackCooldown <= 0 && len(p.projectiles) == 0
}

func (p *Player) shoot() {
	size := p.cfg.Projectile.Size
	rect := common.NewRect(p.Rect.X, p.Rect.Y, size, size)
	p.projectiles = append(p.projectiles, NewProjectile(rect, p.facingLeft, p.cfg.Projectile))
	p.shotThisAttack = true
	p.attackCooldown = p.cfg.AttackCooldown
}

// GivePosition implements PositionProvider.
func (p *Player) GivePosition() common.Rect { return p.Rect }

// GiveProjectiles implements ProjectileSource.
func (p *Player) GiveProjectiles() []*Projectile { return p.projectiles }

func (p *Player) State() PlayerState { return p.state.ID() }
func (p *Player) Frame() int         { return p.anim.Frame() }
func (p *Player) FacingLeft() bool   { return p.facingLeft }
func (p *Player) Health() int        { return p.health.Current }
func (p *Player) MaxHealth() int     { return p.health.Max }
func (p *Player) HitCooldown() int   { return p.health.IFrames }
func (p *Player) Jumping() bool      { return p.jumping }
func (p *Player) Dead() bool         { return p.dead }

// DeathAnimationDone reports whether the death animation has played out.
func (p *Player) DeathAnimationDone() bool { return p.deathDone }
