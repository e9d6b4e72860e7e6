package obj

import (
	"testing"

	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/component"
)

var testFloor = CollidableFunc(func() []common.Rect {
	return []common.Rect{common.NewRect(0, 700, 2000, 100)}
})

func newTestPlayer(cfg PlayerConfig, attacks AttackHitboxSource) *Player {
	return NewPlayer(common.NewRect(150, 600, 100, 100), cfg, testFloor, attacks)
}

func TestPlayerRestsOnFloor(t *testing.T) {
	p := newTestPlayer(DefaultPlayerConfig(), nil)
	for i := 0; i < 10; i++ {
		p.Update(component.Input{})
	}
	if p.Rect.Y != 600 {
		t.Fatalf("expected player to stay at Y=600, got %d", p.Rect.Y)
	}
	if p.State() != PlayerIdle || !p.FacingLeft() {
		t.Fatalf("expected idle facing left, got %v left=%v", p.State(), p.FacingLeft())
	}
}

func TestPlayerHitOncePerCooldown(t *testing.T) {
	// three attackers overlapping the player on the same ticks
	attacks := AttackHitboxFunc(func() []common.Rect {
		return []common.Rect{
			common.NewRect(140, 610, 50, 50),
			common.NewRect(200, 620, 50, 50),
			common.NewRect(150, 600, 100, 100),
		}
	})
	p := newTestPlayer(DefaultPlayerConfig(), attacks)

	p.Update(component.Input{})
	if p.Health() != 80 {
		t.Fatalf("expected health 80 after first tick, got %d", p.Health())
	}
	if p.State() != PlayerHit {
		t.Fatalf("expected hit state, got %v", p.State())
	}

	prev := p.HitCooldown()
	for i := 0; i < 59; i++ {
		p.Update(component.Input{})
		if p.Health() != 80 {
			t.Fatalf("tick %d: health changed to %d during cooldown", i+2, p.Health())
		}
		cd := p.HitCooldown()
		if cd >= prev || cd < 0 {
			t.Fatalf("tick %d: cooldown %d did not strictly decrease from %d", i+2, cd, prev)
		}
		prev = cd
	}

	p.Update(component.Input{})
	if p.HitCooldown() != 0 || p.Health() != 80 {
		t.Fatalf("expected cooldown to bottom out at 0 with health 80, got %d and %d", p.HitCooldown(), p.Health())
	}
	p.Update(component.Input{})
	if p.Health() != 60 {
		t.Fatalf("expected a second hit once the cooldown ran out, got health %d", p.Health())
	}
	if p.HitCooldown() != DefaultPlayerConfig().HitCooldown {
		t.Fatalf("expected cooldown to restart, got %d", p.HitCooldown())
	}
}

func TestPlayerJump(t *testing.T) {
	cfg := DefaultPlayerConfig()
	p := newTestPlayer(cfg, nil)

	p.Update(component.Input{Jump: true})
	if !p.Jumping() || p.Rect.Y != 600-cfg.JumpSpeed {
		t.Fatalf("expected jump to start, jumping=%v Y=%d", p.Jumping(), p.Rect.Y)
	}
	for i := 1; i < cfg.JumpTicks-1; i++ {
		p.Update(component.Input{})
	}
	apex := 600 - (cfg.JumpTicks-1)*cfg.JumpSpeed
	if p.Rect.Y != apex {
		t.Fatalf("expected apex Y=%d, got %d", apex, p.Rect.Y)
	}

	// no second jump while airborne
	p.Update(component.Input{Jump: true})
	if p.Jumping() {
		t.Fatalf("jump should have ended")
	}
	for i := 0; i < 40; i++ {
		p.Update(component.Input{Jump: false})
	}
	if p.Rect.Y != 600 {
		t.Fatalf("expected to land back on Y=600, got %d", p.Rect.Y)
	}
}

func TestPlayerWalkTurns(t *testing.T) {
	cfg := DefaultPlayerConfig()
	p := newTestPlayer(cfg, nil)

	p.Update(component.Input{MoveX: 1})
	if p.State() != PlayerWalking {
		t.Fatalf("expected walking, got %v", p.State())
	}
	p.Update(component.Input{MoveX: 1})
	if p.FacingLeft() || p.Rect.X != 150+cfg.MoveSpeed {
		t.Fatalf("expected one step right facing right, X=%d left=%v", p.Rect.X, p.FacingLeft())
	}
	p.Update(component.Input{})
	if p.State() != PlayerIdle {
		t.Fatalf("expected idle once input stops, got %v", p.State())
	}
}

func TestPlayerShootsOnProjectileFrame(t *testing.T) {
	cfg := DefaultPlayerConfig()
	p := newTestPlayer(cfg, nil)
	shotTick := cfg.ProjectileFrame*cfg.Attack.TicksPerFrame + 1

	for tick := 1; tick < shotTick; tick++ {
		p.Update(component.Input{Attack: true})
		if tick == 1 && p.State() != PlayerAttacking {
			t.Fatalf("expected attacking on first tick, got %v", p.State())
		}
		if n := len(p.GiveProjectiles()); n != 0 {
			t.Fatalf("tick %d: projectile fired early", tick)
		}
	}

	p.Update(component.Input{Attack: true})
	shots := p.GiveProjectiles()
	if len(shots) != 1 {
		t.Fatalf("expected one projectile on tick %d, got %d", shotTick, len(shots))
	}
	if !shots[0].FacingLeft() || shots[0].Rect.X != 150-cfg.Projectile.Speed || shots[0].Rect.Width != cfg.Projectile.Size {
		t.Fatalf("unexpected projectile %+v", shots[0].Rect)
	}

	for i := 0; i < 10; i++ {
		p.Update(component.Input{Attack: true})
	}
	if n := len(p.GiveProjectiles()); n != 1 {
		t.Fatalf("expected one shot per attack, got %d", n)
	}
}

func TestPlayerDeathLatch(t *testing.T) {
	cfg := DefaultPlayerConfig()
	cfg.Health = 20
	attacks := AttackHitboxFunc(func() []common.Rect {
		return []common.Rect{common.NewRect(150, 600, 100, 100)}
	})
	p := newTestPlayer(cfg, attacks)

	p.Update(component.Input{})
	if !p.Dead() || p.State() != PlayerDeath {
		t.Fatalf("expected death on first hit, dead=%v state=%v", p.Dead(), p.State())
	}

	deathTicks := cfg.Death.Frames * cfg.Death.TicksPerFrame
	for tick := 2; tick < deathTicks; tick++ {
		p.Update(component.Input{MoveX: 1, Jump: true})
		if p.DeathAnimationDone() {
			t.Fatalf("death animation done early on tick %d", tick)
		}
	}
	x := p.Rect.X
	p.Update(component.Input{})
	if !p.DeathAnimationDone() {
		t.Fatalf("expected death animation done after %d ticks", deathTicks)
	}
	if p.Rect.X != x || p.Health() != 0 {
		t.Fatalf("dead player should not move or heal")
	}
}
