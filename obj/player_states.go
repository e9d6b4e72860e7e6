package obj

import "github.com/milk9111/pharaoh/component"

// PlayerState identifies the player's current behavior branch.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerAttacking
	PlayerHit
	PlayerDeath

	playerStateCount
)

var playerStateNames = [...]string{"idle", "walking", "attacking", "hit", "death"}

func (s PlayerState) String() string {
	if s < 0 || s >= playerStateCount {
		return "unknown"
	}
	return playerStateNames[s]
}

// playerState is the interface each concrete player state implements.
type playerState interface {
	ID() PlayerState
	HandleInput(p *Player, in component.Input)
	OnAnimationEnd(p *Player)
}

var (
	stateIdle      playerState = &idleState{}
	stateWalking   playerState = &walkingState{}
	stateAttacking playerState = &attackingState{}
	stateHit       playerState = &hitState{}
	stateDeath     playerState = &deathState{}
)

// setState switches states, restarting the new state's animation.
func (p *Player) setState(s playerState) {
	p.state = s
	p.anim = p.anims[s.ID()]
	p.anim.Reset()
}

type idleState struct{}

func (idleState) ID() PlayerState { return PlayerIdle }
func (idleState) HandleInput(p *Player, in component.Input) {
	if in.MoveX != 0 {
		p.setState(stateWalking)
		return
	}
	if p.canAttack(in) {
		p.setState(stateAttacking)
	}
}
func (idleState) OnAnimationEnd(p *Player) {}

type walkingState struct{}

func (walkingState) ID() PlayerState { return PlayerWalking }
func (walkingState) HandleInput(p *Player, in component.Input) {
	if in.MoveX != 0 {
		p.move(in, true)
	} else {
		p.setState(stateIdle)
	}
	// an attack can start on the same tick the player stops
	if p.canAttack(in) {
		p.setState(stateAttacking)
	}
}
func (walkingState) OnAnimationEnd(p *Player) {}

type attackingState struct{}

func (attackingState) ID() PlayerState { return PlayerAttacking }
func (attackingState) HandleInput(p *Player, in component.Input) {
	p.move(in, false)
	if !p.shotThisAttack && p.anim.Frame() == p.cfg.ProjectileFrame {
		p.shoot()
	}
}
func (attackingState) OnAnimationEnd(p *Player) {
	p.setState(stateIdle)
}

type hitState struct{}

func (hitState) ID() PlayerState                           { return PlayerHit }
func (hitState) HandleInput(p *Player, in component.Input) {}
func (hitState) OnAnimationEnd(p *Player) {
	p.setState(stateIdle)
}

type deathState struct{}

func (deathState) ID() PlayerState                           { return PlayerDeath }
func (deathState) HandleInput(p *Player, in component.Input) {}
func (deathState) OnAnimationEnd(p *Player) {
	p.deathDone = true
}
