package obj

// EnemyState identifies the enemy's current behavior branch.
type EnemyState int

const (
	EnemyWalking EnemyState = iota
	EnemyAttacking
	EnemyDeath
	EnemyResurrect

	enemyStateCount
)

var enemyStateNames = [...]string{"walking", "attacking", "death", "resurrect"}

func (s EnemyState) String() string {
	if s < 0 || s >= enemyStateCount {
		return "unknown"
	}
	return enemyStateNames[s]
}

// enemyState is the interface each concrete enemy state implements. Think
// runs after movement physics; Animate runs last and owns frame-driven
// transitions.
type enemyState interface {
	ID() EnemyState
	Enter(e *Enemy)
	Think(e *Enemy)
	Animate(e *Enemy)
}

// singletons for each state to avoid allocating on every transition
var (
	stateEnemyWalking   enemyState = &enemyWalkingState{}
	stateEnemyAttacking enemyState = &enemyAttackingState{}
	stateEnemyDeath     enemyState = &enemyDeathState{}
	stateEnemyResurrect enemyState = &enemyResurrectState{}
)

func (e *Enemy) setState(s enemyState) {
	e.state = s
	e.anim = e.anims[s.ID()]
	e.anim.Reset()
	s.Enter(e)
}

type enemyWalkingState struct{}

func (enemyWalkingState) ID() EnemyState { return EnemyWalking }
func (enemyWalkingState) Enter(e *Enemy) {}
func (enemyWalkingState) Think(e *Enemy) {
	e.patrol()
	if e.health.Depleted() {
		e.setState(stateEnemyDeath)
		return
	}
	if e.playerInReach() {
		e.setState(stateEnemyAttacking)
	}
}
func (enemyWalkingState) Animate(e *Enemy) {
	e.anim.Update()
}

type enemyAttackingState struct{}

func (enemyAttackingState) ID() EnemyState { return EnemyAttacking }
func (enemyAttackingState) Enter(e *Enemy) {}
func (enemyAttackingState) Think(e *Enemy) {
	if e.health.Depleted() {
		e.setState(stateEnemyDeath)
	}
}
func (enemyAttackingState) Animate(e *Enemy) {
	if e.anim.Update() {
		e.attacking = false
		e.setState(stateEnemyWalking)
		return
	}
	e.attacking = e.inActiveWindow()
}

type enemyDeathState struct{}

func (enemyDeathState) ID() EnemyState { return EnemyDeath }
func (enemyDeathState) Enter(e *Enemy) {
	e.attacking = false
	e.regenerating = false
}
func (enemyDeathState) Think(e *Enemy) {}
func (enemyDeathState) Animate(e *Enemy) {
	if !e.corpse {
		if e.anim.Update() {
			e.corpse = true
		}
		return
	}
	e.resurrectTimer--
	if e.resurrectTimer <= 0 {
		e.resurrectTimer = e.cfg.ResurrectTicks
		e.setState(stateEnemyResurrect)
	}
}

type enemyResurrectState struct{}

func (enemyResurrectState) ID() EnemyState { return EnemyResurrect }
func (enemyResurrectState) Enter(e *Enemy) {
	e.anim.PlayReverse()
}
func (enemyResurrectState) Think(e *Enemy) {}
func (enemyResurrectState) Animate(e *Enemy) {
	if !e.anim.Update() {
		return
	}
	// back on its feet with an empty pool that refills a little each tick
	e.corpse = false
	e.health.Set(0)
	e.regenerating = true
	e.setState(stateEnemyWalking)
}
