package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/obj"
	"github.com/milk9111/pharaoh/prefabs"
)

// GameConfig holds world-wide settings.
type GameConfig struct {
	Title      string
	GridWidth  int
	GridHeight int
	LevelCount int
	TPS        int
}

// Tuning is every gameplay number the level lifecycle hands to entities.
type Tuning struct {
	Game   GameConfig
	Player obj.PlayerConfig
	Enemy  obj.EnemyConfig
	Puzzle obj.PuzzleConfig
	Camera obj.CameraConfig
}

func DefaultTuning() Tuning {
	return Tuning{
		Game:   GameConfig{Title: "Pharaoh", GridWidth: 120, GridHeight: 9, LevelCount: 3, TPS: common.TPS},
		Player: obj.DefaultPlayerConfig(),
		Enemy:  obj.DefaultEnemyConfig(),
		Puzzle: obj.DefaultPuzzleConfig(),
		Camera: obj.DefaultCameraConfig(),
	}
}

// LoadTuning reads the prefab specs over the defaults. Specs that fail to
// load leave their defaults in place; the returned error joins every
// failure.
func LoadTuning() (Tuning, error) {
	t := DefaultTuning()
	var errs []error

	if spec, err := prefabs.LoadGameSpec(); err != nil {
		errs = append(errs, err)
	} else {
		applyGameSpec(&t, spec)
	}
	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		errs = append(errs, err)
	} else {
		applyPlayerSpec(&t.Player, spec)
	}
	if spec, err := prefabs.LoadSpec[prefabs.ProjectileSpec]("projectile.yaml"); err != nil {
		errs = append(errs, err)
	} else {
		applyProjectileSpec(&t.Player.Projectile, spec)
	}
	if spec, err := prefabs.LoadEnemySpec(); err != nil {
		errs = append(errs, err)
	} else if err := applyEnemySpec(&t.Enemy, spec); err != nil {
		errs = append(errs, err)
	}
	if spec, err := prefabs.LoadSpec[prefabs.PuzzleSpec]("puzzle.yaml"); err != nil {
		errs = append(errs, err)
	} else {
		applyPuzzleSpec(&t.Puzzle, spec)
	}
	if spec, err := prefabs.LoadCameraSpec(); err != nil {
		errs = append(errs, err)
	} else {
		applyCameraSpec(&t.Camera, spec)
	}

	return t, errors.Join(errs...)
}

func setPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setPositiveFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func applyAnim(dst *obj.AnimConfig, spec prefabs.AnimationSpec, name string) {
	def, ok := spec.Def(name)
	if !ok {
		return
	}
	dst.Frames = def.FrameCount
	setPositive(&dst.TicksPerFrame, def.TicksPerFrame)
}

func applyGameSpec(t *Tuning, spec *prefabs.GameSpec) {
	if spec.Title != "" {
		t.Game.Title = spec.Title
	}
	setPositive(&t.Game.GridWidth, spec.GridWidth)
	setPositive(&t.Game.GridHeight, spec.GridHeight)
	setPositive(&t.Game.LevelCount, spec.LevelCount)
	setPositive(&t.Game.TPS, spec.TPS)
	if spec.Gravity > 0 {
		t.Player.Gravity = spec.Gravity
		t.Enemy.Gravity = spec.Gravity
	}
}

func applyPlayerSpec(p *obj.PlayerConfig, spec *prefabs.PlayerSpec) {
	setPositive(&p.MoveSpeed, spec.MoveSpeed)
	setPositive(&p.Health, spec.Health)
	setPositive(&p.JumpSpeed, spec.JumpSpeed)
	setPositive(&p.JumpTicks, spec.JumpTicks)
	setPositive(&p.HitDamage, spec.HitDamage)
	setPositive(&p.HitCooldown, spec.HitCooldown)
	setPositive(&p.AttackCooldown, spec.AttackCooldown)
	setPositive(&p.ProjectileFrame, spec.ProjectileFrame)
	if spec.CeilingY != 0 {
		p.CeilingY = spec.CeilingY
	}
	applyAnim(&p.Idle, spec.Animation, "idle")
	applyAnim(&p.Walk, spec.Animation, "walk")
	applyAnim(&p.Attack, spec.Animation, "attack")
	applyAnim(&p.Hit, spec.Animation, "hit")
	applyAnim(&p.Death, spec.Animation, "death")
}

func applyProjectileSpec(p *obj.ProjectileConfig, spec prefabs.ProjectileSpec) {
	setPositive(&p.Speed, spec.Speed)
	setPositive(&p.Range, spec.Range)
	setPositive(&p.Size, spec.Size)
}

func applyEnemySpec(e *obj.EnemyConfig, spec *prefabs.EnemySpec) error {
	setPositive(&e.Health, spec.Health)
	setPositive(&e.ProjectileDamage, spec.ProjectileDamage)
	setPositive(&e.HitFlashTicks, spec.HitFlashTicks)
	setPositive(&e.MoveSpeed, spec.MoveSpeed)
	setPositiveFloat(&e.AggroDistance, spec.AggroDistance)
	if spec.AggroOffsetX != 0 {
		e.AggroOffsetX = spec.AggroOffsetX
	}
	if b := spec.AttackBox; b.Width > 0 && b.Height > 0 {
		e.AttackBox = obj.BoxConfig{OffsetX: b.OffsetX, OffsetY: b.OffsetY, Width: b.Width, Height: b.Height}
	}
	setPositive(&e.ResurrectTicks, spec.ResurrectTicks)
	setPositive(&e.RegenPerTick, spec.RegenPerTick)
	applyAnim(&e.Walk, spec.Animation, "walk")
	applyAnim(&e.Attack, spec.Animation, "attack")
	applyAnim(&e.Death, spec.Animation, "death")

	switch len(spec.ActiveFrames) {
	case 0:
	case 2:
		first, last := spec.ActiveFrames[0], spec.ActiveFrames[1]
		if first < 0 || last < first {
			return fmt.Errorf("system: enemy.yaml: active_frames [%d, %d] is not a range", first, last)
		}
		e.ActiveFirstFrame, e.ActiveLastFrame = first, last
	default:
		return fmt.Errorf("system: enemy.yaml: active_frames needs 2 values, got %d", len(spec.ActiveFrames))
	}
	return nil
}

func applyPuzzleSpec(p *obj.PuzzleConfig, spec prefabs.PuzzleSpec) {
	setPositiveFloat(&p.CollectDistance, spec.Key.CollectDistance)
	if spec.Key.FollowOffsetX != 0 || spec.Key.FollowOffsetY != 0 {
		p.FollowOffsetX = spec.Key.FollowOffsetX
		p.FollowOffsetY = spec.Key.FollowOffsetY
	}
	setPositive(&p.FollowSpeed, spec.Key.FollowSpeed)
	setPositive(&p.Leash, spec.Key.Leash)
	setPositiveFloat(&p.UnlockDistance, spec.Lock.UnlockDistance)
}

func applyCameraSpec(c *obj.CameraConfig, spec *prefabs.CameraSpec) {
	setPositive(&c.ScreenWidth, spec.ScreenWidth)
	setPositive(&c.ScreenHeight, spec.ScreenHeight)
	if spec.FocusY != 0 {
		c.FocusY = spec.FocusY
	}
	if spec.Smoothness >= 0 {
		c.Smooth = spec.Smoothness
	}
}
