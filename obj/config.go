package obj

import "github.com/milk9111/pharaoh/component"

// AnimConfig describes one frame strip.
type AnimConfig struct {
	Frames        int
	TicksPerFrame int
}

func (a AnimConfig) build(loop bool) *component.Animation {
	return component.NewAnimation(a.Frames, a.TicksPerFrame, loop)
}

type ProjectileConfig struct {
	Speed int
	Range int
	Size  int
}

func DefaultProjectileConfig() ProjectileConfig {
	return ProjectileConfig{Speed: 20, Range: 35, Size: 75}
}

type PlayerConfig struct {
	MoveSpeed      int
	Health         int
	Gravity        int
	JumpSpeed      int
	JumpTicks      int
	HitDamage      int
	HitCooldown    int
	AttackCooldown int

	// ProjectileFrame is the attack frame on which the shot leaves.
	ProjectileFrame int
	CeilingY        int

	Idle, Walk, Attack, Hit, Death AnimConfig

	Projectile ProjectileConfig
}

func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MoveSpeed:       15,
		Health:          100,
		Gravity:         25,
		JumpSpeed:       25,
		JumpTicks:       15,
		HitDamage:       20,
		HitCooldown:     60,
		AttackCooldown:  40,
		ProjectileFrame: 9,
		CeilingY:        -30,
		Idle:            AnimConfig{Frames: 8, TicksPerFrame: 5},
		Walk:            AnimConfig{Frames: 8, TicksPerFrame: 5},
		Attack:          AnimConfig{Frames: 13, TicksPerFrame: 5},
		Hit:             AnimConfig{Frames: 5, TicksPerFrame: 5},
		Death:           AnimConfig{Frames: 9, TicksPerFrame: 5},
		Projectile:      DefaultProjectileConfig(),
	}
}

// BoxConfig is a rectangle relative to an entity's top-left corner.
type BoxConfig struct {
	OffsetX, OffsetY int
	Width, Height    int
}

type EnemyConfig struct {
	Health           int
	ProjectileDamage int
	HitFlashTicks    int
	MoveSpeed        int
	Gravity          int
	AggroDistance    float64

	// AggroOffsetX is added to X - W/2 to place the point the player must
	// approach.
	AggroOffsetX     int
	AttackBox        BoxConfig
	ActiveFirstFrame int
	ActiveLastFrame  int
	ResurrectTicks   int
	RegenPerTick     int

	Walk, Attack, Death AnimConfig
}

func DefaultEnemyConfig() EnemyConfig {
	return EnemyConfig{
		Health:           100,
		ProjectileDamage: 25,
		HitFlashTicks:    10,
		MoveSpeed:        5,
		Gravity:          25,
		AggroDistance:    100,
		AggroOffsetX:     150,
		AttackBox:        BoxConfig{OffsetX: 15, OffsetY: 20, Width: 175, Height: 30},
		ActiveFirstFrame: 4,
		ActiveLastFrame:  9,
		ResurrectTicks:   300,
		RegenPerTick:     3,
		Walk:             AnimConfig{Frames: 12, TicksPerFrame: 5},
		Attack:           AnimConfig{Frames: 13, TicksPerFrame: 5},
		Death:            AnimConfig{Frames: 13, TicksPerFrame: 5},
	}
}

type PuzzleConfig struct {
	CollectDistance float64
	FollowOffsetX   int
	FollowOffsetY   int
	FollowSpeed     int
	Leash           int
	UnlockDistance  float64
}

func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		CollectDistance: 200,
		FollowOffsetX:   -50,
		FollowOffsetY:   -50,
		FollowSpeed:     5,
		Leash:           50,
		UnlockDistance:  125,
	}
}

type CameraConfig struct {
	ScreenWidth  int
	ScreenHeight int
	// FocusY is the world Y kept at the vertical middle of the screen.
	FocusY int
	// Smooth is the per-tick follow factor in (0, 1]; 0 snaps.
	Smooth float64
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{ScreenWidth: 1600, ScreenHeight: 960, FocusY: 420}
}
