package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Name       string `yaml:"name"`
	Title      string `yaml:"title"`
	GridWidth  int    `yaml:"grid_width"`
	GridHeight int    `yaml:"grid_height"`
	LevelCount int    `yaml:"level_count"`
	Gravity    int    `yaml:"gravity"`
	TPS        int    `yaml:"tps"`
}

func LoadGameSpec() (*GameSpec, error) {
	data, err := Load("game.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load game.yaml: %w", err)
	}
	var spec GameSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal game.yaml: %w", err)
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name            string        `yaml:"name"`
	MoveSpeed       int           `yaml:"move_speed"`
	Health          int           `yaml:"health"`
	JumpSpeed       int           `yaml:"jump_speed"`
	JumpTicks       int           `yaml:"jump_ticks"`
	HitDamage       int           `yaml:"hit_damage"`
	HitCooldown     int           `yaml:"hit_cooldown"`
	AttackCooldown  int           `yaml:"attack_cooldown"`
	ProjectileFrame int           `yaml:"projectile_frame"`
	CeilingY        int           `yaml:"ceiling_y"`
	Animation       AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

type EnemySpec struct {
	Name             string        `yaml:"name"`
	Health           int           `yaml:"health"`
	ProjectileDamage int           `yaml:"projectile_damage"`
	HitFlashTicks    int           `yaml:"hit_flash_ticks"`
	MoveSpeed        int           `yaml:"move_speed"`
	AggroDistance    float64       `yaml:"aggro_distance"`
	AggroOffsetX     int           `yaml:"aggro_offset_x"`
	AttackBox        HitboxSpec    `yaml:"attack_box"`
	ActiveFrames     []int         `yaml:"active_frames"`
	ResurrectTicks   int           `yaml:"resurrect_ticks"`
	RegenPerTick     int           `yaml:"regen_per_tick"`
	Animation        AnimationSpec `yaml:"animation"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	data, err := Load("enemy.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load enemy.yaml: %w", err)
	}
	var spec EnemySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal enemy.yaml: %w", err)
	}
	return &spec, nil
}

type ProjectileSpec struct {
	Name  string `yaml:"name"`
	Speed int    `yaml:"speed"`
	Range int    `yaml:"range"`
	Size  int    `yaml:"size"`
}

type PuzzleSpec struct {
	Name string   `yaml:"name"`
	Key  KeySpec  `yaml:"key"`
	Lock LockSpec `yaml:"lock"`
}

type KeySpec struct {
	CollectDistance float64 `yaml:"collect_distance"`
	FollowOffsetX   int     `yaml:"follow_offset_x"`
	FollowOffsetY   int     `yaml:"follow_offset_y"`
	FollowSpeed     int     `yaml:"follow_speed"`
	Leash           int     `yaml:"leash"`
}

type LockSpec struct {
	UnlockDistance float64 `yaml:"unlock_distance"`
}

type CameraSpec struct {
	Name         string  `yaml:"name"`
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	FocusY       int     `yaml:"focus_y"`
	Smoothness   float64 `yaml:"smoothness"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	data, err := Load("camera.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load camera.yaml: %w", err)
	}
	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal camera.yaml: %w", err)
	}
	return &spec, nil
}

// PaletteSpec colors the flat-shaded renderer.
type PaletteSpec struct {
	Name       string               `yaml:"name"`
	Background *YAMLColor           `yaml:"background"`
	WinTile    *YAMLColor           `yaml:"win_tile"`
	Hitbox     *YAMLColor           `yaml:"hitbox"`
	Tiles      map[string]YAMLColor `yaml:"tiles"`
}

type AnimationSpec struct {
	Defs map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	FrameCount    int `yaml:"frame_count"`
	TicksPerFrame int `yaml:"ticks_per_frame"`
}

// Def returns the named animation, ok is false when it is missing or has
// no frames.
func (a AnimationSpec) Def(name string) (AnimationDefSpec, bool) {
	d, ok := a.Defs[name]
	return d, ok && d.FrameCount > 0
}

type HitboxSpec struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetX int `yaml:"offset_x"`
	OffsetY int `yaml:"offset_y"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
