package system

import (
	"io/fs"
	"log"

	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/component"
	"github.com/milk9111/pharaoh/levels"
	"github.com/milk9111/pharaoh/obj"
)

// DefaultPlayerStart is used when the player start file cannot be read.
var DefaultPlayerStart = common.NewRect(150, 600, 100, 100)

// LevelManager owns everything in the level being played and rebuilds it
// wholesale on every transition. Only the level number survives.
type LevelManager struct {
	fsys   fs.FS
	tuning Tuning

	available int

	level   int
	graph   *obj.Graph
	winTile *obj.Vertex
	player  *obj.Player
	puzzles *PuzzleManager
	enemies *EnemyManager
	camera  *obj.Camera

	enemiesInstantiated bool
}

// NewLevelManager loads level 1 from fsys.
func NewLevelManager(fsys fs.FS, tuning Tuning) *LevelManager {
	lm := &LevelManager{fsys: fsys, tuning: tuning, available: levels.Count(fsys)}
	lm.Reset()
	return lm
}

// Update runs one tick of the level and reports whether the player reached
// the win tile. Enemies are built on the first tick after a level loads.
func (lm *LevelManager) Update(in component.Input) bool {
	if !lm.enemiesInstantiated {
		lm.instantiateEnemies()
	}

	lm.puzzles.Update(in)
	lm.player.Update(in)
	lm.enemies.Update()
	lm.camera.FollowObject(lm.player.Rect)

	return lm.winTile != nil && lm.winTile.Rect.Contains(lm.player.Rect.Center())
}

// NextLevel discards the current level and builds the next one.
func (lm *LevelManager) NextLevel() {
	lm.build(lm.level + 1)
}

// Reset returns to a fresh level 1.
func (lm *LevelManager) Reset() {
	lm.build(1)
}

// LoadLevel jumps straight to level n.
func (lm *LevelManager) LoadLevel(n int) {
	lm.build(max(n, 1))
}

// SetTuning replaces the numbers used from the next rebuild on.
func (lm *LevelManager) SetTuning(t Tuning) {
	lm.tuning = t
}

func (lm *LevelManager) build(n int) {
	lm.level = n
	g := lm.tuning.Game

	lvl, err := levels.Load(lm.fsys, n, g.GridWidth, g.GridHeight)
	if err != nil {
		log.Printf("system: level %d: %v", n, err)
	}
	lm.graph = buildGraph(lvl, g.GridWidth, g.GridHeight)
	lm.winTile = lm.graph.FindWinTile()
	if lm.winTile == nil {
		log.Printf("system: level %d has no win tile", n)
	}

	start, ok, err := levels.LoadPlayerStart(lm.fsys)
	if err != nil {
		log.Printf("system: player start: %v", err)
	}
	if !ok {
		start = DefaultPlayerStart
	}
	lm.enemies = NewEnemyManager(lm.tuning.Enemy)
	lm.player = obj.NewPlayer(start, lm.tuning.Player, lm.graph, lm.enemies)
	lm.puzzles = NewPuzzleManager(lvl.Puzzle, lm.tuning.Puzzle, lm.player, lm.graph)
	lm.enemiesInstantiated = false

	lm.camera = obj.NewCamera(lm.tuning.Camera)
	lm.camera.FollowObject(lm.player.Rect)

	log.Printf("system: level %d loaded: %d walls, %d keys, %d locks", n, lm.graph.WallCount(), len(lm.puzzles.Keys()), len(lm.puzzles.Locks()))
}

func (lm *LevelManager) instantiateEnemies() {
	records, err := levels.LoadEnemies(lm.fsys, lm.level)
	if err != nil {
		log.Printf("system: level %d enemies: %v", lm.level, err)
	}
	lm.enemies.Instantiate(records, lm.graph, lm.player, lm.player)
	lm.enemiesInstantiated = true
}

// Available is the number of consecutive levels with a collision grid.
func (lm *LevelManager) Available() int { return lm.available }

func (lm *LevelManager) Level() int              { return lm.level }
func (lm *LevelManager) Graph() *obj.Graph       { return lm.graph }
func (lm *LevelManager) WinTile() *obj.Vertex    { return lm.winTile }
func (lm *LevelManager) Player() *obj.Player     { return lm.player }
func (lm *LevelManager) Puzzles() *PuzzleManager { return lm.puzzles }
func (lm *LevelManager) Enemies() *EnemyManager  { return lm.enemies }
func (lm *LevelManager) Camera() *obj.Camera     { return lm.camera }
func (lm *LevelManager) EnemiesReady() bool      { return lm.enemiesInstantiated }
