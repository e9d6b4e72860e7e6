// Command levelcheck loads every level in a directory, prints what each one
// holds and reports data problems: parse errors, missing win tiles, locks
// that open nothing and keys without a lock of their color.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/milk9111/pharaoh/common"
	"github.com/milk9111/pharaoh/levels"
	"github.com/milk9111/pharaoh/obj"
)

func main() {
	dir := flag.String("dir", "", "level directory (empty checks the embedded levels)")
	width := flag.Int("width", 120, "grid width in cells")
	height := flag.Int("height", 9, "grid height in cells")
	flag.Parse()

	var fsys fs.FS = levels.LevelsFS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	count := levels.Count(fsys)
	if count == 0 {
		log.Fatalf("levelcheck: no levels found")
	}

	failed := 0
	for n := 1; n <= count; n++ {
		stats, problems := checkLevel(fsys, n, *width, *height)
		fmt.Printf("level %d: %s\n", n, stats)
		for _, p := range problems {
			fmt.Printf("level %d: %s\n", n, p)
		}
		if len(problems) > 0 {
			failed++
		}
	}

	if start, ok, err := levels.LoadPlayerStart(fsys); err != nil {
		fmt.Printf("player start: %v\n", err)
		failed++
	} else if !ok {
		fmt.Printf("player start: no record\n")
		failed++
	} else {
		fmt.Printf("player start: (%d,%d) %dx%d\n", start.X, start.Y, start.Width, start.Height)
	}

	fmt.Printf("%d levels checked, %d with problems\n", count, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// levelStats counts what a level holds.
type levelStats struct {
	walls   int
	win     *obj.Vertex
	enemies int
	keys    int
	locks   int
}

func (s levelStats) String() string {
	win := "none"
	if s.win != nil {
		win = fmt.Sprintf("(%d,%d)", s.win.X, s.win.Y)
	}
	return fmt.Sprintf("%d walls, win tile %s, %d enemies, %d keys, %d locks", s.walls, win, s.enemies, s.keys, s.locks)
}

func checkLevel(fsys fs.FS, n, width, height int) (levelStats, []string) {
	var problems []string

	lvl, err := levels.Load(fsys, n, width, height)
	if err != nil {
		problems = append(problems, err.Error())
	}

	g := obj.NewGraph(width, height)
	g.ApplyCollision(lvl.Collision)
	g.ApplyTextures(lvl.Textures)

	stats := levelStats{
		walls: g.WallCount(),
		win:   g.FindWinTile(),
		keys:  len(lvl.Puzzle.Keys),
		locks: len(lvl.Puzzle.Locks),
	}
	if stats.win == nil {
		problems = append(problems, "no win tile")
	}

	lockColors := make(map[obj.KeyColor]bool)
	for i, rec := range lvl.Puzzle.Locks {
		c, err := obj.ParseKeyColor(rec.Color)
		if err != nil {
			problems = append(problems, fmt.Sprintf("lock %d: %v", i, err))
			continue
		}
		lockColors[c] = true

		v := g.FindVertex(rec.Rect.Center())
		if v == nil {
			problems = append(problems, fmt.Sprintf("lock %d: outside the grid", i))
			continue
		}
		dir := obj.ParseDirection(rec.Direction)
		if next := g.Neighbor(v, dir); next == nil || !next.IsWall() {
			problems = append(problems, fmt.Sprintf("lock %d: no wall %s of (%d,%d)", i, dir, v.X, v.Y))
		}
	}

	for i, rec := range lvl.Puzzle.Keys {
		c, err := obj.ParseKeyColor(rec.Color)
		if err != nil {
			problems = append(problems, fmt.Sprintf("key %d: %v", i, err))
			continue
		}
		if !lockColors[c] {
			problems = append(problems, fmt.Sprintf("key %d: no %s lock", i, c))
		}
	}

	enemies, err := levels.LoadEnemies(fsys, n)
	if err != nil {
		problems = append(problems, err.Error())
	}
	stats.enemies = len(enemies)
	bounds := g.Bounds()
	for i, e := range enemies {
		if !bounds.Contains(common.Point{X: e.Rect.X, Y: e.Rect.Y}) {
			problems = append(problems, fmt.Sprintf("enemy %d: spawns outside the grid", i))
		}
	}

	return stats, problems
}
