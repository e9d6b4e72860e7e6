package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed player.txt level*
var LevelsFS embed.FS

// PlayerStartFile holds the starting rectangle shared by every level.
const PlayerStartFile = "player.txt"

// Files names the data files of one level.
type Files struct {
	Dir       string
	Collision string
	Textures  string
	Puzzle    string
	Enemies   string
}

// FilesFor returns the file names of the given 1-based level.
func FilesFor(level int) Files {
	dir := fmt.Sprintf("level%d", level)
	return Files{
		Dir:       dir,
		Collision: path.Join(dir, "collision.txt"),
		Textures:  path.Join(dir, "textures.txt"),
		Puzzle:    path.Join(dir, "puzzle.txt"),
		Enemies:   path.Join(dir, "enemies.txt"),
	}
}

// Count returns how many consecutive levels, starting at 1, have a
// collision grid in fsys.
func Count(fsys fs.FS) int {
	n := 0
	for {
		if _, err := fs.Stat(fsys, FilesFor(n+1).Collision); err != nil {
			return n
		}
		n++
	}
}
