package levels

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/milk9111/pharaoh/common"
)

// Collision grid values and the largest texture kind.
const (
	MaxCollisionValue = 2
	MaxTextureValue   = 8
)

// Level is everything read for one level. Parts that failed to read hold
// whatever was read before the failure.
type Level struct {
	Number    int
	Collision [][]int
	Textures  [][]int
	Enemies   []EnemyRecord
	Puzzle    Puzzle
}

// Load reads every file of a level from fsys. It always returns a Level;
// the error joins every file problem met along the way.
func Load(fsys fs.FS, level, width, height int) (*Level, error) {
	files := FilesFor(level)
	lvl := &Level{Number: level}
	var errs []error

	if err := readFile(fsys, files.Collision, func(r io.Reader) (err error) {
		lvl.Collision, err = ReadGrid(r, files.Collision, width, height, MaxCollisionValue)
		return err
	}); err != nil {
		errs = append(errs, err)
	}
	if err := readFile(fsys, files.Textures, func(r io.Reader) (err error) {
		lvl.Textures, err = ReadGrid(r, files.Textures, width, height, MaxTextureValue)
		return err
	}); err != nil {
		errs = append(errs, err)
	}
	if err := readFile(fsys, files.Puzzle, func(r io.Reader) (err error) {
		lvl.Puzzle, err = ReadPuzzle(r, files.Puzzle)
		return err
	}); err != nil {
		errs = append(errs, err)
	}

	return lvl, errors.Join(errs...)
}

// LoadEnemies reads the enemy file of a level.
func LoadEnemies(fsys fs.FS, level int) ([]EnemyRecord, error) {
	name := FilesFor(level).Enemies
	var out []EnemyRecord
	err := readFile(fsys, name, func(r io.Reader) (err error) {
		out, err = ReadEnemies(r, name)
		return err
	})
	return out, err
}

// LoadPlayerStart reads the shared player start file.
func LoadPlayerStart(fsys fs.FS) (common.Rect, bool, error) {
	var (
		rect common.Rect
		ok   bool
	)
	err := readFile(fsys, PlayerStartFile, func(r io.Reader) (err error) {
		rect, ok, err = ReadPlayerStart(r, PlayerStartFile)
		return err
	})
	return rect, ok, err
}

func readFile(fsys fs.FS, name string, read func(io.Reader) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("levels: %w", err)
	}
	defer f.Close()
	return read(f)
}
