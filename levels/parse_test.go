package levels

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/milk9111/pharaoh/common"
)

func TestReadGrid(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantRows int
		ok       bool
		wantErr  error
	}{
		{"ok", "0|1|2\n1|1|1\n", 2, true, nil},
		{"blank_lines_skipped", "\n0|1|2\n\n1|1|1\n\n", 2, true, nil},
		{"too_few_columns", "0|1|2\n1|1\n", 1, false, ErrGridShape},
		{"too_many_rows", "0|0|0\n0|0|0\n0|0|0\n", 2, false, ErrGridShape},
		{"too_few_rows", "0|0|0\n", 1, false, ErrGridShape},
		{"value_out_of_range", "0|0|0\n0|3|0\n", 1, false, ErrCellValue},
		{"not_a_number", "0|x|0\n0|0|0\n", 0, false, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rows, err := ReadGrid(strings.NewReader(c.input), "collision.txt", 3, 2, 2)
			if len(rows) != c.wantRows {
				t.Fatalf("expected %d rows, got %d", c.wantRows, len(rows))
			}
			switch {
			case c.ok:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			case c.wantErr != nil:
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected %v, got %v", c.wantErr, err)
				}
			default:
				if err == nil {
					t.Fatalf("expected an error")
				}
			}
		})
	}
}

func TestReadGridReportsLine(t *testing.T) {
	_, err := ReadGrid(strings.NewReader("0|0\n\n0|9\n"), "textures.txt", 2, 2, 8)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.File != "textures.txt" || pe.Line != 3 {
		t.Fatalf("expected textures.txt:3, got %s:%d", pe.File, pe.Line)
	}
	if !strings.Contains(err.Error(), "textures.txt:3") {
		t.Fatalf("error text should name the line: %v", err)
	}
}

func TestReadEnemies(t *testing.T) {
	recs, err := ReadEnemies(strings.NewReader("4500|700|100|100|200|200\n8000|700|100|100|250|150\n"), "enemies.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 enemies, got %d", len(recs))
	}
	want := EnemyRecord{Rect: common.NewRect(8000, 700, 100, 100), RightDistance: 250, LeftDistance: 150}
	if recs[1] != want {
		t.Fatalf("expected %+v, got %+v", want, recs[1])
	}

	recs, err = ReadEnemies(strings.NewReader("1|2|3|4|5|6\n1|2|3\n7|8|9|10|11|12\n"), "enemies.txt")
	if !errors.Is(err, ErrFieldCount) {
		t.Fatalf("expected field count error, got %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected the record before the bad line to be kept, got %d", len(recs))
	}
}

func TestReadPuzzle(t *testing.T) {
	input := "KEYS\n3025|625|50|50|2\n100|100|50|50|4\nLOCKS\n5925|690|50|50|2|Right\n10|10|50|50|4|sideways\n"
	p, err := ReadPuzzle(strings.NewReader(input), "puzzle.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Keys) != 2 || len(p.Locks) != 2 {
		t.Fatalf("expected 2 keys and 2 locks, got %d and %d", len(p.Keys), len(p.Locks))
	}
	if p.Keys[0] != (KeyRecord{Rect: common.NewRect(3025, 625, 50, 50), Color: 2}) {
		t.Fatalf("unexpected first key %+v", p.Keys[0])
	}
	if p.Locks[0].Direction != "Right" || p.Locks[1].Direction != "sideways" {
		t.Fatalf("directions should be kept verbatim, got %q and %q", p.Locks[0].Direction, p.Locks[1].Direction)
	}
}

func TestReadPuzzleErrors(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantKeys int
		wantErr  error
	}{
		{"missing_locks", "KEYS\n1|2|3|4|0\n", 1, ErrMissingLocks},
		{"short_key", "KEYS\n1|2|3|4\nLOCKS\n", 0, ErrFieldCount},
		{"short_lock", "KEYS\n1|2|3|4|0\nLOCKS\n1|2|3|4|0\n", 1, ErrFieldCount},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ReadPuzzle(strings.NewReader(c.input), "puzzle.txt")
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
			if len(p.Keys) != c.wantKeys {
				t.Fatalf("expected %d keys kept, got %d", c.wantKeys, len(p.Keys))
			}
		})
	}

	p, err := ReadPuzzle(strings.NewReader(""), "puzzle.txt")
	if err != nil || len(p.Keys) != 0 {
		t.Fatalf("empty puzzle file should read as no puzzle, got %v", err)
	}
}

func TestReadPlayerStart(t *testing.T) {
	rect, ok, err := ReadPlayerStart(strings.NewReader("10|20|100|100\n150|600|100|100\n"), PlayerStartFile)
	if err != nil || !ok {
		t.Fatalf("unexpected result ok=%v err=%v", ok, err)
	}
	if rect != common.NewRect(150, 600, 100, 100) {
		t.Fatalf("expected the last record to win, got %v", rect)
	}

	_, ok, err = ReadPlayerStart(strings.NewReader("\n"), PlayerStartFile)
	if ok || err != nil {
		t.Fatalf("empty file should give no start and no error")
	}
}

func testLevelFS() fstest.MapFS {
	return fstest.MapFS{
		"player.txt":           {Data: []byte("150|600|100|100\n")},
		"level1/collision.txt": {Data: []byte("1|0|1\n1|1|1\n")},
		"level1/textures.txt":  {Data: []byte("4|0|4\n8|8|8\n")},
		"level1/puzzle.txt":    {Data: []byte("KEYS\nLOCKS\n")},
		"level1/enemies.txt":   {Data: []byte("100|0|100|100|50|50\n")},
		"level2/collision.txt": {Data: []byte("1|0|9\n")},
		"level2/textures.txt":  {Data: []byte("0|0|0\n0|0|0\n")},
		"level2/puzzle.txt":    {Data: []byte("KEYS\n")},
		"level3/textures.txt":  {Data: []byte("0|0|0\n0|0|0\n")},
	}
}

func TestLoad(t *testing.T) {
	fsys := testLevelFS()
	if n := Count(fsys); n != 2 {
		t.Fatalf("expected 2 levels, got %d", n)
	}

	lvl, err := Load(fsys, 1, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lvl.Number != 1 || len(lvl.Collision) != 2 || lvl.Textures[1][0] != 8 {
		t.Fatalf("unexpected level %+v", lvl)
	}

	enemies, err := LoadEnemies(fsys, 1)
	if err != nil || len(enemies) != 1 {
		t.Fatalf("expected one enemy, got %d (%v)", len(enemies), err)
	}

	start, ok, err := LoadPlayerStart(fsys)
	if err != nil || !ok || start != common.NewRect(150, 600, 100, 100) {
		t.Fatalf("unexpected player start %v %v %v", start, ok, err)
	}
}

func TestLoadKeepsPartialData(t *testing.T) {
	lvl, err := Load(testLevelFS(), 2, 3, 2)
	if err == nil {
		t.Fatalf("expected errors for level 2")
	}
	if lvl == nil {
		t.Fatalf("Load must always return a level")
	}
	if !errors.Is(err, ErrCellValue) || !errors.Is(err, ErrMissingLocks) {
		t.Fatalf("expected both file errors joined, got %v", err)
	}
	if len(lvl.Textures) != 2 {
		t.Fatalf("good files should still load, got %d texture rows", len(lvl.Textures))
	}

	if _, err := LoadEnemies(testLevelFS(), 2); err == nil {
		t.Fatalf("expected missing enemy file error")
	}
}

func TestLoadMissingFileNamedOnce(t *testing.T) {
	_, err := Load(fstest.MapFS{}, 2, 3, 2)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		if n := strings.Count(line, "level2/"); n != 1 {
			t.Fatalf("expected the path once in %q, got %d", line, n)
		}
	}
}

func TestEmbeddedLevels(t *testing.T) {
	n := Count(LevelsFS)
	if n < 1 {
		t.Fatalf("expected embedded levels")
	}
	for level := 1; level <= n; level++ {
		if _, err := Load(LevelsFS, level, 120, 9); err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if _, err := LoadEnemies(LevelsFS, level); err != nil {
			t.Fatalf("level %d enemies: %v", level, err)
		}
	}
	if _, ok, err := LoadPlayerStart(LevelsFS); !ok || err != nil {
		t.Fatalf("embedded player start: ok=%v err=%v", ok, err)
	}
}
