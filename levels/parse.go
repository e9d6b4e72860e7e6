package levels

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/milk9111/pharaoh/common"
)

const (
	fieldSep     = "|"
	locksHeading = "LOCKS"
)

// EnemyRecord is one line of an enemy file.
type EnemyRecord struct {
	Rect          common.Rect
	RightDistance int
	LeftDistance  int
}

// KeyRecord is one key line of a puzzle file.
type KeyRecord struct {
	Rect  common.Rect
	Color int
}

// LockRecord is one lock line of a puzzle file. Direction is kept verbatim.
type LockRecord struct {
	Rect      common.Rect
	Color     int
	Direction string
}

// Puzzle is the content of a puzzle file.
type Puzzle struct {
	Keys  []KeyRecord
	Locks []LockRecord
}

// lineReader yields non-blank lines with their 1-based line numbers.
type lineReader struct {
	sc   *bufio.Scanner
	name string
	line int
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r), name: name}
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.sc.Text())
		if text != "" {
			return text, true
		}
	}
	return "", false
}

func (lr *lineReader) fail(err error) error {
	return &ParseError{File: lr.name, Line: lr.line, Err: err}
}

// done reports a scanner failure, if any.
func (lr *lineReader) done() error {
	if err := lr.sc.Err(); err != nil {
		return &ParseError{File: lr.name, Err: err}
	}
	return nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func splitFields(line string, want int) ([]string, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), want)
	}
	return fields, nil
}

func recordInts(line string, want int) ([]int, error) {
	fields, err := splitFields(line, want)
	if err != nil {
		return nil, err
	}
	return parseInts(fields)
}

// ReadGrid reads a pipe-delimited grid of height rows by width columns whose
// cells are in [0, maxValue]. On a bad line it stops and returns the rows
// read so far with the error.
func ReadGrid(r io.Reader, name string, width, height, maxValue int) ([][]int, error) {
	lr := newLineReader(r, name)
	rows := make([][]int, 0, height)
	for {
		line, ok := lr.next()
		if !ok {
			break
		}
		if len(rows) == height {
			return rows, lr.fail(fmt.Errorf("%w: more than %d rows", ErrGridShape, height))
		}
		fields := strings.Split(line, fieldSep)
		if len(fields) != width {
			return rows, lr.fail(fmt.Errorf("%w: %d columns, want %d", ErrGridShape, len(fields), width))
		}
		row, err := parseInts(fields)
		if err != nil {
			return rows, lr.fail(err)
		}
		for x, v := range row {
			if v < 0 || v > maxValue {
				return rows, lr.fail(fmt.Errorf("%w: column %d is %d", ErrCellValue, x, v))
			}
		}
		rows = append(rows, row)
	}
	if err := lr.done(); err != nil {
		return rows, err
	}
	if len(rows) != height {
		return rows, lr.fail(fmt.Errorf("%w: %d rows, want %d", ErrGridShape, len(rows), height))
	}
	return rows, nil
}

// ReadEnemies reads x|y|w|h|rightDistance|leftDistance records.
func ReadEnemies(r io.Reader, name string) ([]EnemyRecord, error) {
	lr := newLineReader(r, name)
	var out []EnemyRecord
	for {
		line, ok := lr.next()
		if !ok {
			return out, lr.done()
		}
		v, err := recordInts(line, 6)
		if err != nil {
			return out, lr.fail(err)
		}
		out = append(out, EnemyRecord{
			Rect:          common.NewRect(v[0], v[1], v[2], v[3]),
			RightDistance: v[4],
			LeftDistance:  v[5],
		})
	}
}

// ReadPuzzle reads a puzzle file: a discarded header line, key records
// x|y|w|h|color up to a LOCKS line, then lock records
// x|y|w|h|color|direction.
func ReadPuzzle(r io.Reader, name string) (Puzzle, error) {
	var p Puzzle
	lr := newLineReader(r, name)
	if _, ok := lr.next(); !ok {
		return p, lr.done()
	}

	for {
		line, ok := lr.next()
		if !ok {
			if err := lr.done(); err != nil {
				return p, err
			}
			return p, lr.fail(ErrMissingLocks)
		}
		if line == locksHeading {
			break
		}
		v, err := recordInts(line, 5)
		if err != nil {
			return p, lr.fail(err)
		}
		p.Keys = append(p.Keys, KeyRecord{Rect: common.NewRect(v[0], v[1], v[2], v[3]), Color: v[4]})
	}

	for {
		line, ok := lr.next()
		if !ok {
			return p, lr.done()
		}
		fields, err := splitFields(line, 6)
		if err != nil {
			return p, lr.fail(err)
		}
		v, err := parseInts(fields[:5])
		if err != nil {
			return p, lr.fail(err)
		}
		p.Locks = append(p.Locks, LockRecord{
			Rect:      common.NewRect(v[0], v[1], v[2], v[3]),
			Color:     v[4],
			Direction: strings.TrimSpace(fields[5]),
		})
	}
}

// ReadPlayerStart reads x|y|w|h records. The last good record wins; ok is
// false when none was read.
func ReadPlayerStart(r io.Reader, name string) (rect common.Rect, ok bool, err error) {
	lr := newLineReader(r, name)
	for {
		line, more := lr.next()
		if !more {
			return rect, ok, lr.done()
		}
		v, err := recordInts(line, 4)
		if err != nil {
			return rect, ok, lr.fail(err)
		}
		rect = common.NewRect(v[0], v[1], v[2], v[3])
		ok = true
	}
}
