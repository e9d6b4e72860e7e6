package obj

import (
	"fmt"

	"github.com/milk9111/pharaoh/common"
)

// Collision grid cell codes.
const (
	CellOpen = 0
	CellWall = 1
	CellWin  = 2
)

// Tile is the texture kind drawn for a grid cell.
type Tile int

const (
	TileEmpty Tile = iota
	TileTopLeft
	TileTopRight
	TileTopGrass
	TileRock
	TileUnderLeft
	TileUnderRight
	TileMossBricks
	TileUnderMiddle

	TileKinds = int(TileUnderMiddle) + 1
)

var tileNames = [...]string{
	"Empty", "TopLeft", "TopRight", "TopGrass", "Rock",
	"UnderLeft", "UnderRight", "MossBricks", "UnderMiddle",
}

func (t Tile) String() string {
	if t < 0 || int(t) >= len(tileNames) {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return tileNames[t]
}

// Direction is a cardinal grid direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = [...]string{"Up", "Down", "Left", "Right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection maps "Up", "Down", "Left" or "Right" to a Direction. The
// match is case-sensitive and anything else is Up.
func ParseDirection(s string) Direction {
	for i, name := range directionNames {
		if s == name {
			return Direction(i)
		}
	}
	return Up
}

const noLink = -1

// Vertex is one cell of the level grid. Neighbors are stored as indices into
// the owning Graph.
type Vertex struct {
	X, Y int
	Rect common.Rect

	wall  bool
	win   bool
	tile  Tile
	links [4]int
}

func (v *Vertex) IsWall() bool    { return v.wall }
func (v *Vertex) IsWinTile() bool { return v.win }
func (v *Vertex) Tile() Tile      { return v.tile }

// Graph is a dense width×height grid of vertices. Walls can be opened at
// runtime but never closed again.
type Graph struct {
	width, height int
	cells         []Vertex

	collidables []common.Rect
	dirty       bool
}

// NewGraph creates an all-open grid with linked neighbors. Cells start as
// TileEmpty until a collision grid is applied.
func NewGraph(width, height int) *Graph {
	width = max(width, 0)
	height = max(height, 0)
	g := &Graph{
		width:  width,
		height: height,
		cells:  make([]Vertex, width*height),
		dirty:  true,
	}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			v := g.cell(x, y)
			v.X = x
			v.Y = y
			v.Rect = common.NewRect(x*common.TileSize, y*common.TileSize, common.TileSize, common.TileSize)
		}
	}
	g.ConnectAdjacency()
	return g
}

func (g *Graph) Width() int  { return g.width }
func (g *Graph) Height() int { return g.height }

// Bounds is the world-space size of the grid.
func (g *Graph) Bounds() common.Rect {
	return common.NewRect(0, 0, g.width*common.TileSize, g.height*common.TileSize)
}

func (g *Graph) index(x, y int) int {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return noLink
	}
	return y*g.width + x
}

func (g *Graph) cell(x, y int) *Vertex {
	i := g.index(x, y)
	if i == noLink {
		return nil
	}
	return &g.cells[i]
}

// At returns the vertex at grid position (x, y), or nil when out of range.
func (g *Graph) At(x, y int) *Vertex {
	if g == nil {
		return nil
	}
	return g.cell(x, y)
}

// ApplyCollision assigns wall and win flags from parsed collision rows. Row
// i maps to grid row i; rows or columns past the grid are ignored. Every
// cell touched starts with TileTopGrass until textures are applied.
func (g *Graph) ApplyCollision(rows [][]int) {
	for y, row := range rows {
		for x, code := range row {
			v := g.cell(x, y)
			if v == nil {
				continue
			}
			v.wall = code == CellWall
			v.win = code == CellWin
			v.tile = TileTopGrass
		}
	}
	g.dirty = true
}

// ApplyTextures assigns tile kinds from parsed texture rows.
func (g *Graph) ApplyTextures(rows [][]int) {
	for y, row := range rows {
		for x, kind := range row {
			if v := g.cell(x, y); v != nil {
				v.tile = Tile(kind)
			}
		}
	}
}

// ConnectAdjacency links every vertex to its in-bounds neighbors.
func (g *Graph) ConnectAdjacency() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			v := g.cell(x, y)
			v.links[Up] = g.index(x, y-1)
			v.links[Down] = g.index(x, y+1)
			v.links[Left] = g.index(x-1, y)
			v.links[Right] = g.index(x+1, y)
		}
	}
}

// Neighbor returns v's neighbor in direction d, or nil at the grid edge.
func (g *Graph) Neighbor(v *Vertex, d Direction) *Vertex {
	if g == nil || v == nil || d < Up || d > Right {
		return nil
	}
	i := v.links[d]
	if i == noLink {
		return nil
	}
	return &g.cells[i]
}

// FindVertex returns the vertex whose tile contains p, scanning columns in
// order.
func (g *Graph) FindVertex(p common.Point) *Vertex {
	if g == nil {
		return nil
	}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if v := g.cell(x, y); v.Rect.Contains(p) {
				return v
			}
		}
	}
	return nil
}

// FindWinTile returns the first win-flagged vertex.
func (g *Graph) FindWinTile() *Vertex {
	if g == nil {
		return nil
	}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if v := g.cell(x, y); v.win {
				return v
			}
		}
	}
	return nil
}

// GiveCollidables returns the rectangles of all wall vertices, column by
// column. The slice is cached until a wall is opened and must not be
// modified by callers.
func (g *Graph) GiveCollidables() []common.Rect {
	if g == nil {
		return nil
	}
	if !g.dirty {
		return g.collidables
	}
	walls := make([]common.Rect, 0, len(g.collidables))
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if v := g.cell(x, y); v.wall {
				walls = append(walls, v.Rect)
			}
		}
	}
	g.collidables = walls[:len(walls):len(walls)]
	g.dirty = false
	return g.collidables
}

// Open clears the wall flag of v and resets its tile to TileEmpty. Opening
// an already open vertex changes nothing.
func (g *Graph) Open(v *Vertex) {
	if g == nil || v == nil {
		return
	}
	if v.wall {
		g.dirty = true
	}
	v.wall = false
	v.tile = TileEmpty
}

// OpenPassage opens the neighbor of v in direction d. It reports false when
// v or the neighbor is absent.
func (g *Graph) OpenPassage(v *Vertex, d Direction) bool {
	n := g.Neighbor(v, d)
	if n == nil {
		return false
	}
	g.Open(n)
	return true
}

// WallCount is the number of wall vertices.
func (g *Graph) WallCount() int {
	return len(g.GiveCollidables())
}
