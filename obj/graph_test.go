package obj

import (
	"testing"

	"github.com/milk9111/pharaoh/common"
)

func TestGraphSingleRowWall(t *testing.T) {
	g := NewGraph(5, 1)
	g.ApplyCollision([][]int{{0, 0, 1, 0, 0}})

	v := g.FindVertex(common.Point{X: 250, Y: 50})
	if v == nil {
		t.Fatalf("expected a vertex at (250,50)")
	}
	if v.X != 2 || !v.IsWall() {
		t.Fatalf("expected wall vertex at x=2, got x=%d wall=%v", v.X, v.IsWall())
	}

	walls := g.GiveCollidables()
	if len(walls) != 1 {
		t.Fatalf("expected 1 collidable, got %d", len(walls))
	}
	if want := common.NewRect(200, 0, 100, 100); walls[0] != want {
		t.Fatalf("expected %v, got %v", want, walls[0])
	}
}

func TestGraphFindMisses(t *testing.T) {
	g := NewGraph(3, 2)
	cases := []common.Point{{X: -1, Y: 0}, {X: 300, Y: 50}, {X: 50, Y: 200}}
	for _, p := range cases {
		if v := g.FindVertex(p); v != nil {
			t.Fatalf("expected no vertex at %v, got (%d,%d)", p, v.X, v.Y)
		}
	}
	if g.FindWinTile() != nil {
		t.Fatalf("empty grid should have no win tile")
	}
	g.ApplyCollision([][]int{{0, 0, 0}, {0, 2, 0}})
	if w := g.FindWinTile(); w == nil || w.X != 1 || w.Y != 1 {
		t.Fatalf("expected win tile at (1,1), got %v", w)
	}
}

func TestGraphAdjacencySymmetry(t *testing.T) {
	g := NewGraph(6, 4)
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			v := g.At(x, y)
			if r := g.Neighbor(v, Right); r != nil && g.Neighbor(r, Left) != v {
				t.Fatalf("(%d,%d): right.left is not itself", x, y)
			}
			if d := g.Neighbor(v, Down); d != nil && g.Neighbor(d, Up) != v {
				t.Fatalf("(%d,%d): down.up is not itself", x, y)
			}
		}
	}

	edges := []struct {
		name string
		v    *Vertex
		d    Direction
	}{
		{"top_up", g.At(2, 0), Up},
		{"bottom_down", g.At(2, 3), Down},
		{"left_left", g.At(0, 1), Left},
		{"right_right", g.At(5, 1), Right},
	}
	for _, c := range edges {
		t.Run(c.name, func(t *testing.T) {
			if n := g.Neighbor(c.v, c.d); n != nil {
				t.Fatalf("expected no neighbor, got (%d,%d)", n.X, n.Y)
			}
		})
	}
}

func TestGraphOpenIdempotent(t *testing.T) {
	g := NewGraph(3, 1)
	g.ApplyCollision([][]int{{0, 1, 0}})
	v := g.At(1, 0)

	g.Open(v)
	g.Open(v)
	if v.IsWall() || v.Tile() != TileEmpty {
		t.Fatalf("expected open empty vertex, got wall=%v tile=%v", v.IsWall(), v.Tile())
	}
	if n := len(g.GiveCollidables()); n != 0 {
		t.Fatalf("expected no collidables after opening, got %d", n)
	}
}

func TestGraphCollidablesCacheInvalidation(t *testing.T) {
	g := NewGraph(4, 1)
	g.ApplyCollision([][]int{{1, 1, 0, 1}})
	if n := g.WallCount(); n != 3 {
		t.Fatalf("expected 3 walls, got %d", n)
	}
	if !g.OpenPassage(g.At(2, 0), Right) {
		t.Fatalf("expected passage to open")
	}
	walls := g.GiveCollidables()
	if len(walls) != 2 || walls[1].X != 100 {
		t.Fatalf("expected walls at x=0 and x=100, got %v", walls)
	}
	if g.OpenPassage(g.At(3, 0), Right) {
		t.Fatalf("opening past the grid edge should report false")
	}
}

func TestGraphTexturesAndDirections(t *testing.T) {
	g := NewGraph(2, 1)
	g.ApplyCollision([][]int{{1, 1}})
	if g.At(0, 0).Tile() != TileTopGrass {
		t.Fatalf("collision cells should start as top grass")
	}
	g.ApplyTextures([][]int{{int(TileMossBricks), int(TileRock)}})
	if g.At(0, 0).Tile() != TileMossBricks || g.At(1, 0).Tile() != TileRock {
		t.Fatalf("textures not applied: %v %v", g.At(0, 0).Tile(), g.At(1, 0).Tile())
	}

	cases := map[string]Direction{"Up": Up, "Down": Down, "Left": Left, "Right": Right, "left": Up, "": Up}
	for s, want := range cases {
		if got := ParseDirection(s); got != want {
			t.Fatalf("ParseDirection(%q) = %v, want %v", s, got, want)
		}
	}
}
