package component

import (
	"testing"

	"github.com/milk9111/pharaoh/common"
)

func TestSnapRules(t *testing.T) {
	box := common.NewRect(0, 0, 100, 100)
	cases := []struct {
		name     string
		collider common.Rect
		want     common.Rect
	}{
		// Each collider only covers the probe it is meant to trigger.
		{"top", common.NewRect(40, -10, 20, 20), common.NewRect(0, 10, 100, 100)},
		{"bottom", common.NewRect(40, 90, 20, 20), common.NewRect(0, -10, 100, 100)},
		{"left", common.NewRect(-10, 40, 20, 20), common.NewRect(10, 0, 100, 100)},
		{"right", common.NewRect(90, 40, 20, 20), common.NewRect(-10, 0, 100, 100)},
		{"bottom_right", common.NewRect(85, 95, 10, 10), common.NewRect(0, -5, 100, 100)},
		{"bottom_left", common.NewRect(5, 95, 10, 10), common.NewRect(0, -5, 100, 100)},
		{"miss", common.NewRect(300, 300, 100, 100), box},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Snap(box, ProbesFor(box), c.collider)
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestSnapTopWinsOverBottom(t *testing.T) {
	box := common.NewRect(0, 0, 100, 100)
	tall := common.NewRect(0, -50, 200, 300)
	got := Snap(box, ProbesFor(box), tall)
	if got.Y != tall.Bottom() {
		t.Fatalf("expected top rule to win with Y=%d, got %d", tall.Bottom(), got.Y)
	}
}

func TestSnapUsesTileSizeNotBoxSize(t *testing.T) {
	box := common.NewRect(0, 0, 50, 50)
	floor := common.NewRect(0, 45, 100, 100)
	got := Snap(box, ProbesFor(box), floor)
	if want := floor.Y - common.TileSize; got.Y != want {
		t.Fatalf("expected Y=%d, got %d", want, got.Y)
	}
}

func TestResolveCollisionsProbeModes(t *testing.T) {
	box := common.NewRect(0, 0, 100, 100)
	colliders := []common.Rect{
		common.NewRect(40, 90, 20, 20), // bottom probe: snap up by 10
		common.NewRect(40, 85, 20, 10), // would hit the moved bottom probe
	}

	perCollider := ResolveCollisions(box, colliders, ProbePerCollider)
	if perCollider.Y != -15 {
		t.Fatalf("ProbePerCollider: expected Y=-15, got %d", perCollider.Y)
	}

	once := ResolveCollisions(box, colliders, ProbeOnce)
	if once.Y != -10 {
		t.Fatalf("ProbeOnce: expected Y=-10, got %d", once.Y)
	}
}

func TestGrounded(t *testing.T) {
	floor := []common.Rect{common.NewRect(0, 100, 1000, 100)}
	if !Grounded(common.NewRect(0, 0, 100, 100), floor) {
		t.Fatalf("box resting on floor should be grounded")
	}
	if Grounded(common.NewRect(0, -1, 100, 100), floor) {
		t.Fatalf("box one pixel above floor should not be grounded")
	}
	if Grounded(common.NewRect(0, 0, 100, 100), nil) {
		t.Fatalf("no colliders should never be grounded")
	}
}
