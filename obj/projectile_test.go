package obj

import (
	"testing"

	"github.com/milk9111/pharaoh/common"
)

func TestProjectileRange(t *testing.T) {
	cfg := ProjectileConfig{Speed: 20, Range: 3, Size: 10}
	p := NewProjectile(common.NewRect(0, 0, 10, 10), true, cfg)
	for i := 0; i < 3; i++ {
		if p.Spent() {
			t.Fatalf("spent too early on tick %d", i)
		}
		p.Update(nil)
	}
	if !p.Spent() || p.Hit() {
		t.Fatalf("expected spent by range without a hit")
	}
	if p.Rect.X != -60 {
		t.Fatalf("expected X=-60 after three left moves, got %d", p.Rect.X)
	}
}

func TestProjectileWallHit(t *testing.T) {
	cfg := DefaultProjectileConfig()
	p := NewProjectile(common.NewRect(30, 0, 75, 75), false, cfg)
	walls := []common.Rect{common.NewRect(100, 0, 100, 100)}

	p.Update(walls)
	if !p.Hit() || p.Range() != 0 {
		t.Fatalf("expected wall hit with range 0, got hit=%v range=%d", p.Hit(), p.Range())
	}
	x := p.Rect.X
	p.Update(walls)
	if p.Rect.X != x {
		t.Fatalf("hit projectile should not move")
	}
}
