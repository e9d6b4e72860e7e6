package obj

import "github.com/milk9111/pharaoh/common"

// Projectile flies in a straight line until its range runs out, it touches a
// wall, or whatever it struck marks it hit. Its owner removes it.
type Projectile struct {
	Rect common.Rect

	speed     int
	rangeLeft int
	hit       bool
}

// NewProjectile spawns a projectile at rect moving left or right.
func NewProjectile(rect common.Rect, facingLeft bool, cfg ProjectileConfig) *Projectile {
	speed := cfg.Speed
	if facingLeft {
		speed = -speed
	}
	return &Projectile{Rect: rect, speed: speed, rangeLeft: cfg.Range}
}

// Update moves the projectile one tick and checks it against the walls.
func (p *Projectile) Update(walls []common.Rect) {
	if p.rangeLeft >= 0 && !p.hit {
		p.Rect.X += p.speed
		p.rangeLeft--
	}
	for _, w := range walls {
		if p.Rect.Intersects(w) {
			p.hit = true
			p.rangeLeft = 0
			break
		}
	}
}

// MarkHit consumes the projectile.
func (p *Projectile) MarkHit() { p.hit = true }

func (p *Projectile) Hit() bool        { return p.hit }
func (p *Projectile) Range() int       { return p.rangeLeft }
func (p *Projectile) Speed() int       { return p.speed }
func (p *Projectile) FacingLeft() bool { return p.speed < 0 }

// Spent reports whether the owner should drop the projectile.
func (p *Projectile) Spent() bool {
	return p.hit || p.rangeLeft <= 0
}
