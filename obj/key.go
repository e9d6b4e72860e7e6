package obj

import "github.com/milk9111/pharaoh/common"

// Key trails the player once they walk close enough, until a matching Lock
// uses it up.
type Key struct {
	Rect  common.Rect
	Color KeyColor

	cfg       PuzzleConfig
	collected bool
	used      bool
	target    common.Point

	player PositionProvider
}

func NewKey(rect common.Rect, c KeyColor, cfg PuzzleConfig, player PositionProvider) *Key {
	return &Key{Rect: rect, Color: c, cfg: cfg, player: player}
}

// Update collects the key when the player is near and then moves it toward
// its follow point, never further than the leash on either axis. The follow
// point is the player's top-left plus the follow offset, and it is the key's
// center that is moved onto it, not its top-left.
func (k *Key) Update() {
	if k.used {
		return
	}
	pos, ok := positionOf(k.player)
	if !ok {
		return
	}
	if !k.collected && common.Distance(k.Rect.Center(), pos.Center()) < k.cfg.CollectDistance {
		k.collected = true
	}
	if !k.collected {
		return
	}

	k.target = common.Point{X: pos.X + k.cfg.FollowOffsetX, Y: pos.Y + k.cfg.FollowOffsetY}
	c := k.Rect.Center()
	cx := common.Approach(c.X, k.target.X, k.cfg.FollowSpeed)
	cy := common.Approach(c.Y, k.target.Y, k.cfg.FollowSpeed)
	cx = common.Clamp(cx, k.target.X-k.cfg.Leash, k.target.X+k.cfg.Leash)
	cy = common.Clamp(cy, k.target.Y-k.cfg.Leash, k.target.Y+k.cfg.Leash)
	k.Rect.X += cx - c.X
	k.Rect.Y += cy - c.Y
}

// Use marks the key as spent. Used keys stop updating and drawing.
func (k *Key) Use() { k.used = true }

func (k *Key) Collected() bool { return k.collected }
func (k *Key) Used() bool      { return k.used }

// Target is the point the key last trailed toward.
func (k *Key) Target() common.Point { return k.target }
