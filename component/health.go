package component

// Health is a reusable integer health pool with an invulnerability window.
type Health struct {
	Max     int
	Current int
	IFrames int

	OnDepleted func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// Depleted reports whether health has reached zero.
func (h *Health) Depleted() bool {
	return h == nil || h.Current <= 0
}

// ApplyDamage removes amount from the pool, never going below zero. It
// reports whether anything was removed; i-frames are the caller's concern.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || amount <= 0 || h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current == 0 && h.OnDepleted != nil {
		h.OnDepleted(h)
	}
	return true
}

// Heal restores health up to Max and reports whether the pool is now full.
func (h *Health) Heal(amount int) bool {
	if h == nil {
		return false
	}
	if amount > 0 {
		h.Current += amount
	}
	if h.Current >= h.Max {
		h.Current = h.Max
		return true
	}
	return false
}

// Set assigns the current value, clamped to [0, Max].
func (h *Health) Set(v int) {
	if h == nil {
		return
	}
	h.Current = max(0, min(v, h.Max))
}

// StartIFrames opens an invulnerability window of the given length.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= 0 {
		return
	}
	h.IFrames = frames
}

// Invulnerable reports whether the i-frame window is still open.
func (h *Health) Invulnerable() bool {
	return h != nil && h.IFrames > 0
}

// Tick counts the i-frame timer down by one, stopping at zero.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
	if h.IFrames < 0 {
		h.IFrames = 0
	}
}
