// internal/component/combat.go
package component

// Health is an integer hit-point pool.
type Health struct {
	Value int
	Max   int
}

// NewHealth returns a full pool of the given size.
func NewHealth(value int) Health {
	return Health{Value: value, Max: value}
}

// Fraction returns Value/Max clamped to [0, 1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Cooldown counts ticks until an attack may fire again.
type Cooldown struct {
	Remaining float64
}

// Ready reports whether the attack may fire this tick.
func (c Cooldown) Ready() bool {
	return c.Remaining <= 0
}

// Tick counts down one tick.
func (c *Cooldown) Tick() {
	c.Remaining--
}
