package entity

import (
	"math"
	"time"
)

// Cooldown is a one-shot timer that starts finished.
type Cooldown struct {
	duration  time.Duration
	remaining time.Duration
}

// NewCooldown creates a finished cooldown of the given length.
func NewCooldown(d time.Duration) Cooldown {
	return Cooldown{duration: d}
}

// Tick advances the timer by dt.
func (c *Cooldown) Tick(dt time.Duration) {
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Finished reports whether the timer has run out.
func (c *Cooldown) Finished() bool {
	return c.remaining <= 0
}

// Reset restarts the timer at its full length.
func (c *Cooldown) Reset() {
	c.remaining = c.duration
}

// Remaining returns the time left before the timer finishes.
func (c *Cooldown) Remaining() time.Duration {
	return c.remaining
}

// decayDivisor sets the base drain: level 0 loses 2.5 health per second.
const decayDivisor = 2.0 / 5.0

// Stats is the player's bookkeeping. Health has no floor; DisplayHealth clamps.
type Stats struct {
	Health    float64
	MaxHealth float64
	Keys      int
	Score     float64
	Hit       Cooldown
}

// NewStats creates full-health stats with a ready hit cooldown.
func NewStats(maxHealth float64, hitCooldown time.Duration) Stats {
	return Stats{
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Hit:       NewCooldown(hitCooldown),
	}
}

// Heal adds health up to the maximum.
func (s *Stats) Heal(amount float64) {
	s.Health = math.Min(s.Health+amount, s.MaxHealth)
}

// TryHit applies damage and a score penalty unless the hit cooldown is still
// running. It reports whether the hit landed.
func (s *Stats) TryHit(damage, penalty float64) bool {
	if !s.Hit.Finished() {
		return false
	}
	s.Health -= damage
	s.Score -= penalty
	s.Hit.Reset()
	return true
}

// DecayRate returns the health lost per second on a level: (level+1)/(2/5),
// 2.5 hp/s on the first level. Deeper levels drain faster. This inverts the
// older per-frame formula dt/((level+1)*2/5), under which the drain shrank as
// the level grew.
func DecayRate(level int) float64 {
	return float64(level+1) / decayDivisor
}

// Decay drains health for one frame.
func (s *Stats) Decay(dt time.Duration, level int) {
	s.Health -= DecayRate(level) * dt.Seconds()
}

// Accrue adds passive score for one frame.
func (s *Stats) Accrue(rate float64, dt time.Duration) {
	s.Score += rate * dt.Seconds()
}

// Restore refills health and spends the keys after a completed level.
func (s *Stats) Restore() {
	s.Keys = 0
	s.Health = s.MaxHealth
}

// Dead reports whether health has run out.
func (s *Stats) Dead() bool {
	return s.Health <= 0
}

// DisplayHealth returns health rounded down and clamped at zero.
func (s *Stats) DisplayHealth() int {
	if s.Health <= 0 {
		return 0
	}
	return int(s.Health)
}

// RequiredKeys returns how many keys open the goal on a level.
func RequiredKeys(level int) int {
	return level + 1
}
