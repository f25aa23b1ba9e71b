// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-tower-sim/internal/defs"
)

// PRNGService wraps a seeded generator so every random choice in a run is reproducible.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed uses the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted picks an enemy ID from a weighted spawn table. Zero-weight entries are
// never chosen unless every weight is zero, in which case the first entry wins.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnWeight) string {
	if len(entries) == 0 {
		return ""
	}

	total := 0
	for _, entry := range entries {
		total += entry.Weight
	}
	if total <= 0 {
		return entries[0].Enemy
	}

	r := s.Intn(total)
	for _, entry := range entries {
		if r < entry.Weight {
			return entry.Enemy
		}
		r -= entry.Weight
	}
	panic("utils: weighted draw outside table total")
}
