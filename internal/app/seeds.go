package app

import "math/rand/v2"

// SeedStream hands out the float32 seeds consumed by the randomize
// kernel. Seeding the stream once from the -seed flag keeps every
// randomize press of a session reproducible.
type SeedStream struct {
	r *rand.Rand
}

// NewSeedStream creates a deterministic stream from the given seed.
func NewSeedStream(seed int64) *SeedStream {
	return &SeedStream{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Next returns the next kernel seed.
func (s *SeedStream) Next() float32 {
	return s.r.Float32()
}
