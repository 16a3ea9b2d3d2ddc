// Package sim implements the Game of Life kernels: the parallel step,
// the deterministic randomized seeding, the single-cell toggle and the
// clear pass. All operations complete before returning; the caller
// sequences them against each other.
package sim

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"lifelab/internal/core"
)

// bandRows is the number of grid rows handed to one worker. The value
// mirrors the 32-wide workgroup tiling of the compute dispatch this
// package reimplements; any partition that visits each cell exactly
// once is equally correct.
const bandRows = 32

// Simulation owns the double-buffered grid state and advances it one
// generation per Step.
type Simulation struct {
	cfg        core.Config
	store      *core.Store
	workers    int
	generation uint64
}

// New constructs a Simulation for the validated configuration.
func New(cfg core.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:     cfg,
		store:   core.NewStore(cfg.Width, cfg.Height),
		workers: runtime.GOMAXPROCS(0),
	}, nil
}

// Config returns the grid dimensions the simulation was built with.
func (s *Simulation) Config() core.Config { return s.cfg }

// Front returns the current generation buffer.
func (s *Simulation) Front() *core.Buffer { return s.store.Front() }

// Cells exposes the current generation's cell values.
func (s *Simulation) Cells() []uint8 { return s.store.Front().Cells() }

// Generation reports the number of steps since the last seed or clear.
func (s *Simulation) Generation() uint64 { return s.generation }

// Step computes the next generation. Every cell is updated
// independently from the stable front buffer into the back buffer;
// once all bands have completed the buffers swap roles. Cells outside
// the grid count as dead, so edges and corners see fewer neighbors.
func (s *Simulation) Step() {
	src := s.store.Front().Cells()
	dst := s.store.Back().Cells()
	w, h := s.cfg.Width, s.cfg.Height

	var g errgroup.Group
	g.SetLimit(s.workers)
	for y0 := 0; y0 < h; y0 += bandRows {
		y1 := min(y0+bandRows, h)
		g.Go(func() error {
			stepBand(src, dst, w, h, y0, y1)
			return nil
		})
	}
	_ = g.Wait()

	s.store.Swap()
	s.generation++
}

func stepBand(src, dst []uint8, w, h, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					sum += int(src[ny*w+nx])
				}
			}
			idx := y*w + x
			alive := src[idx] == 1
			if (alive && (sum == 2 || sum == 3)) || (!alive && sum == 3) {
				dst[idx] = 1
			} else {
				dst[idx] = 0
			}
		}
	}
}

// Randomize overwrites the current generation with a pseudo-random
// board. Each cell's value depends only on its coordinates and the
// seed, never on prior buffer contents, so identical seeds reproduce
// identical boards.
func (s *Simulation) Randomize(seed float32) {
	cells := s.store.Front().Cells()
	w, h := s.cfg.Width, s.cfg.Height

	var g errgroup.Group
	g.SetLimit(s.workers)
	for y0 := 0; y0 < h; y0 += bandRows {
		y1 := min(y0+bandRows, h)
		g.Go(func() error {
			for y := y0; y < y1; y++ {
				row := cells[y*w : (y+1)*w]
				for x := range row {
					row[x] = cellValue(uint32(x), uint32(y), seed)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	s.generation = 0
}

// Toggle flips the single cell at (x, y) in the current generation.
// It reports false and leaves the grid untouched for out-of-range
// coordinates. Applying it twice restores the original value.
func (s *Simulation) Toggle(x, y int) bool {
	front := s.store.Front()
	if !front.InBounds(x, y) {
		return false
	}
	front.Flip(x, y)
	return true
}

// Clear kills every cell of the current generation.
func (s *Simulation) Clear() {
	s.store.Front().Clear()
	s.generation = 0
}
