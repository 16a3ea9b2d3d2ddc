package core

// Buffer holds one full generation of cell state in row-major order.
// Every value is 0 (dead) or 1 (alive).
type Buffer struct {
	W, H  int
	cells []uint8
}

// NewBuffer allocates a zeroed (all dead) generation buffer.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{W: w, H: h, cells: make([]uint8, w*h)}
}

// Cells exposes the backing slice so kernels can read/write values directly.
func (b *Buffer) Cells() []uint8 { return b.cells }

// Index returns the linear slice index for coordinates (x, y).
func (b *Buffer) Index(x, y int) int { return y*b.W + x }

// InBounds reports whether (x, y) addresses a cell of this buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell value at (x, y). Callers pass in-range coordinates.
func (b *Buffer) At(x, y int) uint8 { return b.cells[y*b.W+x] }

// Flip toggles the single cell at (x, y) between alive and dead.
// No other cell is read or written.
func (b *Buffer) Flip(x, y int) {
	b.cells[y*b.W+x] ^= 1
}

// Clear fills the buffer with dead cells.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}

// Store owns the two generation buffers of the ping-pong scheme. The
// front buffer is the current generation; the back buffer is the next
// step's destination. Front and back never alias.
type Store struct {
	front *Buffer
	back  *Buffer
}

// NewStore allocates both generation buffers for the given dimensions.
func NewStore(w, h int) *Store {
	return &Store{front: NewBuffer(w, h), back: NewBuffer(w, h)}
}

// Front returns the current generation buffer.
func (s *Store) Front() *Buffer { return s.front }

// Back returns the destination buffer for the next step.
func (s *Store) Back() *Buffer { return s.back }

// Swap exchanges the buffer roles after a completed step.
func (s *Store) Swap() {
	s.front, s.back = s.back, s.front
}
