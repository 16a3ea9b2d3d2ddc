package ui

// Status carries the values the HUD displays each frame.
type Status struct {
	Generation uint64
	TPS        int
	FPS        float64
	Paused     bool
	Grid       bool
	CursorX    int
	CursorY    int
	CursorOK   bool
}
