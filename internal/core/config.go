package core

import "fmt"

// Config fixes the grid dimensions for the lifetime of the pipeline.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 512, Height: 512}
}

// Validate rejects malformed dimensions. This is the only place bad
// dimensions are caught; the kernels assume a validated config.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
