package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	WinW   int
	WinH   int
	TPS    int
	Seed   int64
	Grid   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  512,
		Height: 512,
		WinW:   1024,
		WinH:   768,
		TPS:    60,
		Seed:   42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.WinW, "winw", c.WinW, "window width in pixels")
	fs.IntVar(&c.WinH, "winh", c.WinH, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the randomize stream")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "start with the grid overlay enabled")
}
