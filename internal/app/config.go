package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Brush  string
	Radius int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 200, Height: 150, Scale: 4, TPS: 60, Seed: 1337, Brush: "Sand", Radius: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "initial grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "initial grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the demo scene")
	fs.StringVar(&c.Brush, "brush", c.Brush, "initially selected material")
	fs.IntVar(&c.Radius, "radius", c.Radius, "brush radius in cells")
}
