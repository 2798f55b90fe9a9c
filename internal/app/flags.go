package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	TPS    int
	Rank   int
	Auto   bool
	Seed   int64
	Lang   string

	AdvisoryURL string
	AdvisoryKey string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Height: 600, TPS: 60, Rank: 50, Seed: 42, Lang: "en"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rank, "rank", c.Rank, "initial rank (0-100)")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "start with autonomous rank driving enabled")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for particle and jitter randomness")
	fs.StringVar(&c.Lang, "lang", c.Lang, "advisory language (en, fi)")
	fs.StringVar(&c.AdvisoryURL, "advisory-url", c.AdvisoryURL, "advisory text endpoint; empty stays offline")
	fs.StringVar(&c.AdvisoryKey, "advisory-key", c.AdvisoryKey, "bearer token for the advisory endpoint")
}
