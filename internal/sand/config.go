package sand

import "strconv"

// Params holds tunables for the deterministic demo scene built by Reset.
type Params struct {
	BorderWalls bool

	PileCount     int
	PileRadiusMin int
	PileRadiusMax int
	PileDensity   float64

	PoolRows int
}

// Config controls the sandbox world dimensions and initial scene.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1337,
		Params: Params{
			BorderWalls:   true,
			PileCount:     8,
			PileRadiusMin: 3,
			PileRadiusMax: 8,
			PileDensity:   0.7,
			PoolRows:      10,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["border_walls"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.BorderWalls = parsed
		}
	}
	if v, ok := cfg["pile_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PileCount = parsed
		}
	}
	if v, ok := cfg["pile_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PileRadiusMin = parsed
		}
	}
	if v, ok := cfg["pile_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PileRadiusMax = parsed
		}
	}
	if c.Params.PileRadiusMax < c.Params.PileRadiusMin {
		c.Params.PileRadiusMax = c.Params.PileRadiusMin
	}
	if v, ok := cfg["pile_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.PileDensity = parsed
		}
	}
	if v, ok := cfg["pool_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.PoolRows = parsed
		}
	}
	return c
}
