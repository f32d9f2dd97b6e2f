package core

import "image/color"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a grid simulation must implement to be
// driven and displayed.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// CatalogEntry describes one selectable material for palette construction.
// Everything in it is presentational; none of these fields feed back into the
// simulation rules.
type CatalogEntry struct {
	ID       uint8
	Name     string
	Category string
	Button   color.RGBA
}

// CatalogProvider is implemented by simulations that expose a material
// palette for external UI.
type CatalogProvider interface {
	Catalog() []CatalogEntry
}
