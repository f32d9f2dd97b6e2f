package sand

import (
	"fmt"
	"math"
	"strings"

	"sandbox/internal/core"
)

// MaterialID identifies one material in the closed registry. Empty is the
// designated vacant value and is always the zero value of the type.
type MaterialID uint8

const (
	Empty MaterialID = iota
	Wall
	Sand
	Gravel
	Snow
	Water
	Oil
	Slime
	Steam
	Smoke
	Spark

	materialCount
)

// MaterialDef holds the physical coefficients and cosmetic color range for
// one material. Definitions are immutable; the registry is populated once and
// never changes.
type MaterialDef struct {
	Name     string
	Category string

	// Solid materials never move and always carry infinite weight.
	Solid bool

	// Weight drives per-tick fall distance. Negative weights rise, zero is
	// neutral and never drifts on its own.
	Weight float64

	// Stickiness gates diagonal flow: zero flows past occupied lateral
	// neighbors, anything higher requires a clear lateral path.
	Stickiness float64

	// SelfSticky materials stay suspended while anchored through a chain of
	// same-material neighbors that rest on something.
	SelfSticky bool

	Color ColorSpec
}

var registry = [materialCount]MaterialDef{
	Empty: {
		Name:     "Erase",
		Category: "none",
		Color:    FixedColor(16, 14, 20),
	},
	Wall: {
		Name:       "Wall",
		Category:   "static",
		Solid:      true,
		Weight:     math.Inf(1),
		Stickiness: math.Inf(1),
		Color:      HSLRange(220, 230, 0.05, 0.10, 0.35, 0.45),
	},
	Sand: {
		Name:       "Sand",
		Category:   "powder",
		Weight:     2,
		Stickiness: 1,
		Color:      HSLRange(40, 48, 0.55, 0.75, 0.55, 0.70),
	},
	Gravel: {
		Name:       "Gravel",
		Category:   "powder",
		Weight:     3,
		Stickiness: 1,
		Color:      HSLRange(25, 35, 0.10, 0.20, 0.35, 0.55),
	},
	Snow: {
		Name:       "Snow",
		Category:   "powder",
		Weight:     1,
		Stickiness: 0.7,
		Color:      HSLRange(190, 210, 0.05, 0.15, 0.88, 0.97),
	},
	Water: {
		Name:     "Water",
		Category: "fluid",
		Weight:   1,
		Color:    HSLRange(205, 220, 0.70, 0.90, 0.45, 0.60),
	},
	Oil: {
		Name:     "Oil",
		Category: "fluid",
		Weight:   1,
		Color:    HSLRange(35, 50, 0.50, 0.70, 0.18, 0.28),
	},
	Slime: {
		Name:       "Slime",
		Category:   "fluid",
		Weight:     1,
		Stickiness: 0.5,
		SelfSticky: true,
		Color:      HSLRange(95, 120, 0.55, 0.80, 0.40, 0.55),
	},
	Steam: {
		Name:     "Steam",
		Category: "gas",
		Weight:   -0.3,
		Color:    HSLRange(200, 210, 0.05, 0.15, 0.75, 0.88),
	},
	Smoke: {
		Name:     "Smoke",
		Category: "gas",
		Weight:   -0.1,
		Color:    HSLRange(0, 360, 0, 0.04, 0.20, 0.35),
	},
	Spark: {
		// Sparks are meant to ignite neighbors; reactions are not part of
		// the movement rules, so for now they stay where they are placed.
		Name:     "Spark",
		Category: "reactive",
		Color:    HSLRange(45, 55, 0.90, 1.0, 0.55, 0.70),
	},
}

// Lookup returns the definition for id. The enumeration is closed, so an id
// outside it is a programming error, not a runtime condition.
func Lookup(id MaterialID) MaterialDef {
	if id >= materialCount {
		panic(fmt.Sprintf("sand: unknown material id %d", id))
	}
	return registry[id]
}

// Materials lists every registered material id, Empty included.
func Materials() []MaterialID {
	ids := make([]MaterialID, 0, materialCount)
	for id := MaterialID(0); id < materialCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// ByName resolves a material id from its display name, case-insensitively.
// Used by flag parsing; physics code always works with ids.
func ByName(name string) (MaterialID, bool) {
	for id := MaterialID(0); id < materialCount; id++ {
		if strings.EqualFold(registry[id].Name, name) {
			return id, true
		}
	}
	return Empty, false
}

// Catalog builds the palette entries external UI consumes. Ordering follows
// the enumeration so buttons stay stable across runs.
func Catalog() []core.CatalogEntry {
	entries := make([]core.CatalogEntry, 0, materialCount)
	for id := MaterialID(0); id < materialCount; id++ {
		def := registry[id]
		entries = append(entries, core.CatalogEntry{
			ID:       uint8(id),
			Name:     def.Name,
			Category: def.Category,
			Button:   def.Color.Button(),
		})
	}
	return entries
}
