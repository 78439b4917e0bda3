package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Float is the working precision of the whole module. All public APIs
// take and return Float uniformly; complex quantities are complex128.
// This alias is the single seam through which the precision is chosen
// at build time — only the 64-bit instantiation ships, because the
// linear-algebra backend operates on float64.
type Float = float64

// Vec3 is a position in 3-D space, in the same length unit as
// WaveLength. It aliases gonum's r3.Vec: construct with
// Vec3{X: ..., Y: ..., Z: ...} and use the r3 vector operations freely.
type Vec3 = r3.Vec

// WaveLength is the wavelength of the monochromatic field, in the
// length unit of positions.
const WaveLength Float = 8.5

// WaveNumber is the angular wave number k = 2π/WaveLength.
const WaveNumber Float = 2 * math.Pi / WaveLength
