// Demo map generation using layered simplex noise.
// Produces a province list with plausible terrain, development, and
// population when no scenario file is supplied.
package world

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds demo map generation parameters.
type GenConfig struct {
	Provinces int   // Number of provinces to generate
	Seed      int64 // Noise seed (deterministic per seed)
}

// DefaultGenConfig returns a reasonable demo configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Provinces: 24,
		Seed:      42,
	}
}

// Generate creates a province registry from layered noise. Provinces are
// sampled along a square grid so neighboring IDs get correlated terrain,
// which reads like a contiguous map even though the core tracks no geometry.
func Generate(cfg GenConfig) *Registry {
	elevNoise := opensimplex.NewNormalized(cfg.Seed)
	wealthNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	popNoise := opensimplex.NewNormalized(cfg.Seed + 2)

	reg := NewRegistry()
	side := int(math.Ceil(math.Sqrt(float64(cfg.Provinces))))

	for i := 0; i < cfg.Provinces; i++ {
		x := float64(i%side) * 0.35
		y := float64(i/side) * 0.35

		elev := elevNoise.Eval2(x, y)
		wealth := wealthNoise.Eval2(x, y)
		pop := popNoise.Eval2(x, y)

		development := 1 + int(wealth*5)
		if development > 5 {
			development = 5
		}

		p := &Province{
			ID:          ProvinceID(i + 1),
			Name:        fmt.Sprintf("Province %d", i+1),
			Terrain:     terrainFor(elev, wealth),
			Development: development,
			Population:  1000 + int(pop*4000),
			BaseIncome:  10.0,
			IsCoastal:   elev < 0.35,
		}
		reg.Add(p)
	}

	return reg
}

// terrainFor derives a terrain category from noise layers. High elevation
// becomes mountains/hills, wet lowlands become marsh, wealthy mid-ground
// becomes urban.
func terrainFor(elev, wealth float64) Terrain {
	switch {
	case elev > 0.80:
		return TerrainMountains
	case elev > 0.62:
		return TerrainHills
	case elev < 0.30:
		return TerrainMarsh
	case wealth > 0.75:
		return TerrainUrban
	case wealth < 0.35:
		return TerrainForest
	}
	return TerrainPlains
}
