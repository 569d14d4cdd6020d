// Terrain categories and their combat properties.
package world

// Terrain classifies a province's dominant ground type.
type Terrain uint8

const (
	TerrainPlains Terrain = iota
	TerrainHills
	TerrainMountains
	TerrainForest
	TerrainUrban
	TerrainMarsh
	TerrainOcean
)

// TerrainName returns a human-readable terrain name.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlains:
		return "plains"
	case TerrainHills:
		return "hills"
	case TerrainMountains:
		return "mountains"
	case TerrainForest:
		return "forest"
	case TerrainUrban:
		return "urban"
	case TerrainMarsh:
		return "marsh"
	case TerrainOcean:
		return "ocean"
	}
	return "unknown"
}

// TerrainFromName parses a terrain name. Unknown names map to plains,
// matching the loader's lenient handling of scenario data.
func TerrainFromName(name string) Terrain {
	switch name {
	case "hills":
		return TerrainHills
	case "mountains":
		return TerrainMountains
	case "forest":
		return TerrainForest
	case "urban":
		return TerrainUrban
	case "marsh":
		return TerrainMarsh
	case "ocean":
		return TerrainOcean
	}
	return TerrainPlains
}

// DefenseModifier returns the multiplier applied to the defending side's
// combat power when fighting in this terrain.
func (t Terrain) DefenseModifier() float64 {
	switch t {
	case TerrainHills:
		return 1.2
	case TerrainMountains:
		return 1.5
	case TerrainForest:
		return 1.3
	case TerrainUrban:
		return 1.4
	case TerrainMarsh:
		return 1.1
	}
	return 1.0
}
