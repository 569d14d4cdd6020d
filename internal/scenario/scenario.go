// Package scenario loads starting worlds: province lists, countries, and
// ownership. A scenario comes from a YAML file or from the built-in
// three-nation sample used when no file is given.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hegemony/internal/nation"
	"github.com/talgya/hegemony/internal/world"
)

// File is the on-disk scenario format. Countries are a list, not a map,
// so registry order (and therefore AI evaluation order) follows the file.
type File struct {
	Player    string        `yaml:"player"`
	Provinces []ProvinceDef `yaml:"provinces"`
	Countries []CountryDef  `yaml:"countries"`
}

// ProvinceDef describes one province.
type ProvinceDef struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Terrain     string  `yaml:"terrain"`
	Development int     `yaml:"development"`
	Population  int     `yaml:"population"`
	BaseIncome  float64 `yaml:"base_income"`
	Coastal     bool    `yaml:"coastal"`
}

// CountryDef describes one country and its starting holdings.
type CountryDef struct {
	Code              string   `yaml:"code"`
	Name              string   `yaml:"name"`
	Color             [3]uint8 `yaml:"color"`
	Capital           int      `yaml:"capital"`
	Provinces         []int    `yaml:"provinces"`
	Money             float64  `yaml:"money"`
	Manpower          int      `yaml:"manpower"`
	MilitaryFactories int      `yaml:"military_factories"`
	CivilianFactories int      `yaml:"civilian_factories"`
}

// Scenario is a loaded, ready-to-simulate starting world.
type Scenario struct {
	Player    string
	Provinces *world.Registry
	Countries *nation.Registry
}

// Load reads and builds a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse builds a scenario from YAML bytes.
func Parse(data []byte) (*Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return build(&f)
}

// build materializes registries and assigns ownership. Capital/owner
// references that don't resolve are quietly skipped; a scenario missing a
// province simply starts without that holding.
func build(f *File) (*Scenario, error) {
	provinces := world.NewRegistry()
	for _, pd := range f.Provinces {
		baseIncome := pd.BaseIncome
		if baseIncome == 0 {
			baseIncome = 10.0
		}
		development := pd.Development
		if development < 1 {
			development = 1
		}

		provinces.Add(&world.Province{
			ID:          world.ProvinceID(pd.ID),
			Name:        pd.Name,
			Terrain:     world.TerrainFromName(pd.Terrain),
			Development: development,
			Population:  pd.Population,
			BaseIncome:  baseIncome,
			IsCoastal:   pd.Coastal,
		})
	}

	countries := nation.NewRegistry()
	for _, cd := range f.Countries {
		if len(cd.Code) != 3 {
			return nil, fmt.Errorf("country code %q: want 3 letters", cd.Code)
		}

		countries.Add(&nation.Country{
			Code:              cd.Code,
			Name:              cd.Name,
			Color:             cd.Color,
			Capital:           world.ProvinceID(cd.Capital),
			Money:             cd.Money,
			Manpower:          cd.Manpower,
			MilitaryFactories: cd.MilitaryFactories,
			CivilianFactories: cd.CivilianFactories,
			WarScores:         make(map[string]int),
		})

		for _, pid := range cd.Provinces {
			p := provinces.Get(world.ProvinceID(pid))
			if p == nil {
				continue
			}
			p.Owner = cd.Code
			if pid == cd.Capital {
				p.IsCapital = true
			}
		}
	}

	return &Scenario{
		Player:    f.Player,
		Provinces: provinces,
		Countries: countries,
	}, nil
}

// Sample returns the built-in three-nation starting world.
func Sample() *Scenario {
	f := &File{
		Player: "GER",
		Provinces: []ProvinceDef{
			{ID: 1, Name: "Berlin", Terrain: "plains", Development: 5, Population: 5000},
			{ID: 2, Name: "Munich", Terrain: "hills", Development: 4, Population: 4000},
			{ID: 3, Name: "Hamburg", Terrain: "plains", Development: 3, Population: 3000, Coastal: true},
			{ID: 4, Name: "Paris", Terrain: "plains", Development: 5, Population: 5000},
			{ID: 5, Name: "Lyon", Terrain: "hills", Development: 3, Population: 3000},
			{ID: 6, Name: "Marseille", Terrain: "plains", Development: 3, Population: 3000, Coastal: true},
			{ID: 7, Name: "London", Terrain: "plains", Development: 5, Population: 5000},
			{ID: 8, Name: "Manchester", Terrain: "plains", Development: 4, Population: 4000},
			{ID: 9, Name: "Liverpool", Terrain: "plains", Development: 3, Population: 3000, Coastal: true},
		},
		Countries: []CountryDef{
			{Code: "GER", Name: "Germany", Color: [3]uint8{128, 128, 128}, Capital: 1,
				Provinces: []int{1, 2, 3}, Money: 2000, Manpower: 20000,
				MilitaryFactories: 15, CivilianFactories: 20},
			{Code: "FRA", Name: "France", Color: [3]uint8{0, 0, 200}, Capital: 4,
				Provinces: []int{4, 5, 6}, Money: 1800, Manpower: 18000,
				MilitaryFactories: 12, CivilianFactories: 18},
			{Code: "GBR", Name: "United Kingdom", Color: [3]uint8{200, 0, 0}, Capital: 7,
				Provinces: []int{7, 8, 9}, Money: 2500, Manpower: 15000,
				MilitaryFactories: 18, CivilianFactories: 25},
		},
	}

	s, err := build(f)
	if err != nil {
		// The built-in data is static; a build failure is a programming error.
		panic(err)
	}
	return s
}
