// Package military holds unit templates and live units. Templates are an
// immutable catalog loaded once; units are the mutable roster the military
// system owns.
package military

// Category classifies a template's combat domain.
type Category string

const (
	CategoryLand Category = "land"
	CategorySea  Category = "sea"
	CategoryAir  Category = "air"
)

// UnitTemplate is an immutable catalog entry describing a unit type.
type UnitTemplate struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`

	Attack          int     `json:"attack"`
	Defense         int     `json:"defense"`
	MaxHP           int     `json:"max_hp"`
	MaxOrganization int     `json:"max_organization"`
	Speed           float64 `json:"speed"`

	Cost         float64 `json:"cost"`
	ManpowerCost int     `json:"manpower_cost"`
	CombatWidth  int     `json:"combat_width"`
}

// Catalog stores unit templates, keyed by ID, iterable in insertion order.
type Catalog struct {
	byID    map[string]*UnitTemplate
	ordered []*UnitTemplate
}

// NewCatalog creates an empty template catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]*UnitTemplate)}
}

// Add registers a template.
func (c *Catalog) Add(t *UnitTemplate) {
	if _, exists := c.byID[t.ID]; !exists {
		c.ordered = append(c.ordered, t)
	}
	c.byID[t.ID] = t
}

// Get returns the template with the given ID, or nil.
func (c *Catalog) Get(id string) *UnitTemplate {
	return c.byID[id]
}

// All returns every template in insertion order.
func (c *Catalog) All() []*UnitTemplate {
	return c.ordered
}

// ByCategory returns every template of the given category.
func (c *Catalog) ByCategory(cat Category) []*UnitTemplate {
	var out []*UnitTemplate
	for _, t := range c.ordered {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// DefaultCatalog returns the built-in template set.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	// Land
	c.Add(&UnitTemplate{
		ID: "infantry", Name: "Infantry Division", Category: CategoryLand,
		Attack: 30, Defense: 50, MaxHP: 100, MaxOrganization: 100,
		Speed: 4.0, Cost: 100.0, ManpowerCost: 1000, CombatWidth: 2,
	})
	c.Add(&UnitTemplate{
		ID: "armor", Name: "Armored Division", Category: CategoryLand,
		Attack: 70, Defense: 40, MaxHP: 150, MaxOrganization: 80,
		Speed: 8.0, Cost: 500.0, ManpowerCost: 500, CombatWidth: 3,
	})
	c.Add(&UnitTemplate{
		ID: "artillery", Name: "Artillery Division", Category: CategoryLand,
		Attack: 60, Defense: 20, MaxHP: 80, MaxOrganization: 70,
		Speed: 3.0, Cost: 300.0, ManpowerCost: 800, CombatWidth: 2,
	})

	// Sea
	c.Add(&UnitTemplate{
		ID: "destroyer", Name: "Destroyer", Category: CategorySea,
		Attack: 20, Defense: 30, MaxHP: 100, MaxOrganization: 100,
		Speed: 30.0, Cost: 800.0, ManpowerCost: 200, CombatWidth: 1,
	})
	c.Add(&UnitTemplate{
		ID: "battleship", Name: "Battleship", Category: CategorySea,
		Attack: 100, Defense: 80, MaxHP: 300, MaxOrganization: 100,
		Speed: 20.0, Cost: 3000.0, ManpowerCost: 500, CombatWidth: 3,
	})

	// Air
	c.Add(&UnitTemplate{
		ID: "fighter", Name: "Fighter Squadron", Category: CategoryAir,
		Attack: 40, Defense: 30, MaxHP: 100, MaxOrganization: 100,
		Speed: 500.0, Cost: 400.0, ManpowerCost: 100, CombatWidth: 1,
	})
	c.Add(&UnitTemplate{
		ID: "bomber", Name: "Bomber Squadron", Category: CategoryAir,
		Attack: 80, Defense: 15, MaxHP: 80, MaxOrganization: 80,
		Speed: 400.0, Cost: 600.0, ManpowerCost: 150, CombatWidth: 2,
	})

	return c
}
