package catalog

// Catalog exposes the immutable Faction, Product and ModuleDefinition
// tables. It is constructed once at startup by Load and passed by
// reference to everything that resolves ids; there are no mutation
// methods.
type Catalog struct {
	factions     map[string]*Faction
	factionOrder []string

	products     map[string]*Product
	productOrder []string

	modules     map[string]*ModuleDefinition
	moduleOrder []string
}

func newCatalog() *Catalog {
	return &Catalog{
		factions: make(map[string]*Faction),
		products: make(map[string]*Product),
		modules:  make(map[string]*ModuleDefinition),
	}
}

// Faction looks up a faction by id.
func (c *Catalog) Faction(id string) (*Faction, error) {
	f, ok := c.factions[id]
	if !ok {
		return nil, NewNotFoundError("faction", id)
	}
	return f, nil
}

// Product looks up a product by id.
func (c *Catalog) Product(id string) (*Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, NewNotFoundError("product", id)
	}
	return p, nil
}

// Module looks up a station module definition by id.
func (c *Catalog) Module(id string) (*ModuleDefinition, error) {
	m, ok := c.modules[id]
	if !ok {
		return nil, NewNotFoundError("station module", id)
	}
	return m, nil
}

// Factions returns every faction in load order.
func (c *Catalog) Factions() []*Faction {
	out := make([]*Faction, 0, len(c.factionOrder))
	for _, id := range c.factionOrder {
		out = append(out, c.factions[id])
	}
	return out
}

// Products returns every product in load order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, 0, len(c.productOrder))
	for _, id := range c.productOrder {
		out = append(out, c.products[id])
	}
	return out
}

// Modules returns every module definition in load order: categories in
// registration order, files in directory scan order within a category.
func (c *Catalog) Modules() []*ModuleDefinition {
	out := make([]*ModuleDefinition, 0, len(c.moduleOrder))
	for _, id := range c.moduleOrder {
		out = append(out, c.modules[id])
	}
	return out
}

// ModulesOfType returns the definitions of one category in load order.
func (c *Catalog) ModulesOfType(t ModuleType) []*ModuleDefinition {
	var out []*ModuleDefinition
	for _, id := range c.moduleOrder {
		if m := c.modules[id]; m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) addFaction(f *Faction) error {
	if _, exists := c.factions[f.ID]; exists {
		return NewLoadError("", "duplicate faction id \""+f.ID+"\"")
	}
	c.factions[f.ID] = f
	c.factionOrder = append(c.factionOrder, f.ID)
	return nil
}

func (c *Catalog) addProduct(p *Product) error {
	if _, exists := c.products[p.ID]; exists {
		return NewLoadError("", "duplicate product id \""+p.ID+"\"")
	}
	c.products[p.ID] = p
	c.productOrder = append(c.productOrder, p.ID)
	return nil
}

func (c *Catalog) addModule(m *ModuleDefinition) error {
	if _, exists := c.modules[m.ID]; exists {
		return NewLoadError("", "duplicate station module id \""+m.ID+"\"")
	}
	c.modules[m.ID] = m
	c.moduleOrder = append(c.moduleOrder, m.ID)
	return nil
}
