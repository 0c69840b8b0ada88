package catalog

import (
	"emuscan/internal/stringutil"
)

type System struct {
	Name  string
	Games []string
}

// Slug is the page name of the system without the .html suffix.
func (s System) Slug() string {
	return stringutil.Slugify(s.Name)
}

func (s System) PageName() string {
	return s.Slug() + ".html"
}

// Catalog maps systems to their sorted game names, in scan order.
type Catalog struct {
	systems []System
	index   map[string]int
}

func New(systems []System) *Catalog {
	c := &Catalog{
		systems: systems,
		index:   make(map[string]int, len(systems)),
	}
	for i, s := range systems {
		c.index[s.Name] = i
	}
	return c
}

func (c *Catalog) Systems() []System {
	return c.systems
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.systems))
	for i, s := range c.systems {
		names[i] = s.Name
	}
	return names
}

// Games returns the sorted games of the named system.
func (c *Catalog) Games(system string) ([]string, bool) {
	i, ok := c.index[system]
	if !ok {
		return nil, false
	}
	return c.systems[i].Games, true
}

func (c *Catalog) Len() int {
	return len(c.systems)
}

func (c *Catalog) TotalGames() int {
	total := 0
	for _, s := range c.systems {
		total += len(s.Games)
	}
	return total
}
