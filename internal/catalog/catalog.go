package catalog

import (
	"sort"
	"strings"
)

// Catalog is an ordered set of templates, kept unique and sorted by name.
// The zero value is an empty catalog ready for use.
type Catalog struct {
	// ForRemote marks catalogs meant to be published and fetched from a
	// repository. They must stay position-independent, so templates bound
	// to a machine-local path may not be added to them.
	ForRemote bool

	templates []Template
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// search locates name in the sorted template slice.
func (c *Catalog) search(name string) (int, bool) {
	i := sort.Search(len(c.templates), func(i int) bool {
		return c.templates[i].Name() >= name
	})
	return i, i < len(c.templates) && c.templates[i].Name() == name
}

// Insert adds t unless a template with the same name already exists. The
// existing entry is kept untouched in that case and Insert reports false.
func (c *Catalog) Insert(t Template) bool {
	i, found := c.search(t.Name())
	if found {
		return false
	}
	c.templates = append(c.templates, nil)
	copy(c.templates[i+1:], c.templates[i:])
	c.templates[i] = t
	return true
}

// Remove deletes the template with the given name, reporting whether it
// existed.
func (c *Catalog) Remove(name string) bool {
	i, found := c.search(name)
	if !found {
		return false
	}
	c.templates = append(c.templates[:i], c.templates[i+1:]...)
	return true
}

// FindExact returns the template whose name equals name exactly.
func (c *Catalog) FindExact(name string) (Template, bool) {
	i, found := c.search(name)
	if !found {
		return nil, false
	}
	return c.templates[i], true
}

// Find partitions the catalog's substring matches for term into the three
// result tiers. Matching is case-insensitive substring containment, no
// ranking; a template lands in exactly one tier, and within each tier
// templates keep their catalog (name) order.
func (c *Catalog) Find(term string) FindResult {
	var res FindResult
	needle := strings.ToLower(term)
	for _, t := range c.templates {
		inName := strings.Contains(strings.ToLower(t.Name()), needle)
		inDesc := t.Description() != "" && strings.Contains(strings.ToLower(t.Description()), needle)
		switch {
		case inName && inDesc:
			res.Both = append(res.Both, t)
		case inName:
			res.NameOnly = append(res.NameOnly, t)
		case inDesc:
			res.DescriptionOnly = append(res.DescriptionOnly, t)
		}
	}
	return res
}

// Templates returns the templates in name order. The slice is a copy;
// mutating it does not affect the catalog.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Names returns all template names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.templates))
	for i, t := range c.templates {
		names[i] = t.Name()
	}
	return names
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}
