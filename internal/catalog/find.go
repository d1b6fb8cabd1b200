package catalog

// FindResult holds one catalog's matches for a search term, split by where
// the term appeared. The tiers are disjoint: a template whose name and
// description both match lands only in Both.
type FindResult struct {
	Both            []Template
	NameOnly        []Template
	DescriptionOnly []Template
}

// Empty reports whether no tier holds a match.
func (r FindResult) Empty() bool {
	return len(r.Both) == 0 && len(r.NameOnly) == 0 && len(r.DescriptionOnly) == 0
}

// Labeled is a search hit tagged with the name of the catalog it came from.
// The same template name may appear under different labels; catalogs are
// independent namespaces.
type Labeled struct {
	Source   string
	Template Template
}

// ComposedResult aggregates labeled hits from any number of catalogs,
// keeping the three match tiers apart.
type ComposedResult struct {
	Both            []Labeled
	NameOnly        []Labeled
	DescriptionOnly []Labeled
}

// Compose tags every hit in r with the given source catalog name.
func (r FindResult) Compose(source string) ComposedResult {
	return ComposedResult{
		Both:            label(source, r.Both),
		NameOnly:        label(source, r.NameOnly),
		DescriptionOnly: label(source, r.DescriptionOnly),
	}
}

func label(source string, ts []Template) []Labeled {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Labeled, len(ts))
	for i, t := range ts {
		out[i] = Labeled{Source: source, Template: t}
	}
	return out
}

// Merge concatenates other's hits after r's own, tier by tier. Folding
// catalogs in priority order therefore lists higher-priority hits first
// within every tier.
func (r ComposedResult) Merge(other ComposedResult) ComposedResult {
	return ComposedResult{
		Both:            append(r.Both, other.Both...),
		NameOnly:        append(r.NameOnly, other.NameOnly...),
		DescriptionOnly: append(r.DescriptionOnly, other.DescriptionOnly...),
	}
}

// Empty reports whether no tier holds a match.
func (r ComposedResult) Empty() bool {
	return len(r.Both) == 0 && len(r.NameOnly) == 0 && len(r.DescriptionOnly) == 0
}
