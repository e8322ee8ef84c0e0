package domain

// Course is a named group of alternative meeting times. Exactly one of its
// sections is chosen per generated schedule. Section order is insertion
// order and is preserved through persistence.
type Course struct {
	Name     string
	Sections []Section
}

// Clone returns a deep copy; sections are value types so a slice copy
// suffices.
func (c Course) Clone() Course {
	out := Course{Name: c.Name}
	if c.Sections != nil {
		out.Sections = make([]Section, len(c.Sections))
		copy(out.Sections, c.Sections)
	}
	return out
}
