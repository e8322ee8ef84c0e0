package domain

// Catalog is the full set of courses for one student, keyed by course name.
// It remembers insertion order: that order defines the course order of every
// generated schedule, so it must survive persistence round trips (a plain Go
// map would lose it).
type Catalog struct {
	names  []string
	byName map[string]Course
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]Course)}
}

// Upsert adds a course or replaces the sections of an existing one. A new
// name is appended at the end of the insertion order; an existing name keeps
// its position.
func (c *Catalog) Upsert(course Course) {
	if _, exists := c.byName[course.Name]; !exists {
		c.names = append(c.names, course.Name)
	}
	c.byName[course.Name] = course.Clone()
}

// Get returns the named course and whether it exists.
func (c *Catalog) Get(name string) (Course, bool) {
	course, ok := c.byName[name]
	if !ok {
		return Course{}, false
	}
	return course.Clone(), true
}

// Delete removes the named course. Removing an absent name is a no-op.
func (c *Catalog) Delete(name string) {
	if _, ok := c.byName[name]; !ok {
		return
	}
	delete(c.byName, name)
	for i, n := range c.names {
		if n == name {
			c.names = append(c.names[:i], c.names[i+1:]...)
			break
		}
	}
}

// Names returns course names in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Courses returns all courses in insertion order.
func (c *Catalog) Courses() []Course {
	out := make([]Course, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name].Clone())
	}
	return out
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Clone returns a deep copy. Sessions work on their own copy of the loaded
// catalog; the store never shares one in-process.
func (c *Catalog) Clone() *Catalog {
	out := NewCatalog()
	for _, course := range c.Courses() {
		out.Upsert(course)
	}
	return out
}

// Equal reports whether two catalogs hold the same courses with the same
// sections in the same order.
func (c *Catalog) Equal(other *Catalog) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, name := range c.names {
		if other.names[i] != name {
			return false
		}
		a, b := c.byName[name], other.byName[name]
		if len(a.Sections) != len(b.Sections) {
			return false
		}
		for j := range a.Sections {
			if a.Sections[j] != b.Sections[j] {
				return false
			}
		}
	}
	return true
}
