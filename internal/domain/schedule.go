package domain

// Placement pairs a chosen section with the course it satisfies.
type Placement struct {
	Course  string
	Section Section
}

// Schedule is one candidate assignment: exactly one section per course in
// the catalog, in catalog course order until display ordering is applied.
// Schedules are derived data and are never mutated after construction.
type Schedule []Placement
