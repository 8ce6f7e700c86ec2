package catalog

import (
	"slices"
	"strings"
)

// Requirement types.
const (
	RequirementTypeAllOf = "allOf"
	RequirementTypeNOf   = "nOf"
	RequirementTypeGroup = "group"
)

// Course is a single entry in a catalog.
//
// ID is the only field that must be non-empty. Only ID and Prerequisites
// carry graph structure. Corequisites,
// RequiredKnowledge and AlternativePrerequisites are informational and never
// produce edges.
type Course struct {
	ID            string   `json:"id" toml:"id" yaml:"id" bson:"id" validate:"required"`
	Name          string   `json:"name" toml:"name" yaml:"name" bson:"name"`
	Credits       *float64 `json:"credits,omitempty" toml:"credits,omitempty" yaml:"credits,omitempty" bson:"credits,omitempty" validate:"omitempty,gte=0"`
	Semester      string   `json:"semester" toml:"semester" yaml:"semester" bson:"semester"`
	Year          string   `json:"year" toml:"year" yaml:"year" bson:"year"`
	Mandatory     bool     `json:"mandatory" toml:"mandatory" yaml:"mandatory" bson:"mandatory"`
	Prerequisites []string `json:"prerequisites,omitempty" toml:"prerequisites,omitempty" yaml:"prerequisites,omitempty" bson:"prerequisites,omitempty" validate:"omitempty,dive,required"`
	Description   string   `json:"description" toml:"description" yaml:"description" bson:"description"`
	Notes         string   `json:"notes,omitempty" toml:"notes,omitempty" yaml:"notes,omitempty" bson:"notes,omitempty"`

	Corequisites             []string `json:"corequisites,omitempty" toml:"corequisites,omitempty" yaml:"corequisites,omitempty" bson:"corequisites,omitempty" validate:"omitempty,dive,required"`
	RequiredKnowledge        []string `json:"requiredKnowledge,omitempty" toml:"requiredKnowledge,omitempty" yaml:"requiredKnowledge,omitempty" bson:"requiredKnowledge,omitempty"`
	AlternativePrerequisites string   `json:"alternativePrerequisites,omitempty" toml:"alternativePrerequisites,omitempty" yaml:"alternativePrerequisites,omitempty" bson:"alternativePrerequisites,omitempty"`
}

// HasPrerequisites reports whether the course lists at least one prerequisite.
func (c Course) HasPrerequisites() bool { return len(c.Prerequisites) > 0 }

// RequirementGroup is a named set of course IDs inside a Requirement.
// N is the minimum number of courses required for "nOf" requirements.
type RequirementGroup struct {
	Title   string   `json:"title" toml:"title" yaml:"title" bson:"title" validate:"required"`
	N       *int     `json:"n,omitempty" toml:"n,omitempty" yaml:"n,omitempty" bson:"n,omitempty" validate:"omitempty,gte=1"`
	Courses []string `json:"courses" toml:"courses" yaml:"courses" bson:"courses" validate:"dive,required"`
}

// Requirement describes a degree requirement. The layout engine ignores it.
type Requirement struct {
	Title  string             `json:"title" toml:"title" yaml:"title" bson:"title" validate:"required"`
	Type   string             `json:"type" toml:"type" yaml:"type" bson:"type" validate:"required,oneof=allOf nOf group"`
	Groups []RequirementGroup `json:"groups" toml:"groups" yaml:"groups" bson:"groups" validate:"dive"`
}

// Metadata is optional descriptive information about a catalog.
type Metadata struct {
	LastUpdated  string   `json:"lastUpdated,omitempty" toml:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty" bson:"lastUpdated,omitempty"`
	Department   string   `json:"department,omitempty" toml:"department,omitempty" yaml:"department,omitempty" bson:"department,omitempty"`
	TotalCourses *int     `json:"totalCourses,omitempty" toml:"totalCourses,omitempty" yaml:"totalCourses,omitempty" bson:"totalCourses,omitempty" validate:"omitempty,gte=0"`
	Notes        []string `json:"notes,omitempty" toml:"notes,omitempty" yaml:"notes,omitempty" bson:"notes,omitempty"`
}

// Catalog is an ordered list of courses plus optional requirements and
// metadata. Course order is significant: it decides the slot order of
// courses that end up on the same layout level.
type Catalog struct {
	Courses      []Course      `json:"courses" toml:"courses" yaml:"courses" bson:"courses" validate:"dive"`
	Requirements []Requirement `json:"requirements,omitempty" toml:"requirements,omitempty" yaml:"requirements,omitempty" bson:"requirements,omitempty" validate:"omitempty,dive"`
	Metadata     *Metadata     `json:"metadata,omitempty" toml:"metadata,omitempty" yaml:"metadata,omitempty" bson:"metadata,omitempty" validate:"omitempty"`
}

// Course returns the first course with the given ID.
func (c *Catalog) Course(id string) (Course, bool) {
	i := slices.IndexFunc(c.Courses, func(co Course) bool { return co.ID == id })
	if i < 0 {
		return Course{}, false
	}
	return c.Courses[i], true
}

// IDs returns the course IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.Courses))
	for i, co := range c.Courses {
		ids[i] = co.ID
	}
	return ids
}

// Filter returns the courses whose ID, name or description contains query,
// ignoring case. An empty query returns every course.
func (c *Catalog) Filter(query string) []Course {
	if query == "" {
		return slices.Clone(c.Courses)
	}
	q := strings.ToLower(query)
	var out []Course
	for _, co := range c.Courses {
		if strings.Contains(strings.ToLower(co.Name), q) ||
			strings.Contains(strings.ToLower(co.ID), q) ||
			strings.Contains(strings.ToLower(co.Description), q) {
			out = append(out, co)
		}
	}
	return out
}
