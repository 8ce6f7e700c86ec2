package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/coursegraph/pkg/errors"
)

const sampleJSON = `{
	"courses": [
		{"id": "CS101", "name": "Intro to Programming", "credits": 6, "semester": "Fall", "year": "1",
		 "mandatory": true, "description": "Variables, loops and functions"},
		{"id": "CS201", "name": "Data Structures", "semester": "Spring", "year": "1",
		 "mandatory": true, "prerequisites": ["CS101"], "description": "Lists, trees and graphs"},
		{"id": "CS310", "name": "Compilers", "semester": "Fall", "year": "3",
		 "mandatory": false, "prerequisites": ["CS201", "MA150"], "description": "Parsing and codegen",
		 "notes": "Offered every other year"}
	],
	"requirements": [
		{"title": "Core", "type": "allOf", "groups": [{"title": "Basics", "courses": ["CS101", "CS201"]}]}
	],
	"metadata": {"department": "Computer Science", "totalCourses": 3}
}`

const sampleTOML = `
[metadata]
department = "Computer Science"

[[courses]]
id = "CS101"
name = "Intro to Programming"
credits = 6.0
semester = "Fall"
year = "1"
mandatory = true
description = "Variables, loops and functions"

[[courses]]
id = "CS201"
name = "Data Structures"
semester = "Spring"
year = "1"
mandatory = true
prerequisites = ["CS101"]
description = "Lists, trees and graphs"
`

const sampleYAML = `
courses:
  - id: CS101
    name: Intro to Programming
    semester: Fall
    year: "1"
    mandatory: true
    description: Variables, loops and functions
  - id: CS201
    name: Data Structures
    semester: Spring
    year: "1"
    mandatory: true
    prerequisites: [CS101]
    description: Lists, trees and graphs
`

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		format      Format
		wantCourses int
	}{
		{"JSON", sampleJSON, FormatJSON, 3},
		{"TOML", sampleTOML, FormatTOML, 2},
		{"YAML", sampleYAML, FormatYAML, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Read(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Read() error: %v", err)
			}
			if got := len(c.Courses); got != tt.wantCourses {
				t.Fatalf("courses = %d, want %d", got, tt.wantCourses)
			}
			if c.Courses[1].Prerequisites[0] != "CS101" {
				t.Errorf("CS201 prerequisites = %v, want [CS101]", c.Courses[1].Prerequisites)
			}
			if err := Validate(c); err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestReadInvalid(t *testing.T) {
	_, err := Read(strings.NewReader(`{invalid json}`), FormatJSON)
	if !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("Read() error = %v, want INVALID_CATALOG", err)
	}

	_, err = Read(strings.NewReader(`{}`), Format("xml"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Read() error = %v, want INVALID_FORMAT", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if c.Metadata == nil || c.Metadata.Department != "Computer Science" {
		t.Errorf("metadata = %+v, want department", c.Metadata)
	}
	if c.Courses[0].Credits == nil || *c.Courses[0].Credits != 6 {
		t.Errorf("credits = %v, want 6", c.Courses[0].Credits)
	}

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want FILE_NOT_FOUND", err)
	}

	_, err = ReadFile(filepath.Join(dir, "catalog.xml"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ReadFile(.xml) error = %v, want INVALID_FORMAT", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"a.JSON", FormatJSON, false},
		{"a.toml", FormatTOML, false},
		{"a.yaml", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.txt", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	c, err := Read(strings.NewReader(sampleJSON), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Write(c, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	back, err := Read(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if Hash(c) != Hash(back) {
		t.Error("Hash differs after Write/Read round trip")
	}
}

func TestCatalogLookup(t *testing.T) {
	c, _ := Read(strings.NewReader(sampleJSON), FormatJSON)

	co, ok := c.Course("CS201")
	if !ok || co.Name != "Data Structures" {
		t.Errorf("Course(CS201) = %+v, %v", co, ok)
	}
	if _, ok := c.Course("nope"); ok {
		t.Error("Course(nope) should not be found")
	}

	ids := c.IDs()
	if strings.Join(ids, ",") != "CS101,CS201,CS310" {
		t.Errorf("IDs() = %v, want catalog order", ids)
	}
}

func TestFilter(t *testing.T) {
	c, _ := Read(strings.NewReader(sampleJSON), FormatJSON)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"CS101", "CS201", "CS310"}},
		{"data", []string{"CS201"}},
		{"cs3", []string{"CS310"}},
		{"LOOPS", []string{"CS101"}},
		{"quantum", nil},
	}

	for _, tt := range tests {
		var got []string
		for _, co := range c.Filter(tt.query) {
			got = append(got, co.ID)
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestHash(t *testing.T) {
	a := &Catalog{Courses: []Course{{ID: "A"}, {ID: "B"}}}
	b := &Catalog{Courses: []Course{{ID: "A"}, {ID: "B"}}}
	swapped := &Catalog{Courses: []Course{{ID: "B"}, {ID: "A"}}}

	if Hash(a) != Hash(b) {
		t.Error("Hash should be deterministic")
	}
	if Hash(a) == Hash(swapped) {
		t.Error("Hash should depend on course order")
	}
	if len(Hash(a)) != 64 {
		t.Errorf("Hash length = %d, want 64", len(Hash(a)))
	}
}
