// Package catalog defines the course catalog model and its loaders.
//
// A [Catalog] is the input to the graph builder in pkg/core/dag. This package
// is the boundary where raw files become validated values:
//
//   - [ReadFile] and [Read] decode JSON, TOML or YAML catalogs
//   - [Validate] checks field presence, requirement types and duplicate IDs
//   - [DanglingReferences] lists prerequisites that name unknown courses
//
// The layout core never re-validates fields. Dangling references are not an
// error here either; they are reported so callers can warn about them.
//
// # File Format
//
// The JSON form mirrors the struct tags:
//
//	{
//	  "courses": [
//	    {"id": "CS101", "name": "Intro", "semester": "Fall", "year": "1",
//	     "mandatory": true, "description": "..."},
//	    {"id": "CS201", "name": "Data Structures", "semester": "Spring",
//	     "year": "1", "mandatory": true, "prerequisites": ["CS101"],
//	     "description": "..."}
//	  ],
//	  "metadata": {"department": "Computer Science"}
//	}
//
// TOML catalogs use [[courses]] tables with the same keys.
package catalog
