package catalog

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/coursegraph/pkg/errors"
)

// ValidationError lists every problem found by [Validate].
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Reference is a prerequisite that points at a course missing from the catalog.
type Reference struct {
	Course  string `json:"course"`
	Missing string `json:"missing"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks c against the catalog schema: required fields, requirement
// types, non-negative numbers and unique course IDs. All problems are
// collected; the returned error has code INVALID_CATALOG and wraps a
// *ValidationError.
//
// Dangling prerequisite references are not validation failures. Use
// [DanglingReferences] to report them.
func Validate(c *Catalog) error {
	if c == nil {
		return errors.New(errors.ErrCodeInvalidCatalog, "catalog is nil")
	}

	var problems []string
	if err := structValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			return errors.Wrap(errors.ErrCodeInternal, err, "validate catalog")
		}
		for _, fe := range verrs {
			problems = append(problems, describe(fe))
		}
	}

	seen := make(map[string]int, len(c.Courses))
	for i, co := range c.Courses {
		if co.ID == "" {
			continue
		}
		if first, ok := seen[co.ID]; ok {
			problems = append(problems, fmt.Sprintf("courses[%d].id: duplicate id %q (first at courses[%d])", i, co.ID, first))
			continue
		}
		seen[co.ID] = i
	}

	if len(problems) > 0 {
		return errors.Wrap(errors.ErrCodeInvalidCatalog, &ValidationError{Problems: problems},
			"catalog has %d problem(s)", len(problems))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + ": required"
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s], got %v", field, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s: must be >= %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q", field, fe.Tag())
	}
}

// DanglingReferences returns prerequisites naming courses that are not in c,
// sorted by course then missing ID.
func DanglingReferences(c *Catalog) []Reference {
	known := make(map[string]bool, len(c.Courses))
	for _, co := range c.Courses {
		known[co.ID] = true
	}
	var refs []Reference
	for _, co := range c.Courses {
		for _, p := range co.Prerequisites {
			if !known[p] {
				refs = append(refs, Reference{Course: co.ID, Missing: p})
			}
		}
	}
	slices.SortFunc(refs, func(a, b Reference) int {
		if c := strings.Compare(a.Course, b.Course); c != 0 {
			return c
		}
		return strings.Compare(a.Missing, b.Missing)
	})
	return refs
}
