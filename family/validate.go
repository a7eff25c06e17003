package family

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError reports a malformed family descriptor.
type ValidationError struct {
	Family  string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("family %q: %s: %s", e.Family, e.Field, e.Message)
	}
	return fmt.Sprintf("family %q: %s", e.Family, e.Message)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(familyStructLevel, Family{})
	return v
}

// familyStructLevel checks the number of atomic keys against the kind and
// forbids a shorthand key which is also one of the family's atomic keys.
func familyStructLevel(sl validator.StructLevel) {
	f := sl.Current().Interface().(Family)
	if arity := f.Kind.Arity(); arity > 0 && len(f.AtomicKeys) != arity {
		sl.ReportError(f.AtomicKeys, "atomicKeys", "AtomicKeys", "arity", fmt.Sprint(arity))
	}
	for _, k := range f.AtomicKeys {
		if k == f.ShorthandKey {
			sl.ReportError(f.ShorthandKey, "shorthandKey", "ShorthandKey", "distinct", k)
		}
	}
}

// Validate checks a single family descriptor.
func (f Family) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Family: f.ID, Message: err.Error()}
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &ValidationError{
			Family:  f.ID,
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return errors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], is %q", fe.Param(), fe.Value())
	case "arity":
		return fmt.Sprintf("expected %s atomic keys", fe.Param())
	case "distinct":
		return fmt.Sprintf("shorthand key %q is also an atomic key", fe.Param())
	}
	return fmt.Sprintf("failed check %q", fe.Tag())
}

// Validate checks all families of a table, plus the constraints between
// them: IDs and shorthand keys are unique and families do not depend on each
// other in a cycle.
func (t Table) Validate() error {
	var errs []error
	ids := map[string]bool{}
	shorthands := map[string]string{}
	for _, f := range t {
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
		if ids[f.ID] {
			errs = append(errs, &ValidationError{Family: f.ID, Field: "id", Message: "duplicate family ID"})
		}
		ids[f.ID] = true
		if other, ok := shorthands[f.ShorthandKey]; ok {
			errs = append(errs, &ValidationError{
				Family:  f.ID,
				Field:   "shorthandKey",
				Message: fmt.Sprintf("shorthand key %q already produced by family %q", f.ShorthandKey, other),
			})
		}
		shorthands[f.ShorthandKey] = f.ID
	}
	if _, rest := t.topoSort(); len(rest) > 0 {
		for _, f := range rest {
			errs = append(errs, &ValidationError{Family: f.ID, Message: "part of a dependency cycle"})
		}
	}
	return errors.Join(errs...)
}

// tableDocument is the YAML layout of a family table.
type tableDocument struct {
	Families Table `yaml:"families"`
}

// LoadYAML reads and validates a family table from a YAML document of the
// form
//
//     families:
//       - id: padding
//         kind: box
//         atomicKeys: [paddingTop, paddingRight, paddingBottom, paddingLeft]
//         shorthandKey: padding
//
func LoadYAML(r io.Reader) (Table, error) {
	var doc tableDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot read family table: %w", err)
	}
	if err := doc.Families.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("loaded family table with %d families", len(doc.Families))
	return doc.Families, nil
}

// WriteYAML writes a family table in the format read by LoadYAML.
func WriteYAML(w io.Writer, t Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tableDocument{Families: t}); err != nil {
		return err
	}
	return enc.Close()
}
