package schema

import (
	"fmt"
	"reflect"
)

// Type defines the contract for field validation.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in type implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	if _, ok := value.(string); !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values. JSON-decoded whole floats are accepted.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// BoolType validates boolean values.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	return nil
}

// SliceType validates slices of a specific element type.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := t.elemType.Validate(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// EnumType validates membership in a closed set of string values.
type EnumType struct {
	allowed []string
}

func (t *EnumType) Name() string {
	return fmt.Sprintf("enum%v", t.allowed)
}

func (t *EnumType) Validate(value any) error {
	// Enum fields arrive either as plain strings (decoded JSON) or as typed
	// string aliases from in-process callers.
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return fmt.Errorf("expected string, got %T", value)
	}
	s := rv.String()
	for _, a := range t.allowed {
		if s == a {
			return nil
		}
	}
	return fmt.Errorf("value %q not in %v", s, t.allowed)
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// Bool creates a boolean type validator.
func Bool() Type { return &BoolType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// Enum creates a validator for a closed set of string values.
func Enum(allowed ...string) Type {
	return &EnumType{allowed: allowed}
}

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}

// NonNegativeInt creates an integer validator that also rejects negatives.
func NonNegativeInt() Type {
	base := Int()
	return Custom("int>=0", func(v any) error {
		if err := base.Validate(v); err != nil {
			return err
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.Int() < 0 {
				return fmt.Errorf("must not be negative, got %d", rv.Int())
			}
		case reflect.Float32, reflect.Float64:
			if rv.Float() < 0 {
				return fmt.Errorf("must not be negative, got %v", rv.Float())
			}
		}
		return nil
	})
}
