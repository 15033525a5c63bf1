package jsonschema

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Schema represents a JSON Schema document. It covers the subset of the
// standard needed to describe tool arguments: objects with typed properties,
// arrays, enums, numeric bounds, and required markers.
type Schema struct {
	// Type specifies the data type (e.g. "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items defines the element schema for array types
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls whether undeclared properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Enum lists the allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
	// Minimum and Maximum bound numeric parameters
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

// maxDepth bounds schema recursion so self-referential types terminate.
const maxDepth = 8

// GenerateJSONSchema derives a schema from the type parameter T. Pointer
// types are unwrapped to their element type. Struct fields follow their
// `json` tag names; fields tagged `json:"-"` and unexported fields are
// skipped. A field is required when it is a non-pointer without omitempty,
// or when its `jsonschema` tag says so explicitly.
func GenerateJSONSchema[T any]() *Schema {
	return typeSchema(reflect.TypeFor[T](), 0)
}

// typeSchema generates the schema for t, bounding recursion depth.
func typeSchema(t reflect.Type, depth int) *Schema {
	if depth > maxDepth {
		return &Schema{Type: "object"}
	}

	switch t.Kind() {
	case reflect.Ptr:
		return typeSchema(t.Elem(), depth)

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: typeSchema(t.Elem(), depth+1)}

	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: typeSchema(t.Elem(), depth+1)}

	case reflect.Struct:
		return structSchema(t, depth)

	default:
		// Interfaces, funcs, channels: nothing useful to express.
		return &Schema{}
	}
}

// structSchema builds an object schema from the exported fields of t.
func structSchema(t reflect.Type, depth int) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitEmpty, skip := fieldName(field)
		if skip {
			continue
		}

		fieldSchema := typeSchema(field.Type, depth+1)

		requiredByTag, err := applyTag(field, fieldSchema)
		if err != nil {
			// A malformed tag is a programming error in the tool definition;
			// surface it loudly instead of emitting a silently wrong schema.
			panic(fmt.Sprintf("jsonschema: field %s.%s: %v", t.Name(), field.Name, err))
		}

		schema.Properties[name] = fieldSchema

		if requiredByTag || (field.Type.Kind() != reflect.Ptr && !omitEmpty) {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// fieldName resolves the JSON property name for a struct field, reporting
// whether the field carries omitempty or should be skipped entirely.
func fieldName(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	name = field.Name

	jsonTag := field.Tag.Get("json")
	if jsonTag == "-" {
		return "", false, true
	}
	if jsonTag == "" {
		return name, false, false
	}

	parts := strings.Split(jsonTag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

// applyTag parses the `jsonschema` struct tag and applies its settings.
// Supported entries: description=..., enum=... (repeatable), minimum=...,
// maximum=..., and the bare flag "required". Enum values are converted to
// the field's Go type; descriptions therefore cannot contain commas.
func applyTag(field reflect.StructField, schema *Schema) (requiredByTag bool, err error) {
	tag := field.Tag.Get("jsonschema")
	if tag == "" {
		return false, nil
	}

	fieldType := field.Type
	for fieldType.Kind() == reflect.Ptr {
		fieldType = fieldType.Elem()
	}

	for _, item := range strings.Split(tag, ",") {
		key, value, hasValue := strings.Cut(item, "=")

		if !hasValue {
			if key == "required" {
				requiredByTag = true
			}
			continue
		}

		switch key {
		case "description":
			schema.Description = value

		case "enum":
			enumValue, err := convertEnumValue(fieldType, value)
			if err != nil {
				return false, err
			}
			schema.Enum = append(schema.Enum, enumValue)

		case "minimum":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false, fmt.Errorf("invalid minimum %q: %w", value, err)
			}
			schema.Minimum = &v

		case "maximum":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return false, fmt.Errorf("invalid maximum %q: %w", value, err)
			}
			schema.Maximum = &v
		}
	}

	return requiredByTag, nil
}

// convertEnumValue converts a tag-supplied enum literal to the field's type.
func convertEnumValue(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as int: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as float: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %q as bool: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type %v", fieldType)
	}
}
