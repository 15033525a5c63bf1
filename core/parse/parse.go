package parse

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseStringAs parses content into a value of type T.
//
// Primitive targets (string, bool, integers, floats) are converted directly:
// a model answering a string-typed tool does not have to quote its reply.
// Everything else is JSON-decoded; when strict decoding fails the payload is
// run through jsonrepair and decoded again, which recovers the usual LLM
// malformations (single quotes, unquoted keys, trailing commas, fenced code
// blocks).
//
// Example:
//
//	args, err := parse.ParseStringAs[Input](`{url: 'example.com'}`)
func ParseStringAs[T any](content string) (T, error) {
	var result T

	switch reflect.TypeFor[T]().Kind() {
	case reflect.String:
		reflect.ValueOf(&result).Elem().SetString(content)
		return result, nil

	case reflect.Bool:
		val, err := strconv.ParseBool(strings.TrimSpace(content))
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetBool(val)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetInt(val)
		return result, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		val, err := strconv.ParseUint(strings.TrimSpace(content), 10, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as uint: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetUint(val)
		return result, nil

	case reflect.Float32, reflect.Float64:
		val, err := strconv.ParseFloat(strings.TrimSpace(content), 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		reflect.ValueOf(&result).Elem().SetFloat(val)
		return result, nil

	default:
		if err := json.Unmarshal([]byte(content), &result); err == nil {
			return result, nil
		}

		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return result, fmt.Errorf("failed to parse content as %T: not valid JSON and repair failed: %v", result, repairErr)
		}

		if err := json.Unmarshal([]byte(repaired), &result); err != nil {
			return result, fmt.Errorf("failed to parse repaired JSON as %T: %w (original: %s)", result, err, content)
		}
		return result, nil
	}
}
