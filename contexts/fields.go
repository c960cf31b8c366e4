package contexts

import (
	"fmt"

	"github.com/yanrucheng/pilflow"
)

// Field decoding helpers shared by every Restore implementation. Attribute
// maps arrive from two sources with different number representations: Data()
// on a live context yields Go ints, while JSON deserialization yields
// float64. The helpers coerce both into the declared field type and wrap
// every failure as a ValidationError naming the field.

func intField(context string, data map[string]any, key string) (int, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, badField(context, key, fmt.Sprintf("%v is not an integer", n))
		}
		return int(n), nil
	default:
		return 0, badField(context, key, fmt.Sprintf("expected integer, got %T", v))
	}
}

func floatField(context string, data map[string]any, key string) (float64, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, badField(context, key, fmt.Sprintf("expected number, got %T", v))
	}
}

func boolField(context string, data map[string]any, key string) (bool, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, badField(context, key, fmt.Sprintf("expected bool, got %T", v))
	}
	return b, nil
}

func stringField(context string, data map[string]any, key string) (string, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", badField(context, key, fmt.Sprintf("expected string, got %T", v))
	}
	return s, nil
}

func badField(context, field, reason string) error {
	return &pilflow.ValidationError{Context: context, Field: field, Reason: reason}
}
