package pilflow

import (
	"reflect"
	"regexp"
	"strings"
)

var (
	camelBoundaryAcronym = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelBoundaryLower   = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// snakeCase converts a CamelCase type name to snake_case, keeping acronym
// runs together ("HTTPSource" -> "http_source", not "h_t_t_p_source").
func snakeCase(name string) string {
	name = camelBoundaryAcronym.ReplaceAllString(name, "${1}_${2}")
	name = camelBoundaryLower.ReplaceAllString(name, "${1}_${2}")
	return strings.ToLower(name)
}

// stripSuffix removes the first matching suffix from name, trying suffixes
// in order. Longer suffixes must come first.
func stripSuffix(name string, suffixes ...string) string {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) && len(name) > len(s) {
			return strings.TrimSuffix(name, s)
		}
	}
	return name
}

// typeName returns the unqualified Go type name of v, unwrapping pointers.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// OperationName derives the canonical operation name from the Go type name of
// v: CamelCase converted to snake_case with a trailing "_operation",
// "_producer" or "_consumer" suffix stripped. A *BlurOperation value yields
// "blur"; a *FileProducer value yields "file".
func OperationName(v any) string {
	return stripSuffix(snakeCase(typeName(v)), "_operation", "_producer", "_consumer")
}

// ContextName derives the canonical context name from the Go type name of v,
// stripping a trailing "_context_data", "_context" or "_data" suffix. A
// *ResizeContext value yields "resize". This name keys the structured context
// map on a Pack and both context registries.
func ContextName(v any) string {
	return stripSuffix(snakeCase(typeName(v)), "_context_data", "_context", "_data")
}
