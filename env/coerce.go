package env

import (
	"math"
	"strconv"
	"strings"
)

// Number resolves key (falling back to def) and converts the result to a
// float64. The second return is false when neither the key nor the default
// produced a value. A non-numeric value converts to NaN rather than failing.
func (s *Store) Number(key, def string) (float64, bool) {
	raw := s.Get(key, def)
	if raw == "" {
		return 0, false
	}
	return toNumber(raw), true
}

// String resolves key, falling back to def. The second return is false when
// no value was produced.
func (s *Store) String(key, def string) (string, bool) {
	raw := s.Get(key, def)
	if raw == "" {
		return "", false
	}
	return raw, true
}

// Bool resolves key (falling back to def) and interprets the result as a
// boolean: the literals "true" and "false" map to their boolean values and
// any other non-empty value counts as true. The second return is false when
// no value was produced, so an unset key without a default is absent rather
// than false.
func (s *Store) Bool(key, def string) (bool, bool) {
	switch s.Get(key, def) {
	case "":
		return false, false
	case "false":
		return false, true
	default:
		return true, true
	}
}

// Strings splits the value bound to key on commas and combines it with def.
// Default elements come first, every element is whitespace-trimmed, empty
// elements are dropped, and duplicates keep their first occurrence. Order is
// insertion order after deduplication, never sorted. The result is empty but
// non-nil when neither source contributes anything.
func (s *Store) Strings(key string, def []string) []string {
	raw, _ := s.Lookup(key)
	parts := append(append([]string{}, def...), strings.Split(raw, ",")...)

	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

// Numbers is Strings with every element converted to a float64. Elements
// that are not numeric become NaN; they are not dropped.
func (s *Store) Numbers(key string, def []string) []float64 {
	elems := s.Strings(key, def)

	out := make([]float64, len(elems))
	for i, elem := range elems {
		out[i] = toNumber(elem)
	}
	return out
}

func toNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
