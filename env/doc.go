// Package env provides explicit, never-failing access to process environment
// variables: a seedable key/value store, scalar and array coercion helpers,
// execution-mode predicates, and an API version token derived from a semantic
// version string.
//
// Every lookup degrades to a default instead of returning an error. Absence of
// a key is distinct from an empty value; the coercers report presence through
// a second boolean return, so "no value and no default" is observable rather
// than being silently punned to a zero value.
package env
