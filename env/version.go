package env

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	defaultVersion       = "1.0.0"
	defaultVersionPrefix = "v"
)

// versionPattern matches the first version-like token in a string: a run of
// digits followed by up to two ".digits" groups.
var versionPattern = regexp.MustCompile(`\d+(?:\.\d+){0,2}`)

// Version is a semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String formats the full major.minor.patch form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Coerce extracts the first version-like pattern from s, so "v2.3.4-beta"
// coerces to 2.3.4 and "release-7" to 7.0.0. Missing components default to
// zero and a string with no digits coerces to 0.0.0; Coerce never fails.
func Coerce(s string) Version {
	match := versionPattern.FindString(s)
	if match == "" {
		return Version{}
	}

	var v Version
	components := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range strings.Split(match, ".") {
		// a digit run too long for int degrades to zero
		n, err := strconv.Atoi(part)
		if err != nil {
			n = 0
		}
		*components[i] = n
	}
	return v
}

type versionSettings struct {
	version string
	prefix  string
	minor   bool
	patch   bool
}

// VersionOption adjusts how APIVersion resolves and formats the token.
type VersionOption func(*versionSettings)

// WithVersion sets the fallback version string used when API_VERSION is not
// bound in the store. The default is "1.0.0".
func WithVersion(version string) VersionOption {
	return func(s *versionSettings) {
		s.version = version
	}
}

// WithPrefix sets the string prepended to the formatted token. The default
// is "v".
func WithPrefix(prefix string) VersionOption {
	return func(s *versionSettings) {
		s.prefix = prefix
	}
}

// WithMinor includes the minor component in the token.
func WithMinor() VersionOption {
	return func(s *versionSettings) {
		s.minor = true
	}
}

// WithPatch includes both the minor and patch components in the token.
// WithPatch wins over WithMinor.
func WithPatch() VersionOption {
	return func(s *versionSettings) {
		s.patch = true
	}
}

// APIVersion derives the prefixed API version token from the API_VERSION key,
// falling back to the configured version string when the key is unset or
// empty. Granularity defaults to major-only; WithMinor widens it to
// major.minor and WithPatch to the full triple. Malformed version strings
// degrade through Coerce, so the result is always a well-formed token.
func (s *Store) APIVersion(opts ...VersionOption) string {
	cfg := versionSettings{version: defaultVersion, prefix: defaultVersionPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}

	raw := s.Get(versionKey, "")
	if raw == "" {
		raw = cfg.version
	}
	v := Coerce(raw)

	switch {
	case cfg.patch:
		return fmt.Sprintf("%s%d.%d.%d", cfg.prefix, v.Major, v.Minor, v.Patch)
	case cfg.minor:
		return fmt.Sprintf("%s%d.%d", cfg.prefix, v.Major, v.Minor)
	default:
		return fmt.Sprintf("%s%d", cfg.prefix, v.Major)
	}
}
