package env

import "testing"

func TestCoerce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Version
	}{
		{name: "FullTriple", input: "1.2.3", want: Version{1, 2, 3}},
		{name: "PrefixedRelease", input: "v2.3.4-beta", want: Version{2, 3, 4}},
		{name: "MajorMinorOnly", input: "1.2", want: Version{1, 2, 0}},
		{name: "MajorOnly", input: "release-7", want: Version{7, 0, 0}},
		{name: "ExtraComponentsIgnored", input: "10.20.30.40", want: Version{10, 20, 30}},
		{name: "FirstPatternWins", input: "from 1.2.3 to 4.5.6", want: Version{1, 2, 3}},
		{name: "NoDigits", input: "not-a-version", want: Version{0, 0, 0}},
		{name: "Empty", input: "", want: Version{0, 0, 0}},
		{name: "OversizedComponentDegrades", input: "99999999999999999999.1", want: Version{0, 1, 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Coerce(tc.input); got != tc.want {
				t.Fatalf("Coerce(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	if got := (Version{2, 3, 4}).String(); got != "2.3.4" {
		t.Fatalf("expected 2.3.4, got %q", got)
	}
	if got := (Version{}).String(); got != "0.0.0" {
		t.Fatalf("expected 0.0.0, got %q", got)
	}
}

func TestAPIVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		opts []VersionOption
		want string
	}{
		{name: "Defaults", want: "v1"},
		{name: "MajorOnly", opts: []VersionOption{WithVersion("2.3.4")}, want: "v2"},
		{name: "Minor", opts: []VersionOption{WithVersion("2.3.4"), WithMinor()}, want: "v2.3"},
		{name: "Patch", opts: []VersionOption{WithVersion("2.3.4"), WithPatch()}, want: "v2.3.4"},
		{
			name: "PatchWinsOverMinor",
			opts: []VersionOption{WithVersion("2.3.4"), WithMinor(), WithPatch()},
			want: "v2.3.4",
		},
		{
			name: "CustomPrefix",
			opts: []VersionOption{WithVersion("2.3.4"), WithPrefix("api-v")},
			want: "api-v2",
		},
		{
			name: "EmptyPrefix",
			opts: []VersionOption{WithVersion("2.3.4"), WithPrefix("")},
			want: "2",
		},
		{
			name: "MalformedFallsBackToZero",
			opts: []VersionOption{WithVersion("not-a-version"), WithPatch()},
			want: "v0.0.0",
		},
		{
			name: "StoreOverridesOption",
			env:  map[string]string{versionKey: "9.8.7"},
			opts: []VersionOption{WithVersion("2.3.4"), WithMinor()},
			want: "v9.8",
		},
		{
			name: "EmptyStoreValueFallsBack",
			env:  map[string]string{versionKey: ""},
			opts: []VersionOption{WithVersion("2.3.4")},
			want: "v2",
		},
		{
			name: "LenientStoreValue",
			env:  map[string]string{versionKey: "v5.1.0-rc.2"},
			opts: []VersionOption{WithPatch()},
			want: "v5.1.0",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := New(WithoutOS(), WithOverrides(tc.env))
			if got := store.APIVersion(tc.opts...); got != tc.want {
				t.Fatalf("APIVersion() = %q, want %q", got, tc.want)
			}
		})
	}
}
