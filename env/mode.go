package env

// Execution modes recognized by the convenience predicates.
const (
	ModeTest        = "test"
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Mode reports the current execution mode, defaulting to development when the
// mode key is unset or empty.
func (s *Store) Mode() string {
	if v, ok := s.Lookup(s.modeKey); ok && v != "" {
		return v
	}
	return ModeDevelopment
}

// Is reports whether the mode key is bound to exactly mode. The development
// default applies only to Mode reporting, so every predicate is false when
// the key is unset.
func (s *Store) Is(mode string) bool {
	v, ok := s.Lookup(s.modeKey)
	return ok && v == mode
}

// IsTest reports whether the execution mode is test.
func (s *Store) IsTest() bool {
	return s.Is(ModeTest)
}

// IsDevelopment reports whether the execution mode is development.
func (s *Store) IsDevelopment() bool {
	return s.Is(ModeDevelopment)
}

// IsProduction reports whether the execution mode is production.
func (s *Store) IsProduction() bool {
	return s.Is(ModeProduction)
}

// IsLocal reports whether the execution mode is test or development.
func (s *Store) IsLocal() bool {
	return s.IsTest() || s.IsDevelopment()
}
