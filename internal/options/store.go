package options

import (
	"sync/atomic"

	"discburn/internal/resolver"
)

// Store is the settings context holding the committed BurnOptions.
type Store struct {
	current atomic.Pointer[BurnOptions]
}

// NewStore returns a store holding initial.
func NewStore(initial BurnOptions) *Store {
	s := &Store{}
	s.Replace(initial)
	return s
}

// Current returns a copy of the committed options.
func (s *Store) Current() BurnOptions {
	if p := s.current.Load(); p != nil {
		return *p
	}
	return BurnOptions{}
}

// Replace overwrites the committed options without validation. It is used to
// seed the store from persisted state.
func (s *Store) Replace(opts BurnOptions) {
	s.current.Store(&opts)
}

// Commit validates in and, on success, replaces the committed options. On
// failure the previous options stay in place.
func (s *Store) Commit(in Inputs, caps resolver.MediaCapabilities) (BurnOptions, error) {
	opts, err := Validate(in, caps)
	if err != nil {
		return BurnOptions{}, err
	}
	s.Replace(opts)
	return opts, nil
}
