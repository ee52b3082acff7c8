package view

import "sync"

// AllCategories is the sentinel category option that disables the category
// filter.
const AllCategories = "All"

// Filter is a snapshot of the storefront filter state: the selected category
// name and the free-text search query.
type Filter struct {
	Category string
	Search   string
}

// State owns the mutable filter state for the storefront. It is mutated only
// by interaction endpoints and read only when deriving the visible product
// list. It is not persisted; a restart resets it.
type State struct {
	mu     sync.Mutex
	filter Filter
}

// NewState returns filter state with the "All" category selected and an empty
// search query.
func NewState() *State {
	return &State{filter: Filter{Category: AllCategories}}
}

// SelectCategory records the clicked category option.
func (s *State) SelectCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Category = name
}

// SetSearch records the current search text.
func (s *State) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.Search = query
}

// Filter returns a snapshot of the current filter state.
func (s *State) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}
