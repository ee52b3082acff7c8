package cart

import "sync"

// Panel tracks the inline cart panel's binary open/closed visual state. The
// state is independent of the cart data; every visibility change is followed
// by a content re-render so the panel is never shown stale.
type Panel struct {
	mu   sync.Mutex
	open bool
}

// Open forces the panel open and reports the resulting state.
func (p *Panel) Open() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = true
	return p.open
}

// Toggle flips the panel's visibility and reports the resulting state.
func (p *Panel) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = !p.open
	return p.open
}

// IsOpen reports the current visibility.
func (p *Panel) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}
