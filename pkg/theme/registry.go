package theme

import (
	"reflect"
	"sync"
)

// Registry maps widget style types to type-wide default styles.
//
// A widget consults a registry when it is constructed: every property the
// instance does not set explicitly is taken from the registered style, and
// anything still unset comes from the defaults derived from ColorScheme.
// Widgets accept a registry as an option; DefaultRegistry is used otherwise.
type Registry struct {
	mu     sync.RWMutex
	styles map[reflect.Type]any
	scheme ColorScheme
}

// NewRegistry returns an empty registry using the light color scheme.
func NewRegistry() *Registry {
	return &Registry{
		styles: make(map[reflect.Type]any),
		scheme: LightColorScheme(),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register stores style as the default for its type, replacing any previous one.
func Register[T any](r *Registry, style T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[reflect.TypeFor[T]()] = style
}

// Lookup returns the style registered for T.
func Lookup[T any](r *Registry) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.styles[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// ColorScheme returns the palette defaults are derived from.
func (r *Registry) ColorScheme() ColorScheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.scheme
}

// SetColorScheme replaces the palette defaults are derived from.
func (r *Registry) SetColorScheme(colors ColorScheme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheme = colors
}

// Reset removes all registered styles and restores the light color scheme.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles = make(map[reflect.Type]any)
	r.scheme = LightColorScheme()
}

// SegmentedControl returns a copy of the registered segmented control style.
// The zero style is returned when none is registered.
func (r *Registry) SegmentedControl() SegmentedControlStyle {
	s, _ := Lookup[SegmentedControlStyle](r)
	return s.Clone()
}

// SetSegmentedControl registers the segmented control style.
func (r *Registry) SetSegmentedControl(style SegmentedControlStyle) {
	Register(r, style.Clone())
}

// UpdateSegmentedControl edits the registered segmented control style in place.
func (r *Registry) UpdateSegmentedControl(fn func(*SegmentedControlStyle)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := reflect.TypeFor[SegmentedControlStyle]()
	s, _ := r.styles[key].(SegmentedControlStyle)
	s = s.Clone()
	fn(&s)
	r.styles[key] = s
}

// ResolvedSegmentedControl returns the registered style with every unset
// field filled from the color scheme defaults.
func (r *Registry) ResolvedSegmentedControl() SegmentedControlStyle {
	return r.SegmentedControl().Merge(DefaultSegmentedControlStyle(r.ColorScheme()))
}
