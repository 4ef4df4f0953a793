package padsnap

import (
	"reflect"
)

// AdapterFunc builds the engine's Element view of one host widget.
type AdapterFunc func(widget any) Element

// Registry maps host widget types to adapter factories. The engine itself
// stays ignorant of host types: hosts populate the registry once at startup
// and the engine adapts whatever a page hands it. Registries are not safe
// for concurrent mutation; populate before the frame loop starts.
type Registry struct {
	factories map[reflect.Type]AdapterFunc
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[reflect.Type]AdapterFunc),
	}
}

// RegisterType installs the adapter for widgets sharing prototype's dynamic
// type. A later registration for the same type replaces the earlier one.
func (r *Registry) RegisterType(prototype any, adapt AdapterFunc) {
	if prototype == nil || adapt == nil {
		return
	}
	r.factories[reflect.TypeOf(prototype)] = adapt
}

// Register is the typed form of RegisterType.
func Register[T any](r *Registry, adapt func(widget T) Element) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// T is an interface type; widgets are adapted by dynamic type only.
		return
	}
	r.factories[t] = func(widget any) Element {
		return adapt(widget.(T))
	}
}

// Known reports whether widgets of prototype's dynamic type can be adapted.
func (r *Registry) Known(prototype any) bool {
	if prototype == nil {
		return false
	}
	_, ok := r.factories[reflect.TypeOf(prototype)]
	return ok
}

// Bind adapts every widget on the page, in order. The first widget with no
// registered adapter aborts the bind with a BindError wrapping
// ErrAdapterUnavailable; the caller treats the whole page as unusable for
// navigation rather than skipping widgets silently.
func (r *Registry) Bind(page Page) ([]Element, error) {
	widgets := page.Elements()
	elements := make([]Element, len(widgets))
	for i, w := range widgets {
		if w == nil {
			return nil, &BindError{Index: i, Err: ErrAdapterUnavailable}
		}
		t := reflect.TypeOf(w)
		adapt, ok := r.factories[t]
		if !ok {
			return nil, &BindError{Index: i, HostType: t.String(), Err: ErrAdapterUnavailable}
		}
		elements[i] = adapt(w)
	}
	return elements, nil
}
