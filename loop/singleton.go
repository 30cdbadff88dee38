package loop

import "reflect"

// Singleton gives a system typed access to one resource. Declare it as a
// field; the Scheduler calls Init on registration.
type Singleton[T any] struct {
	resources *Resources
	ptr       *T
}

// NewSingleton returns an accessor for T, creating the resource from
// initializer (or the zero value) if it does not exist yet.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	if GetResource[T](resources) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		AddResource(resources, value)
	}

	s := &Singleton[T]{}
	s.Init(resources)
	return s
}

// Init binds the accessor to a resource store.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.updateCache()
}

// Get returns the resource, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil {
		s.updateCache()
	}
	return s.ptr
}

// Exists reports whether the resource has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.resources == nil {
		return
	}
	if v, ok := s.resources.lookup(reflect.TypeFor[T]()).(*T); ok {
		s.ptr = v
	} else {
		s.ptr = nil
	}
}
