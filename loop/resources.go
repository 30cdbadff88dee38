package loop

import "reflect"

// Resources holds one value per type for data shared by systems but owned by
// none of them: the game session, the input queue, configuration.
type Resources struct {
	values map[reflect.Type]any
}

func NewResources() *Resources {
	return &Resources{values: make(map[reflect.Type]any)}
}

// Len reports the number of stored values.
func (r *Resources) Len() int {
	return len(r.values)
}

func (r *Resources) lookup(t reflect.Type) any {
	return r.values[t]
}

// AddResource stores a copy of value, replacing any existing T, and returns a
// pointer to the stored copy. Singletons already bound to a replaced value
// keep pointing at the old one.
func AddResource[T any](r *Resources, value T) *T {
	ptr := new(T)
	*ptr = value
	r.values[reflect.TypeFor[T]()] = ptr
	return ptr
}

// GetResource returns the stored T, or nil.
func GetResource[T any](r *Resources) *T {
	v, ok := r.values[reflect.TypeFor[T]()].(*T)
	if !ok {
		return nil
	}
	return v
}

// RemoveResource drops the stored T.
func RemoveResource[T any](r *Resources) {
	delete(r.values, reflect.TypeFor[T]())
}
