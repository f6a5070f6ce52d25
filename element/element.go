// Package element provides the shared payload record consumed by the
// datalib containers. An Element pairs an opaque value buffer with an
// opaque key handle; the containers order elements exclusively through a
// caller-supplied comparator and never interpret either field themselves.
package element

// Element is one packed payload. It is immutable once created: the value
// buffer is copied at pack time and the key handle is never touched again.
type Element[K any] struct {
	value []byte
	key   K
}

// Pack copies exactly len(value) bytes into a fresh buffer and attaches the
// key handle uncopied. The key is treated as a caller-owned identity; only
// the value bytes are duplicated.
func Pack[K any](value []byte, key K) *Element[K] {
	buf := make([]byte, len(value))
	copy(buf, value)
	return &Element[K]{
		value: buf,
		key:   key,
	}
}

// Key returns the element's key handle.
func (e *Element[K]) Key() K {
	return e.key
}

// Value returns the element's value buffer. Callers must not mutate it.
func (e *Element[K]) Value() []byte {
	return e.value
}

// Size returns the length of the value buffer in bytes.
func (e *Element[K]) Size() int {
	return len(e.value)
}
