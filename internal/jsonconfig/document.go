package jsonconfig

import "sort"

// Document is a JSON object that remembers key insertion order. Reading
// a key that was set twice returns the last value at the first position.
type Document struct {
	keys   []string
	values map[string]Value
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]Value)}
}

// Set stores value under key, appending key when it is new.
func (d *Document) Set(key string, value Value) *Document {
	if d.values == nil {
		d.values = make(map[string]Value)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get returns the value stored under key.
func (d *Document) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len reports the number of keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Equal reports whether both documents hold the same keys and values.
// Key order is ignored.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	for _, key := range d.Keys() {
		want, _ := d.Get(key)
		got, ok := other.Get(key)
		if !ok || !want.Equal(got) {
			return false
		}
	}
	return true
}

// SameKeys reports whether both documents carry exactly the same top-level
// key set, regardless of order.
func (d *Document) SameKeys(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	for _, key := range d.Keys() {
		if _, ok := other.Get(key); !ok {
			return false
		}
	}
	return true
}

// KindSet returns the sorted, distinct kind names of the top-level values.
func (d *Document) KindSet() []string {
	seen := make(map[string]struct{}, d.Len())
	for _, key := range d.Keys() {
		v, _ := d.Get(key)
		seen[v.Kind().String()] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
