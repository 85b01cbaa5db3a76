package torch

// Key identifies an entry in a Registry. Keys must be comparable; strings
// and integers are typical.
type Key = any

type entry struct {
	key Key
	d   Drawable
}

// Registry is an ordered, keyed collection of drawables. Insertion order is
// paint order, bottom to top.
//
// Keys may repeat. Lookup by key returns the most recently added entry with
// that key while every entry stays reachable by index.
type Registry struct {
	owner   Redrawer
	entries []entry
	index   map[Key]Drawable
}

// NewRegistry creates an empty registry. Objects added to it forward their
// redraw requests to owner, which may be nil.
func NewRegistry(owner Redrawer) *Registry {
	return &Registry{
		owner: owner,
		index: make(map[Key]Drawable),
	}
}

// Add appends d under key. Adding the same object under the same key again
// is a no-op. The object's interaction state is initialized the first time
// it joins any registry; an object shared between registries keeps its state.
func (r *Registry) Add(key Key, d Drawable) {
	if d == nil {
		return
	}
	if cur, ok := r.index[key]; ok && cur == d {
		return
	}
	o := d.Base()
	if o.registrations == 0 {
		o.resetInteraction()
	}
	o.registrations++
	if r.owner != nil {
		o.AddListener(r.owner)
	}

	r.entries = append(r.entries, entry{key: key, d: d})
	r.index[key] = d

	if h, ok := d.(AddedHook); ok {
		h.OnAdded(r, key)
	}
}

// Remove deletes the first entry with key and reports whether one existed.
// An object leaving its last registry loses focus and its interaction state.
func (r *Registry) Remove(key Key) bool {
	i := r.find(key)
	if i < 0 {
		return false
	}
	d := r.entries[i].d
	r.entries = append(r.entries[:i], r.entries[i+1:]...)

	delete(r.index, key)
	for j := len(r.entries) - 1; j >= 0; j-- {
		if r.entries[j].key == key {
			r.index[key] = r.entries[j].d
			break
		}
	}

	r.release(d)
	return true
}

// Clear removes every entry.
func (r *Registry) Clear() {
	for len(r.entries) > 0 {
		r.Remove(r.entries[0].key)
	}
}

func (r *Registry) release(d Drawable) {
	o := d.Base()
	if r.owner != nil && !r.contains(d) {
		o.RemoveListener(r.owner)
	}
	if o.registrations > 0 {
		o.registrations--
	}
	if o.registrations > 0 {
		return
	}
	if o.focusOwner != nil {
		o.focusOwner.Blur(d)
	}
	o.resetInteraction()
}

func (r *Registry) find(key Key) int {
	for i, e := range r.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

func (r *Registry) contains(d Drawable) bool {
	for _, e := range r.entries {
		if e.d == d {
			return true
		}
	}
	return false
}

// ByKey returns the object most recently added under key, or nil.
func (r *Registry) ByKey(key Key) Drawable {
	return r.index[key]
}

// At returns the object at paint position i. It panics if i is out of range.
func (r *Registry) At(i int) Drawable {
	return r.entries[i].d
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// snapshot copies the drawables so handlers may modify the registry while
// it is being walked.
func (r *Registry) snapshot() []Drawable {
	out := make([]Drawable, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.d
	}
	return out
}
