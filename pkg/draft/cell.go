package draft

// Cell binds one value to one store key. The stored value is read once at
// construction, falling back to the initial value when the key is absent,
// corrupt, or the store is unavailable. Every update is written through.
type Cell[T any] struct {
	store   Store
	key     string
	initial T
	value   T
}

// NewCell creates a cell for key seeded from the store or the initial value.
func NewCell[T any](s Store, key string, initial T) *Cell[T] {
	c := &Cell[T]{store: s, key: key, initial: initial, value: initial}
	if s != nil {
		var stored T
		if s.Get(key, &stored) {
			c.value = stored
		}
	}
	return c
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value and writes it through.
func (c *Cell[T]) Set(v T) {
	c.value = v
	if c.store != nil {
		c.store.Set(c.key, v)
	}
}

// Update applies fn to the current value and writes the result through.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}

// Reset restores the initial value and clears the stored copy.
func (c *Cell[T]) Reset() {
	c.value = c.initial
	if c.store != nil {
		c.store.Clear(c.key)
	}
}
