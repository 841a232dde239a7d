// Package lazy provides a compute-once cell used for attributes whose value
// is expensive to produce, typically because producing it fetches a page.
package lazy

// A Cell memoizes a single value. The first Get runs the supplied
// computation and stores its result; later Gets return the stored value
// without recomputation. A failed computation is not memoized, so a later
// Get retries it.
//
// Cells are not safe for concurrent use. Entities and pages in this module
// assume single-threaded access; callers wanting parallelism must fan out
// across independent instances.
type Cell[T any] struct {
	val  T
	done bool
}

// Get returns the memoized value, computing and storing it on first use.
func (c *Cell[T]) Get(compute func() (T, error)) (T, error) {
	if c.done {
		return c.val, nil
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	c.val = v
	c.done = true
	return v, nil
}

// Set stores a value directly, marking the cell resolved. It is used for
// construction hints on genuinely new instances; Set on an already-resolved
// cell is ignored so a hint can never replace a stored value.
func (c *Cell[T]) Set(v T) {
	if c.done {
		return
	}
	c.val = v
	c.done = true
}

// Done reports whether the cell holds a value.
func (c *Cell[T]) Done() bool {
	return c.done
}
