// Package identity provides a process-wide weak registry mapping identity
// keys to live entity instances, so that constructing the same logical
// entity twice yields the same object.
//
// The registry holds weak pointers only: it never extends an entity's
// lifetime. Once an instance is garbage collected its entry is removed by a
// runtime cleanup, and a later Acquire with the same key builds a fresh
// instance.
package identity

import (
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"weak"
)

// A Cache is a keyed weak-reference registry. The zero value is not usable;
// call New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]liveRef
}

// liveRef is a type-erased weak pointer. ref[T] values are comparable, which
// evict relies on to avoid removing an entry that has been replaced.
type liveRef interface {
	value() (any, bool)
}

type ref[T any] struct {
	p weak.Pointer[T]
}

func (r ref[T]) value() (any, bool) {
	if v := r.p.Value(); v != nil {
		return v, true
	}
	return nil, false
}

func New() *Cache {
	return &Cache{entries: map[string]liveRef{}}
}

// Default is the registry shared by every entity in the process.
var Default = New()

// Acquire returns the instance registered under key, building and
// registering one if the key is absent or its previous instance has been
// collected. The second return is true only when build ran; callers must
// apply construction hints only in that case.
//
// build must not call Acquire on the same cache: expensive or failing work
// belongs in lazy attributes, not in construction.
func Acquire[T any](c *Cache, key string, build func() *T) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		if v, live := e.value(); live {
			log.Printf("identity: cached get %s", key)
			return v.(*T), false
		}
	}

	log.Printf("identity: uncached get %s", key)
	inst := build()
	r := ref[T]{weak.Make(inst)}
	c.entries[key] = r
	runtime.AddCleanup(inst, func(k string) { c.evict(k, r) }, key)
	return inst, true
}

// evict removes the entry for key, but only if it still holds the same weak
// pointer: a newer instance registered under the same key must survive its
// predecessor's cleanup.
func (c *Cache) evict(key string, r liveRef) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cur, ok := c.entries[key]; ok && cur == r {
		delete(c.entries, key)
	}
}

// Len reports the number of registered entries, dead ones included until
// their cleanup runs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

const sep = "\x1f"

// Key builds the identity key for an entity with its own stable id.
func Key(kind, id string) string {
	return kind + sep + id
}

// PositionalKey builds the identity key for an entity that has no id of its
// own and is instead a numbered part of a parent, like a disc of an album.
func PositionalKey(kind, parentID string, n int) string {
	return fmt.Sprintf("%s%s%s%s%d", kind, sep, parentID, sep, n)
}

// StructuralKey builds the identity key for an entity defined entirely by
// its field values, like an externally-referenced musician. Fields are
// sorted by name so that equal field sets produce equal keys regardless of
// construction order.
func StructuralKey(kind string, fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(kind)
	for _, name := range names {
		b.WriteString(sep)
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(fields[name])
	}
	return b.String()
}
