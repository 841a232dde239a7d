package metallum

import (
	"fmt"
	"maps"
	"sort"

	"github.com/lkowal/metallum/identity"
)

// An ExternalEntity is a subject outside the site's catalog, like a
// non-metal musician credited on an album. It carries only a name and
// whatever descriptive fields its reference supplied; identity is
// structural, so two references with identical fields are the same entity.
type ExternalEntity struct {
	name   string
	fields map[string]string
}

// NewExternalEntity returns the entity for the given name and descriptive
// fields, reusing an existing instance when one with identical fields is
// alive.
func NewExternalEntity(name string, fields map[string]string) *ExternalEntity {
	all := maps.Clone(fields)
	if all == nil {
		all = map[string]string{}
	}
	all["name"] = name

	e, _ := identity.Acquire(identity.Default, identity.StructuralKey("external", all), func() *ExternalEntity {
		return &ExternalEntity{name: name, fields: all}
	})
	return e
}

func (e *ExternalEntity) Name() (string, error) {
	return e.name, nil
}

func (e *ExternalEntity) Attrs() []string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *ExternalEntity) Attr(name string) (any, error) {
	if v, ok := e.fields[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("external entity '%s' attribute '%s': %w", e.name, name, ErrUnknownAttr)
}

func (e *ExternalEntity) String() string {
	return e.name
}
