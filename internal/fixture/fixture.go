// Package fixture provides the built-in fixture sets and loads custom ones
// from YAML.
package fixture

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/memogen/internal/schema"
)

// DefaultSet is the set written when no set or fixture file is named.
const DefaultSet = "sample"

var sets = map[string]func() schema.TraceDocument{
	"sample": Sample,
	"empty":  empty,
}

// Get returns the built-in fixture set for the given name.
func Get(name string) (schema.TraceDocument, error) {
	if name == "" {
		name = DefaultSet
	}
	build, ok := sets[name]
	if !ok {
		return schema.TraceDocument{}, fmt.Errorf("unknown fixture set %q: valid sets are %s", name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Names lists the built-in set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func empty() schema.TraceDocument {
	return schema.TraceDocument{Entries: []schema.TraceEntry{}}
}
