// Package schemaio loads type descriptors from a declarative YAML or
// JSON source and converts between view.View values and
// language-neutral Go representations (spec.md §6.2's object
// round-trip), the adapted successor of the teacher's genssz package —
// where genssz fed the same declarative shape to a code generator,
// schemaio feeds it straight to schema.Build and view.View at runtime.
package schemaio

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/gfx-labs/sszview/schema"
)

// Load parses a YAML or JSON document (sigs.k8s.io/yaml accepts both)
// into a schema.Document and builds every declared top-level type,
// returning a lookup by name.
func Load(data []byte) (map[string]schema.Descriptor, error) {
	var doc schema.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("sszview/schemaio: %w", err)
	}
	return schema.Build(doc)
}

// LoadType parses data and returns only the named type, a convenience
// wrapper around Load for callers who only need one descriptor out of
// a multi-type document.
func LoadType(data []byte, name string) (schema.Descriptor, error) {
	types, err := Load(data)
	if err != nil {
		return nil, err
	}
	d, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("sszview/schemaio: type %q not declared in document", name)
	}
	return d, nil
}

// LoadMulti parses and merges several YAML/JSON documents into one
// before building, the way the teacher's genssz combineSchemas let a
// schema reference types declared in a sibling file. Declaring the
// same type name twice across files is rejected, same as within one
// document.
func LoadMulti(datas [][]byte) (map[string]schema.Descriptor, error) {
	var merged schema.Document
	for i, data := range datas {
		var doc schema.Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("sszview/schemaio: document %d: %w", i, err)
		}
		if doc.Package != "" {
			if merged.Package != "" && merged.Package != doc.Package {
				return nil, fmt.Errorf("sszview/schemaio: conflicting package names %q and %q", merged.Package, doc.Package)
			}
			merged.Package = doc.Package
		}
		merged.Types = append(merged.Types, doc.Types...)
	}
	return schema.Build(merged)
}
