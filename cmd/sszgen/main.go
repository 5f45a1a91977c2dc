// Command sszgen is a schema diagnostic tool: it loads one or more
// YAML/JSON schema documents and reports each declared type's byte-
// length bounds, chunk layout, and default root — the successor of
// the teacher's genssz code generator, minus the code generation.
// This package consumes types at runtime through schema.Build and
// view.View instead of emitting generated Go source, so there is
// nothing left for this command to render except the diagnostics
// themselves.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/schemaio"
)

func main() {
	var output = flag.String("output", "", "write the report to this file instead of stdout")
	flag.Parse()

	inputFiles := flag.Args()
	if len(inputFiles) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: sszgen [-output report.txt] schema1.yml schema2.yml ...\n")
		os.Exit(1)
	}

	types, err := loadAll(inputFiles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sszgen: %v\n", err)
		os.Exit(1)
	}

	w := io.Writer(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sszgen: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := report(w, types); err != nil {
		fmt.Fprintf(os.Stderr, "sszgen: %v\n", err)
		os.Exit(1)
	}
}

func loadAll(files []string) (map[string]schema.Descriptor, error) {
	datas := make([][]byte, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		datas = append(datas, data)
	}
	return schemaio.LoadMulti(datas)
}

func report(w io.Writer, types map[string]schema.Descriptor) error {
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := types[name]
		root := d.DefaultNode().Root()

		variable := "fixed"
		size := fmt.Sprintf("%d bytes", d.FixedByteLength())
		if d.IsVariableSize() {
			variable = "variable"
			size = fmt.Sprintf("%d..%d bytes", d.MinByteLength(), d.MaxByteLength())
		}

		if _, err := fmt.Fprintf(w, "%s\n  kind:        %s\n  shape:       %s\n  size:        %s\n  chunk limit: %d\n  default root: %s\n\n",
			name, d.Kind(), variable, size, d.ChunkLimit(), hex.EncodeToString(root[:])); err != nil {
			return err
		}
	}
	return nil
}
