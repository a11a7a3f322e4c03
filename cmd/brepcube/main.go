// Command brepcube builds a cube shell of a given edge length and writes
// it to a STEP AP214 file. It mirrors the teacher's examples/step_export
// and examples/axoloti mains: construct a shape, then export it.
package main

import (
	"flag"
	"log"

	"github.com/ajsb85/brepkernel/builder"
	"github.com/ajsb85/brepkernel/object"
	"github.com/ajsb85/brepkernel/render"
)

func main() {
	edgeLength := flag.Float64("edge", 60, "cube edge length")
	out := flag.String("out", "cube.step", "output STEP file path")
	author := flag.String("author", "", "STEP file author")
	org := flag.String("org", "", "STEP file organization")
	product := flag.String("product", "", "STEP product name")
	flag.Parse()

	store := object.NewStore()

	sb, err := builder.NewShellBuilder(store).WithCubeFromEdgeLength(*edgeLength)
	if err != nil {
		log.Fatalf("brepcube: failed to build cube faces: %v", err)
	}
	shell, err := sb.Build()
	if err != nil {
		log.Fatalf("brepcube: failed to assemble shell: %v", err)
	}

	opts := render.STEPOptions{Author: *author, Organization: *org, ProductName: *product}
	if err := render.ToSTEPWithOptions(store, shell, *out, opts); err != nil {
		log.Fatalf("brepcube: failed to write STEP file: %v", err)
	}

	log.Printf("brepcube: wrote %s (edge length %v)", *out, *edgeLength)
}
