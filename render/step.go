// Package render provides STEP file export for brepkernel shells.
package render

import (
	"fmt"

	"github.com/ajsb85/brepkernel/object"
	"github.com/ajsb85/brepkernel/step"
)

// STEPOptions configures STEP export
type STEPOptions struct {
	Author       string // Author name
	Organization string // Organization name
	ProductName  string // Product name (defaults to "brepkernel_model")
}

// ToSTEP writes shell to a STEP AP214 file with default options.
func ToSTEP(s *object.Store, shell object.Handle[object.Shell], path string) error {
	return ToSTEPWithOptions(s, shell, path, STEPOptions{})
}

// ToSTEPWithOptions writes shell to a STEP AP214 file with the given
// author/organization/product metadata.
func ToSTEPWithOptions(s *object.Store, shell object.Handle[object.Shell], path string, opts STEPOptions) error {
	writer, err := step.NewWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create STEP writer: %w", err)
	}

	applyAuthor(writer, opts)

	if err := writer.WriteShell(s, shell, productName(opts)); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write shell: %w", err)
	}

	fmt.Printf("STEP export completed: %s\n", path)
	return writer.Close()
}

func applyAuthor(w *step.Writer, opts STEPOptions) {
	if opts.Author == "" && opts.Organization == "" {
		return
	}
	author, org := opts.Author, opts.Organization
	if author == "" {
		author = "Unknown"
	}
	if org == "" {
		org = "Unknown"
	}
	w.SetAuthor(author, org)
}

func productName(opts STEPOptions) string {
	if opts.ProductName != "" {
		return opts.ProductName
	}
	return "brepkernel_model"
}

// NewStreamWriter starts a streaming STEP export backed by s: callers send
// each finished shell handle on the returned channel as soon as it's ready
// (s itself is not safe for concurrent mutation). The goroutine behind sw
// collects them; Finalize writes every shell collected
// so far into one STEP file.
func NewStreamWriter(s *object.Store, path string, opts STEPOptions) (sw *step.StreamWriter, input chan<- object.Handle[object.Shell], err error) {
	sw, input, err = step.NewStreamWriter(s, path)
	if err != nil {
		return nil, nil, err
	}
	applyAuthorStream(sw, opts)
	return sw, input, nil
}

func applyAuthorStream(sw *step.StreamWriter, opts STEPOptions) {
	if opts.Author == "" && opts.Organization == "" {
		return
	}
	author, org := opts.Author, opts.Organization
	if author == "" {
		author = "Unknown"
	}
	if org == "" {
		org = "Unknown"
	}
	sw.SetAuthor(author, org)
}

// FinalizeStream is a thin wrapper over StreamWriter.Finalize that applies
// the same default product name as ToSTEP.
func FinalizeStream(sw *step.StreamWriter, opts STEPOptions) error {
	return sw.Finalize(productName(opts))
}
