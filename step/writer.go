package step

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ajsb85/brepkernel/object"
)

// Writer handles STEP file generation
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	fileName   string
	authorName string
	orgName    string
}

// NewWriter creates a new STEP writer
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &Writer{
		file:       file,
		writer:     bufio.NewWriter(file),
		fileName:   filepath.Base(path),
		authorName: "brepkernel User",
		orgName:    "brepkernel Organization",
	}, nil
}

// SetAuthor sets the author information
func (w *Writer) SetAuthor(name, org string) {
	w.authorName = name
	w.orgName = org
}

// Close closes the writer and flushes any remaining data
func (w *Writer) Close() error {
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// writeHeader writes the STEP file header
func (w *Writer) writeHeader() error {
	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('STEP AP214'),'1');",
		fmt.Sprintf("FILE_NAME('%s','%s',('%s'),('%s'),'brepkernel STEP Writer','brepkernel','');",
			w.fileName,
			time.Now().Format("2006-01-02T15:04:05"),
			w.authorName,
			w.orgName),
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));",
		"ENDSEC;",
	}

	for _, line := range header {
		if _, err := w.writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeData writes the DATA section with entities
func (w *Writer) writeData(entities []Entity) error {
	if _, err := w.writer.WriteString("DATA;\n"); err != nil {
		return err
	}

	for _, entity := range entities {
		str := entity.String()
		// Handle multi-line entities (complex types)
		if strings.Contains(str, "\n") {
			lines := strings.Split(str, "\n")
			for _, line := range lines {
				if _, err := w.writer.WriteString(line + "\n"); err != nil {
					return err
				}
			}
		} else {
			if _, err := w.writer.WriteString(str + "\n"); err != nil {
				return err
			}
		}
	}

	if _, err := w.writer.WriteString("ENDSEC;\n"); err != nil {
		return err
	}

	return nil
}

// writeFooter writes the STEP file footer
func (w *Writer) writeFooter() error {
	if _, err := w.writer.WriteString("END-ISO-10303-21;\n"); err != nil {
		return err
	}
	return nil
}

// WriteShell converts shell into STEP BREP entities and writes the
// complete file. name becomes the STEP PRODUCT's name.
func (w *Writer) WriteShell(s *object.Store, shell object.Handle[object.Shell], name string) error {
	return w.WriteShells(s, []object.Handle[object.Shell]{shell}, name)
}

// WriteShells is WriteShell for several independently-built shells sharing
// one STEP product, e.g. several solids assembled into one file.
func (w *Writer) WriteShells(s *object.Store, shells []object.Handle[object.Shell], name string) error {
	entities, err := NewShellConverter(s).ConvertShells(shells, name)
	if err != nil {
		return err
	}

	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.writeData(entities); err != nil {
		return err
	}
	if err := w.writeFooter(); err != nil {
		return err
	}
	return w.writer.Flush()
}

// StreamWriter collects shell handles sent on its input channel and writes
// them all into a single STEP file on Finalize. The shells share one
// Store, which is not safe for concurrent mutation. It mirrors the
// teacher's triangle-collecting StreamWriter,
// generalized from one flat buffer of geometry to a set of independently
// built Shell handles sharing one Store.
type StreamWriter struct {
	writer *Writer
	store  *object.Store
	shells []object.Handle[object.Shell]
	wg     *sync.WaitGroup
	input  chan object.Handle[object.Shell]
	mutex  sync.Mutex
}

// NewStreamWriter creates a streaming STEP writer backed by store. Every
// shell sent on the returned channel must have been built into store.
func NewStreamWriter(s *object.Store, path string) (*StreamWriter, chan<- object.Handle[object.Shell], error) {
	writer, err := NewWriter(path)
	if err != nil {
		return nil, nil, err
	}

	input := make(chan object.Handle[object.Shell], 16)

	sw := &StreamWriter{
		writer: writer,
		store:  s,
		shells: make([]object.Handle[object.Shell], 0),
		wg:     new(sync.WaitGroup),
		input:  input,
	}

	sw.wg.Add(1)
	go sw.collect()

	return sw, input, nil
}

func (sw *StreamWriter) collect() {
	defer sw.wg.Done()
	for sh := range sw.input {
		sw.mutex.Lock()
		sw.shells = append(sw.shells, sh)
		sw.mutex.Unlock()
	}
}

// Input returns the channel producers send completed shells on.
func (sw *StreamWriter) Input() chan<- object.Handle[object.Shell] {
	return sw.input
}

// SetAuthor sets the author information
func (sw *StreamWriter) SetAuthor(name, org string) {
	sw.writer.SetAuthor(name, org)
}

// Finalize closes the input channel, waits for collection to finish, and
// writes every collected shell to the STEP file.
func (sw *StreamWriter) Finalize(name string) error {
	close(sw.input)
	sw.wg.Wait()

	sw.mutex.Lock()
	defer sw.mutex.Unlock()

	if err := sw.writer.WriteShells(sw.store, sw.shells, name); err != nil {
		sw.writer.Close()
		return err
	}
	return sw.writer.Close()
}
