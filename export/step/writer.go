package step

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sequoia-hope/waffle-iron/tessellate"
)

// Writer renders a tessellated mesh as a STEP AP214 file.
type Writer struct {
	w          io.Writer
	converter  *meshConverter
	fileName   string
	authorName string
	orgName    string
}

// NewWriter returns a Writer that emits to w, tagging the file with
// fileName in the FILE_NAME header record.
func NewWriter(w io.Writer, fileName string) *Writer {
	return &Writer{
		w:          w,
		converter:  newMeshConverter(),
		fileName:   fileName,
		authorName: "waffle-iron user",
		orgName:    "waffle-iron",
	}
}

// SetAuthor sets the FILE_NAME author/organization fields.
func (w *Writer) SetAuthor(name, org string) {
	w.authorName = name
	w.orgName = org
}

func (w *Writer) writeHeader(bw *bufio.Writer) error {
	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('STEP AP214'),'1');",
		fmt.Sprintf("FILE_NAME('%s','%s',('%s'),('%s'),'waffle-iron','waffle-iron','');",
			w.fileName, time.Now().Format("2006-01-02T15:04:05"), w.authorName, w.orgName),
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));",
		"ENDSEC;",
	}
	for _, line := range header {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeData(bw *bufio.Writer, entities []Entity) error {
	if _, err := bw.WriteString("DATA;\n"); err != nil {
		return err
	}
	for _, entity := range entities {
		str := entity.String()
		for _, line := range strings.Split(str, "\n") {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}
	_, err := bw.WriteString("ENDSEC;\n")
	return err
}

func (w *Writer) writeFooter(bw *bufio.Writer) error {
	_, err := bw.WriteString("END-ISO-10303-21;\n")
	return err
}

// WriteMesh converts mesh and writes the resulting STEP file, under the
// given product name, to the Writer's underlying io.Writer.
func (w *Writer) WriteMesh(mesh *tessellate.Mesh, name string) error {
	optimized := optimizeMesh(mesh)
	if len(optimized.Triangles) == 0 {
		return errDegenerate
	}

	fmt.Printf("step: converting %d triangles for %q\n", len(optimized.Triangles), name)
	entities := w.converter.convertMesh(optimized, name)

	bw := bufio.NewWriter(w.w)
	if err := w.writeHeader(bw); err != nil {
		return err
	}
	if err := w.writeData(bw, entities); err != nil {
		return err
	}
	if err := w.writeFooter(bw); err != nil {
		return err
	}
	return bw.Flush()
}
