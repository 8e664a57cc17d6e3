package xlsx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/flate"
	"golang.org/x/sync/errgroup"
)

// DefaultApplication names the producer in package metadata.
const DefaultApplication = "benchsheet"

// Meta is the document-level metadata written to the docProps parts.
type Meta struct {
	Title       string
	Creator     string
	Application string
	// Language is an optional BCP 47 tag for dc:language.
	Language   string
	Created    time.Time
	Modified   time.Time
	Identifier string
}

func (m Meta) withDefaults() Meta {
	if m.Application == "" {
		m.Application = DefaultApplication
	}
	if m.Creator == "" {
		m.Creator = m.Application
	}
	if m.Created.IsZero() {
		m.Created = time.Now()
	}
	if m.Modified.IsZero() {
		m.Modified = m.Created
	}
	if m.Identifier == "" {
		m.Identifier = uuid.NewString()
	}
	return m
}

// Part is one named payload inside the package.
type Part struct {
	Name string
	Data []byte
}

// Package is an assembled workbook. It is immutable once built.
type Package struct {
	parts    []Part
	modified time.Time
}

// Assemble renders every part of a workbook holding sheets in the given order.
// Worksheet parts are rendered concurrently.
func Assemble(sheets []Sheet, meta Meta) (*Package, error) {
	if err := validateSheets(sheets); err != nil {
		return nil, err
	}
	meta = meta.withDefaults()

	worksheets := make([][]byte, len(sheets))
	var g errgroup.Group
	for i := range sheets {
		g.Go(func() error {
			worksheets[i] = renderWorksheet(&sheets[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parts := []Part{
		{PartContentTypes, contentTypesXML(len(sheets))},
		{PartRootRels, rootRelsXML()},
		{PartWorkbook, workbookXML(sheets)},
		{PartWorkbookRels, workbookRelsXML(len(sheets))},
		{PartStyles, stylesXML()},
	}
	for i, data := range worksheets {
		parts = append(parts, Part{WorksheetPart(i + 1), data})
	}
	parts = append(parts,
		Part{PartCoreProps, coreXML(meta)},
		Part{PartExtendedProps, appXML(meta)},
	)

	return &Package{parts: parts, modified: meta.Modified}, nil
}

// Parts returns the parts in archive order.
func (p *Package) Parts() []Part {
	out := make([]Part, len(p.parts))
	copy(out, p.parts)
	return out
}

// Part returns the payload of the named part.
func (p *Package) Part(name string) ([]byte, bool) {
	for _, part := range p.parts {
		if part.Name == name {
			return part.Data, true
		}
	}
	return nil, false
}

// WriteTo writes the package as a deflate-compressed zip archive.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.BestCompression)
	})

	for _, part := range p.parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     part.Name,
			Method:   zip.Deflate,
			Modified: p.modified,
		})
		if err != nil {
			return cw.n, fmt.Errorf("failed to add %s: %w", part.Name, err)
		}
		if _, err := fw.Write(part.Data); err != nil {
			return cw.n, fmt.Errorf("failed to write %s: %w", part.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("failed to finish archive: %w", err)
	}
	return cw.n, nil
}

// Bytes returns the serialized archive.
func (p *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
