package vcf

import (
	"io"

	"github.com/grailbio/base/tsv"
)

// Writer serializes a merged header and records as VCF text.
type Writer struct {
	w   *tsv.Writer
	err error
}

// NewWriter constructs a Writer that emits VCF text to w.  Call Flush
// after the last record.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: tsv.NewWriter(w)}
}

// WriteHeader emits the metadata block: the fileformat banner, the Other
// lines, the four definition categories in formats/infos/contigs/filters
// order (each in map insertion order), and the column-header line.
func (w *Writer) WriteHeader(h *Header) error {
	w.writeln(Version)
	for _, line := range h.Other {
		w.writeln(line)
	}
	for _, m := range []*FieldMap{&h.Formats, &h.Infos, &h.Contigs, &h.Filters} {
		for _, id := range m.IDs() {
			line, _ := m.Get(id)
			w.writeln(line)
		}
	}
	if w.err != nil {
		return w.err
	}
	for _, col := range FixedCols {
		w.w.WriteString(col)
	}
	for _, s := range h.Samples {
		w.w.WriteString(s)
	}
	w.err = w.w.EndLine()
	return w.err
}

// WriteRecord emits one record's columns as a tab-separated line.
func (w *Writer) WriteRecord(rec *Record) error {
	if w.err != nil {
		return w.err
	}
	for _, col := range rec.Cols {
		w.w.WriteString(col)
	}
	w.err = w.w.EndLine()
	return w.err
}

// Flush flushes buffered output to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

func (w *Writer) writeln(line string) {
	if w.err != nil {
		return
	}
	w.w.WriteString(line)
	w.err = w.w.EndLine()
}
