package vcf

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Metadata lines in the recognized categories follow the form
// "##KEYWORD=<ID=value,...>".  Only the keyword and the ID are extracted;
// the full line is preserved verbatim.
var idRegExp = regexp.MustCompile(`(\w+)=<ID=([^,>]+)`)

// FieldMap is an insertion-ordered map from a definition ID (e.g. "GT",
// "DP", "chr1") to its full metadata line.  The zero value is empty and
// ready to use.
type FieldMap struct {
	ids   []string
	lines map[string]string
}

// Set inserts or overwrites the line for id.  Insertion order is
// preserved; overwriting does not move id to the back.
func (m *FieldMap) Set(id, line string) {
	if m.lines == nil {
		m.lines = make(map[string]string)
	}
	if _, ok := m.lines[id]; !ok {
		m.ids = append(m.ids, id)
	}
	m.lines[id] = line
}

// Get returns the line for id, if present.
func (m *FieldMap) Get(id string) (string, bool) {
	line, ok := m.lines[id]
	return line, ok
}

// IDs returns the IDs in insertion order.  The returned slice is shared;
// callers must not modify it.
func (m *FieldMap) IDs() []string {
	return m.ids
}

// Len returns the number of entries.
func (m *FieldMap) Len() int {
	return len(m.ids)
}

// Clone returns a deep copy of m.
func (m *FieldMap) Clone() FieldMap {
	var c FieldMap
	for _, id := range m.ids {
		c.Set(id, m.lines[id])
	}
	return c
}

// Header is the parsed metadata block of one VCF source.  The four
// FieldMaps hold the recognized definition categories; Other holds all
// remaining "#"-prefixed lines in file order; Samples holds the sample
// names from the column-header line, in column order.
type Header struct {
	Infos   FieldMap
	Formats FieldMap
	Filters FieldMap
	Contigs FieldMap
	Other   []string
	Samples []string
}

// SampleIndex returns the column index of the named sample, or -1 if the
// header has no such sample.
func (h *Header) SampleIndex(name string) int {
	for i, s := range h.Samples {
		if s == name {
			return i
		}
	}
	return -1
}

// ParseHeader reads the metadata block of a VCF source.  The first line
// is skipped unconditionally (it is the fileformat banner); scanning
// stops at the first line that does not begin with '#'.  Recognized
// definition lines (##INFO, ##FORMAT, ##FILTER, ##contig) are routed
// into the matching FieldMap keyed by ID, with the last occurrence
// winning; the "#CHROM" line populates Samples; any other '#' line is
// appended to Other.
//
// ParseHeader reads r past the end of the header.  To stream the data
// lines afterwards, reopen the source and hand it to a Scanner.
func ParseHeader(r io.Reader) (*Header, error) {
	h := &Header{}
	scanner := bufio.NewScanner(r)
	for lineno := 0; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if lineno == 0 {
			continue // fileformat banner
		}
		if len(line) == 0 || line[0] != '#' {
			break
		}
		var m *FieldMap
		switch {
		case strings.HasPrefix(line, "##INFO"):
			m = &h.Infos
		case strings.HasPrefix(line, "##FORMAT"):
			m = &h.Formats
		case strings.HasPrefix(line, "##FILTER"):
			m = &h.Filters
		case strings.HasPrefix(line, "##contig"):
			m = &h.Contigs
		case strings.HasPrefix(line, "#CHROM\t"):
			toks := strings.Split(line, "\t")
			if len(toks) > NumFixedCols {
				h.Samples = toks[NumFixedCols:]
			}
			continue
		default:
			h.Other = append(h.Other, line)
			continue
		}
		groups := idRegExp.FindStringSubmatch(line)
		if groups == nil {
			return nil, errors.Errorf("malformed metadata line %d: %s", lineno+1, line)
		}
		m.Set(groups[2], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read VCF header")
	}
	return h, nil
}
