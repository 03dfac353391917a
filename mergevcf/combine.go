package mergevcf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/quinlan-lab/vcfmerge/encoding/vcf"
)

// A FieldConflict records a definition ID that carried different metadata
// text in the two sources, along with which definition the merged header
// kept.  Conflicts are informational; the merge proceeds.
type FieldConflict struct {
	Category string
	ID       string
	Kept     string
	Dropped  string
}

// Combined is the result of reconciling two source headers.
type Combined struct {
	// Header is the merged header.  Its Samples field is the ordered
	// intersection of the two sources' samples, in source 0's order.
	Header *vcf.Header
	// Proj maps, for each source, merged sample position to that
	// source's sample column index.
	Proj [2][]int
	// Conflicts lists the definition conflicts encountered, in
	// formats/infos/contigs/filters category order.
	Conflicts []FieldConflict
}

// CombineHeaders reconciles the headers of the two sources.  The merged
// sample list is the subsequence of h1's samples also present in h2; the
// four definition maps are unioned with conflicts resolved by keeping
// h1's line unless h2's declares a Float type and h1's does not; Other
// lines are h1's followed by h2's not already present verbatim.
//
// An error is returned only on invariant violation (a merged sample
// missing from a source), which cannot happen for headers produced by
// vcf.ParseHeader.
func CombineHeaders(h1, h2 *vcf.Header) (*Combined, error) {
	c := &Combined{Header: &vcf.Header{}}
	for i, s := range h1.Samples {
		j := h2.SampleIndex(s)
		if j < 0 {
			continue
		}
		c.Header.Samples = append(c.Header.Samples, s)
		c.Proj[0] = append(c.Proj[0], i)
		c.Proj[1] = append(c.Proj[1], j)
	}
	for _, s := range c.Header.Samples {
		if h1.SampleIndex(s) < 0 || h2.SampleIndex(s) < 0 {
			return nil, errors.Errorf("merged sample %s missing from a source header", s)
		}
	}
	type category struct {
		name       string
		dst        *vcf.FieldMap
		src1, src2 *vcf.FieldMap
	}
	for _, cat := range []category{
		{"FORMAT", &c.Header.Formats, &h1.Formats, &h2.Formats},
		{"INFO", &c.Header.Infos, &h1.Infos, &h2.Infos},
		{"contig", &c.Header.Contigs, &h1.Contigs, &h2.Contigs},
		{"FILTER", &c.Header.Filters, &h1.Filters, &h2.Filters},
	} {
		*cat.dst = cat.src1.Clone()
		for _, id := range cat.src2.IDs() {
			line2, _ := cat.src2.Get(id)
			line1, ok := cat.dst.Get(id)
			if !ok {
				cat.dst.Set(id, line2)
				continue
			}
			if line1 == line2 {
				continue
			}
			// Differing definitions: the wider numeric type wins,
			// otherwise source 0 is authoritative.
			kept, dropped := line1, line2
			if strings.Contains(line2, "=Float") && !strings.Contains(line1, "=Float") {
				cat.dst.Set(id, line2)
				kept, dropped = line2, line1
			}
			c.Conflicts = append(c.Conflicts, FieldConflict{
				Category: cat.name,
				ID:       id,
				Kept:     kept,
				Dropped:  dropped,
			})
		}
	}
	c.Header.Other = append([]string(nil), h1.Other...)
	for _, o := range h2.Other {
		if !containsLine(c.Header.Other, o) {
			c.Header.Other = append(c.Header.Other, o)
		}
	}
	return c, nil
}

func containsLine(lines []string, line string) bool {
	for _, l := range lines {
		if l == line {
			return true
		}
	}
	return false
}
