package vcf

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Record is one parsed VCF data line: its sort key (chromosome,
// position, source rank) and the output column tokens, already restricted
// to the projected samples.
type Record struct {
	Chrom string
	Pos   int
	Rank  int
	Cols  []string
}

// uninformative reports whether a genotype column carries no call beyond
// no-call or homozygous reference.  Only the leading token (before the
// first ':') is inspected.
func uninformative(sample string) bool {
	gt := sample
	if i := strings.IndexByte(gt, ':'); i >= 0 {
		gt = gt[:i]
	}
	switch gt {
	case ".", "./.", "0/0", ".|.", "0|0":
		return true
	}
	return false
}

// Scanner provides a convenient interface for streaming the data lines
// of one VCF source.  The Scan method fills in the next record, returning
// a boolean indicating whether the scan succeeded; once Scan returns
// false, it never returns true again, and Err distinguishes end of
// stream from failure.  Scanners are not threadsafe and cannot be
// restarted; recreate one from a fresh reader instead.
//
// Each scanned record keeps only the sample columns selected by the
// projection, in projection order.  When removeRef is set, records whose
// selected samples are all uninformative (no-call or hom-ref) are
// skipped; Skipped and Total report the filter's effect.
type Scanner struct {
	b         *bufio.Scanner
	proj      []int
	rank      int
	removeRef bool
	skipped   int
	total     int
	err       error
}

// NewScanner constructs a Scanner reading raw VCF text from r.  Metadata
// lines at the top of r are ignored, so r may be positioned at the start
// of the file.  proj maps each output sample position to a source sample
// column index, and rank is the source's tie-break rank in the merge.
func NewScanner(r io.Reader, proj []int, rank int, removeRef bool) *Scanner {
	return &Scanner{b: bufio.NewScanner(r), proj: proj, rank: rank, removeRef: removeRef}
}

// Scan fills rec with the next record, returning whether one was
// available.
func (s *Scanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	for s.b.Scan() {
		line := s.b.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		toks := strings.Split(line, "\t")
		if len(toks) < NumFixedCols {
			s.err = errors.Errorf("malformed record, %d columns: %s", len(toks), line)
			return false
		}
		s.total++
		samples := toks[NumFixedCols:]
		sel := make([]string, len(s.proj))
		for i, idx := range s.proj {
			if idx >= len(samples) {
				s.err = errors.Errorf("record %s:%s has %d sample columns, need index %d",
					toks[0], toks[1], len(samples), idx)
				return false
			}
			sel[i] = samples[idx]
		}
		if s.removeRef && allUninformative(sel) {
			s.skipped++
			continue
		}
		pos, err := strconv.Atoi(toks[1])
		if err != nil {
			s.err = errors.Errorf("malformed position in record: %s", line)
			return false
		}
		cols := append(toks[:NumFixedCols:NumFixedCols], sel...)
		// lumpy emits REF=N for symbolic alleles; normalize to '.'.
		if cols[3] == "N" && len(cols[4]) > 0 && cols[4][0] == '<' {
			cols[3] = "."
		}
		rec.Chrom = toks[0]
		rec.Pos = pos
		rec.Rank = s.rank
		rec.Cols = cols
		return true
	}
	s.err = s.b.Err()
	if s.err == nil {
		s.err = io.EOF
	}
	return false
}

func allUninformative(samples []string) bool {
	for _, sa := range samples {
		if !uninformative(sa) {
			return false
		}
	}
	return true
}

// Err returns the scanning error, if any.  It returns nil after a normal
// end of stream.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Skipped returns the number of records dropped by the removeRef filter.
func (s *Scanner) Skipped() int { return s.skipped }

// Total returns the number of data lines consumed so far, including
// skipped ones.
func (s *Scanner) Total() int { return s.total }
