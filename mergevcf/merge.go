package mergevcf

import (
	"container/heap"

	"github.com/quinlan-lab/vcfmerge/encoding/vcf"
)

// RecordSource is a pull-based stream of records, already sorted by
// (chromosome, position).  *vcf.Scanner implements it.
type RecordSource interface {
	// Scan fills rec with the next record, returning whether one was
	// available.  Once Scan returns false it never returns true again.
	Scan(rec *vcf.Record) bool
	// Err returns the stream error, or nil after normal exhaustion.
	Err() error
}

// RecordWriter consumes merged records in emission order.  *vcf.Writer
// implements it.
type RecordWriter interface {
	WriteRecord(rec *vcf.Record) error
}

// recordHeap orders pending records by (chromosome, position, source
// rank).  Chromosomes compare as text: both sources must share one
// chromosome-ordering convention for the merge to be globally sorted.
type recordHeap []*vcf.Record

func (h recordHeap) Len() int { return len(h) }
func (h recordHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Chrom != b.Chrom {
		return a.Chrom < b.Chrom
	}
	if a.Pos != b.Pos {
		return a.Pos < b.Pos
	}
	return a.Rank < b.Rank
}
func (h recordHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *recordHeap) Push(x interface{}) {
	*h = append(*h, x.(*vcf.Record))
}
func (h *recordHeap) Pop() interface{} {
	old := *h
	n := len(old)
	rec := old[n-1]
	*h = old[:n-1]
	return rec
}

// Merge interleaves the records of srcs into dst, ordered by
// (chromosome, position) with ties broken by source rank.  Each source
// must already be sorted in that order; at most one record per source is
// buffered at any time.  Source ranks must match each source's position
// in srcs.
//
// When the minimum record's chromosome differs from the previously
// emitted one, the pending queue is flushed (records buffered there
// belong to the finished chromosome) and re-seeded from every source
// before normal ordering resumes.
func Merge(dst RecordWriter, srcs ...RecordSource) error {
	pq := make(recordHeap, 0, len(srcs))
	pull := func(rank int) error {
		rec := &vcf.Record{}
		if srcs[rank].Scan(rec) {
			heap.Push(&pq, rec)
			return nil
		}
		return srcs[rank].Err()
	}
	for rank := range srcs {
		if err := pull(rank); err != nil {
			return err
		}
	}
	lastChrom := ""
	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*vcf.Record)
		if lastChrom != "" && cur.Chrom != lastChrom {
			if err := dst.WriteRecord(cur); err != nil {
				return err
			}
			if pq.Len() > 0 {
				if err := dst.WriteRecord(heap.Pop(&pq).(*vcf.Record)); err != nil {
					return err
				}
			}
			for rank := range srcs {
				if err := pull(rank); err != nil {
					return err
				}
			}
			if pq.Len() == 0 {
				break
			}
			cur = heap.Pop(&pq).(*vcf.Record)
		}
		lastChrom = cur.Chrom
		if err := pull(cur.Rank); err != nil {
			return err
		}
		if err := dst.WriteRecord(cur); err != nil {
			return err
		}
	}
	return nil
}
