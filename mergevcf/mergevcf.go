package mergevcf

import (
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/quinlan-lab/vcfmerge/encoding/vcf"
)

// Opts configures a merge.
type Opts struct {
	// RemoveRef drops records whose shared samples are all no-call or
	// homozygous reference.
	RemoveRef bool
}

// SourceStats summarizes one source's record stream after the merge.
type SourceStats struct {
	// Skipped counts records dropped by the RemoveRef filter.
	Skipped int
	// Total counts all data lines read from the source.
	Total int
}

// Stats summarizes a completed merge.
type Stats struct {
	PerSource [2]SourceStats
	Conflicts []FieldConflict
}

// openVCF opens path for reading, transparently decompressing by
// extension.  The returned closer must be called once reading completes.
func openVCF(ctx context.Context, path string) (io.Reader, func() error, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = in.Reader(ctx)
	if u, compressed := compress.NewReaderPath(r, in.Name()); compressed {
		return u, func() error {
			once := errors.Once{}
			once.Set(u.Close())
			once.Set(in.Close(ctx))
			return once.Err()
		}, nil
	}
	return r, func() error { return in.Close(ctx) }, nil
}

func parseHeaderPath(ctx context.Context, path string) (h *vcf.Header, err error) {
	r, closer, err := openVCF(ctx, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return vcf.ParseHeader(r)
}

// MergeFiles merges the two VCFs at path1 and path2 into out, writing
// the reconciled header followed by the interleaved records.  Inputs may
// be plain or compressed (by extension); each must be coordinate-sorted
// with the same chromosome-ordering convention.  Header definition
// conflicts are logged as warnings and reported in the returned Stats.
func MergeFiles(ctx context.Context, path1, path2 string, opts Opts, out io.Writer) (stats Stats, err error) {
	h1, err := parseHeaderPath(ctx, path1)
	if err != nil {
		return stats, err
	}
	h2, err := parseHeaderPath(ctx, path2)
	if err != nil {
		return stats, err
	}
	combined, err := CombineHeaders(h1, h2)
	if err != nil {
		return stats, err
	}
	stats.Conflicts = combined.Conflicts
	for _, fc := range combined.Conflicts {
		log.Printf("WARNING: differing %s headers for %s: %s vs (using) %s",
			fc.Category, fc.ID, fc.Dropped, fc.Kept)
	}

	w := vcf.NewWriter(out)
	if err := w.WriteHeader(combined.Header); err != nil {
		return stats, err
	}

	paths := [2]string{path1, path2}
	var scanners [2]*vcf.Scanner
	srcs := make([]RecordSource, 2)
	closers := errors.Once{}
	defer func() {
		if err == nil {
			err = closers.Err()
		}
	}()
	for rank, path := range paths {
		r, closer, oerr := openVCF(ctx, path)
		if oerr != nil {
			return stats, oerr
		}
		defer func() { closers.Set(closer()) }()
		scanners[rank] = vcf.NewScanner(r, combined.Proj[rank], rank, opts.RemoveRef)
		srcs[rank] = scanners[rank]
	}
	if err = Merge(w, srcs...); err != nil {
		return stats, err
	}
	if err = w.Flush(); err != nil {
		return stats, err
	}
	for rank, sc := range scanners {
		stats.PerSource[rank] = SourceStats{Skipped: sc.Skipped(), Total: sc.Total()}
		if opts.RemoveRef {
			log.Printf("skipped %d ref/unknown variants out of %d from %s",
				sc.Skipped(), sc.Total(), paths[rank])
		}
	}
	return stats, nil
}
