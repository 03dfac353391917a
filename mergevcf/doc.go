// Package mergevcf merges two individually coordinate-sorted VCF call
// sets that share some or all samples, for example a structural-variant
// VCF and a small-variant VCF over the same cohort.
//
// The merged header is the reconciled union of both sources' metadata
// (conflicting definitions resolved in favor of the wider numeric type),
// and the merged sample set is the intersection of the two sources'
// samples in the first source's order.  Records from both sources are
// interleaved in (chromosome, position) order, with each record's sample
// columns restricted to the shared set; the output is sorted whenever
// both inputs were sorted with the same chromosome-ordering convention.
package mergevcf
