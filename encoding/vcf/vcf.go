// Package vcf contains code for parsing and writing the text portions of
// VCF files that matter when merging call sets: the metadata header and
// the per-record column structure.  See
// https://samtools.github.io/hts-specs/VCFv4.1.pdf.  Briefly, a VCF file
// consists of a fileformat line, a block of "##"-prefixed metadata lines,
// a "#CHROM"-prefixed column-header line naming nine fixed columns plus
// one column per sample, and then tab-separated data lines:
//
// ##fileformat=VCFv4.1
// ##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">
// #CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	S1
// chr1	100	.	A	T	.	.	.	GT	0/1
//
// The package does not interpret INFO or FORMAT payloads beyond the
// leading genotype call; records are carried as column token slices.
package vcf

// FixedCols lists the nine fixed columns preceding the per-sample columns.
var FixedCols = []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}

// NumFixedCols is len(FixedCols).
const NumFixedCols = 9

// Version is the fileformat banner written at the top of merged output.
const Version = "##fileformat=VCFv4.1"
