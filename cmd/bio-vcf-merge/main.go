package main

/*
bio-vcf-merge merges two coordinate-sorted VCFs that share some or all
samples, for example a structural-variant VCF and a small-variant
(GATK-called) VCF over the same cohort.  The merged VCF is written to
stdout; it is sorted whenever both inputs are sorted with the same
chromosome ordering.  For this reason it is best to sort the smaller SV
VCF so that it has the same chromosome ordering as the GATK VCF.
*/

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/quinlan-lab/vcfmerge/mergevcf"
)

var removeRef = flag.Bool("remove-ref", false,
	"remove variants where all shared samples are either hom-ref or unknown")

func vcfMergeUsage() {
	fmt.Printf("Usage: %s [OPTIONS] vcf_a vcf_b\n", os.Args[0])
	fmt.Printf("Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = vcfMergeUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		log.Fatalf("Expected exactly two positional arguments (vcf_a and vcf_b), got %d", flag.NArg())
	}
	ctx := vcontext.Background()
	out := bufio.NewWriter(os.Stdout)
	if _, err := mergevcf.MergeFiles(ctx, flag.Arg(0), flag.Arg(1), mergevcf.Opts{RemoveRef: *removeRef}, out); err != nil {
		log.Fatalf("merge %s, %s: %v", flag.Arg(0), flag.Arg(1), err)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}
