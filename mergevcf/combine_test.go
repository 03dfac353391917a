package mergevcf_test

import (
	"testing"

	"github.com/quinlan-lab/vcfmerge/encoding/vcf"
	"github.com/quinlan-lab/vcfmerge/mergevcf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(samples ...string) *vcf.Header {
	return &vcf.Header{Samples: samples}
}

func TestCombineSampleIntersection(t *testing.T) {
	h1 := header("S1", "S2", "S3")
	h2 := header("S3", "S1")
	c, err := mergevcf.CombineHeaders(h1, h2)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S3"}, c.Header.Samples)
	assert.Equal(t, []int{0, 2}, c.Proj[0])
	assert.Equal(t, []int{1, 0}, c.Proj[1])
	assert.Empty(t, c.Conflicts)
}

func TestCombineNoSharedSamples(t *testing.T) {
	c, err := mergevcf.CombineHeaders(header("S1"), header("S2"))
	require.NoError(t, err)
	assert.Empty(t, c.Header.Samples)
	assert.Empty(t, c.Proj[0])
	assert.Empty(t, c.Proj[1])
}

func TestCombineIdempotent(t *testing.T) {
	h := header("S1", "S2")
	h.Infos.Set("DP", "##INFO=<ID=DP,Number=1,Type=Integer,Description=\"d\">")
	h.Formats.Set("GT", "##FORMAT=<ID=GT,Number=1,Type=String,Description=\"d\">")
	h.Other = []string{"##source=x"}
	c, err := mergevcf.CombineHeaders(h, h)
	require.NoError(t, err)
	assert.Empty(t, c.Conflicts)
	assert.Equal(t, h.Samples, c.Header.Samples)
	assert.Equal(t, h.Infos.IDs(), c.Header.Infos.IDs())
	assert.Equal(t, h.Other, c.Header.Other)
	assert.Equal(t, []int{0, 1}, c.Proj[0])
	assert.Equal(t, []int{0, 1}, c.Proj[1])
}

func TestCombineMapUnion(t *testing.T) {
	h1 := header("S1")
	h1.Infos.Set("DP", "##INFO=<ID=DP,Number=1,Type=Integer,Description=\"d\">")
	h2 := header("S1")
	h2.Infos.Set("AF", "##INFO=<ID=AF,Number=A,Type=Float,Description=\"d\">")
	c, err := mergevcf.CombineHeaders(h1, h2)
	require.NoError(t, err)
	assert.Equal(t, []string{"DP", "AF"}, c.Header.Infos.IDs())
	assert.Empty(t, c.Conflicts)
}

func TestCombineFloatTieBreak(t *testing.T) {
	intDef := "##INFO=<ID=AF,Number=A,Type=Integer,Description=\"d\">"
	floatDef := "##INFO=<ID=AF,Number=A,Type=Float,Description=\"d\">"

	// Regardless of which source carries it, the Float definition wins.
	for _, tc := range []struct{ def1, def2 string }{
		{intDef, floatDef},
		{floatDef, intDef},
	} {
		h1 := header("S1")
		h1.Infos.Set("AF", tc.def1)
		h2 := header("S1")
		h2.Infos.Set("AF", tc.def2)
		c, err := mergevcf.CombineHeaders(h1, h2)
		require.NoError(t, err)
		line, _ := c.Header.Infos.Get("AF")
		assert.Equal(t, floatDef, line)
		require.Len(t, c.Conflicts, 1)
		assert.Equal(t, "INFO", c.Conflicts[0].Category)
		assert.Equal(t, "AF", c.Conflicts[0].ID)
		assert.Equal(t, floatDef, c.Conflicts[0].Kept)
		assert.Equal(t, intDef, c.Conflicts[0].Dropped)
	}
}

func TestCombineConflictKeepsFirst(t *testing.T) {
	// Neither (or both) Float: source 0 is authoritative.
	def1 := "##FORMAT=<ID=DP,Number=1,Type=Integer,Description=\"a\">"
	def2 := "##FORMAT=<ID=DP,Number=1,Type=Integer,Description=\"b\">"
	h1 := header("S1")
	h1.Formats.Set("DP", def1)
	h2 := header("S1")
	h2.Formats.Set("DP", def2)
	c, err := mergevcf.CombineHeaders(h1, h2)
	require.NoError(t, err)
	line, _ := c.Header.Formats.Get("DP")
	assert.Equal(t, def1, line)
	require.Len(t, c.Conflicts, 1)
	assert.Equal(t, def1, c.Conflicts[0].Kept)
	assert.Equal(t, def2, c.Conflicts[0].Dropped)
}

func TestCombineOtherDedup(t *testing.T) {
	h1 := header("S1")
	h1.Other = []string{"##source=a", "##shared=x"}
	h2 := header("S1")
	h2.Other = []string{"##shared=x", "##source=b"}
	c, err := mergevcf.CombineHeaders(h1, h2)
	require.NoError(t, err)
	assert.Equal(t, []string{"##source=a", "##shared=x", "##source=b"}, c.Header.Other)
}
