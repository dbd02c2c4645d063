package ldpc

import (
	"math"

	"github.com/deepteams/ldpc/internal/bitpack"
)

// DefaultBER is the channel bit error rate assumed by HardToLLRs when
// turning hard decisions into log-likelihood ratios.
const DefaultBER = 0.05

// HardToLLRs converts n/8 received hard bytes into the n log-likelihood
// ratios DecodeMP consumes, assuming DefaultBER. An observed 0 becomes
// +|log ber| and an observed 1 becomes -|log ber|: positive LLRs favour
// bit 0 throughout the package. It is a no-op if c is the sentinel or a
// buffer is undersized.
func HardToLLRs(c Code, input []byte, llrs []float32) {
	HardToLLRsBER(c, input, llrs, DefaultBER)
}

// HardToLLRsBER is HardToLLRs with an explicit channel bit error rate.
func HardToLLRsBER(c Code, input []byte, llrs []float32, ber float64) {
	p := c.Params()
	n := p.N
	if n == 0 || len(input) < n/8 || len(llrs) < n {
		return
	}
	l := float32(math.Abs(math.Log(ber)))
	for i := 0; i < n; i++ {
		if bitpack.Get(input, i) == 0 {
			llrs[i] = l
		} else {
			llrs[i] = -l
		}
	}
}

// LLRsToHard packs n log-likelihood ratios into n/8 hard bytes, MSB-first:
// bit i is 1 iff llrs[i] <= 0. The output bytes are cleared first, so
// HardToLLRs followed by LLRsToHard reproduces the input exactly. It is a
// no-op if c is the sentinel or a buffer is undersized.
func LLRsToHard(c Code, llrs []float32, output []byte) {
	p := c.Params()
	n := p.N
	if n == 0 || len(llrs) < n || len(output) < n/8 {
		return
	}
	bitpack.Zero(output[:n/8])
	for i := 0; i < n; i++ {
		if llrs[i] <= 0 {
			bitpack.Set(output, i)
		}
	}
}
