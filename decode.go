package ldpc

import (
	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/decoder"
)

// Decoder iteration caps. A decode that has not converged within the cap
// reports failure; the output buffer still holds the last candidate.
const (
	// MaxItersBF is the bit-flipping decoder's round cap.
	MaxItersBF = decoder.MaxItersBF
	// MaxItersMP is the message-passing decoder's iteration cap.
	MaxItersMP = decoder.MaxItersMP
	// MaxItersErasure is the erasure pre-decoder's round cap.
	MaxItersErasure = decoder.MaxItersErasure
)

// DecodeBF decodes received hard bits with the bit-flipping decoder.
//
// input holds the n/8 received bytes, MSB-first. output receives the full
// (n+p)/8-byte codeword, information bits first; size it with OutputLen.
// working is an n+p-byte scratch; size it with BFWorkingLen. For punctured
// codes the erasure pre-decoder first reconstructs the untransmitted
// parity by majority vote, and any erasures it cannot settle enter
// bit-flipping as zero bits.
//
// It returns whether every parity check was satisfied and the number of
// flip rounds consumed. A false return is not fatal: bit-flipping is a
// heuristic with a fixed round budget, and the output still holds its best
// candidate. The sentinel code returns (false, 0) without touching any
// buffer, as do undersized buffers.
func DecodeBF(c Code, g *Graph, input, output, working []byte) (bool, int) {
	p := ccsds.GetParams(ccsds.Code(c))
	if !p.Valid() || !g.sized(c) {
		return false, 0
	}
	if len(input) < p.N/8 || len(output) < p.VariableCount()/8 || len(working) < p.VariableCount() {
		return false, 0
	}
	return decoder.BitFlip(p, g.internal(), input, output, working)
}

// DecodeMP decodes soft information with the min-sum message-passing
// decoder with self-correction.
//
// llrs holds n log-likelihood ratios, positive favouring bit 0; size it
// with LLRsLen. Punctured bits need no entry, their intrinsic LLR is zero.
// output receives the full (n+p)/8-byte hard decisions; size it with
// OutputLen. working holds the 2s per-edge messages; size it with
// MPWorkingLen.
//
// It returns whether every parity check was satisfied and the number of
// iterations consumed. On failure the output holds the final iteration's
// hard decisions, which typically still contain most corrections. The
// sentinel code returns (false, 0) without touching any buffer, as do
// undersized buffers.
func DecodeMP(c Code, g *Graph, llrs []float32, output []byte, working []float32) (bool, int) {
	p := ccsds.GetParams(ccsds.Code(c))
	if !p.Valid() || !g.sized(c) {
		return false, 0
	}
	if len(llrs) < p.N || len(output) < p.VariableCount()/8 || len(working) < 2*p.ParityCheckSum {
		return false, 0
	}
	return decoder.MessagePassing(p, g.internal(), llrs, output, working)
}
