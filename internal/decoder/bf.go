package decoder

import (
	"github.com/deepteams/ldpc/internal/bitpack"
	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/tanner"
)

// BitFlip runs the hard-decision bit-flipping decoder.
//
// input holds the received n/8 hard bytes; output receives the full
// (n+p)/8-byte codeword including reconstructed punctured parity; working
// is an n+p-byte scratch holding per-variable violation counters (and,
// first, the erasure pre-decoder's flags for punctured codes).
//
// Each round counts, per variable node, how many of its parity checks are
// violated, then flips every node sharing the maximum count. Flipping all
// tied nodes together is deliberate; it converges well on these code
// lengths. Success means a round found no violated checks. On failure the
// output still holds the last candidate codeword.
//
// It returns success and the number of flip rounds consumed.
func BitFlip(p ccsds.Params, g tanner.Graph, input, output, working []byte) (bool, int) {
	copy(output[:p.N/8], input[:p.N/8])
	if p.PuncturedBits > 0 {
		ResolveErasures(p, g, output, working)
	}

	checks := p.CheckCount()
	vars := p.VariableCount()

	for iter := 0; iter < MaxItersBF; iter++ {
		for a := 0; a < vars; a++ {
			working[a] = 0
		}
		for i := 0; i < checks; i++ {
			row := g.CI[g.CS[i]:g.CS[i+1]]
			parity := 0
			for _, a := range row {
				parity += int(bitpack.Get(output, int(a)))
			}
			if parity%2 == 1 {
				for _, a := range row {
					working[a]++
				}
			}
		}

		maxViolations := byte(0)
		for a := 0; a < vars; a++ {
			if working[a] > maxViolations {
				maxViolations = working[a]
			}
		}
		if maxViolations == 0 {
			return true, iter
		}
		for a := 0; a < vars; a++ {
			if working[a] == maxViolations {
				bitpack.Flip(output, a)
			}
		}
	}
	return false, MaxItersBF
}
