package decoder

import (
	"math"

	"github.com/deepteams/ldpc/internal/bitpack"
	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/tanner"
)

// MessagePassing runs the soft-decision min-sum decoder with
// self-correction.
//
// llrs holds the n received log-likelihood ratios, positive favouring 0;
// punctured variable nodes carry an implicit intrinsic LLR of 0. output
// receives the (n+p)/8-byte hard decisions, refreshed every iteration.
// working holds the 2s per-edge messages: the check-to-variable messages u
// (indexed like CI) followed by the variable-to-check messages v (indexed
// like VI). Both are zeroed on entry and meaningless after return.
//
// An iteration updates every variable-to-check message with the extrinsic
// sum of the incoming check messages, applying Savin's self-correction
// (a message whose sign flipped since the previous iteration is reset to
// zero, which damps oscillation on short trapping sets), then updates
// every check-to-variable message with the sign-product/minimum-magnitude
// approximation. Success means every parity check was satisfied by the
// iteration's hard decisions.
//
// It returns success and the number of iterations consumed. On failure the
// output holds the final iteration's hard decisions, which typically still
// carry most corrections.
func MessagePassing(p ccsds.Params, g tanner.Graph, llrs []float32, output []byte, working []float32) (bool, int) {
	n := p.N
	checks := p.CheckCount()
	vars := p.VariableCount()
	s := p.ParityCheckSum

	u := working[:s]
	v := working[s : 2*s]
	for e := 0; e < s; e++ {
		u[e] = 0
		v[e] = 0
	}

	for iter := 1; iter <= MaxItersMP; iter++ {
		// Variable-to-check pass: refresh v and take hard decisions on the
		// accumulated marginals.
		bitpack.Zero(output[:(vars+7)/8])
		for a := 0; a < vars; a++ {
			var nodeLLR float32
			if a < n {
				nodeLLR = llrs[a]
			}

			// Full marginal: the intrinsic LLR plus each incoming check
			// message, summed exactly once.
			llrA := nodeLLR
			for eJ := g.VS[a]; eJ < g.VS[a+1]; eJ++ {
				j := g.VI[eJ]
				// Locate the twin edge in check j's slice.
				for eJA := g.CS[j]; eJA < g.CS[j+1]; eJA++ {
					if int(g.CI[eJA]) == a {
						llrA += u[eJA]
						break
					}
				}
			}

			// Each outgoing message excludes its own reciprocal edge's
			// contribution from the marginal.
			for eI := g.VS[a]; eI < g.VS[a+1]; eI++ {
				i := g.VI[eI]
				prev := v[eI]
				v[eI] = llrA
				for eIA := g.CS[i]; eIA < g.CS[i+1]; eIA++ {
					if int(g.CI[eIA]) == a {
						v[eI] -= u[eIA]
						break
					}
				}

				if prev != 0 && sign(v[eI]) != sign(prev) {
					v[eI] = 0
				}
			}

			if llrA <= 0 {
				bitpack.Set(output, a)
			}
		}

		// Check-to-variable pass: min-sum update and global parity test.
		satisfied := true
		for i := 0; i < checks; i++ {
			parity := 0
			for eA := g.CS[i]; eA < g.CS[i+1]; eA++ {
				a := g.CI[eA]
				sgn := float32(1)
				min := float32(math.Inf(1))

				for eB := g.CS[i]; eB < g.CS[i+1]; eB++ {
					if eB == eA {
						continue
					}
					b := g.CI[eB]
					// Locate the twin edge in variable b's slice.
					for eBV := g.VS[b]; eBV < g.VS[b+1]; eBV++ {
						if int(g.VI[eBV]) != i {
							continue
						}
						sgn *= sign(v[eBV])
						if m := abs32(v[eBV]); m < min {
							min = m
						}
						break
					}
				}

				u[eA] = sgn * min
				parity += int(bitpack.Get(output, int(a)))
			}
			if parity%2 == 1 {
				satisfied = false
			}
		}

		if satisfied {
			return true, iter
		}
	}
	return false, MaxItersMP
}
