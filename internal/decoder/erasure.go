package decoder

import (
	"github.com/deepteams/ldpc/internal/bitpack"
	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/tanner"
)

// ResolveErasures reconstructs punctured variable nodes by majority vote
// before bit-flipping runs. output is the full (n+p)/8-byte codeword buffer
// whose first n/8 bytes already hold the received hard decisions; working
// is an n+p-byte scratch reused as the per-variable erasure flag.
//
// Each round visits every still-erased node a and polls its check
// equations: a check whose other neighbours are all known votes for the
// value of a that satisfies it, and a tied vote leaves a erased for the
// next round. Erasures still unresolved after MaxItersErasure rounds stay
// zero in output and are left to the bit-flipping decoder.
//
// It returns the number of rounds consumed.
func ResolveErasures(p ccsds.Params, g tanner.Graph, output, working []byte) int {
	n := p.N
	vars := p.VariableCount()

	for a := 0; a < n; a++ {
		working[a] = 0
	}
	remaining := 0
	for a := n; a < vars; a++ {
		working[a] = 1
		remaining++
	}
	bitpack.Zero(output[n/8 : (vars+7)/8])

	iters := 0
	for ; iters < MaxItersErasure && remaining > 0; iters++ {
		for a := n; a < vars; a++ {
			if working[a] == 0 {
				continue
			}
			vote := 0
			for _, e := range g.VI[g.VS[a]:g.VS[a+1]] {
				i := int(e)
				parity := 0
				usable := true
				for _, bv := range g.CI[g.CS[i]:g.CS[i+1]] {
					b := int(bv)
					if b == a {
						continue
					}
					if working[b] != 0 {
						usable = false
						break
					}
					parity += int(bitpack.Get(output, b))
				}
				if !usable {
					continue
				}
				if parity%2 == 1 {
					vote++
				} else {
					vote--
				}
			}
			if vote > 0 {
				bitpack.Set(output, a)
				working[a] = 0
				remaining--
			} else if vote < 0 {
				bitpack.Clear(output, a)
				working[a] = 0
				remaining--
			}
		}
	}
	return iters
}
