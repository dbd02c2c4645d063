package ldpc

import (
	"sync"

	"github.com/deepteams/ldpc/internal/bitpack"
	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/gf2"
)

// The codes are systematic: a codeword is the k information bits followed
// by the parity bits. The generator is not stored as a constant; it is
// derived once per code from the parity-check matrix. Writing H = [A | B]
// with B square over the parity columns, the parity vector for message x
// is B^-1·A·x, so Gauss-Jordan reduction of the augmented [B | A] yields
// one packed parity row per information bit. The derivation allocates, but
// it runs once per code and never on a decode path.

// generator holds the lazily derived parity rows of one code: rows[j] is
// the n-k+p parity bits toggled by information bit j, packed 64 per word.
type generator struct {
	once sync.Once
	rows [][]uint64
	ok   bool
}

var generators [7]generator

// maxParityWords is enough packed words for the widest parity vector
// (n-k+p = 1536 bits for TM2048).
const maxParityWords = 24

func deriveGenerator(c ccsds.Code) ([][]uint64, bool) {
	p := ccsds.GetParams(c)
	checks := p.CheckCount()
	k := p.K

	// Augmented [B | A]: parity columns first, information columns after.
	aug := gf2.New(checks, checks+k)
	buf := make([]uint16, 0, ccsds.MaxRowWeight)
	for i := 0; i < checks; i++ {
		buf = ccsds.RowOnes(c, i, buf[:0])
		for _, col := range buf {
			if int(col) < k {
				aug.Set(i, checks+int(col))
			} else {
				aug.Set(i, int(col)-k)
			}
		}
	}
	if !aug.ReduceLeft(checks) {
		return nil, false
	}

	// After reduction the information half holds B^-1·A; its column j is
	// information bit j's parity contribution. Transpose into packed rows.
	words := (checks + 63) / 64
	rows := make([][]uint64, k)
	backing := make([]uint64, k*words)
	for j := range rows {
		rows[j] = backing[j*words : (j+1)*words]
	}
	for r := 0; r < checks; r++ {
		for j := 0; j < k; j++ {
			if aug.Bit(r, checks+j) == 1 {
				rows[j][r/64] |= 1 << (r % 64)
			}
		}
	}
	return rows, true
}

func generatorFor(c Code) ([][]uint64, bool) {
	g := &generators[c]
	g.once.Do(func() {
		g.rows, g.ok = deriveGenerator(ccsds.Code(c))
	})
	return g.rows, g.ok
}

// Encode encodes k/8 information bytes into the n/8-byte transmitted
// codeword. The information bits appear verbatim as the first k bits; the
// punctured parity bits are computed but not emitted. It reports false
// without touching codeword if c is the sentinel, a buffer is undersized,
// or the code's generator could not be derived.
func Encode(c Code, data, codeword []byte) bool {
	p := c.Params()
	if p.N == 0 || len(data) < p.K/8 || len(codeword) < p.N/8 {
		return false
	}
	rows, ok := generatorFor(c)
	if !ok {
		return false
	}

	var parity [maxParityWords]uint64
	for j := 0; j < p.K; j++ {
		if bitpack.Get(data, j) == 1 {
			for w, bits := range rows[j] {
				parity[w] ^= bits
			}
		}
	}

	copy(codeword[:p.K/8], data[:p.K/8])
	for t := 0; t < p.N-p.K; t++ {
		if parity[t/64]>>(t%64)&1 == 1 {
			bitpack.Set(codeword, p.K+t)
		} else {
			bitpack.Clear(codeword, p.K+t)
		}
	}
	return true
}

// EncodeParity computes the full n-k+p parity bit vector for data,
// including the punctured bits, packed MSB-first into parity. It is what
// Encode uses internally, exposed for callers that need the punctured
// bits (for instance to cross-check a decoder's reconstruction). The
// parity buffer needs (n-k+p)/8 bytes. It reports false on the sentinel
// code or undersized buffers.
func EncodeParity(c Code, data, parity []byte) bool {
	p := c.Params()
	checks := p.N - p.K + p.PuncturedBits
	if p.N == 0 || len(data) < p.K/8 || len(parity) < checks/8 {
		return false
	}
	rows, ok := generatorFor(c)
	if !ok {
		return false
	}

	var acc [maxParityWords]uint64
	for j := 0; j < p.K; j++ {
		if bitpack.Get(data, j) == 1 {
			for w, bits := range rows[j] {
				acc[w] ^= bits
			}
		}
	}
	for t := 0; t < checks; t++ {
		if acc[t/64]>>(t%64)&1 == 1 {
			bitpack.Set(parity, t)
		} else {
			bitpack.Clear(parity, t)
		}
	}
	return true
}
