// Package tanner builds the sparse Tanner graph of a parity-check matrix.
//
// The graph is held as two CSR-style index/offset array pairs over the same
// edge set: one indexed by check node, one by variable node. All decoding
// walks these arrays; the dense matrix never exists.
package tanner

import "github.com/deepteams/ldpc/internal/ccsds"

// Graph is the doubly-indexed sparse form of a parity-check matrix.
//
// Check i's neighbouring variable nodes are CI[CS[i]:CS[i+1]], sorted
// ascending. Variable a's neighbouring check nodes are VI[VS[a]:VS[a+1]],
// sorted ascending. Both pairs describe the same edges, so CS and VS end at
// the same value: the total edge count.
type Graph struct {
	CI []uint16 // per-check variable indices, len s
	CS []uint16 // prefix offsets into CI, len n-k+p+1
	VI []uint16 // per-variable check indices, len s
	VS []uint16 // prefix offsets into VI, len n+p+1
}

// New allocates a graph with exactly the buffer sizes code c requires and
// builds it. It returns nil for the sentinel code.
func New(c ccsds.Code) *Graph {
	p := ccsds.GetParams(c)
	if !p.Valid() {
		return nil
	}
	g := &Graph{
		CI: make([]uint16, p.ParityCheckSum),
		CS: make([]uint16, p.CheckCount()+1),
		VI: make([]uint16, p.ParityCheckSum),
		VS: make([]uint16, p.VariableCount()+1),
	}
	Build(c, g)
	return g
}

// Sized reports whether g's buffers are large enough to hold code c's
// graph.
func Sized(c ccsds.Code, g *Graph) bool {
	p := ccsds.GetParams(c)
	if !p.Valid() || g == nil {
		return false
	}
	return len(g.CI) >= p.ParityCheckSum && len(g.CS) >= p.CheckCount()+1 &&
		len(g.VI) >= p.ParityCheckSum && len(g.VS) >= p.VariableCount()+1
}

// Build fills g with the Tanner graph of code c. The caller owns the
// buffers; Build allocates nothing and is deterministic, so rebuilding
// into the same buffers is a no-op. It reports false, leaving g untouched,
// if c is the sentinel or the buffers are undersized.
func Build(c ccsds.Code, g *Graph) bool {
	if !Sized(c, g) {
		return false
	}
	p := ccsds.GetParams(c)
	checks := p.CheckCount()
	vars := p.VariableCount()

	// Pass 1: expand H row by row into CI, sorting each row's slice, and
	// record the CS prefix offsets.
	var scratch [ccsds.MaxRowWeight]uint16
	g.CS[0] = 0
	for i := 0; i < checks; i++ {
		row := ccsds.RowOnes(c, i, scratch[:0])
		sortRow(row)
		off := int(g.CS[i])
		copy(g.CI[off:], row)
		g.CS[i+1] = uint16(off + len(row))
	}
	edges := int(g.CS[checks])

	// Pass 2: transpose. Count each variable's degree into VS, prefix-sum,
	// then scatter the edges in check order so each variable's slice comes
	// out sorted by check index. The scatter advances VS[a] past a's slice,
	// leaving VS shifted one position; the final loop shifts it back.
	for a := 0; a <= vars; a++ {
		g.VS[a] = 0
	}
	for _, a := range g.CI[:edges] {
		g.VS[a+1]++
	}
	for a := 0; a < vars; a++ {
		g.VS[a+1] += g.VS[a]
	}
	for i := 0; i < checks; i++ {
		for _, a := range g.CI[g.CS[i]:g.CS[i+1]] {
			g.VI[g.VS[a]] = uint16(i)
			g.VS[a]++
		}
	}
	for a := vars; a > 0; a-- {
		g.VS[a] = g.VS[a-1]
	}
	g.VS[0] = 0
	return true
}

// sortRow sorts a single row's column indices in place. Rows are at most
// MaxRowWeight long, so insertion sort beats anything with setup cost.
func sortRow(row []uint16) {
	for i := 1; i < len(row); i++ {
		v := row[i]
		j := i - 1
		for j >= 0 && row[j] > v {
			row[j+1] = row[j]
			j--
		}
		row[j+1] = v
	}
}
