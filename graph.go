package ldpc

import (
	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/tanner"
)

// Graph is the sparse Tanner graph of a code's parity-check matrix, stored
// as two CSR-style array pairs over the same edge set.
//
// Check node i's variable neighbours are CI[CS[i]:CS[i+1]], ascending.
// Variable node a's check neighbours are VI[VS[a]:VS[a+1]], ascending.
// CS and VS both end at the edge count s.
//
// A Graph is read-only once built and safe for concurrent decodes; the
// decoders' working buffers are what must be per goroutine.
type Graph struct {
	CI []uint16 // per-check variable indices, len s
	CS []uint16 // prefix offsets into CI, len n-k+p+1
	VI []uint16 // per-variable check indices, len s
	VS []uint16 // prefix offsets into VI, len n+p+1
}

// NewGraph allocates exactly-sized buffers for code c and builds its
// Tanner graph. It returns nil for the sentinel code. The graph is
// reusable across any number of decode calls.
func NewGraph(c Code) *Graph {
	g := tanner.New(ccsds.Code(c))
	if g == nil {
		return nil
	}
	return (*Graph)(g)
}

// BuildGraph fills caller-allocated buffers with code c's Tanner graph.
// The required lengths are ParityCheckSum for CI and VI, n-k+p+1 for CS
// and n+p+1 for VS. It allocates nothing and is deterministic. It reports
// false, leaving g untouched, if c is the sentinel or any buffer is
// undersized.
func BuildGraph(c Code, g *Graph) bool {
	if g == nil {
		return false
	}
	return tanner.Build(ccsds.Code(c), (*tanner.Graph)(g))
}

// internal returns the graph as the internal representation the decoders
// walk. The slice headers are copied; the arrays are shared.
func (g *Graph) internal() tanner.Graph {
	return tanner.Graph(*g)
}

// sized reports whether g can serve code c.
func (g *Graph) sized(c Code) bool {
	if g == nil {
		return false
	}
	tg := tanner.Graph(*g)
	return tanner.Sized(ccsds.Code(c), &tg)
}
