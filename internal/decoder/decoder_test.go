package decoder

import (
	"testing"

	"github.com/deepteams/ldpc/internal/ccsds"
	"github.com/deepteams/ldpc/internal/tanner"
)

// buildGraph assembles a Tanner graph from explicit per-check neighbour
// lists. Rows must be sorted ascending.
func buildGraph(t *testing.T, vars int, rows [][]uint16) tanner.Graph {
	t.Helper()
	edges := 0
	for _, r := range rows {
		edges += len(r)
	}
	g := tanner.Graph{
		CI: make([]uint16, 0, edges),
		CS: make([]uint16, 1, len(rows)+1),
		VI: make([]uint16, edges),
		VS: make([]uint16, vars+1),
	}
	for _, r := range rows {
		g.CI = append(g.CI, r...)
		g.CS = append(g.CS, uint16(len(g.CI)))
	}
	for _, a := range g.CI {
		g.VS[a+1]++
	}
	for a := 0; a < vars; a++ {
		g.VS[a+1] += g.VS[a]
	}
	cursor := make([]uint16, vars)
	copy(cursor, g.VS[:vars])
	for i, r := range rows {
		for _, a := range r {
			g.VI[cursor[a]] = uint16(i)
			cursor[a]++
		}
	}
	return g
}

// The toy code used below: 4 information bits, 4 parity bits, each parity
// bit covering three information bits. For x = 1011 the codeword is
// 1,0,1,1,0,0,0,1 = 0xB1.
var (
	toyParams = ccsds.Params{N: 8, K: 4, ParityCheckSum: 16}
	toyRows   = [][]uint16{
		{0, 1, 2, 4},
		{1, 2, 3, 5},
		{0, 1, 3, 6},
		{0, 2, 3, 7},
	}
	toyCodeword = byte(0xB1)
)

func TestBitFlip_CleanInput(t *testing.T) {
	g := buildGraph(t, 8, toyRows)
	output := make([]byte, 1)
	working := make([]byte, 8)
	ok, iters := BitFlip(toyParams, g, []byte{toyCodeword}, output, working)
	if !ok || iters != 0 {
		t.Fatalf("clean decode = (%v, %d), want (true, 0)", ok, iters)
	}
	if output[0] != toyCodeword {
		t.Errorf("output = %#02x, want %#02x", output[0], toyCodeword)
	}
}

func TestBitFlip_CorrectsSingleError(t *testing.T) {
	g := buildGraph(t, 8, toyRows)
	output := make([]byte, 1)
	working := make([]byte, 8)
	ok, iters := BitFlip(toyParams, g, []byte{toyCodeword ^ 0x80}, output, working)
	if !ok {
		t.Fatal("single error not corrected")
	}
	if iters != 1 {
		t.Errorf("consumed %d rounds, want 1", iters)
	}
	if output[0] != toyCodeword {
		t.Errorf("output = %#02x, want %#02x", output[0], toyCodeword)
	}
}

func TestMessagePassing_CorrectsSingleError(t *testing.T) {
	g := buildGraph(t, 8, toyRows)
	const l = 3.0
	llrs := make([]float32, 8)
	for i := 0; i < 8; i++ {
		if toyCodeword>>(7-i)&1 == 1 {
			llrs[i] = -l
		} else {
			llrs[i] = l
		}
	}
	llrs[0] = -llrs[0] // channel flips bit 0

	output := make([]byte, 1)
	working := make([]float32, 2*toyParams.ParityCheckSum)
	ok, iters := MessagePassing(toyParams, g, llrs, output, working)
	if !ok {
		t.Fatal("single error not corrected")
	}
	if iters > MaxItersMP {
		t.Fatalf("iteration count %d exceeds cap", iters)
	}
	if output[0] != toyCodeword {
		t.Errorf("output = %#02x, want %#02x", output[0], toyCodeword)
	}
}

func TestMessagePassing_CleanFirstIteration(t *testing.T) {
	g := buildGraph(t, 8, toyRows)
	llrs := make([]float32, 8)
	for i := 0; i < 8; i++ {
		if toyCodeword>>(7-i)&1 == 1 {
			llrs[i] = -3
		} else {
			llrs[i] = 3
		}
	}
	output := make([]byte, 1)
	working := make([]float32, 2*toyParams.ParityCheckSum)
	ok, iters := MessagePassing(toyParams, g, llrs, output, working)
	if !ok || iters != 1 {
		t.Fatalf("clean decode = (%v, %d), want (true, 1)", ok, iters)
	}
}

// Punctured toy: two extra parity bits, each the XOR of two information
// bits, never transmitted. Full codeword is 0xB1 0x80.
var (
	puncturedParams = ccsds.Params{N: 8, K: 4, PuncturedBits: 2, ParityCheckSum: 22}
	puncturedRows   = [][]uint16{
		{0, 1, 2, 4},
		{1, 2, 3, 5},
		{0, 1, 3, 6},
		{0, 2, 3, 7},
		{0, 1, 8},
		{2, 3, 9},
	}
)

func TestResolveErasures_Resolves(t *testing.T) {
	g := buildGraph(t, 10, puncturedRows)
	output := []byte{toyCodeword, 0x55}
	working := make([]byte, 10)
	iters := ResolveErasures(puncturedParams, g, output, working)
	if iters != 1 {
		t.Errorf("consumed %d rounds, want 1", iters)
	}
	if output[1] != 0x80 {
		t.Errorf("punctured bits = %#02x, want 0x80", output[1])
	}
	for a := 8; a < 10; a++ {
		if working[a] != 0 {
			t.Errorf("variable %d still flagged erased", a)
		}
	}
}

func TestBitFlip_PuncturedClean(t *testing.T) {
	g := buildGraph(t, 10, puncturedRows)
	output := make([]byte, 2)
	working := make([]byte, 10)
	ok, iters := BitFlip(puncturedParams, g, []byte{toyCodeword}, output, working)
	if !ok || iters != 0 {
		t.Fatalf("clean punctured decode = (%v, %d), want (true, 0)", ok, iters)
	}
	if output[0] != toyCodeword || output[1] != 0x80 {
		t.Errorf("output = %#02x %#02x, want 0xb1 0x80", output[0], output[1])
	}
}

// When every check touching an erased node also touches another erased
// node, no vote can form: the pre-decoder must burn its full round budget
// and hand the nodes to bit-flipping as zeroes.
func TestResolveErasures_Deadlock(t *testing.T) {
	rows := [][]uint16{
		{0, 1, 2, 4},
		{1, 2, 3, 5},
		{0, 1, 3, 6},
		{0, 2, 3, 7},
		{0, 1, 8, 9},
		{2, 3, 8, 9},
	}
	p := ccsds.Params{N: 8, K: 4, PuncturedBits: 2, ParityCheckSum: 24}
	g := buildGraph(t, 10, rows)
	output := []byte{toyCodeword, 0xFF}
	working := make([]byte, 10)
	iters := ResolveErasures(p, g, output, working)
	if iters != MaxItersErasure {
		t.Errorf("consumed %d rounds, want the full %d", iters, MaxItersErasure)
	}
	if output[1] != 0 {
		t.Errorf("unresolved erasures = %#02x, want zeroed", output[1])
	}
}

func TestSign(t *testing.T) {
	if sign(2.5) != 1 || sign(-0.1) != -1 || sign(0) != 0 {
		t.Error("sign must return +1, -1, 0")
	}
}
