package ldpc

import "github.com/deepteams/ldpc/internal/ccsds"

// Code identifies one of the supported LDPC codes. Every operation in the
// package dispatches its parameters from this identifier; CodeNone turns
// every operation into a no-op that reports failure.
type Code int

const (
	// CodeNone is the sentinel "no code" value.
	CodeNone Code = Code(ccsds.CodeNone)

	// TC128 is the (128,64) telecommand code.
	TC128 Code = Code(ccsds.TC128)
	// TC256 is the (256,128) telecommand code.
	TC256 Code = Code(ccsds.TC256)
	// TC512 is the (512,256) telecommand code.
	TC512 Code = Code(ccsds.TC512)

	// TM1280 is the (1280,1024) telemetry code, rate 4/5, 128 punctured bits.
	TM1280 Code = Code(ccsds.TM1280)
	// TM1536 is the (1536,1024) telemetry code, rate 2/3, 256 punctured bits.
	TM1536 Code = Code(ccsds.TM1536)
	// TM2048 is the (2048,1024) telemetry code, rate 1/2, 512 punctured bits.
	TM2048 Code = Code(ccsds.TM2048)
)

// Codes lists every supported code, sentinel excluded.
var Codes = []Code{TC128, TC256, TC512, TM1280, TM1536, TM2048}

// String returns the conventional name of the code.
func (c Code) String() string {
	switch c {
	case TC128:
		return "TC128"
	case TC256:
		return "TC256"
	case TC512:
		return "TC512"
	case TM1280:
		return "TM1280"
	case TM1536:
		return "TM1536"
	case TM2048:
		return "TM2048"
	default:
		return "none"
	}
}

// Params holds the fixed parameters of a code.
type Params struct {
	// N is the number of bits physically transmitted per codeword.
	N int
	// K is the number of information bits per codeword.
	K int
	// PuncturedBits is the number of parity bits generated by the encoder
	// but never transmitted; the decoder reconstructs them.
	PuncturedBits int
	// SubMatrixSize is the dimension of the square sub-matrices composing
	// the parity-check matrix.
	SubMatrixSize int
	// CirculantSize is the circulant block size within each sub-matrix.
	CirculantSize int
	// ParityCheckSum is the number of 1-bits in the expanded parity-check
	// matrix, equal to the Tanner graph's edge count.
	ParityCheckSum int
}

// Params returns the parameters of c. The sentinel yields the zero value.
func (c Code) Params() Params {
	return Params(ccsds.GetParams(ccsds.Code(c)))
}

// Valid reports whether c names a real code.
func (c Code) Valid() bool {
	return ccsds.GetParams(ccsds.Code(c)).Valid()
}

// DataLen returns the information block size in bytes, k/8.
func (c Code) DataLen() int { return c.Params().K / 8 }

// CodewordLen returns the transmitted codeword size in bytes, n/8.
func (c Code) CodewordLen() int { return c.Params().N / 8 }

// OutputLen returns the decoder output size in bytes, (n+p)/8: the full
// codeword including reconstructed punctured parity.
func (c Code) OutputLen() int {
	p := c.Params()
	return (p.N + p.PuncturedBits) / 8
}

// LLRsLen returns the number of log-likelihood ratios the message-passing
// decoder consumes, n.
func (c Code) LLRsLen() int { return c.Params().N }

// BFWorkingLen returns the bit-flipping decoder's scratch size in bytes,
// n+p.
func (c Code) BFWorkingLen() int {
	p := c.Params()
	return p.N + p.PuncturedBits
}

// MPWorkingLen returns the message-passing decoder's scratch size in
// float32s, 2s: one check-to-variable and one variable-to-check message
// per Tanner graph edge.
func (c Code) MPWorkingLen() int { return 2 * c.Params().ParityCheckSum }
