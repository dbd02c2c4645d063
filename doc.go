// Package ldpc provides a pure Go encoder and decoder for the CCSDS LDPC
// error-correcting codes.
//
// The supported codes are the short telecommand codes of CCSDS 231.1-O-1 —
// (128,64), (256,128) and (512,256), all rate 1/2 — and the AR4JA telemetry
// codes of CCSDS 131.0-B-2 with k=1024 information bits — (1280,1024),
// (1536,1024) and (2048,1024), transmitted with 128, 256 and 512 parity
// bits punctured respectively.
//
// The package supports:
//   - Systematic encoding
//   - Hard-decision bit-flipping decoding, with erasure recovery of
//     punctured parity bits
//   - Soft-decision min-sum message-passing decoding with self-correction
//   - Hard-bit / log-likelihood-ratio conversion
//
// Decoding allocates nothing: the caller owns the Tanner graph and every
// working buffer, sized via the Code methods, so graphs and buffers can be
// reused across frames and held per goroutine.
//
// Basic usage:
//
//	g := ldpc.NewGraph(ldpc.TC128)
//	codeword := make([]byte, ldpc.TC128.CodewordLen())
//	ldpc.Encode(ldpc.TC128, data, codeword)
//	...
//	output := make([]byte, ldpc.TC128.OutputLen())
//	working := make([]byte, ldpc.TC128.BFWorkingLen())
//	ok, _ := ldpc.DecodeBF(ldpc.TC128, g, received, output, working)
package ldpc
