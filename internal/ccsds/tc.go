package ccsds

// The telecommand parity-check matrices of CCSDS 231.1-O-1 are 4x8 grids of
// MxM sub-matrices, M = n/8. Each sub-matrix is either the zero matrix, the
// identity I, a right circular shift of the identity (written Phi^x in the
// standard), or the mod-2 sum I + Phi^x. One byte encodes a sub-matrix: the
// top two bits select the kind and the low six bits hold the shift.

const (
	hZero  uint8 = 0 << 6 // all-zero sub-matrix
	hIdent uint8 = 1 << 6 // identity
	hPhi   uint8 = 2 << 6 // identity rotated right by the low six bits
	hSum   uint8 = 3 << 6 // identity plus rotated identity
)

const (
	hKindMask  uint8 = 3 << 6
	hShiftMask uint8 = (1 << 6) - 1
)

// tcGridRows and tcGridCols are the protograph dimensions shared by all
// three TC codes.
const (
	tcGridRows = 4
	tcGridCols = 8
)

var tc128H = [tcGridRows][tcGridCols]uint8{
	{hSum | 7, hPhi | 2, hPhi | 14, hPhi | 6, hZero, hPhi | 0, hPhi | 13, hIdent},
	{hPhi | 6, hSum | 15, hPhi | 0, hPhi | 1, hIdent, hZero, hPhi | 0, hPhi | 7},
	{hPhi | 4, hPhi | 1, hSum | 15, hPhi | 14, hPhi | 11, hIdent, hZero, hPhi | 3},
	{hPhi | 0, hPhi | 1, hPhi | 9, hSum | 13, hPhi | 14, hPhi | 1, hIdent, hZero},
}

var tc256H = [tcGridRows][tcGridCols]uint8{
	{hSum | 31, hPhi | 15, hPhi | 25, hPhi | 0, hZero, hPhi | 20, hPhi | 12, hIdent},
	{hPhi | 28, hSum | 30, hPhi | 29, hPhi | 24, hIdent, hZero, hPhi | 1, hPhi | 20},
	{hPhi | 8, hPhi | 0, hSum | 28, hPhi | 1, hPhi | 29, hIdent, hZero, hPhi | 21},
	{hPhi | 18, hPhi | 30, hPhi | 0, hSum | 30, hPhi | 25, hPhi | 26, hIdent, hZero},
}

var tc512H = [tcGridRows][tcGridCols]uint8{
	{hSum | 63, hPhi | 30, hPhi | 50, hPhi | 25, hZero, hPhi | 43, hPhi | 62, hIdent},
	{hPhi | 56, hSum | 61, hPhi | 50, hPhi | 23, hIdent, hZero, hPhi | 37, hPhi | 26},
	{hPhi | 16, hPhi | 0, hSum | 55, hPhi | 27, hPhi | 56, hIdent, hZero, hPhi | 43},
	{hPhi | 35, hPhi | 56, hPhi | 62, hSum | 11, hPhi | 58, hPhi | 3, hIdent, hZero},
}

func tcGrid(c Code) *[tcGridRows][tcGridCols]uint8 {
	switch c {
	case TC128:
		return &tc128H
	case TC256:
		return &tc256H
	default:
		return &tc512H
	}
}

// tcRowOnes expands one scalar row of a TC parity-check matrix. A rotated
// identity Phi^x has its single row-r one in column (r+x) mod M, so each
// cell contributes at most two columns and a sum cell with shift 0 would
// cancel entirely; no standard table contains one.
func tcRowOnes(c Code, row int, buf []uint16) []uint16 {
	m := GetParams(c).SubMatrixSize
	grid := &tcGrid(c)[row/m]
	r := row % m

	for cell, sub := range grid {
		base := cell * m
		shift := int(sub & hShiftMask)
		switch sub & hKindMask {
		case hZero:
		case hIdent:
			buf = append(buf, uint16(base+r))
		case hPhi:
			buf = append(buf, uint16(base+(r+shift)%m))
		case hSum:
			a := uint16(base + r)
			b := uint16(base + (r+shift)%m)
			if a != b {
				buf = append(buf, a, b)
			}
		}
	}
	return buf
}
