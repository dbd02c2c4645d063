package ccsds

// The telemetry codes are the AR4JA family of CCSDS 131.0-B-2. Their
// parity-check matrices are 3-row protographs of MxM sub-matrices, five
// columns wide at rate 1/2 and growing by two (rate 2/3) or six (rate 4/5)
// extra information columns on the left. Each sub-matrix is the zero
// matrix, the identity, or a mod-2 sum of up to three permutation matrices
// Pi_k. Pi_k has its row-i one at column pi_k(i), defined by the theta_k
// and phi_k(j, M) constants of the standard.
//
// Column order of the expanded matrix is grid order: the k information
// columns first, then the transmitted parity columns, then the final M
// punctured columns (the high-degree protograph node).

// tmTerm is one summand of a sub-matrix cell: 0 means no term, tmIdent the
// identity, and 1..26 the permutation Pi_k.
type tmTerm = uint8

const tmIdent tmTerm = 27

// tmCell is a sub-matrix as a sum of up to three terms. The zero cell is
// the all-zero sub-matrix.
type tmCell [3]tmTerm

// Shorthand constructors keep the grid literals close to the standard's
// notation.
func ze() tmCell               { return tmCell{} }
func id() tmCell               { return tmCell{tmIdent} }
func pi2(a, b tmTerm) tmCell   { return tmCell{a, b} }
func pi3(a, b, c tmTerm) tmCell { return tmCell{a, b, c} }

// idPi is the I + Pi_1 corner cell of every AR4JA matrix.
func idPi(a tmTerm) tmCell { return tmCell{tmIdent, a} }

const tmGridRows = 3

// tm12H is the rate-1/2 matrix (TM2048, M=512): 3x5 sub-matrices.
var tm12H = [tmGridRows][5]tmCell{
	{ze(), ze(), id(), ze(), idPi(1)},
	{id(), id(), ze(), id(), pi3(2, 3, 4)},
	{id(), pi2(5, 6), ze(), pi2(7, 8), id()},
}

// tm23H is the rate-2/3 matrix (TM1536, M=256): two extra information
// columns prepended to the rate-1/2 structure.
var tm23H = [tmGridRows][7]tmCell{
	{ze(), ze(), ze(), ze(), id(), ze(), idPi(1)},
	{pi3(9, 10, 11), id(), id(), id(), ze(), id(), pi3(2, 3, 4)},
	{id(), pi3(12, 13, 14), id(), pi2(5, 6), ze(), pi2(7, 8), id()},
}

// tm45H is the rate-4/5 matrix (TM1280, M=128): four further information
// columns prepended to the rate-2/3 structure.
var tm45H = [tmGridRows][11]tmCell{
	{ze(), ze(), ze(), ze(), ze(), ze(), ze(), ze(), id(), ze(), idPi(1)},
	{pi3(21, 22, 23), id(), pi3(15, 16, 17), id(), pi3(9, 10, 11), id(), id(), id(), ze(), id(), pi3(2, 3, 4)},
	{id(), pi3(24, 25, 26), id(), pi3(18, 19, 20), id(), pi3(12, 13, 14), id(), pi2(5, 6), ze(), pi2(7, 8), id()},
}

// thetaK holds theta_k for k = 1..26 (131.0-B-2 table 7-2).
var thetaK = [26]uint8{
	3, 0, 1, 2, 2, 3, 0, 1, 0, 1, 2, 0, 2,
	3, 0, 1, 2, 0, 1, 2, 0, 1, 2, 1, 2, 3,
}

// phiJK holds phi_k(j, M) for j = 0..3, M in {128, 256, 512} and k = 1..26
// (131.0-B-2 tables 7-3 and 7-4, restricted to the k=1024 block sizes).
var phiJK = [4][3][26]uint16{
	{ // j = 0
		{1, 22, 0, 26, 0, 10, 5, 18, 3, 22, 3, 8, 25, 25, 2, 27, 7, 7, 15, 10, 4, 19, 7, 9, 26, 17},
		{59, 18, 52, 23, 11, 7, 22, 25, 27, 30, 43, 14, 46, 62, 44, 12, 38, 47, 1, 52, 61, 10, 55, 7, 12, 2},
		{16, 103, 105, 0, 50, 29, 115, 30, 92, 78, 70, 66, 39, 84, 79, 70, 29, 32, 45, 113, 86, 1, 42, 118, 33, 126},
	},
	{ // j = 1
		{0, 27, 30, 28, 7, 1, 8, 20, 26, 24, 4, 12, 23, 15, 15, 22, 31, 3, 29, 21, 2, 5, 11, 26, 9, 17},
		{0, 32, 21, 36, 30, 29, 44, 29, 39, 14, 22, 15, 48, 55, 39, 11, 1, 50, 40, 62, 27, 38, 40, 15, 11, 18},
		{0, 53, 74, 45, 47, 0, 59, 102, 25, 3, 88, 65, 62, 68, 91, 70, 115, 31, 121, 45, 56, 54, 108, 14, 30, 116},
	},
	{ // j = 2
		{0, 12, 30, 18, 10, 16, 13, 9, 7, 15, 16, 18, 4, 23, 5, 3, 29, 11, 4, 8, 2, 11, 11, 3, 15, 13},
		{0, 46, 45, 27, 48, 37, 41, 13, 9, 49, 36, 10, 11, 18, 54, 40, 27, 35, 25, 46, 24, 33, 18, 37, 35, 21},
		{0, 8, 119, 89, 31, 122, 1, 69, 92, 47, 11, 31, 19, 66, 49, 81, 96, 38, 83, 42, 58, 24, 25, 92, 38, 120},
	},
	{ // j = 3
		{0, 13, 19, 14, 15, 20, 17, 4, 4, 11, 17, 20, 8, 22, 19, 15, 5, 21, 17, 9, 20, 18, 31, 13, 2, 18},
		{0, 44, 51, 12, 15, 12, 4, 7, 2, 30, 53, 23, 29, 37, 42, 48, 4, 10, 18, 56, 9, 11, 23, 8, 7, 24},
		{0, 35, 97, 112, 64, 93, 99, 94, 103, 91, 3, 6, 39, 113, 92, 119, 74, 73, 116, 31, 127, 98, 23, 38, 18, 62},
	},
}

// phiIndex maps a sub-matrix size to its column in phiJK.
func phiIndex(m int) int {
	switch m {
	case 128:
		return 0
	case 256:
		return 1
	default:
		return 2
	}
}

// piPerm returns pi_k(i) for sub-matrix size m:
//
//	pi_k(i) = (m/4)((theta_k + j) mod 4) + (phi_k(j, m) + i) mod (m/4)
//
// where j = floor(4i/m).
func piPerm(k, m, i int) int {
	q := m / 4
	j := 4 * i / m
	return q*((int(thetaK[k-1])+j)%4) + (int(phiJK[j][phiIndex(m)][k-1])+i)%q
}

// tmRowOnes expands one scalar row of a TM parity-check matrix. Each term
// of a cell contributes the single row-r one of its permutation; equal
// columns within a cell cancel mod 2.
func tmRowOnes(c Code, row int, buf []uint16) []uint16 {
	m := GetParams(c).SubMatrixSize
	r := row % m
	blockRow := row / m

	appendCell := func(base int, cell tmCell) []uint16 {
		var cols [3]int
		ncols := 0
		for _, t := range cell {
			if t == 0 {
				break
			}
			col := base + r
			if t != tmIdent {
				col = base + piPerm(int(t), m, r)
			}
			cols[ncols] = col
			ncols++
		}
		// Emit each column that occurs an odd number of times, once, at
		// its first occurrence.
		for i := 0; i < ncols; i++ {
			count, first := 0, i
			for j := 0; j < ncols; j++ {
				if cols[j] == cols[i] {
					if j < first {
						first = j
					}
					count++
				}
			}
			if first == i && count%2 == 1 {
				buf = append(buf, uint16(cols[i]))
			}
		}
		return buf
	}

	switch c {
	case TM1280:
		for cell, sub := range tm45H[blockRow] {
			buf = appendCell(cell*m, sub)
		}
	case TM1536:
		for cell, sub := range tm23H[blockRow] {
			buf = appendCell(cell*m, sub)
		}
	default:
		for cell, sub := range tm12H[blockRow] {
			buf = appendCell(cell*m, sub)
		}
	}
	return buf
}
