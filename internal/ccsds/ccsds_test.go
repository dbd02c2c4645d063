package ccsds

import "testing"

var allCodes = []Code{TC128, TC256, TC512, TM1280, TM1536, TM2048}

func TestParams_Consistency(t *testing.T) {
	for _, c := range allCodes {
		p := GetParams(c)
		if !p.Valid() {
			t.Fatalf("code %d: params not valid", c)
		}
		if p.K > p.N {
			t.Errorf("code %d: k=%d > n=%d", c, p.K, p.N)
		}
		for _, v := range [...]int{p.N, p.K, p.PuncturedBits} {
			if v%8 != 0 {
				t.Errorf("code %d: %d not a multiple of 8", c, v)
			}
		}
		if p.CheckCount() != p.N-p.K+p.PuncturedBits {
			t.Errorf("code %d: check count = %d", c, p.CheckCount())
		}
		if p.VariableCount() != p.N+p.PuncturedBits {
			t.Errorf("code %d: variable count = %d", c, p.VariableCount())
		}
	}
}

func TestGetParams_Sentinel(t *testing.T) {
	if GetParams(CodeNone).Valid() {
		t.Error("sentinel params should not be valid")
	}
	if GetParams(Code(-1)).Valid() || GetParams(Code(99)).Valid() {
		t.Error("out-of-range codes should yield zero params")
	}
}

func TestRowOnes_SumMatchesParityCheckSum(t *testing.T) {
	for _, c := range allCodes {
		p := GetParams(c)
		total := 0
		buf := make([]uint16, 0, MaxRowWeight)
		for row := 0; row < p.CheckCount(); row++ {
			buf = RowOnes(c, row, buf[:0])
			if len(buf) > MaxRowWeight {
				t.Fatalf("code %d row %d: weight %d exceeds MaxRowWeight", c, row, len(buf))
			}
			for _, col := range buf {
				if int(col) >= p.VariableCount() {
					t.Fatalf("code %d row %d: column %d out of range", c, row, col)
				}
			}
			total += len(buf)
		}
		if total != p.ParityCheckSum {
			t.Errorf("code %d: H has %d ones, params say %d", c, total, p.ParityCheckSum)
		}
	}
}

func TestRowOnes_Deterministic(t *testing.T) {
	for _, c := range allCodes {
		p := GetParams(c)
		a := make([]uint16, 0, MaxRowWeight)
		b := make([]uint16, 0, MaxRowWeight)
		for row := 0; row < p.CheckCount(); row++ {
			a = RowOnes(c, row, a[:0])
			b = RowOnes(c, row, b[:0])
			if len(a) != len(b) {
				t.Fatalf("code %d row %d: lengths differ", c, row)
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("code %d row %d: entries differ at %d", c, row, i)
				}
			}
		}
	}
}

func TestRowOnes_NoDuplicateColumns(t *testing.T) {
	for _, c := range allCodes {
		p := GetParams(c)
		buf := make([]uint16, 0, MaxRowWeight)
		seen := make(map[uint16]bool, MaxRowWeight)
		for row := 0; row < p.CheckCount(); row++ {
			buf = RowOnes(c, row, buf[:0])
			clear(seen)
			for _, col := range buf {
				if seen[col] {
					t.Fatalf("code %d row %d: column %d repeated", c, row, col)
				}
				seen[col] = true
			}
		}
	}
}

func TestPiPerm_IsPermutation(t *testing.T) {
	for _, m := range []int{128, 256, 512} {
		for k := 1; k <= 26; k++ {
			hit := make([]bool, m)
			for i := 0; i < m; i++ {
				j := piPerm(k, m, i)
				if j < 0 || j >= m {
					t.Fatalf("pi_%d(%d) = %d out of range for m=%d", k, i, j, m)
				}
				if hit[j] {
					t.Fatalf("pi_%d not injective for m=%d: %d hit twice", k, m, j)
				}
				hit[j] = true
			}
		}
	}
}
