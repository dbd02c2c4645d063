package bitpack

import "testing"

func TestMSBFirstLayout(t *testing.T) {
	buf := make([]byte, 2)
	Set(buf, 0)
	if buf[0] != 0x80 {
		t.Errorf("bit 0 should be the MSB of byte 0, got %#02x", buf[0])
	}
	Set(buf, 7)
	if buf[0] != 0x81 {
		t.Errorf("bit 7 should be the LSB of byte 0, got %#02x", buf[0])
	}
	Set(buf, 8)
	if buf[1] != 0x80 {
		t.Errorf("bit 8 should be the MSB of byte 1, got %#02x", buf[1])
	}
}

func TestGetSetClearFlip(t *testing.T) {
	buf := make([]byte, 4)
	for i := 0; i < 32; i++ {
		if Get(buf, i) != 0 {
			t.Fatalf("bit %d should start clear", i)
		}
		Set(buf, i)
		if Get(buf, i) != 1 {
			t.Fatalf("bit %d not set", i)
		}
		Flip(buf, i)
		if Get(buf, i) != 0 {
			t.Fatalf("bit %d not flipped clear", i)
		}
		Flip(buf, i)
		Clear(buf, i)
		if Get(buf, i) != 0 {
			t.Fatalf("bit %d not cleared", i)
		}
	}
}

func TestZero(t *testing.T) {
	buf := []byte{0xff, 0x12, 0x34}
	Zero(buf)
	for i, b := range buf {
		if b != 0 {
			t.Errorf("byte %d not zeroed", i)
		}
	}
}
