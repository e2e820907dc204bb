package bytesutil

import "testing"

func TestPad(t *testing.T) {
	got := Pad([]byte{0x01, 0x02}, 4)
	want := []byte{0x00, 0x00, 0x01, 0x02}
	if !Compare(got, want) {
		t.Fatalf("Pad() = %x, want %x", got, want)
	}
}

func TestPadNoop(t *testing.T) {
	in := []byte{0x01, 0x02, 0x03, 0x04}
	got := Pad(in, 2)
	if !Compare(got, in) {
		t.Fatalf("Pad() shrank input: got %x, want %x", got, in)
	}
}

func TestCombine(t *testing.T) {
	got := Combine([]byte{0x01}, []byte{0x02, 0x03})
	want := []byte{0x01, 0x02, 0x03}
	if !Compare(got, want) {
		t.Fatalf("Combine() = %x, want %x", got, want)
	}
}

func TestCompare(t *testing.T) {
	if !Compare([]byte{1, 2, 3}, []byte{1, 2, 3}) {
		t.Fatal("expected equal slices to compare equal")
	}
	if Compare([]byte{1, 2, 3}, []byte{1, 2, 4}) {
		t.Fatal("expected differing slices to compare unequal")
	}
	if Compare([]byte{1, 2}, []byte{1, 2, 3}) {
		t.Fatal("expected differing lengths to compare unequal")
	}
}
