package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0xff, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16At(data, 1); got != 0x2301 {
		t.Fatalf("U16At = 0x%x, want 0x2301", got)
	}
	if got := U32At(data, 1); got != 0x67452301 {
		t.Fatalf("U32At = 0x%x, want 0x67452301", got)
	}
	if got := U64At(data, 1); got != 0xefcdab8967452301 {
		t.Fatalf("U64At = 0x%x, want 0xefcdab8967452301", got)
	}

	if U16At(data, 8) != 0 || U32At(data, 6) != 0 || U64At(data, 2) != 0 {
		t.Fatalf("short reads should return 0")
	}
	if U16At(data, -1) != 0 {
		t.Fatalf("negative offset should return 0")
	}
}
