package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
}

func TestWithin(t *testing.T) {
	if End(math.MaxUint32, math.MaxUint32) != 2*uint64(math.MaxUint32) {
		t.Fatalf("End must not wrap")
	}
	if !Within(10, 5, 15) {
		t.Fatalf("region ending at size should fit")
	}
	if Within(10, 6, 15) {
		t.Fatalf("region past size should not fit")
	}
	if !Within(math.MaxUint32, 1, -1) {
		t.Fatalf("unknown size accepts every region")
	}
	if Within(-1, 1, 15) || Within(0, -1, -1) {
		t.Fatalf("negative offsets and lengths never fit")
	}
	if Within(math.MaxInt64, math.MaxInt64, math.MaxInt64) {
		t.Fatalf("Within must not overflow")
	}
}
