package buf

import "testing"

func TestSliceBounds(t *testing.T) {
	b := []byte("hello world")

	if _, ok := Slice(b, 0, 5); !ok {
		t.Fatalf("expected in-bounds slice to succeed")
	}
	if _, ok := Slice(b, 6, 100); ok {
		t.Fatalf("expected out-of-bounds slice to fail")
	}
	if _, ok := Slice(b, -1, 1); ok {
		t.Fatalf("expected negative offset to fail")
	}
	if !Has(b, 0, len(b)) {
		t.Fatalf("expected Has to report full-length slice in bounds")
	}
	if Has(b, 0, len(b)+1) {
		t.Fatalf("expected Has to report overrun out of bounds")
	}
}
