package core

import "testing"

func TestEnsureLenReusesCapacity(t *testing.T) {
	buf := make([]uint16, 2, 8)
	got := EnsureLen(buf, 6)
	if len(got) != 6 || cap(got) != 8 {
		t.Fatalf("len/cap = %d/%d, want 6/8", len(got), cap(got))
	}
	if &got[0] != &buf[0] {
		t.Fatal("expected backing array reuse")
	}
}

func TestEnsureLenGrows(t *testing.T) {
	got := EnsureLen(make([]uint16, 1), 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got := EnsureLen(got, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestFill(t *testing.T) {
	buf := make([]uint16, 5)
	Fill(buf, 1023)
	for i, v := range buf {
		if v != 1023 {
			t.Fatalf("buf[%d] = %d, want 1023", i, v)
		}
	}
}
