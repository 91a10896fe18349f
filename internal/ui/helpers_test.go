package ui

import "testing"

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate(short, 10) = %q, want unchanged", got)
	}
	if got := truncate("abcdefgh", 5); got != "abcd…" {
		t.Fatalf("truncate(abcdefgh, 5) = %q, want %q", got, "abcd…")
	}
	// Width floor keeps at least a few characters visible.
	if got := truncate("abcdefgh", 1); got != "abc…" {
		t.Fatalf("truncate(abcdefgh, 1) = %q, want %q", got, "abc…")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight(ab, 5) = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("padRight(abcdef, 3) = %q, want unchanged", got)
	}
}
