package id

import "testing"

func TestNewID(t *testing.T) {
	first, err := NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if first == "" {
		t.Fatal("NewID returned an empty id")
	}

	second, err := NewID()
	if err != nil {
		t.Fatalf("NewID: %v", err)
	}
	if first == second {
		t.Fatalf("NewID returned %q twice", first)
	}
}
