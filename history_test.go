package main

import (
	"errors"
	"slices"
	"testing"
)

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if len(h) != 1 || h[0] != DefaultColor {
		t.Errorf("Expected [%s], got %v", DefaultColor, h)
	}
}

func TestHistory_Push(t *testing.T) {
	h := NewHistory()
	h = h.Push("#000001")

	want := History{"#000001", DefaultColor}
	if !slices.Equal(h, want) {
		t.Errorf("Expected %v, got %v", want, h)
	}
}

func TestHistory_Push_Bounded(t *testing.T) {
	h := NewHistory()
	var added []Color

	for n := 1; n <= 12; n++ {
		c := FormatColor(uint32(n))
		added = append(added, c)
		h = h.Push(c)

		if want := min(n+1, MaxHistory); len(h) != want {
			t.Fatalf("Expected length %d after %d pushes, got %d", want, n, len(h))
		}
	}

	// Newest first, only the five most recent survive
	want := History{"#00000C", "#00000B", "#00000A", "#000009", "#000008"}
	if !slices.Equal(h, want) {
		t.Errorf("Expected %v, got %v", want, h)
	}
}

func TestHistory_Push_DoesNotModifyReceiver(t *testing.T) {
	h := History{"#000001", "#000002", "#000003", "#000004", "#000005"}
	before := slices.Clone(h)

	_ = h.Push("#000006")

	if !slices.Equal(h, before) {
		t.Errorf("Expected receiver to stay %v, got %v", before, h)
	}
}

func TestHistory_Push_AllowsDuplicates(t *testing.T) {
	h := NewHistory().Push(DefaultColor)
	if len(h) != 2 || h[0] != DefaultColor || h[1] != DefaultColor {
		t.Errorf("Expected duplicate entries, got %v", h)
	}
}

func TestHistory_At(t *testing.T) {
	h := History{"#000001", "#000002"}

	if c, ok := h.At(1); !ok || c != "#000002" {
		t.Errorf("Expected '#000002', got '%s' (ok=%v)", c, ok)
	}
	if _, ok := h.At(2); ok {
		t.Error("Expected out of range index to fail")
	}
	if _, ok := h.At(-1); ok {
		t.Error("Expected negative index to fail")
	}
}

func TestHistoryFromStrings(t *testing.T) {
	h, err := historyFromStrings([]string{"#aabbcc", "112233", "#000001", "#000002", "#000003", "#000004"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := History{"#AABBCC", "#112233", "#000001", "#000002", "#000003"}
	if !slices.Equal(h, want) {
		t.Errorf("Expected %v, got %v", want, h)
	}

	_, err = historyFromStrings([]string{"#000001", "red"})
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("Expected ErrInvalidColor, got %v", err)
	}
}
