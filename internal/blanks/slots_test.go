package blanks

import (
	"sort"
	"testing"
)

// pinShuffle makes shuffles deterministic (sorted) for the duration of a test.
func pinShuffle(t *testing.T) {
	t.Helper()
	orig := shuffle
	shuffle = func(words []string) { sort.Strings(words) }
	t.Cleanup(func() { shuffle = orig })
}

func TestTapWord_FillsLowestUnfilledSlot(t *testing.T) {
	pinShuffle(t)
	s := NewSlotState(Tokenize("{ja} sam {dobro}"), nil)

	if !s.TapWord("dobro") {
		t.Fatal("expected TapWord to succeed")
	}
	if s.Filled[0] != "dobro" {
		t.Errorf("Filled[0] = %q, want dobro (lowest slot first)", s.Filled[0])
	}
}

func TestTapWord_SameWordTwiceFillsOneSlot(t *testing.T) {
	pinShuffle(t)
	s := NewSlotState(Tokenize("{ja} sam {dobro}"), []string{"ja", "dobro"})

	if !s.TapWord("ja") {
		t.Fatal("first tap should succeed")
	}
	if s.TapWord("ja") {
		t.Error("second tap of the same word should fail — word left the pool")
	}
	if len(s.Filled) != 1 {
		t.Errorf("filled slots = %d, want 1", len(s.Filled))
	}
}

func TestTapBlank_ReturnsWordToPool(t *testing.T) {
	pinShuffle(t)
	s := NewSlotState(Tokenize("{ja} sam"), []string{"ja", "ti"})

	s.TapWord("ja")
	if !s.TapBlank(0) {
		t.Fatal("expected TapBlank to clear the slot")
	}
	if len(s.Filled) != 0 {
		t.Errorf("slot still filled after TapBlank: %v", s.Filled)
	}
	if len(s.Available) != 2 {
		t.Errorf("pool = %v, want the word returned", s.Available)
	}
}

func TestTapBlank_EmptySlotIsNoop(t *testing.T) {
	pinShuffle(t)
	s := NewSlotState(Tokenize("{ja} sam"), nil)

	if s.TapBlank(0) {
		t.Error("TapBlank on an empty slot should be a no-op")
	}
}

func TestAllFilledAndCorrect(t *testing.T) {
	pinShuffle(t)
	s := NewSlotState(Tokenize("{ja} sam {dobro}"), []string{"dobro", "ja"})

	if s.AllFilled() {
		t.Error("AllFilled should be false with empty slots")
	}

	s.TapWord("ja")
	s.TapWord("dobro")
	if !s.AllFilled() {
		t.Fatal("AllFilled should be true once every blank has a word")
	}
	if !s.Correct() {
		t.Error("expected correct assignment ja/dobro")
	}

	// Swap to the wrong order.
	s.TapBlank(0)
	s.TapBlank(1)
	s.TapWord("dobro")
	s.TapWord("ja")
	if s.Correct() {
		t.Error("wrong order should not be correct")
	}
}

func TestNewSlotState_FallsBackToCorrectWords(t *testing.T) {
	pinShuffle(t)
	s := NewSlotState(Tokenize("{ja} sam {dobro}"), nil)

	if len(s.Available) != 2 {
		t.Fatalf("pool = %v, want the blank answers as fallback", s.Available)
	}
}
