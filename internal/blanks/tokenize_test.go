package blanks

import (
	"reflect"
	"testing"
)

func TestTokenize_SingleBlank(t *testing.T) {
	tmpl := Tokenize("Smeety Alex, o {nty}?")

	want := []Token{
		{Text: "Smeety Alex, o "},
		{IsBlank: true, Index: 0, Correct: "nty"},
		{Text: "?"},
	}
	if !reflect.DeepEqual(tmpl.Tokens, want) {
		t.Errorf("tokens = %+v, want %+v", tmpl.Tokens, want)
	}
	if !reflect.DeepEqual(tmpl.CorrectWords, []string{"nty"}) {
		t.Errorf("correctWords = %v, want [nty]", tmpl.CorrectWords)
	}
}

func TestTokenize_MultipleBlanksIndexedInOrder(t *testing.T) {
	tmpl := Tokenize("{ja} sam {dobro}, hvala")

	if tmpl.Blanks() != 2 {
		t.Fatalf("blanks = %d, want 2", tmpl.Blanks())
	}
	if tmpl.Tokens[0].Index != 0 || tmpl.Tokens[0].Correct != "ja" {
		t.Errorf("first blank = %+v, want index 0 / ja", tmpl.Tokens[0])
	}
	if tmpl.Tokens[2].Index != 1 || tmpl.Tokens[2].Correct != "dobro" {
		t.Errorf("second blank = %+v, want index 1 / dobro", tmpl.Tokens[2])
	}
}

func TestTokenize_TrimsBlankWhitespace(t *testing.T) {
	tmpl := Tokenize("o { nty }?")
	if tmpl.CorrectWords[0] != "nty" {
		t.Errorf("correct word = %q, want trimmed %q", tmpl.CorrectWords[0], "nty")
	}
}

func TestTokenize_Empty(t *testing.T) {
	tmpl := Tokenize("")
	if len(tmpl.Tokens) != 0 || len(tmpl.CorrectWords) != 0 {
		t.Errorf("empty template should tokenize to nothing, got %+v", tmpl)
	}
}

func TestTokenize_UnterminatedBraceIsLiteral(t *testing.T) {
	tmpl := Tokenize("oh no {broken")

	if len(tmpl.CorrectWords) != 0 {
		t.Errorf("unterminated brace produced blanks: %v", tmpl.CorrectWords)
	}
	if got := tmpl.Reconstruct(); got != "oh no {broken" {
		t.Errorf("reconstruct = %q, want the input back", got)
	}
}

func TestTokenize_ReconstructRoundTrip(t *testing.T) {
	inputs := []string{
		"Smeety Alex, o {nty}?",
		"{ja} sam {dobro}, hvala",
		"no blanks here",
		"{edge}",
	}
	for _, in := range inputs {
		tmpl := Tokenize(in)
		if got := tmpl.Reconstruct(); got != in {
			t.Errorf("Reconstruct(Tokenize(%q)) = %q", in, got)
		}
		again := Tokenize(tmpl.Reconstruct())
		if !reflect.DeepEqual(again, tmpl) {
			t.Errorf("re-tokenizing reconstruction of %q changed the result", in)
		}
	}
}
