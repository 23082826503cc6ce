package blanks

import "math/rand/v2"

// SlotState tracks the word pool and slot assignments for one
// fill-in-the-blanks step. Words move from the pool into the lowest
// unfilled slot on TapWord and back into the pool on TapBlank; a word is
// never available and assigned at the same time unless the pool itself
// repeats it.
type SlotState struct {
	Template  Template
	Available []string
	Filled    map[int]string // blank index → assigned word
}

// shuffler lets tests pin the shuffle order. Defaults to rand.Shuffle.
var shuffle = func(words []string) {
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

// NewSlotState builds the slot state for a tokenized template. The pool is
// the activity's word blocks when present, otherwise the blank answers
// themselves; it is shuffled on entry.
func NewSlotState(tmpl Template, wordBlocks []string) *SlotState {
	pool := wordBlocks
	if len(pool) == 0 {
		pool = tmpl.CorrectWords
	}

	available := append([]string(nil), pool...)
	shuffle(available)

	return &SlotState{
		Template:  tmpl,
		Available: available,
		Filled:    make(map[int]string),
	}
}

// TapWord assigns word to the first unfilled blank, scanning ascending,
// and removes it from the pool. Returns false if the word is not in the
// pool or every blank is already filled.
func (s *SlotState) TapWord(word string) bool {
	at := -1
	for i, w := range s.Available {
		if w == word {
			at = i
			break
		}
	}
	if at < 0 {
		return false
	}

	for idx := 0; idx < s.Template.Blanks(); idx++ {
		if _, filled := s.Filled[idx]; !filled {
			s.Filled[idx] = word
			s.Available = append(s.Available[:at], s.Available[at+1:]...)
			return true
		}
	}
	return false
}

// TapBlank clears the blank at index, returning its word to the pool
// (reshuffled). Returns false if the blank is empty or out of range.
func (s *SlotState) TapBlank(index int) bool {
	word, filled := s.Filled[index]
	if !filled {
		return false
	}
	delete(s.Filled, index)
	s.Available = append(s.Available, word)
	shuffle(s.Available)
	return true
}

// AllFilled reports whether every blank has an assigned word. This gates
// answer checking in the player.
func (s *SlotState) AllFilled() bool {
	return len(s.Filled) == s.Template.Blanks()
}

// Correct reports whether every blank holds exactly its expected word.
// Order-sensitive, case-sensitive, exact string match.
func (s *SlotState) Correct() bool {
	for idx, want := range s.Template.CorrectWords {
		if s.Filled[idx] != want {
			return false
		}
	}
	return true
}
