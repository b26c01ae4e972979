package api

import "fmt"

// A Word is a finite sequence of generator indices. Indices must lie in
// [0, nrGens) for the presentation the word is interpreted against. The empty
// word is valid and denotes the identity of the quotient monoid.
type Word []int

// W is a convenience constructor for word literals: W(0, 1, 0).
func W(letters ...int) Word {
	return Word(letters)
}

// Equal reports whether w and v are letter-for-letter identical.
// Note that two distinct words may still denote the same quotient element;
// deciding that is what a Strategy is for.
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i := range w {
		if w[i] != v[i] {
			return false
		}
	}
	return true
}

// CheckLetters panics when w uses a letter outside [0, nrGens). Strategies
// call it on every query word so that caller misuse fails loudly instead of
// silently computing with a foreign alphabet.
func CheckLetters(nrGens int, w Word) {
	for _, letter := range w {
		if letter < 0 || letter >= nrGens {
			panic(fmt.Sprintf("fpsemi: word uses letter %d, want [0, %d)", letter, nrGens))
		}
	}
}

// A Relation is a defining pair of words that are identified in the quotient.
type Relation struct {
	Left  Word
	Right Word
}

// Rel builds a Relation from two words.
func Rel(left, right Word) Relation {
	return Relation{Left: left, Right: right}
}
