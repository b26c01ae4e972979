package kb

import "github.com/petrijr/fpsemi/pkg/api"

// Element is a word already reduced to canonical form, together with a
// non-owning reference to the System that produced it. Elements are the unit
// exchanged between the rewriting engine and the enumeration index. Equality
// is structural: two elements are equal iff their canonical forms are.
//
// Elements are only meaningful once the owning system is confluent.
type Element struct {
	sys  *System
	word string
}

// NewElement reduces w and wraps it.
func NewElement(sys *System, w api.Word) Element {
	return Element{sys: sys, word: sys.Rewrite(FromWord(w))}
}

// GeneratorElement is the element of generator i.
func GeneratorElement(sys *System, i int) Element {
	return Element{sys: sys, word: sys.Rewrite(Generator(i))}
}

// Identity is the element of the empty word.
func Identity(sys *System) Element {
	return Element{sys: sys, word: sys.Rewrite("")}
}

// Key returns the canonical form, suitable as a map key.
func (e Element) Key() string { return e.word }

// Word decodes the canonical form back into a word.
func (e Element) Word() api.Word { return ToWord(e.word) }

// Equal reports structural equality of canonical forms.
func (e Element) Equal(f Element) bool { return e.word == f.word }

// MulGen right-multiplies by generator j and re-reduces.
func (e Element) MulGen(j int) Element {
	return Element{sys: e.sys, word: e.sys.Rewrite(e.word + Generator(j))}
}
