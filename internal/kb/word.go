// Package kb implements a string rewriting system for finitely presented
// semigroups and monoids, with Knuth-Bendix completion. Once completion
// finishes, rewriting is a pure, deterministic function mapping every word to
// the unique canonical representative of its congruence class.
package kb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/petrijr/fpsemi/pkg/api"
)

// Rewriting works on byte strings: generator i is encoded as byte(i).
// This caps presentations at api.MaxGenerators generators and makes the
// shortlex order on encoded words coincide with shortlex on generator
// indices.

// FromWord encodes a word as a rewriting-system word.
func FromWord(w api.Word) string {
	b := make([]byte, len(w))
	for i, letter := range w {
		b[i] = byte(letter)
	}
	return string(b)
}

// ToWord decodes a rewriting-system word back into a word.
func ToWord(s string) api.Word {
	w := make(api.Word, len(s))
	for i := 0; i < len(s); i++ {
		w[i] = int(s[i])
	}
	return w
}

// Generator returns the one-letter word for generator i.
func Generator(i int) string {
	return string([]byte{byte(i)})
}

// formatWord renders an encoded word as space-separated decimal letters.
// The empty word renders as "e". Used by Dump and the golden tests.
func formatWord(s string) string {
	if s == "" {
		return "e"
	}
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		parts[i] = strconv.Itoa(int(s[i]))
	}
	return strings.Join(parts, " ")
}

// parseWord is the inverse of formatWord.
func parseWord(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "e" || s == "" {
		return "", nil
	}
	var b strings.Builder
	for _, part := range strings.Fields(s) {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n >= api.MaxGenerators {
			return "", fmt.Errorf("kb: bad letter %q", part)
		}
		b.WriteByte(byte(n))
	}
	return b.String(), nil
}
