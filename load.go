package fpsemi

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// presentationDoc is the YAML shape of a presentation on disk:
//
//	generators: [a, b]
//	relations:
//	  - [aa, a]
//	  - [ba, ab]
//	extra:
//	  - [ab, ba]
//
// Generators are single-rune names; words are strings over them, with the
// empty string standing for the identity.
type presentationDoc struct {
	Generators []string   `yaml:"generators"`
	Relations  [][]string `yaml:"relations"`
	Extra      [][]string `yaml:"extra"`
}

// LoadPresentation reads a YAML presentation from r.
func LoadPresentation(r io.Reader) (*FinitePresentation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read presentation: %w", err)
	}
	var doc presentationDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse presentation: %w", err)
	}
	return doc.build()
}

// LoadPresentationFile reads a YAML presentation from the file at path.
func LoadPresentationFile(path string) (*FinitePresentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPresentation(f)
}

func (doc *presentationDoc) build() (*FinitePresentation, error) {
	if len(doc.Generators) == 0 {
		return nil, fmt.Errorf("presentation declares no generators")
	}
	letters := make(map[rune]int, len(doc.Generators))
	for i, name := range doc.Generators {
		runes := []rune(name)
		if len(runes) != 1 {
			return nil, fmt.Errorf("generator %q: names must be a single rune", name)
		}
		if _, ok := letters[runes[0]]; ok {
			return nil, fmt.Errorf("generator %q declared twice", name)
		}
		letters[runes[0]] = i
	}

	parseWord := func(s string) (Word, error) {
		w := make(Word, 0, len(s))
		for _, r := range s {
			g, ok := letters[r]
			if !ok {
				return nil, fmt.Errorf("word %q uses undeclared generator %q", s, string(r))
			}
			w = append(w, g)
		}
		return w, nil
	}
	parseRels := func(section string, pairs [][]string) ([]Relation, error) {
		rels := make([]Relation, 0, len(pairs))
		for i, pair := range pairs {
			if len(pair) != 2 {
				return nil, fmt.Errorf("%s[%d]: want a pair of words, got %d", section, i, len(pair))
			}
			left, err := parseWord(pair[0])
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", section, i, err)
			}
			right, err := parseWord(pair[1])
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", section, i, err)
			}
			rels = append(rels, Rel(left, right))
		}
		return rels, nil
	}

	rels, err := parseRels("relations", doc.Relations)
	if err != nil {
		return nil, err
	}
	extra, err := parseRels("extra", doc.Extra)
	if err != nil {
		return nil, err
	}
	return NewPresentation(len(doc.Generators), rels, extra)
}
