// Package lexicon defines the lexical hierarchy the graph is expanded from.
//
// A Source exposes concepts identified by opaque ConceptIDs together with
// their hyponyms (narrower concepts), hypernyms (broader concepts) and the
// surface forms they can be referred to by. Static is an in-memory Source
// built from declared entries.
package lexicon

import (
	"errors"
	"fmt"
	"slices"
)

// ConceptID identifies a concept within a Source, e.g. "food.n.02".
type ConceptID string

var (
	// ErrUnknownConcept is returned when a Source is asked about an id it does
	// not hold.
	ErrUnknownConcept = errors.New("unknown concept")
	// ErrDuplicateConcept is returned when the same id is declared twice.
	ErrDuplicateConcept = errors.New("duplicate concept")
)

// Source is a lexical hierarchy. Implementations return ErrUnknownConcept
// (possibly wrapped) for ids they do not hold, and any other error when the
// underlying data cannot be read.
type Source interface {
	Name(id ConceptID) (string, error)
	Aliases(id ConceptID) ([]string, error)
	Hyponyms(id ConceptID) ([]ConceptID, error)
	Hypernyms(id ConceptID) ([]ConceptID, error)
}

// Entry declares one concept of a Static source. Hypernyms are derived from
// the Hyponyms of other entries.
type Entry struct {
	ID       ConceptID
	Name     string
	Lemmas   []string
	Hyponyms []ConceptID
}

type concept struct {
	name      string
	lemmas    []string
	hyponyms  []ConceptID
	hypernyms []ConceptID
}

// Static is an immutable in-memory Source.
type Static struct {
	concepts map[ConceptID]*concept
	order    []ConceptID
}

// NewStatic builds a Static source. An entry without a name is named after
// its id. Every hyponym must be declared by some entry.
func NewStatic(entries ...Entry) (*Static, error) {
	s := &Static{concepts: make(map[ConceptID]*concept, len(entries))}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: empty id", ErrUnknownConcept)
		}
		if _, exists := s.concepts[e.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateConcept, e.ID)
		}
		name := e.Name
		if name == "" {
			name = string(e.ID)
		}
		s.concepts[e.ID] = &concept{
			name:     name,
			lemmas:   slices.Clone(e.Lemmas),
			hyponyms: slices.Clone(e.Hyponyms),
		}
		s.order = append(s.order, e.ID)
	}

	for _, id := range s.order {
		for _, hypo := range s.concepts[id].hyponyms {
			child, ok := s.concepts[hypo]
			if !ok {
				return nil, fmt.Errorf("%w: %s (hyponym of %s)", ErrUnknownConcept, hypo, id)
			}
			if !slices.Contains(child.hypernyms, id) {
				child.hypernyms = append(child.hypernyms, id)
			}
		}
	}
	return s, nil
}

func (s *Static) get(id ConceptID) (*concept, error) {
	c, ok := s.concepts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConcept, id)
	}
	return c, nil
}

// Name implements Source.
func (s *Static) Name(id ConceptID) (string, error) {
	c, err := s.get(id)
	if err != nil {
		return "", err
	}
	return c.name, nil
}

// Aliases implements Source.
func (s *Static) Aliases(id ConceptID) ([]string, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.lemmas), nil
}

// Hyponyms implements Source.
func (s *Static) Hyponyms(id ConceptID) ([]ConceptID, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.hyponyms), nil
}

// Hypernyms implements Source.
func (s *Static) Hypernyms(id ConceptID) ([]ConceptID, error) {
	c, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.hypernyms), nil
}
