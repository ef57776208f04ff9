package property

import (
	"errors"
	"fmt"
	"strings"
)

// Polarity classifies a property claim.
type Polarity int

const (
	// Positive claims are inherited and must not be contradicted by a negative claim.
	Positive Polarity = iota
	// Negative claims are inherited and block positive matches.
	Negative
	// Local claims count as positive on the declaring node and are never inherited.
	Local
)

// String returns the polarity name.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// ErrEmptyTag is returned by Parse when the input carries no tag after the prefix.
var ErrEmptyTag = errors.New("property tag cannot be empty")

// Property is a single tag with its polarity.
type Property struct {
	Tag      string
	Polarity Polarity
}

// Pos returns the positive claim on tag.
func Pos(tag string) Property { return Property{Tag: tag, Polarity: Positive} }

// Neg returns the negative claim on tag.
func Neg(tag string) Property { return Property{Tag: tag, Polarity: Negative} }

// Loc returns the local claim on tag, which holds for its node only.
func Loc(tag string) Property { return Property{Tag: tag, Polarity: Local} }

// Parse reads the textual form of a property. A bare tag is positive.
func Parse(raw string) (Property, error) {
	s := strings.TrimSpace(raw)
	p := Property{Polarity: Positive}
	if s != "" {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			p.Polarity = Negative
			s = s[1:]
		case '.':
			p.Polarity = Local
			s = s[1:]
		}
	}
	p.Tag = strings.TrimSpace(s)
	if p.Tag == "" {
		return Property{}, fmt.Errorf("%w: %q", ErrEmptyTag, raw)
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input. Intended for literals.
func MustParse(raw string) Property {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseAll parses every entry of raw, stopping at the first malformed one.
func ParseAll(raw []string) ([]Property, error) {
	out := make([]Property, 0, len(raw))
	for _, r := range raw {
		p, err := Parse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// String renders the canonical textual form. Positive claims are rendered bare.
func (p Property) String() string {
	switch p.Polarity {
	case Negative:
		return "-" + p.Tag
	case Local:
		return "." + p.Tag
	default:
		return p.Tag
	}
}

// AsLocal returns the property with positive polarity turned into local.
// Negative claims are returned unchanged.
func (p Property) AsLocal() Property {
	if p.Polarity == Positive {
		p.Polarity = Local
	}
	return p
}

// Contains reports whether set holds exactly p.
func Contains(set []Property, p Property) bool {
	for _, q := range set {
		if q == p {
			return true
		}
	}
	return false
}

// Matches tests a requested property against a set of owned claims.
//
// A negative request succeeds when the negative claim is owned, or when no
// positive or local claim for the tag is owned. A positive request succeeds
// when a positive or local claim is owned and the negative claim is not.
// A local request succeeds only when the local claim is owned.
func Matches(requested Property, owned []Property) bool {
	tag := requested.Tag
	switch requested.Polarity {
	case Negative:
		if Contains(owned, Neg(tag)) {
			return true
		}
		return !Contains(owned, Pos(tag)) && !Contains(owned, Loc(tag))
	case Local:
		return Contains(owned, Loc(tag))
	default:
		if Contains(owned, Neg(tag)) {
			return false
		}
		return Contains(owned, Pos(tag)) || Contains(owned, Loc(tag))
	}
}

// MatchesAll reports whether every requested property matches owned.
// An empty request always matches.
func MatchesAll(requested, owned []Property) bool {
	for _, r := range requested {
		if !Matches(r, owned) {
			return false
		}
	}
	return true
}
