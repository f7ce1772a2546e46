package alphabet

import (
	"slices"
)

// Alphabet is an ordered sequence of characters eligible for random selection.
type Alphabet []rune

// New returns the alphabet made of the characters of chars, in order.
func New(chars string) Alphabet {
	return Alphabet([]rune(chars))
}

// Len returns the number of symbols, duplicates included.
func (a Alphabet) Len() int {
	return len(a)
}

// String returns the characters of the alphabet as one string.
func (a Alphabet) String() string {
	return string(a)
}

// Contains reports whether r is one of the symbols.
func (a Alphabet) Contains(r rune) bool {
	return slices.Contains(a, r)
}

// Set returns the distinct symbols as a lookup set.
func (a Alphabet) Set() map[rune]struct{} {
	set := make(map[rune]struct{}, len(a))
	for _, r := range a {
		set[r] = struct{}{}
	}

	return set
}

// Strings returns every symbol as its own string, keeping order and duplicates.
func (a Alphabet) Strings() []string {
	out := make([]string, len(a))
	for i, r := range a {
		out[i] = string(r)
	}

	return out
}

// Clone returns a copy that does not share storage with a.
func (a Alphabet) Clone() Alphabet {
	if a == nil {
		return nil
	}

	return slices.Clone(a)
}
