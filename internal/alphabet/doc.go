// Package alphabet defines the character sets keys are drawn from.
//
// An Alphabet is an ordered sequence of characters. Repeated characters are
// allowed and weight the distribution toward the repeated symbol. A Table maps
// preset names onto alphabets; it is built once, never mutated afterwards and
// handed to the generator and the validator explicitly.
//
// A Source describes how a caller designates an alphabet: not at all (the zero
// value), by preset name, or by an explicit list of characters.
package alphabet
