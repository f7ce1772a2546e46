package alphabet

import (
	"sort"

	"github.com/pkg/errors"
)

// Built-in preset names.
const (
	Alphanumeric = "alphanumeric"
	Hex          = "hex"
	Base64       = "base64"
	Safe         = "safe"
	Lowercase    = "lowercase"
	Uppercase    = "uppercase"
	Numbers      = "numbers"
	// Printable holds digits, letters and ASCII punctuation (94 characters).
	// Space and the other whitespace characters are not part of it.
	Printable = "printable"

	// Default is used by the generator when no alphabet is given.
	Default = Alphanumeric
)

const (
	lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars       = "0123456789"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// builtins keeps the presets in listing order.
var builtins = []struct { //nolint:gochecknoglobals
	name  string
	chars string
}{
	{Alphanumeric, lowercaseChars + uppercaseChars + digitChars},
	{Hex, digitChars + "abcdef"},
	{Base64, lowercaseChars + uppercaseChars + digitChars + "+/"},
	{Safe, lowercaseChars + uppercaseChars + digitChars + "-_"},
	{Lowercase, lowercaseChars},
	{Uppercase, uppercaseChars},
	{Numbers, digitChars},
	{Printable, digitChars + lowercaseChars + uppercaseChars + punctuationChars},
}

// Table maps preset names onto alphabets. It is read-only after construction
// and safe to share.
type Table struct {
	names   []string
	presets map[string]Alphabet
}

// DefaultTable returns a table holding only the built-in presets.
func DefaultTable() Table {
	t := Table{
		names:   make([]string, 0, len(builtins)),
		presets: make(map[string]Alphabet, len(builtins)),
	}

	for _, b := range builtins {
		t.names = append(t.names, b.name)
		t.presets[b.name] = New(b.chars)
	}

	return t
}

// NewTable returns the built-in presets extended by custom, a map of preset
// name to characters. Custom presets are listed after the built-ins, sorted by name.
func NewTable(custom map[string]string) (Table, error) {
	t := DefaultTable()

	extra := make([]string, 0, len(custom))
	for name := range custom {
		extra = append(extra, name)
	}

	sort.Strings(extra)

	for _, name := range extra {
		chars := custom[name]

		switch {
		case name == "":
			return Table{}, ErrPresetNameEmpty
		case chars == "":
			return Table{}, errors.Wrapf(ErrEmptyAlphabet, "preset %q", name)
		}

		if _, exists := t.presets[name]; exists {
			return Table{}, errors.Wrapf(ErrPresetRedefined, "preset %q", name)
		}

		t.names = append(t.names, name)
		t.presets[name] = New(chars)
	}

	return t, nil
}

// Names returns the preset names in listing order.
func (t Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Has reports whether name is a known preset.
func (t Table) Has(name string) bool {
	_, ok := t.presets[name]

	return ok
}

// Lookup returns a copy of the alphabet registered under name.
func (t Table) Lookup(name string) (Alphabet, error) {
	a, ok := t.presets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPreset, "preset %q", name)
	}

	return a.Clone(), nil
}

// Resolve returns the alphabet designated by src. Explicit alphabets win over
// presets and are returned verbatim, even when empty.
func (t Table) Resolve(src Source) (Alphabet, error) {
	switch {
	case src.IsExplicit():
		return src.chars.Clone(), nil
	case src.IsZero():
		return nil, ErrNoAlphabet
	default:
		return t.Lookup(src.preset)
	}
}
