package alphabet

// CustomLabel names explicit alphabets in logs and metrics.
const CustomLabel = "custom"

// Source designates the alphabet a key is checked against or drawn from.
// The zero value means no alphabet was given.
type Source struct {
	preset   string
	chars    Alphabet
	explicit bool
}

// Preset designates the alphabet registered under name.
func Preset(name string) Source {
	return Source{preset: name}
}

// Custom designates the characters of chars verbatim. An empty chars is an
// explicit empty alphabet, which is not the same as no alphabet.
func Custom(chars string) Source {
	return Explicit(New(chars))
}

// Explicit designates a copy of a verbatim.
func Explicit(a Alphabet) Source {
	chars := a.Clone()
	if chars == nil {
		chars = Alphabet{}
	}

	return Source{chars: chars, explicit: true}
}

// IsZero reports whether no alphabet was designated.
func (s Source) IsZero() bool {
	return !s.explicit && s.preset == ""
}

// IsExplicit reports whether the source carries its own characters.
func (s Source) IsExplicit() bool {
	return s.explicit
}

// PresetName returns the preset name, empty for explicit or zero sources.
func (s Source) PresetName() string {
	if s.explicit {
		return ""
	}

	return s.preset
}

// Label returns the preset name, CustomLabel for explicit alphabets and an
// empty string for the zero source.
func (s Source) Label() string {
	if s.explicit {
		return CustomLabel
	}

	return s.preset
}
