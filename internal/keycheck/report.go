package keycheck

// Reason and hint texts.
const (
	// NoErrors is the only reason of a valid report.
	NoErrors = "No errors."

	reasonInvalidChars = "Invalid characters: "
	reasonTooSmall     = "Too small (length of key): %d"
	reasonTooLarge     = "Too large (length of key): %d"
	reasonPrefix       = "Invalid prefix: expected '%s', found '%s'"
	reasonSuffix       = "Invalid suffix: expected '%s', found '%s'"

	hintSeparator = "Found '_' among invalid characters. Did you intend it as a prefix/suffix separator?"
	hintMinAffix  = "'min_length' failure: did you mean to include affixes in the check?"
	hintMaxAffix  = "'max_length' failure: did you mean to include affixes in the check?"
	hintNoCharset = "No 'alphabet' or preset was provided. All characters are considered valid. " +
		"Did you mean to provide an empty list instead?"
)

// AffixSeparator is the character conventionally joining affixes to the core.
const AffixSeparator = '_'

// Report is the outcome of validating one key.
type Report struct {
	Valid bool `json:"valid" yaml:"valid"`

	// ExpectedCharset lists the allowed characters, nil when no alphabet was given.
	ExpectedCharset []string `json:"expected_charset" yaml:"expected_charset"`

	// Length is the length of the core, affixes excluded.
	Length int `json:"length" yaml:"length"`

	MinLength *int `json:"min_length" yaml:"min_length"`
	MaxLength *int `json:"max_length" yaml:"max_length"`

	// Reasons holds one entry per failed check, or exactly NoErrors.
	Reasons []string `json:"reasons" yaml:"reasons"`

	// Hints are advisory only.
	Hints []string `json:"hints" yaml:"hints"`

	// KeyNumber is set by ValidateAll, e.g. "2 out of 5".
	KeyNumber string `json:"key_number,omitempty" yaml:"key_number,omitempty"`
}
