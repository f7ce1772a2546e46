package alphabet

import "errors"

var (
	// ErrUnknownPreset is returned when a preset name is not part of the table.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrEmptyAlphabet is returned when an alphabet without characters is used to draw from.
	ErrEmptyAlphabet = errors.New("alphabet must contain at least one character")

	// ErrNoAlphabet is returned when a zero Source is resolved.
	ErrNoAlphabet = errors.New("no alphabet or preset given")

	// ErrPresetNameEmpty is returned when a custom preset is defined without a name.
	ErrPresetNameEmpty = errors.New("preset name can not be empty")

	// ErrPresetRedefined is returned when a custom preset reuses a built-in name.
	ErrPresetRedefined = errors.New("built-in preset can not be redefined")
)
