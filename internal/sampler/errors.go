package sampler

import "errors"

var (
	// ErrTooManyRejections is returned when MaxDraws consecutive draws were rejected.
	// With a working entropy source this does not happen in practice.
	ErrTooManyRejections = errors.New("sampler: too many rejected draws")

	// ErrAlphabetTooLarge is returned when the alphabet does not fit the widest draw.
	ErrAlphabetTooLarge = errors.New("sampler: alphabet too large")
)
