package keycheck

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
)

// Constraints are the rules a key is checked against. Zero fields are not checked.
type Constraints struct {
	// Source designates the allowed characters of the core. An explicit empty
	// alphabet allows nothing.
	Source alphabet.Source

	MinLength *int `validate:"omitempty,gte=0"`
	MaxLength *int `validate:"omitempty,gte=0"`

	// Prefix and Suffix are the literal affixes; empty means not given.
	Prefix string
	Suffix string
}

// Int returns a pointer to v, for the optional length bounds.
func Int(v int) *int {
	return &v
}

// Validator checks keys. It holds no per-call state.
type Validator struct {
	presets   alphabet.Table
	validator *validator.Validate
}

// New returns a Validator resolving preset names from presets.
func New(presets alphabet.Table) *Validator {
	return &Validator{
		presets:   presets,
		validator: validator.New(),
	}
}

// Validate checks key against c.
//
// The length bounds are checked as alternatives: the minimum first, and the
// maximum only when the minimum did not fail. A given bound of 0 counts as a
// constraint and suppresses the no-constraint hint.
func (v *Validator) Validate(key string, c Constraints) (Report, error) {
	if err := v.validator.Struct(c); err != nil {
		return Report{}, errors.Wrap(ErrInvalidConstraints, err.Error())
	}

	var (
		raw    = []rune(key)
		core   = strip(raw, c.Prefix, c.Suffix)
		report = Report{
			Length:    len(core),
			MinLength: copyInt(c.MinLength),
			MaxLength: copyInt(c.MaxLength),
			Reasons:   []string{},
			Hints:     []string{},
		}
	)

	if !c.Source.IsZero() {
		chars, err := v.presets.Resolve(c.Source)
		if err != nil {
			return Report{}, err
		}

		report.ExpectedCharset = chars.Strings()
		checkCharset(&report, core, chars)
	}

	checkLength(&report, len(raw), c)
	checkAffixes(&report, key, raw, c)

	if c.Source.IsZero() && c.Prefix == "" && c.Suffix == "" && c.MinLength == nil && c.MaxLength == nil {
		report.Hints = append(report.Hints, hintNoCharset)
	}

	if len(report.Reasons) == 0 {
		report.Valid = true
		report.Reasons = []string{NoErrors}
	}

	return report, nil
}

// IsValid reports whether key satisfies c.
func (v *Validator) IsValid(key string, c Constraints) (bool, error) {
	report, err := v.Validate(key, c)
	if err != nil {
		return false, err
	}

	return report.Valid, nil
}

// ValidateAll validates every key against c and numbers the reports.
func (v *Validator) ValidateAll(keys []string, c Constraints) ([]Report, error) {
	reports := make([]Report, 0, len(keys))

	for i, key := range keys {
		report, err := v.Validate(key, c)
		if err != nil {
			return nil, err
		}

		report.KeyNumber = fmt.Sprintf("%d out of %d", i+1, len(keys))
		reports = append(reports, report)
	}

	return reports, nil
}

// strip removes as many characters as the affixes are long, without looking
// at their content. Oversized or overlapping affixes leave an empty core.
func strip(raw []rune, prefix, suffix string) []rune {
	var (
		start = min(len([]rune(prefix)), len(raw))
		end   = max(len(raw)-len([]rune(suffix)), start)
	)

	return raw[start:end]
}

func checkCharset(report *Report, core []rune, chars alphabet.Alphabet) {
	var (
		allowed = chars.Set()
		seen    = make(map[rune]struct{})
		invalid []rune
	)

	for _, r := range core {
		if _, ok := allowed[r]; ok {
			continue
		}

		if _, dup := seen[r]; dup {
			continue
		}

		seen[r] = struct{}{}
		invalid = append(invalid, r)
	}

	if len(invalid) == 0 {
		return
	}

	slices.Sort(invalid)

	names := make([]string, len(invalid))
	for i, r := range invalid {
		names[i] = string(r)
	}

	report.Reasons = append(report.Reasons, reasonInvalidChars+strings.Join(names, ", "))

	if _, ok := seen[AffixSeparator]; ok {
		report.Hints = append(report.Hints, hintSeparator)
	}
}

// checkLength adds at most one length reason. The affix hint fires when the
// raw key would have passed the failed bound; for max that never happens since
// the raw key is never shorter than its core, the branch mirrors the min case.
func checkLength(report *Report, rawLength int, c Constraints) {
	switch {
	case c.MinLength != nil && report.Length < *c.MinLength:
		report.Reasons = append(report.Reasons, fmt.Sprintf(reasonTooSmall, report.Length))

		if rawLength >= *c.MinLength {
			report.Hints = append(report.Hints, hintMinAffix)
		}
	case c.MaxLength != nil && report.Length > *c.MaxLength:
		report.Reasons = append(report.Reasons, fmt.Sprintf(reasonTooLarge, report.Length))

		if rawLength <= *c.MaxLength {
			report.Hints = append(report.Hints, hintMaxAffix)
		}
	}
}

func checkAffixes(report *Report, key string, raw []rune, c Constraints) {
	if c.Prefix != "" && !strings.HasPrefix(key, c.Prefix) {
		n := min(len([]rune(c.Prefix)), len(raw))
		report.Reasons = append(report.Reasons, fmt.Sprintf(reasonPrefix, c.Prefix, string(raw[:n])))
	}

	if c.Suffix != "" && !strings.HasSuffix(key, c.Suffix) {
		n := min(len([]rune(c.Suffix)), len(raw))
		report.Reasons = append(report.Reasons, fmt.Sprintf(reasonSuffix, c.Suffix, string(raw[len(raw)-n:])))
	}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}

	return Int(*p)
}
