// Package keygen composes keys from a literal prefix, a random core and a
// literal suffix.
package keygen

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/sampler"
)

const (
	// DefaultLength is the core length used when the caller has no preference.
	DefaultLength = 42

	// MaxLength is the longest core a request may ask for. Keep in sync with
	// the lte rule on Request.Length.
	MaxLength = 65536
)

// Request describes one key.
type Request struct {
	// Length is the number of random characters in the core.
	Length int `validate:"gte=0,lte=65536"`

	// Source designates the alphabet. The zero Source selects alphabet.Default.
	Source alphabet.Source

	// Prefix and Suffix are copied verbatim around the core.
	Prefix string
	Suffix string
}

// Generator builds keys by sampling one character per core position.
type Generator struct {
	presets   alphabet.Table
	sampler   *sampler.Sampler
	validator *validator.Validate
}

// New returns a Generator resolving presets from presets and drawing from s.
// A nil s means a crypto/rand backed sampler.
func New(presets alphabet.Table, s *sampler.Sampler) *Generator {
	if s == nil {
		s = sampler.Default()
	}

	return &Generator{
		presets:   presets,
		sampler:   s,
		validator: validator.New(),
	}
}

// Generate returns Prefix + core + Suffix, where the core holds Length
// independently sampled characters. Position i of the core is the i-th draw.
func (g *Generator) Generate(req Request) (string, error) {
	if err := g.validator.Struct(req); err != nil {
		return "", errors.Wrap(ErrInvalidRequest, err.Error())
	}

	chars, err := g.resolve(req.Source)
	if err != nil {
		return "", err
	}

	return g.compose(req, chars)
}

// GenerateBatch returns count keys generated one after another from req.
func (g *Generator) GenerateBatch(count int, req Request) ([]string, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrInvalidCount, "got %d", count)
	}

	if err := g.validator.Struct(req); err != nil {
		return nil, errors.Wrap(ErrInvalidRequest, err.Error())
	}

	chars, err := g.resolve(req.Source)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, count)

	for range count {
		key, err := g.compose(req, chars)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, nil
}

func (g *Generator) resolve(src alphabet.Source) (alphabet.Alphabet, error) {
	if src.IsZero() {
		src = alphabet.Preset(alphabet.Default)
	}

	chars, err := g.presets.Resolve(src)
	if err != nil {
		return nil, err
	}

	if chars.Len() == 0 {
		return nil, alphabet.ErrEmptyAlphabet
	}

	return chars, nil
}

func (g *Generator) compose(req Request, chars alphabet.Alphabet) (string, error) {
	var b strings.Builder

	b.WriteString(req.Prefix)

	for range req.Length {
		r, err := g.sampler.Pick(chars)
		if err != nil {
			return "", err
		}

		b.WriteRune(r)
	}

	b.WriteString(req.Suffix)

	return b.String(), nil
}
