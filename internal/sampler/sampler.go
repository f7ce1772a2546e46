package sampler

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
)

const (
	// byteRange is the total number of possible byte values (2^8).
	byteRange = 256

	// maxWidth is the widest draw in bytes; the sample space must fit a uint64.
	maxWidth = 7

	// MaxDraws bounds the attempts for one symbol. Each attempt is accepted
	// with a probability above 1/2.
	MaxDraws = 128
)

// Observer is told about every draw and whether it was accepted.
type Observer interface {
	Observe(accepted bool)
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithObserver reports every draw to o.
func WithObserver(o Observer) Option {
	return func(s *Sampler) {
		s.observer = o
	}
}

// Sampler draws uniformly distributed indexes from an entropy source.
// It keeps no random state of its own: every draw reads fresh bytes.
type Sampler struct {
	source   io.Reader
	observer Observer
}

// New returns a Sampler reading from source. A nil source means crypto/rand.
func New(source io.Reader, opts ...Option) *Sampler {
	if source == nil {
		source = rand.Reader
	}

	s := &Sampler{source: source}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Default returns a Sampler backed by crypto/rand.
func Default() *Sampler {
	return New(rand.Reader)
}

// Pick returns one symbol of a, each with probability 1/len(a).
func (s *Sampler) Pick(a alphabet.Alphabet) (rune, error) {
	i, err := s.Index(a.Len())
	if err != nil {
		return 0, err
	}

	return a[i], nil
}

// Index returns an integer in [0, n) with probability 1/n each.
//
// A draw reads the smallest number of bytes whose value space covers n. Values
// at or above the largest multiple of n in that space are rejected, so every
// index is hit by exactly the same number of byte patterns.
func (s *Sampler) Index(n int) (int, error) {
	if n <= 0 {
		return 0, alphabet.ErrEmptyAlphabet
	}

	width, space, err := drawSpace(n)
	if err != nil {
		return 0, err
	}

	var (
		size  = uint64(n)
		limit = space - space%size
		buf   = make([]byte, width)
	)

	for range MaxDraws {
		if _, err := io.ReadFull(s.source, buf); err != nil {
			return 0, errors.Wrap(err, "sampler: failed to read entropy")
		}

		v := decode(buf)
		accepted := v < limit

		if s.observer != nil {
			s.observer.Observe(accepted)
		}

		if accepted {
			return int(v % size), nil
		}
	}

	return 0, errors.Wrapf(ErrTooManyRejections, "alphabet of %d symbols", n)
}

// drawSpace returns the draw width in bytes and the size of its value space.
func drawSpace(n int) (int, uint64, error) {
	var (
		width = 1
		space = uint64(byteRange)
	)

	for space < uint64(n) {
		if width == maxWidth {
			return 0, 0, errors.Wrapf(ErrAlphabetTooLarge, "%d symbols", n)
		}

		width++
		space *= byteRange
	}

	return width, space, nil
}

// decode reads buf as a big-endian unsigned integer.
func decode(buf []byte) uint64 {
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}

	return v
}
