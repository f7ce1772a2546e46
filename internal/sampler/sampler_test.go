package sampler

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
)

type countingObserver struct {
	accepted int
	rejected int
}

func (o *countingObserver) Observe(accepted bool) {
	if accepted {
		o.accepted++
		return
	}
	o.rejected++
}

// allBytes returns every byte value once, in ascending order.
func allBytes() []byte {
	out := make([]byte, byteRange)
	for i := range out {
		out[i] = byte(i)
	}

	return out
}

func TestIndexByteSweepIsExactlyUniform(t *testing.T) {
	for n := 1; n <= byteRange; n++ {
		var (
			obs    = &countingObserver{}
			s      = New(bytes.NewReader(allBytes()), WithObserver(obs))
			counts = make([]int, n)
			limit  = byteRange - byteRange%n
		)

		for {
			i, err := s.Index(n)
			if err != nil {
				require.ErrorIs(t, err, io.EOF, "n=%d", n)
				break
			}

			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, n)
			counts[i]++
		}

		for i, c := range counts {
			if c != limit/n {
				t.Fatalf("n=%d: index %d drawn %d times, want %d", n, i, c, limit/n)
			}
		}

		assert.Equal(t, limit, obs.accepted, "n=%d", n)
		assert.Equal(t, byteRange-limit, obs.rejected, "n=%d", n)
	}
}

func TestIndexRejectsBiasedBytes(t *testing.T) {
	obs := &countingObserver{}
	s := New(bytes.NewReader([]byte{255, 4}), WithObserver(obs))

	// limit for n=3 is 255, so 255 is rejected and 4 maps to 1.
	i, err := s.Index(3)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 1, obs.rejected)
	assert.Equal(t, 1, obs.accepted)
}

func TestIndexWideAlphabet(t *testing.T) {
	// 300 symbols need two bytes per draw; 65535 is above the limit of 65400.
	s := New(bytes.NewReader([]byte{0xFF, 0xFF, 0x01, 0x2D}))

	i, err := s.Index(300)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestDrawSpace(t *testing.T) {
	testCases := []struct {
		n             int
		width         int
		space         uint64
		expectedError error
	}{
		{n: 1, width: 1, space: 256},
		{n: 256, width: 1, space: 256},
		{n: 257, width: 2, space: 65536},
		{n: 65536, width: 2, space: 65536},
		{n: 65537, width: 3, space: 1 << 24},
		{n: 1<<56 + 1, expectedError: ErrAlphabetTooLarge},
	}

	for _, tc := range testCases {
		width, space, err := drawSpace(tc.n)

		if tc.expectedError != nil {
			require.ErrorIs(t, err, tc.expectedError)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tc.width, width, "n=%d", tc.n)
		assert.Equal(t, tc.space, space, "n=%d", tc.n)
	}
}

func TestIndexEmptyAlphabet(t *testing.T) {
	s := New(iotest.ErrReader(errors.New("must not be read")))

	_, err := s.Index(0)
	require.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)

	_, err = s.Pick(nil)
	require.ErrorIs(t, err, alphabet.ErrEmptyAlphabet)
}

func TestIndexEntropyFailure(t *testing.T) {
	boom := errors.New("entropy pool unavailable")
	s := New(iotest.ErrReader(boom))

	_, err := s.Index(10)
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}

func TestIndexShortRead(t *testing.T) {
	s := New(bytes.NewReader([]byte{0x01}))

	_, err := s.Index(300)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestIndexTooManyRejections(t *testing.T) {
	obs := &countingObserver{}
	s := New(bytes.NewReader(bytes.Repeat([]byte{0xFF}, MaxDraws+1)), WithObserver(obs))

	_, err := s.Index(3)
	require.ErrorIs(t, err, ErrTooManyRejections)
	assert.Equal(t, MaxDraws, obs.rejected)
}

func TestPick(t *testing.T) {
	s := New(bytes.NewReader([]byte{0, 1, 2, 3}))
	a := alphabet.New("xyz")

	var got []rune

	for range 4 {
		r, err := s.Pick(a)
		require.NoError(t, err)

		got = append(got, r)
	}

	assert.Equal(t, []rune("xyzx"), got)
}

func TestNewDefaultsToCryptoRand(t *testing.T) {
	for _, s := range []*Sampler{New(nil), Default()} {
		i, err := s.Index(62)
		require.NoError(t, err)
		assert.Less(t, i, 62)
	}
}

func TestIndexDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	const perSymbol = 4000

	s := Default()

	for _, n := range []int{2, 3, 7, 62, 100, 256, 300} {
		counts := make([]int, n)

		for range n * perSymbol {
			i, err := s.Index(n)
			require.NoError(t, err)

			counts[i]++
		}

		// roughly ten standard deviations
		for i, c := range counts {
			if c < perSymbol*85/100 || c > perSymbol*115/100 {
				t.Errorf("n=%d: index %d drawn %d times, want about %d", n, i, c, perSymbol)
			}
		}
	}
}
