package ternary

import (
	"crypto/rand"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/iotaledger/iota.go/trinary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBytes(t *testing.T) {
	for _, size := range []int{1, 4, 32, 36, 100} {
		src := make([]byte, size)
		_, err := rand.Read(src)
		require.NoError(t, err)

		trits := EncodeBytes(src)
		assert.Len(t, trits, size*TritsPerByte)
		assert.Equal(t, EncodedTritsLen(size), len(trits))

		decoded, err := DecodeTrits(trits)
		require.NoError(t, err)
		assert.Equal(t, src, decoded)
	}
}

func TestEncodeAllByteValues(t *testing.T) {
	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}

	trytes := EncodeToTrytes(src)
	assert.Len(t, trytes, len(src)*TrytesPerByte)

	decoded, err := DecodeTrytes(trytes)
	require.NoError(t, err)
	assert.Equal(t, src, decoded)

	// trits and trytes forms describe the same encoding
	assert.Equal(t, TritsOf(trytes), EncodeBytes(src))
}

func TestDecodeTritsInvalidLength(t *testing.T) {
	_, err := DecodeTrits(make(trinary.Trits, 7))
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestDecodeTritsOutOfRange(t *testing.T) {
	// 13 + 13*27 = 364 is outside of the signed byte range
	trits := trinary.Trits{1, 1, 1, 1, 1, 1}
	_, err := DecodeTrits(trits)
	assert.True(t, errors.Is(err, ErrInvalidTrits))

	_, err = DecodeTrytes("MM")
	assert.True(t, errors.Is(err, ErrInvalidTrits))
}

func TestDecodeTrytesInvalid(t *testing.T) {
	_, err := DecodeTrytes("ABC")
	assert.True(t, errors.Is(err, ErrInvalidLength))

	_, err = DecodeTrytes("a9")
	assert.True(t, errors.Is(err, ErrInvalidTrytes))
}

func TestParseTrytes(t *testing.T) {
	trytes, err := ParseTrytes("  TRANSFER9\n")
	require.NoError(t, err)
	assert.EqualValues(t, "TRANSFER9", trytes)

	_, err = ParseTrytes("transfer")
	assert.True(t, errors.Is(err, ErrInvalidTrytes))

	_, err = ParseTrytes("")
	assert.True(t, errors.Is(err, ErrInvalidTrytes))
}

func TestTrytesOf(t *testing.T) {
	trytes, err := TrytesOf(TritsOf("TRANSFER"))
	require.NoError(t, err)
	assert.EqualValues(t, "TRANSFER", trytes)

	_, err = TrytesOf(trinary.Trits{0, 1})
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

var sampleBytes = make([]byte, 36)

func BenchmarkEncodeBytes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EncodeBytes(sampleBytes)
	}
}

func BenchmarkDecodeTrits(b *testing.B) {
	trits := EncodeBytes(sampleBytes)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = DecodeTrits(trits)
	}
}
