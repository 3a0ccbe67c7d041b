package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCodeIsDeterministic(t *testing.T) {
	first, err := EncodeCode(12, 345, 0)
	require.NoError(t, err)
	second, err := EncodeCode(12, 345, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{6,}$`), first)
}

func TestEncodeCodeIsSaltedByOwner(t *testing.T) {
	for postID := int64(1); postID <= 50; postID++ {
		a, err := EncodeCode(1, postID, 0)
		require.NoError(t, err)
		b, err := EncodeCode(2, postID, 0)
		require.NoError(t, err)
		assert.NotEqual(t, a, b, "post %d", postID)
	}
}

func TestDecodeCodeRoundTrip(t *testing.T) {
	for _, postID := range []int64{1, 9, 1000, 987654321} {
		code, err := EncodeCode(77, postID, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(code), codeMinLength)

		decoded, err := DecodeCode(77, code)
		require.NoError(t, err)
		assert.Equal(t, postID, decoded)
	}
}

func TestDecodeCodeWithWrongOwner(t *testing.T) {
	code, err := EncodeCode(3, 10, 0)
	require.NoError(t, err)

	decoded, err := DecodeCode(4, code)
	if err == nil {
		assert.NotEqual(t, int64(10), decoded)
	}
}

func TestRetryAttemptsYieldFreshDecodableCodes(t *testing.T) {
	seen := map[string]bool{}
	for attempt := 0; attempt < 4; attempt++ {
		code, err := EncodeCode(5, 400, attempt)
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^[a-z0-9]{6,}$`), code)
		assert.False(t, seen[code], "attempt %d repeated %s", attempt, code)
		seen[code] = true

		decoded, err := DecodeCode(5, code)
		require.NoError(t, err)
		assert.Equal(t, int64(400), decoded)
	}
}
