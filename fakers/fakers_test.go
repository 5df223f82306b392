package fakers

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerIsInclusive(t *testing.T) {
	f := New(0)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		n := f.Integer(1, 3)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 3)
		seen[n] = true
	}
	assert.True(t, seen[1], "lower bound never generated")
	assert.True(t, seen[3], "upper bound never generated")
}

func TestScoreRangesNeverOverlap(t *testing.T) {
	require.Greater(t, maxScoreLow, minScoreHigh)
	f := New(0)
	for i := 0; i < 200; i++ {
		max, min := f.MaxScore(), f.MinScore()
		assert.GreaterOrEqual(t, max, 50)
		assert.LessOrEqual(t, max, 100)
		assert.GreaterOrEqual(t, min, 1)
		assert.LessOrEqual(t, min, 30)
		assert.Greater(t, max, min)
	}
}

func TestFormatWeeks(t *testing.T) {
	assert.Equal(t, "1 week", FormatWeeks(1))
	for n := 2; n <= 10; n++ {
		assert.True(t, strings.HasSuffix(FormatWeeks(n), " weeks"), FormatWeeks(n))
	}
}

func TestEstimatedTimeShape(t *testing.T) {
	f := New(0)
	for i := 0; i < 100; i++ {
		s := f.EstimatedTime()
		assert.Regexp(t, `^([1-9]|10) weeks?$`, s)
		if s == "1 week" {
			continue
		}
		assert.True(t, strings.HasSuffix(s, "weeks"), s)
	}
}

func TestSeededFakesAreReproducible(t *testing.T) {
	a, b := New(42), New(42)
	assert.Equal(t, a.Email(""), b.Email(""))
	assert.Equal(t, a.Sentence(), b.Sentence())
	assert.Equal(t, a.MaxScore(), b.MaxScore())
}

func TestGeneratedValuesArePresent(t *testing.T) {
	f := New(0)
	_, err := uuid.Parse(f.UUID4())
	assert.NoError(t, err)
	assert.Contains(t, f.Email(""), "@")
	assert.True(t, strings.HasSuffix(f.Email("example.com"), "@example.com"))
	assert.NotEmpty(t, f.Text())
	assert.NotEmpty(t, f.FirstName())
	assert.NotEmpty(t, f.LastName())
	assert.NotEmpty(t, f.MiddleName())
	assert.GreaterOrEqual(t, len(f.Password()), 8)
}
