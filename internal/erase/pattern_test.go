package erase

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillPatternZeroes(t *testing.T) {
	buf := bytes.Repeat([]byte{0x5A}, 4096)
	require.NoError(t, FillPattern(PassSpec{Kind: PatternZeroes}, buf))
	for _, b := range buf {
		require.Equal(t, byte(0x00), b)
	}
}

func TestFillPatternOnes(t *testing.T) {
	buf := make([]byte, 4096)
	require.NoError(t, FillPattern(PassSpec{Kind: PatternOnes}, buf))
	for _, b := range buf {
		require.Equal(t, byte(0xFF), b)
	}
}

func TestFillPatternFixed(t *testing.T) {
	buf := make([]byte, 1024)
	require.NoError(t, FillPattern(PassSpec{Kind: PatternFixed, Byte: 0xAA}, buf))
	for _, b := range buf {
		require.Equal(t, byte(0xAA), b)
	}
}

func TestFillPatternRandom(t *testing.T) {
	first := make([]byte, 64)
	second := make([]byte, 64)

	require.NoError(t, FillPattern(PassSpec{Kind: PatternRandom}, first))
	require.NoError(t, FillPattern(PassSpec{Kind: PatternRandom}, second))

	// Два последовательных вызова не должны давать одинаковые данные
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, make([]byte, 64), first)
}

func TestFillPatternEmpty(t *testing.T) {
	require.NoError(t, FillPattern(PassSpec{Kind: PatternRandom}, nil))
	require.NoError(t, FillPattern(PassSpec{Kind: PatternZeroes}, []byte{}))
}
