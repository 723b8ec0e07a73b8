package erase

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.bin")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x11}, size), 0644))
	return path
}

func TestExecutePassWritesPattern(t *testing.T) {
	// Размер не кратен чанку, чтобы проверить последний частичный чанк
	size := 3*DefaultChunkSize + 777
	path := writeTempFile(t, size)

	var events []uint64
	written, err := executePass(context.Background(), path, PassSpec{Kind: PatternFixed, Byte: 0xAA}, uint64(size), 0, 0, func(w uint64) {
		events = append(events, w)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(size), written)

	// Файл не усечен и полностью заполнен паттерном
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, size)
	for _, b := range data {
		require.Equal(t, byte(0xAA), b)
	}

	// Прогресс монотонно растет и завершается полным размером
	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.Greater(t, events[i], events[i-1])
	}
	assert.Equal(t, uint64(size), events[len(events)-1])
}

func TestExecutePassZeroLength(t *testing.T) {
	path := writeTempFile(t, 0)

	calls := 0
	written, err := executePass(context.Background(), path, PassSpec{Kind: PatternZeroes}, 0, 0, 0, func(w uint64) {
		calls++
		assert.Equal(t, uint64(0), w)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), written)
	assert.Equal(t, 1, calls)
}

func TestExecutePassMissingFile(t *testing.T) {
	_, err := executePass(context.Background(), filepath.Join(t.TempDir(), "nope.bin"), PassSpec{Kind: PatternZeroes}, 10, 0, 0, nil)
	require.Error(t, err)
}

func TestExecutePassShrunkFile(t *testing.T) {
	path := writeTempFile(t, 10)

	// Зафиксированный размер больше фактического: файл изменился извне
	written, err := executePass(context.Background(), path, PassSpec{Kind: PatternZeroes}, 100, 0, 0, nil)
	require.Error(t, err)
	assert.Equal(t, uint64(0), written)
}

func TestExecutePassCancelled(t *testing.T) {
	size := 8 * 4096
	path := writeTempFile(t, size)

	ctx, cancel := context.WithCancel(context.Background())

	var events int
	written, err := executePass(ctx, path, PassSpec{Kind: PatternZeroes}, uint64(size), 4096, 0, func(w uint64) {
		events++
		if events == 2 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(2*4096), written)
	assert.Equal(t, 2, events)
}
