package erase

import (
	"sync"
)

// Пул буферов для чанков записи. Проходы выполняются последовательно,
// но буферы переиспользуются между проходами и между операциями.
var chunkPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, DefaultChunkSize)
	},
}

// getChunk возвращает буфер не меньше запрошенного размера
func getChunk(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := chunkPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// putChunk возвращает буфер в пул, предварительно затирая содержимое,
// чтобы паттерн последнего прохода не задерживался в памяти
func putChunk(buf []byte) {
	if cap(buf) == 0 {
		return
	}

	full := buf[:cap(buf)]
	for i := range full {
		full[i] = 0
	}
	chunkPool.Put(full)
}
