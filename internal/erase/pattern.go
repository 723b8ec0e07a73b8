package erase

import (
	"crypto/rand"
	"fmt"
)

// FillPattern заполняет буфер паттерном прохода. Для PatternRandom данные
// генерируются криптографически стойким источником заново при каждом вызове.
func FillPattern(spec PassSpec, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	switch spec.Kind {
	case PatternZeroes:
		fillByte(buf, 0x00)
	case PatternOnes:
		fillByte(buf, 0xFF)
	case PatternFixed:
		fillByte(buf, spec.Byte)
	case PatternRandom:
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("ошибка генерации случайных данных: %w", err)
		}
	default:
		return fmt.Errorf("неизвестный тип паттерна: %d", spec.Kind)
	}

	return nil
}

// fillByte заполняет буфер одним байтом
func fillByte(buf []byte, b byte) {
	for i := range buf {
		buf[i] = b
	}
}
