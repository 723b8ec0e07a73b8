package erase

import (
	"fmt"
)

// Standard определяет стандарт санитизации данных
type Standard string

const (
	StandardSimple  Standard = "simple"
	StandardDoD     Standard = "dod-5220-22-m"
	StandardDoDECE  Standard = "dod-5220-22-m-ece"
	StandardVSITR   Standard = "vsitr"
	StandardGutmann Standard = "gutmann"
)

// PatternKind определяет тип паттерна для одного прохода
type PatternKind int

const (
	PatternZeroes PatternKind = iota
	PatternOnes
	PatternRandom
	PatternFixed
)

// PassSpec описывает один проход затирания
type PassSpec struct {
	Index int
	Kind  PatternKind
	Byte  byte // используется только для PatternFixed
}

// StandardInfo описание стандарта для внешнего вывода
type StandardInfo struct {
	ID        string
	Name      string
	PassCount int
}

// ValidateStandard проверяет корректность идентификатора стандарта
func ValidateStandard(id string) (Standard, error) {
	s := Standard(id)
	switch s {
	case StandardSimple, StandardDoD, StandardDoDECE, StandardVSITR, StandardGutmann:
		return s, nil
	default:
		return "", &EraseError{Kind: ErrUnknownStandard, Err: fmt.Errorf("неизвестный стандарт затирания: %s", id)}
	}
}

// DisplayName возвращает отображаемое имя стандарта
func (s Standard) DisplayName() string {
	switch s {
	case StandardSimple:
		return "Simple overwrite"
	case StandardDoD:
		return "DoD 5220.22-M"
	case StandardDoDECE:
		return "DoD 5220.22-M ECE"
	case StandardVSITR:
		return "German VSITR"
	case StandardGutmann:
		return "Gutmann"
	default:
		return string(s)
	}
}

// Passes возвращает упорядоченную последовательность проходов стандарта.
// Последовательность фиксирована и не меняется во время выполнения.
func (s Standard) Passes() []PassSpec {
	var specs []PassSpec
	switch s {
	case StandardSimple:
		specs = buildPasses(PatternZeroes)

	case StandardDoD:
		// DoD 5220.22-M: нули, единицы, случайные данные
		specs = buildPasses(PatternZeroes, PatternOnes, PatternRandom)

	case StandardDoDECE:
		// DoD 5220.22-M ECE: 7 проходов
		specs = buildPasses(
			PatternZeroes, PatternOnes, PatternRandom,
			PatternZeroes, PatternOnes, PatternRandom,
			PatternZeroes,
		)

	case StandardVSITR:
		// German VSITR: чередование 0x00/0xFF, финальный проход 0xAA
		specs = buildPasses(
			PatternZeroes, PatternOnes,
			PatternZeroes, PatternOnes,
			PatternZeroes, PatternOnes,
		)
		specs = append(specs, PassSpec{Index: len(specs), Kind: PatternFixed, Byte: 0xAA})

	case StandardGutmann:
		specs = gutmannPasses()
	}
	return specs
}

// PassCount возвращает количество проходов стандарта
func (s Standard) PassCount() int {
	return len(s.Passes())
}

// ListStandards возвращает все поддерживаемые стандарты в фиксированном порядке
func ListStandards() []StandardInfo {
	order := []Standard{StandardSimple, StandardDoD, StandardDoDECE, StandardVSITR, StandardGutmann}
	infos := make([]StandardInfo, 0, len(order))
	for _, s := range order {
		infos = append(infos, StandardInfo{
			ID:        string(s),
			Name:      s.DisplayName(),
			PassCount: s.PassCount(),
		})
	}
	return infos
}

// buildPasses строит последовательность проходов с непрерывными индексами
func buildPasses(kinds ...PatternKind) []PassSpec {
	specs := make([]PassSpec, 0, len(kinds))
	for i, k := range kinds {
		specs = append(specs, PassSpec{Index: i, Kind: k})
	}
	return specs
}

// gutmannPasses строит 35 проходов метода Gutmann
func gutmannPasses() []PassSpec {
	specs := make([]PassSpec, 0, 35)

	add := func(kind PatternKind, b byte) {
		specs = append(specs, PassSpec{Index: len(specs), Kind: kind, Byte: b})
	}

	// Проходы 1-4: нули
	for i := 0; i < 4; i++ {
		add(PatternZeroes, 0)
	}
	// Проходы 5-6: 0x55, 0xAA
	add(PatternFixed, 0x55)
	add(PatternFixed, 0xAA)
	// Проходы 7-10: случайные данные
	for i := 0; i < 4; i++ {
		add(PatternRandom, 0)
	}
	// Проходы 11-25: фиксированные байтовые паттерны
	fixed := []byte{
		0x92, 0x49, 0x24,
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55,
		0x66, 0x77, 0x88, 0x99, 0xAA, 0xBB,
	}
	for _, b := range fixed {
		add(PatternFixed, b)
	}
	// Проходы 26-31: случайные данные
	for i := 0; i < 6; i++ {
		add(PatternRandom, 0)
	}
	// Проходы 32-35: нули
	for i := 0; i < 4; i++ {
		add(PatternZeroes, 0)
	}

	return specs
}
