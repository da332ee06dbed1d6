package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide retorna 0 quando o denominador é zero, nunca NaN ou Inf
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}

// IsBlank indica se o texto digitado está vazio ou só contém espaços
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseNumeric converte o texto de um campo numérico. Texto vazio ou inválido vale 0.
//
// Formatos aceitos: "1234.56", "12,5", "1.234,56" (milhar com ponto, decimal com vírgula)
// e "1,234.56" (milhar com vírgula, decimal com ponto). O último separador é o decimal.
// "1.234" sem vírgula é lido como 1,234.
func ParseNumeric(s string) float64 {
	value, ok := ParseNumericStrict(s)
	if !ok {
		return 0
	}
	return value
}

// ParseNumericStrict é como ParseNumeric, mas informa se o texto era um número finito
func ParseNumericStrict(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	lastComma, lastDot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")
	switch {
	case lastComma > lastDot:
		s = strings.ReplaceAll(s[:lastComma], ".", "") + "." + s[lastComma+1:]
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// ParseInteger converte contagens, descartando a parte fracionária.
// Texto inválido ou fora da faixa de int vale 0.
func ParseInteger(s string) int {
	value, ok := ParseIntegerStrict(s)
	if !ok {
		return 0
	}
	return value
}

// ParseIntegerStrict é como ParseInteger, mas informa se o texto era um número que cabe em int
func ParseIntegerStrict(s string) (int, bool) {
	value, ok := ParseNumericStrict(s)
	if !ok {
		return 0, false
	}

	// -float64(math.MinInt) é 2^N exato; float64(math.MaxInt) arredondaria para cima
	value = math.Trunc(value)
	if value < float64(math.MinInt) || value >= -float64(math.MinInt) {
		return 0, false
	}

	return int(value), true
}
