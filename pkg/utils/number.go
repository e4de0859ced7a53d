package utils

import (
	"math"
	"strconv"
	"strings"
)

// floatConvertible cobre json.Number e jsoniter.Number.
type floatConvertible interface {
	Float64() (float64, error)
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundPtr arredonda para duas casas mantendo nil como nil.
// math.Round arredonda metade para longe do zero.
func RoundPtr(f *float64) *float64 {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}

	rounded := RoundWithTwoDecimalPlace(*f)
	return &rounded
}

// ToNumber converte um valor vindo de JSON (float, int, string numérica)
// em *float64. Qualquer outra coisa vira nil.
func ToNumber(value any) *float64 {
	var out float64

	switch v := value.(type) {
	case float64:
		out = v
	case float32:
		out = float64(v)
	case int:
		out = float64(v)
	case int64:
		out = float64(v)
	case floatConvertible:
		parsed, err := v.Float64()
		if err != nil {
			return nil
		}
		out = parsed
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		out = parsed
	default:
		return nil
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return nil
	}

	return &out
}

// Float retorna um ponteiro para f.
func Float(f float64) *float64 {
	return &f
}

// ValueOr devolve *f ou fallback quando f é nil.
func ValueOr(f *float64, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return *f
}

// ParseIntInRange interpreta raw como inteiro; valores ausentes, inválidos
// ou fora de [min, max] retornam fallback.
func ParseIntInRange(raw string, fallback, min, max int) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}

	if parsed < min || parsed > max {
		return fallback
	}

	return parsed
}
