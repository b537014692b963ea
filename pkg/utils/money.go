package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseMoney converte uma string monetária da planilha ("$1,234.56") em
// float64. Remove apenas o símbolo de moeda e o separador de milhar; valores
// que não puderem ser convertidos viram nil (ausente), nunca zero, para não
// corromper as somas do relatório.
func ParseMoney(s string) *float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return nil
	}

	return parseFloatCell(cleaned)
}

// ParseAmount coage a coluna de quantidade para numérico. Valores inválidos
// ("N/A", vazio) viram nil em vez de abortar o carregamento.
func ParseAmount(s string) *float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return nil
	}

	return parseFloatCell(cleaned)
}

// parseFloatCell converte a célula já limpa. ParseFloat aceita "NaN" e
// "Inf", que não são valores de planilha e quebrariam as somas e a
// serialização JSON do relatório; essas células também viram nil.
func parseFloatCell(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

// FormatMoney formata um valor para exibição: símbolo de moeda, separador de
// milhar e duas casas decimais ("$1,234.56").
func FormatMoney(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	formatted := "$" + strings.Join(groups, ",") + "." + fracPart
	if v < 0 {
		formatted = "-" + formatted
	}

	return formatted
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
