package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
	}{
		{
			name:     "Valor simples com símbolo de moeda",
			input:    "$5.00",
			expected: floatPtr(5.00),
		},
		{
			name:     "Valor com separador de milhar",
			input:    "$1,234.56",
			expected: floatPtr(1234.56),
		},
		{
			name:     "Valor sem símbolo",
			input:    "12.5",
			expected: floatPtr(12.5),
		},
		{
			name:     "Valor com espaços nas bordas",
			input:    "  $2.75 ",
			expected: floatPtr(2.75),
		},
		{
			name:     "Valor ilegível vira ausente, não zero",
			input:    "N/A",
			expected: nil,
		},
		{
			name:     "String vazia vira ausente",
			input:    "",
			expected: nil,
		},
		{
			name:     "NaN não é valor de planilha, vira ausente",
			input:    "NaN",
			expected: nil,
		},
		{
			name:     "Infinito vira ausente",
			input:    "Inf",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseMoney(tt.input)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 0.0001)
		})
	}
}

func TestParseAmount(t *testing.T) {
	result := ParseAmount("2")
	require.NotNil(t, result)
	assert.Equal(t, 2.0, *result)

	assert.Nil(t, ParseAmount("N/A"))
	assert.Nil(t, ParseAmount(""))
	assert.Nil(t, ParseAmount("dois"))

	// ParseFloat aceita estas formas, mas elas corromperiam as somas e a
	// serialização JSON do relatório
	assert.Nil(t, ParseAmount("NaN"))
	assert.Nil(t, ParseAmount("Inf"))
	assert.Nil(t, ParseAmount("-Infinity"))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "Valor com separador de milhar",
			input:    1234.56,
			expected: "$1,234.56",
		},
		{
			name:     "Valor pequeno",
			input:    10.0,
			expected: "$10.00",
		},
		{
			name:     "Zero",
			input:    0,
			expected: "$0.00",
		},
		{
			name:     "Milhões",
			input:    1234567.891,
			expected: "$1,234,567.89",
		},
		{
			name:     "Valor negativo",
			input:    -1234.5,
			expected: "-$1,234.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatMoney(tt.input))
		})
	}
}

// Ida e volta sem perda: "$1,234.56" -> 1234.56 -> "$1,234.56"
func TestMoneyRoundTrip(t *testing.T) {
	parsed := ParseMoney("$1,234.56")
	require.NotNil(t, parsed)
	assert.Equal(t, 1234.56, *parsed)
	assert.Equal(t, "$1,234.56", FormatMoney(*parsed))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.0, RoundWithTwoDecimalPlace(3.001))
	assert.Equal(t, 3.01, RoundWithTwoDecimalPlace(3.006))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func floatPtr(v float64) *float64 {
	return &v
}
