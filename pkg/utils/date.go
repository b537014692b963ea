package utils

import "time"

// ParseDate interpreta um parâmetro de data no formato YYYY-MM-DD.
// String vazia significa "não informado" e retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// DateOnly zera o componente de hora de um timestamp, preservando a
// localidade. Os filtros de período comparam apenas a porção de data.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
