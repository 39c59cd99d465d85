package utils

import "time"

// ParseDate converte uma data no formato YYYY-MM-DD. Retorna nil quando o
// parâmetro está ausente, para que a validação de período trate o caso
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

// DateRange gera um slice de datas entre startDate e endDate (inclusive),
// normalizadas para meia-noite
func DateRange(startDate, endDate *time.Time) []time.Time {
	if startDate == nil || endDate == nil || startDate.After(*endDate) {
		return []time.Time{}
	}

	current := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	last := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())

	var dates []time.Time
	for !current.After(last) {
		dates = append(dates, current)
		current = current.AddDate(0, 0, 1)
	}

	return dates
}
