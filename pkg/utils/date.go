package utils

import (
	"fmt"
	"time"
)

// ParseDateIn interpreta YYYY-MM-DD como meia-noite local em loc
func ParseDateIn(dateStr string, loc *time.Location) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatLocalDate formata a data a partir dos componentes ano/mês/dia do próprio
// valor. Nunca converte para UTC antes, o que deslocaria meia-noite local para o dia anterior.
func FormatLocalDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// StartOfDay normaliza para meia-noite no fuso do próprio valor
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AddDays desloca dias de calendário, preservando a meia-noite mesmo em trocas de horário de verão
func AddDays(t time.Time, days int) time.Time {
	return StartOfDay(t).AddDate(0, 0, days)
}
