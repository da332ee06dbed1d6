package domain

import "time"

// SystemEpoch é a data mais antiga do histórico do sistema, usada pelo período "all"
const SystemEpoch = "2024-01-01"

type PeriodSelector string

const (
	PeriodToday  PeriodSelector = "today"
	PeriodLast7  PeriodSelector = "last7"
	PeriodLast30 PeriodSelector = "last30"
	PeriodCustom PeriodSelector = "custom"
	PeriodAll    PeriodSelector = "all"
)

func (p PeriodSelector) Valid() bool {
	switch p {
	case PeriodToday, PeriodLast7, PeriodLast30, PeriodCustom, PeriodAll:
		return true
	}
	return false
}

func (p PeriodSelector) Label() string {
	switch p {
	case PeriodToday:
		return "Hoje"
	case PeriodLast7:
		return "Últimos 7 dias"
	case PeriodLast30:
		return "Últimos 30 dias"
	case PeriodCustom:
		return "Personalizado"
	case PeriodAll:
		return "Todo o período"
	}
	return string(p)
}

// CustomBounds são as datas escolhidas pelo operador. Quando apenas uma das
// datas é informada, o período se reduz a esse único dia.
type CustomBounds struct {
	From time.Time
	To   time.Time
}

// DateWindow é um intervalo inclusivo de dias no calendário local (YYYY-MM-DD)
type DateWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains compara datas YYYY-MM-DD, cuja ordem lexicográfica é a cronológica
func (w DateWindow) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}
