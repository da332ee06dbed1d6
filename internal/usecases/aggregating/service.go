package aggregating

import (
	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

// Estrutura para acompanhar as somas e as médias de um sujeito durante a agregação
type accumulator struct {
	summary  domain.AggregateSummary
	icSum    float64
	icCount  int
	cpcSum   float64
	cpcCount int
}

func newAccumulator(window domain.DateWindow) *accumulator {
	return &accumulator{summary: domain.AggregateSummary{Window: window}}
}

func (a *accumulator) add(record domain.DailyMetricRecord) {
	a.summary.Records++
	a.summary.Spend += record.Spend
	a.summary.Revenue += record.Revenue
	a.summary.Impressions += record.Impressions
	a.summary.Clicks += record.Clicks
	a.summary.Conversions += record.Conversions

	// registros sem o valor reportado ficam fora da soma e da contagem
	if record.ReportedIC != nil {
		a.icSum += *record.ReportedIC
		a.icCount++
	}
	if record.ReportedCPC != nil {
		a.cpcSum += *record.ReportedCPC
		a.cpcCount++
	}
}

// finish calcula as métricas derivadas. Toda divisão por zero resulta em 0.
func (a *accumulator) finish() domain.AggregateSummary {
	s := a.summary

	s.ROAS = utils.SafeDivide(s.Revenue, s.Spend)
	s.IC = utils.SafeDivide(s.Spend, float64(s.Conversions))
	s.CPC = utils.SafeDivide(s.Spend, float64(s.Clicks))
	s.Profit = s.Revenue - s.Spend
	s.MC = utils.SafeDivide(s.Profit, s.Revenue) * 100
	s.AvgIC = utils.SafeDivide(a.icSum, float64(a.icCount))
	s.AvgCPC = utils.SafeDivide(a.cpcSum, float64(a.cpcCount))

	return s
}

// Aggregate resume os registros cuja data local está dentro do período (inclusivo).
// Os registros de entrada não são modificados.
func Aggregate(records []domain.DailyMetricRecord, window domain.DateWindow) domain.AggregateSummary {
	acc := newAccumulator(window)

	for _, record := range records {
		if !window.Contains(record.DateKey()) {
			continue
		}
		acc.add(record)
	}

	return acc.finish()
}

// AggregateBySubject resume o período separadamente para cada oferta ou criativo
func AggregateBySubject(records []domain.DailyMetricRecord, window domain.DateWindow) domain.SubjectSummaries {
	accumulators := make(map[string]*accumulator)

	for _, record := range records {
		if !window.Contains(record.DateKey()) {
			continue
		}

		acc, exists := accumulators[record.SubjectID]
		if !exists {
			acc = newAccumulator(window)
			accumulators[record.SubjectID] = acc
		}
		acc.add(record)
	}

	summaries := make(domain.SubjectSummaries, len(accumulators))
	for subjectID, acc := range accumulators {
		summaries[subjectID] = acc.finish()
	}

	return summaries
}
