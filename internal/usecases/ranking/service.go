package ranking

import (
	"sort"

	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/internal/usecases/thresholding"
)

// RankSubjects ordena os sujeitos pela métrica, do melhor para o pior, conforme a
// direção da métrica. Sujeitos sem denominador (sem gasto para ROAS, sem conversões
// para IC, sem cliques para CPC) não têm valor real: ficam no fim e com status neutral.
//
// previous, quando informado, é o resumo do período anterior e alimenta PositionChange.
func RankSubjects(
	current domain.SubjectSummaries,
	previous domain.SubjectSummaries,
	kind domain.MetricKind,
	thresholds domain.ThresholdSet,
) []*domain.SubjectRanking {
	rankings := buildRankings(current, kind, thresholds)
	updatePositions(rankings, kind)

	if len(previous) == 0 {
		return rankings
	}

	previousRankings := buildRankings(previous, kind, thresholds)
	updatePositions(previousRankings, kind)

	rankingsBefore := make(map[string]*domain.SubjectRanking, len(previousRankings))
	for _, ranking := range previousRankings {
		rankingsBefore[ranking.SubjectID] = ranking
	}

	for _, ranking := range rankings {
		rankingBefore, exists := rankingsBefore[ranking.SubjectID]
		if !exists {
			continue
		}
		ranking.PositionChange = rankingBefore.Position - ranking.Position
		ranking.PreviousPosition = rankingBefore.Position
	}

	return rankings
}

func buildRankings(summaries domain.SubjectSummaries, kind domain.MetricKind, thresholds domain.ThresholdSet) []*domain.SubjectRanking {
	rankings := make([]*domain.SubjectRanking, 0, len(summaries))

	for subjectID, summary := range summaries {
		status := domain.HealthNeutral
		if hasDenominator(summary, kind) {
			status = thresholding.Classify(summary.Value(kind), kind, thresholds)
		}

		rankings = append(rankings, &domain.SubjectRanking{
			SubjectID: subjectID,
			Metric:    kind,
			Value:     summary.Value(kind),
			Spend:     summary.Spend,
			Status:    status,
		})
	}

	return rankings
}

func hasDenominator(summary domain.AggregateSummary, kind domain.MetricKind) bool {
	switch kind {
	case domain.MetricROAS:
		return summary.Spend > 0
	case domain.MetricIC:
		return summary.Conversions > 0
	case domain.MetricCPC:
		return summary.Clicks > 0
	}
	return false
}

func updatePositions(rankings []*domain.SubjectRanking, kind domain.MetricKind) {
	sort.Slice(rankings, func(i, j int) bool {
		a, b := rankings[i], rankings[j]

		aRanked, bRanked := a.Status != domain.HealthNeutral, b.Status != domain.HealthNeutral
		if aRanked != bRanked {
			return aRanked
		}

		if aRanked && a.Value != b.Value {
			if kind.HigherIsBetter() {
				return a.Value > b.Value
			}
			return a.Value < b.Value
		}

		if a.Spend != b.Spend {
			return a.Spend > b.Spend
		}
		return a.SubjectID < b.SubjectID
	})

	for i, ranking := range rankings {
		ranking.Position = i + 1
	}
}
