package aggregating

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-health-engine/internal/domain"
)

var loc = time.FixedZone("UTC-3", -3*60*60)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, loc)
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestAggregate(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-04", End: "2024-03-10"}

	records := []domain.DailyMetricRecord{
		{SubjectID: "CR1", Date: day(3), Spend: 999, Revenue: 999},                                       // antes do período
		{SubjectID: "CR1", Date: day(4), Spend: 100, Revenue: 150, Clicks: 50, Conversions: 2},           // início inclusivo
		{SubjectID: "CR1", Date: day(7), Spend: 200, Revenue: 210, Clicks: 100, Conversions: 3, Impressions: 1000},
		{SubjectID: "CR2", Date: day(10), Spend: 100, Revenue: 240, Clicks: 50, Conversions: 5, Impressions: 500}, // fim inclusivo
		{SubjectID: "CR1", Date: day(11), Spend: 999, Revenue: 999},                                      // depois do período
	}

	summary := Aggregate(records, window)

	assert.Equal(t, window, summary.Window)
	assert.Equal(t, 3, summary.Records)
	assert.Equal(t, 400.0, summary.Spend)
	assert.Equal(t, 600.0, summary.Revenue)
	assert.Equal(t, 1500, summary.Impressions)
	assert.Equal(t, 200, summary.Clicks)
	assert.Equal(t, 10, summary.Conversions)
	assert.Equal(t, 1.5, summary.ROAS)
	assert.Equal(t, 40.0, summary.IC)
	assert.Equal(t, 2.0, summary.CPC)
	assert.Equal(t, 200.0, summary.Profit)
	assert.InDelta(t, 33.333, summary.MC, 0.001)
}

func TestAggregate_ZeroSpendNeverProducesNaN(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-31"}

	for _, revenue := range []float64{0, 1, 500, math.MaxFloat64} {
		summary := Aggregate([]domain.DailyMetricRecord{{Date: day(5), Spend: 0, Revenue: revenue}}, window)

		assert.Equal(t, 0.0, summary.ROAS)
		assert.Equal(t, 0.0, summary.IC)
		assert.Equal(t, 0.0, summary.CPC)
		assert.False(t, math.IsNaN(summary.MC) || math.IsInf(summary.MC, 0))
	}
}

func TestAggregate_ZeroRevenueMargin(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-31"}

	summary := Aggregate([]domain.DailyMetricRecord{{Date: day(5), Spend: 80}}, window)

	assert.Equal(t, -80.0, summary.Profit)
	assert.Equal(t, 0.0, summary.MC)
}

func TestAggregate_EmptyInput(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-31"}

	summary := Aggregate(nil, window)

	assert.True(t, summary.IsEmpty())
	assert.Equal(t, domain.AggregateSummary{Window: window}, summary)
}

func TestAggregate_AveragesOnlyOverPresentValues(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-31"}

	records := []domain.DailyMetricRecord{
		{Date: day(1), Spend: 10, ReportedIC: floatPtr(40), ReportedCPC: floatPtr(1)},
		{Date: day(2), Spend: 10, ReportedIC: floatPtr(60)},
		{Date: day(3), Spend: 10},
		{Date: day(4), Spend: 10, ReportedCPC: floatPtr(0)},
	}

	summary := Aggregate(records, window)

	// (40 + 60) / 2, o registro sem IC não entra como zero
	assert.Equal(t, 50.0, summary.AvgIC)
	// (1 + 0) / 2, um zero reportado conta
	assert.Equal(t, 0.5, summary.AvgCPC)
}

func TestAggregate_NoAveragesWhenNothingReported(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-31"}

	summary := Aggregate([]domain.DailyMetricRecord{{Date: day(1), Spend: 10}}, window)

	assert.Equal(t, 0.0, summary.AvgIC)
	assert.Equal(t, 0.0, summary.AvgCPC)
}

func TestAggregate_UsesLocalCalendarDay(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-10", End: "2024-03-10"}

	// 23h em São Paulo já é dia 11 em UTC, mas o registro pertence ao dia 10 local
	lateNight := time.Date(2024, 3, 10, 23, 0, 0, 0, loc)

	summary := Aggregate([]domain.DailyMetricRecord{{Date: lateNight, Spend: 50, Revenue: 100}}, window)

	assert.Equal(t, 1, summary.Records)
	assert.Equal(t, 2.0, summary.ROAS)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-31"}
	ic := floatPtr(30)
	records := []domain.DailyMetricRecord{{SubjectID: "CR1", Date: day(2), Spend: 10, Revenue: 20, ReportedIC: ic}}
	snapshot := records[0]

	Aggregate(records, window)
	AggregateBySubject(records, window)

	assert.Equal(t, snapshot, records[0])
	assert.Equal(t, 30.0, *ic)
}

func TestAggregateBySubject(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-07"}

	records := []domain.DailyMetricRecord{
		{SubjectID: "CR1", Date: day(1), Spend: 100, Revenue: 130},
		{SubjectID: "CR1", Date: day(2), Spend: 100, Revenue: 130},
		{SubjectID: "CR2", Date: day(3), Spend: 50, Revenue: 0},
		{SubjectID: "CR3", Date: day(20), Spend: 50, Revenue: 500},
	}

	summaries := AggregateBySubject(records, window)

	require.Len(t, summaries, 2)
	assert.Equal(t, 2, summaries["CR1"].Records)
	assert.Equal(t, 1.3, summaries["CR1"].ROAS)
	assert.Equal(t, 0.0, summaries["CR2"].ROAS)
	assert.Equal(t, -50.0, summaries["CR2"].Profit)

	_, exists := summaries["CR3"]
	assert.False(t, exists)
}

func TestAggregateBySubject_MatchesAggregateForSingleSubject(t *testing.T) {
	window := domain.DateWindow{Start: "2024-03-01", End: "2024-03-07"}

	records := []domain.DailyMetricRecord{
		{SubjectID: "CR1", Date: day(1), Spend: 120.4, Revenue: 180.1, Clicks: 40, Conversions: 3, ReportedCPC: floatPtr(3.1)},
		{SubjectID: "CR1", Date: day(4), Spend: 80.6, Revenue: 99.9, Clicks: 20, Conversions: 1, ReportedIC: floatPtr(80)},
		{SubjectID: "CR1", Date: day(9), Spend: 500, Revenue: 10},
	}

	want := Aggregate(records, window)
	got := AggregateBySubject(records, window)["CR1"]

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resumo por sujeito difere do resumo geral (-want +got):\n%s", diff)
	}
}
