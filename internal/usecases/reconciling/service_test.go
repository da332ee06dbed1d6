package reconciling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/apiErrors"
)

var (
	loc        = time.FixedZone("UTC-3", -3*60*60)
	recordDate = time.Date(2024, 3, 10, 0, 0, 0, 0, loc)
)

func fullValues() map[domain.MetricField]string {
	return map[domain.MetricField]string{
		domain.FieldSpend:       "100",
		domain.FieldRevenue:     "150.5",
		domain.FieldImpressions: "10000",
		domain.FieldClicks:      "300",
		domain.FieldConversions: "4",
	}
}

func existingRecord() *domain.DailyMetricRecord {
	return &domain.DailyMetricRecord{
		ID:          "REC001",
		SubjectID:   "CR1",
		SubjectType: domain.SubjectCreative,
		Date:        recordDate,
		Spend:       100,
		Revenue:     150,
		Impressions: 10000,
		Clicks:      300,
		Conversions: 4,
	}
}

func submission(values map[domain.MetricField]string) domain.MetricSubmission {
	return domain.MetricSubmission{
		SubjectID:   "CR1",
		SubjectType: domain.SubjectCreative,
		Date:        recordDate,
		Values:      values,
	}
}

func TestReconcile_NewEntry(t *testing.T) {
	result, err := Reconcile(nil, submission(fullValues()), nil)
	require.NoError(t, err)

	assert.True(t, result.IsNew)
	assert.Nil(t, result.Deltas)
	assert.Equal(t, "CR1", result.Merged.SubjectID)
	assert.Equal(t, domain.SubjectCreative, result.Merged.SubjectType)
	assert.Equal(t, "2024-03-10", result.Merged.DateKey())
	assert.Equal(t, 100.0, result.Merged.Spend)
	assert.Equal(t, 150.5, result.Merged.Revenue)
	assert.Equal(t, 10000, result.Merged.Impressions)
	assert.Equal(t, 300, result.Merged.Clicks)
	assert.Equal(t, 4, result.Merged.Conversions)
}

func TestReconcile_NewEntryRequiresEveryField(t *testing.T) {
	for _, field := range domain.AllMetricFields() {
		t.Run(string(field), func(t *testing.T) {
			values := fullValues()
			values[field] = "  "

			result, err := Reconcile(nil, submission(values), nil)

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, string(field)+" is required", err.Error())

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, field, validationErr.Field)
			assert.Equal(t, apiErrors.ErrMissingRequiredData, validationErr.Code)
			assert.True(t, errors.Is(err, ErrFieldRequired))
		})
	}
}

func TestReconcile_NewEntryBlankSpendIsReportedFirst(t *testing.T) {
	values := fullValues()
	values[domain.FieldSpend] = ""
	delete(values, domain.FieldClicks)

	_, err := Reconcile(nil, submission(values), nil)

	require.Error(t, err)
	assert.Equal(t, "spend is required", err.Error())
}

func TestReconcile_NewEntryZeroIsNotBlank(t *testing.T) {
	values := fullValues()
	values[domain.FieldConversions] = "0"
	values[domain.FieldRevenue] = "abc"

	result, err := Reconcile(nil, submission(values), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Merged.Conversions)
	assert.Equal(t, 0.0, result.Merged.Revenue)
}

func TestReconcile_MissingKey(t *testing.T) {
	proposed := submission(fullValues())
	proposed.SubjectID = ""
	_, err := Reconcile(nil, proposed, nil)
	assert.ErrorIs(t, err, ErrSubjectRequired)

	proposed = submission(fullValues())
	proposed.Date = time.Time{}
	_, err = Reconcile(existingRecord(), proposed, domain.NewFieldSet(domain.FieldSpend))
	assert.ErrorIs(t, err, ErrDateRequired)
}

func TestReconcile_Edit(t *testing.T) {
	tests := []struct {
		name     string
		values   map[domain.MetricField]string
		selected domain.FieldSet
		err      error
		code     string
		validate func(t *testing.T, existing *domain.DailyMetricRecord, result *domain.ReconcileResult)
	}{
		{
			name:     "nenhum campo selecionado",
			values:   map[domain.MetricField]string{domain.FieldSpend: "200"},
			selected: domain.NewFieldSet(),
			err:      ErrNoFieldSelected,
			code:     apiErrors.ErrNoFieldSelected,
		},
		{
			name:     "campo selecionado sem mudança de valor",
			values:   map[domain.MetricField]string{domain.FieldSpend: "100"},
			selected: domain.NewFieldSet(domain.FieldSpend),
			err:      ErrNoChangeDetected,
			code:     apiErrors.ErrNoChangeDetected,
		},
		{
			name:     "texto equivalente ao valor atual não é mudança",
			values:   map[domain.MetricField]string{domain.FieldSpend: "100.00", domain.FieldClicks: "300"},
			selected: domain.NewFieldSet(domain.FieldSpend, domain.FieldClicks),
			err:      ErrNoChangeDetected,
			code:     apiErrors.ErrNoChangeDetected,
		},
		{
			name:     "campo desconhecido na seleção",
			values:   map[domain.MetricField]string{},
			selected: domain.NewFieldSet(domain.MetricField("ctr")),
			err:      ErrUnknownField,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name:     "contagem acima da faixa de int é rejeitada",
			values:   map[domain.MetricField]string{domain.FieldImpressions: "1e30"},
			selected: domain.NewFieldSet(domain.FieldImpressions),
			err:      ErrInvalidCount,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name:     "contagem negativa é rejeitada",
			values:   map[domain.MetricField]string{domain.FieldClicks: "-5"},
			selected: domain.NewFieldSet(domain.FieldClicks),
			err:      ErrInvalidCount,
			code:     apiErrors.ErrInvalidFormat,
		},
		{
			name:     "contagem fora da faixa em campo não selecionado é ignorada",
			values:   map[domain.MetricField]string{domain.FieldSpend: "120", domain.FieldImpressions: "1e30"},
			selected: domain.NewFieldSet(domain.FieldSpend),
			validate: func(t *testing.T, existing *domain.DailyMetricRecord, result *domain.ReconcileResult) {
				assert.Equal(t, existing.Impressions, result.Merged.Impressions)
				assert.Len(t, result.Deltas, 1)
			},
		},
		{
			name:     "altera apenas os campos selecionados",
			values:   map[domain.MetricField]string{domain.FieldSpend: "120", domain.FieldRevenue: "999", domain.FieldClicks: "300"},
			selected: domain.NewFieldSet(domain.FieldSpend, domain.FieldClicks),
			validate: func(t *testing.T, existing *domain.DailyMetricRecord, result *domain.ReconcileResult) {
				assert.False(t, result.IsNew)
				assert.Equal(t, map[domain.MetricField]domain.MetricDelta{
					domain.FieldSpend: {Old: 100, New: 120},
				}, result.Deltas)

				assert.Equal(t, 120.0, result.Merged.Spend)
				// revenue não foi selecionado: o texto proposto é ignorado
				assert.Equal(t, 150.0, result.Merged.Revenue)
				assert.Equal(t, existing.ID, result.Merged.ID)
				assert.Equal(t, existing.Impressions, result.Merged.Impressions)
			},
		},
		{
			name:     "campo selecionado em branco vale zero",
			values:   map[domain.MetricField]string{domain.FieldConversions: ""},
			selected: domain.NewFieldSet(domain.FieldConversions),
			validate: func(t *testing.T, existing *domain.DailyMetricRecord, result *domain.ReconcileResult) {
				assert.Equal(t, domain.MetricDelta{Old: 4, New: 0}, result.Deltas[domain.FieldConversions])
				assert.Equal(t, 0, result.Merged.Conversions)
			},
		},
		{
			name: "vários campos alterados",
			values: map[domain.MetricField]string{
				domain.FieldRevenue:     "175,25",
				domain.FieldImpressions: "12000",
			},
			selected: domain.NewFieldSet(domain.FieldRevenue, domain.FieldImpressions),
			validate: func(t *testing.T, existing *domain.DailyMetricRecord, result *domain.ReconcileResult) {
				assert.Len(t, result.Deltas, 2)
				assert.Equal(t, domain.MetricDelta{Old: 150, New: 175.25}, result.Deltas[domain.FieldRevenue])
				assert.Equal(t, domain.MetricDelta{Old: 10000, New: 12000}, result.Deltas[domain.FieldImpressions])
				assert.Equal(t, 175.25, result.Merged.Revenue)
				assert.Equal(t, 12000, result.Merged.Impressions)
				assert.Equal(t, 100.0, result.Merged.Spend)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := existingRecord()
			snapshot := *existing

			result, err := Reconcile(existing, submission(tt.values), tt.selected)

			// o registro existente nunca é modificado
			assert.Equal(t, snapshot, *existing)

			if tt.err != nil {
				assert.Nil(t, result)
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.err))

				var validationErr *ValidationError
				require.True(t, errors.As(err, &validationErr))
				assert.Equal(t, tt.code, validationErr.Code)
				assert.NotEmpty(t, validationErr.Details)
				return
			}

			require.NoError(t, err)
			tt.validate(t, existing, result)
		})
	}
}

func TestReconcile_NewEntryRejectsCountOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		field domain.MetricField
		text  string
	}{
		{name: "impressões acima da faixa de int", field: domain.FieldImpressions, text: "1e30"},
		{name: "cliques abaixo da faixa de int", field: domain.FieldClicks, text: "-1e30"},
		{name: "conversões negativas", field: domain.FieldConversions, text: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := fullValues()
			values[tt.field] = tt.text

			result, err := Reconcile(nil, submission(values), nil)

			assert.Nil(t, result)
			require.ErrorIs(t, err, ErrInvalidCount)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, apiErrors.ErrInvalidFormat, validationErr.Code)
			assert.Equal(t, string(tt.field)+" is out of range", err.Error())
		})
	}
}

func TestReconcile_NewEntryAcceptsThousandsSeparator(t *testing.T) {
	values := fullValues()
	values[domain.FieldRevenue] = "1.234,56"

	result, err := Reconcile(nil, submission(values), nil)

	require.NoError(t, err)
	assert.Equal(t, 1234.56, result.Merged.Revenue)
}

func TestReconcile_NoChangeMessage(t *testing.T) {
	values := fullValues()

	_, err := Reconcile(existingRecord(), submission(values), domain.NewFieldSet(domain.FieldSpend))

	require.Error(t, err)
	assert.Equal(t, "no change detected", err.Error())
}

func TestReconcile_EditRejectsDifferentKey(t *testing.T) {
	proposed := submission(fullValues())
	proposed.Date = recordDate.AddDate(0, 0, 1)

	_, err := Reconcile(existingRecord(), proposed, domain.NewFieldSet(domain.FieldSpend))

	assert.ErrorIs(t, err, ErrKeyMismatch)
}
