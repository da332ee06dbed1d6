package domain

import (
	"time"

	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

type SubjectType string

const (
	SubjectOffer    SubjectType = "offer"
	SubjectCreative SubjectType = "creative"
)

// RecordKey identifica unicamente um registro diário: no máximo um registro por (sujeito, data)
type RecordKey struct {
	SubjectID string `json:"subject_id"`
	Date      string `json:"date"` // YYYY-MM-DD no calendário local
}

// DailyMetricRecord representa a observação diária de uma oferta ou criativo
type DailyMetricRecord struct {
	ID          string      `json:"id"`
	SubjectID   string      `json:"subject_id"`
	SubjectType SubjectType `json:"subject_type"`
	Date        time.Time   `json:"date"`
	Spend       float64     `json:"spend"`
	Revenue     float64     `json:"revenue"` // faturado
	Impressions int         `json:"impressions"`
	Clicks      int         `json:"clicks"`
	Conversions int         `json:"conversions"`
	// IC e CPC reportados pelo canal, quando existirem. Registros sem o valor
	// ficam de fora das médias do período.
	ReportedIC  *float64  `json:"reported_ic,omitempty"`
	ReportedCPC *float64  `json:"reported_cpc,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r DailyMetricRecord) Key() RecordKey {
	return RecordKey{SubjectID: r.SubjectID, Date: r.DateKey()}
}

// DateKey retorna a data do registro no formato YYYY-MM-DD usando o calendário local do valor
func (r DailyMetricRecord) DateKey() string {
	return utils.FormatLocalDate(r.Date)
}

func (r DailyMetricRecord) ROAS() float64 {
	return utils.SafeDivide(r.Revenue, r.Spend)
}

func (r DailyMetricRecord) IC() float64 {
	return utils.SafeDivide(r.Spend, float64(r.Conversions))
}

func (r DailyMetricRecord) CPC() float64 {
	return utils.SafeDivide(r.Spend, float64(r.Clicks))
}

// Field retorna o valor numérico de um campo editável
func (r DailyMetricRecord) Field(field MetricField) float64 {
	switch field {
	case FieldSpend:
		return r.Spend
	case FieldRevenue:
		return r.Revenue
	case FieldImpressions:
		return float64(r.Impressions)
	case FieldClicks:
		return float64(r.Clicks)
	case FieldConversions:
		return float64(r.Conversions)
	}
	return 0
}

// SetField atribui o valor a um campo editável. Campos inteiros são truncados.
func (r *DailyMetricRecord) SetField(field MetricField, value float64) {
	switch field {
	case FieldSpend:
		r.Spend = value
	case FieldRevenue:
		r.Revenue = value
	case FieldImpressions:
		r.Impressions = int(value)
	case FieldClicks:
		r.Clicks = int(value)
	case FieldConversions:
		r.Conversions = int(value)
	}
}
