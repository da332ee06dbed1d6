package domain

// AggregateSummary consolida os registros diários de um período
type AggregateSummary struct {
	Window      DateWindow `json:"window"`
	Records     int        `json:"records"`
	Spend       float64    `json:"spend"`
	Revenue     float64    `json:"revenue"`
	Impressions int        `json:"impressions"`
	Clicks      int        `json:"clicks"`
	Conversions int        `json:"conversions"`
	ROAS        float64    `json:"roas"`
	IC          float64    `json:"ic"`
	CPC         float64    `json:"cpc"`
	Profit      float64    `json:"profit"`
	MC          float64    `json:"mc"` // margem de contribuição em %
	AvgIC       float64    `json:"avg_ic"`
	AvgCPC      float64    `json:"avg_cpc"`
}

func (s AggregateSummary) IsEmpty() bool {
	return s.Records == 0
}

// Value retorna o valor agregado usado na classificação da métrica
func (s AggregateSummary) Value(kind MetricKind) float64 {
	switch kind {
	case MetricROAS:
		return s.ROAS
	case MetricIC:
		return s.IC
	case MetricCPC:
		return s.CPC
	}
	return 0
}

// SubjectSummaries agrega por id de oferta ou criativo, sem ordem garantida
type SubjectSummaries map[string]AggregateSummary
