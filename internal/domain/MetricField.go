package domain

// MetricField é um dos cinco campos numéricos informados pelo operador
type MetricField string

const (
	FieldSpend       MetricField = "spend"
	FieldRevenue     MetricField = "revenue"
	FieldImpressions MetricField = "impressions"
	FieldClicks      MetricField = "clicks"
	FieldConversions MetricField = "conversions"
)

// AllMetricFields retorna os campos na ordem do formulário
func AllMetricFields() []MetricField {
	return []MetricField{FieldSpend, FieldRevenue, FieldImpressions, FieldClicks, FieldConversions}
}

func (f MetricField) Valid() bool {
	switch f {
	case FieldSpend, FieldRevenue, FieldImpressions, FieldClicks, FieldConversions:
		return true
	}
	return false
}

// IsInteger indica se o campo é uma contagem
func (f MetricField) IsInteger() bool {
	return f == FieldImpressions || f == FieldClicks || f == FieldConversions
}

func (f MetricField) Label() string {
	switch f {
	case FieldSpend:
		return "Gasto"
	case FieldRevenue:
		return "Faturado"
	case FieldImpressions:
		return "Impressões"
	case FieldClicks:
		return "Cliques"
	case FieldConversions:
		return "Conversões"
	}
	return string(f)
}

// FieldSet é o conjunto de campos selecionados para edição
type FieldSet map[MetricField]struct{}

func NewFieldSet(fields ...MetricField) FieldSet {
	set := make(FieldSet, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func (s FieldSet) Has(field MetricField) bool {
	_, ok := s[field]
	return ok
}
