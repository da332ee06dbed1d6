package thresholding

import (
	"math"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/vfg2006/offer-health-engine/internal/config"
	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Classifier interface {
	// Parse normaliza a configuração persistida de uma oferta
	Parse(raw any) domain.ThresholdSet
	Classify(value float64, kind domain.MetricKind, thresholds domain.ThresholdSet) domain.HealthStatus
	ClassifySummary(summary domain.AggregateSummary, thresholds domain.ThresholdSet) map[domain.MetricKind]domain.HealthStatus
}

type Service struct {
	defaults domain.ThresholdSet
}

// NewService usa os padrões configurados; sem configuração, os padrões do sistema.
// Uma métrica com verde e amarelo zerados na configuração é tratada como ausente.
func NewService(cfg *config.Config) Classifier {
	defaults := domain.DefaultThresholds()
	if cfg != nil {
		defaults = parseWithDefaults(configuredThresholds(cfg.Thresholds.Set()), defaults)
	}

	return &Service{defaults: defaults}
}

func (s *Service) Parse(raw any) domain.ThresholdSet {
	return parseWithDefaults(raw, s.defaults)
}

func (s *Service) Classify(value float64, kind domain.MetricKind, thresholds domain.ThresholdSet) domain.HealthStatus {
	return Classify(value, kind, thresholds)
}

func (s *Service) ClassifySummary(summary domain.AggregateSummary, thresholds domain.ThresholdSet) map[domain.MetricKind]domain.HealthStatus {
	return ClassifySummary(summary, thresholds)
}

// ParseThresholds completa uma configuração ausente ou parcial com os padrões do sistema.
// Nunca falha: cada métrica, e cada fronteira dentro dela, malformada ou ausente
// é substituída pelo padrão correspondente.
//
// raw pode ser nil, JSON ([]byte, string, json.RawMessage), um mapa ou uma struct.
func ParseThresholds(raw any) domain.ThresholdSet {
	return parseWithDefaults(raw, domain.DefaultThresholds())
}

func parseWithDefaults(raw any, defaults domain.ThresholdSet) domain.ThresholdSet {
	switch v := raw.(type) {
	case domain.ThresholdSet:
		return v
	case *domain.ThresholdSet:
		if v == nil {
			return defaults
		}
		return *v
	}

	fields := toMap(raw)
	if fields == nil {
		return defaults
	}

	result := defaults
	for _, kind := range domain.AllMetricKinds() {
		entry, ok := lookup(fields, string(kind))
		if !ok {
			continue
		}

		fallback, _ := defaults.For(kind)
		result = result.With(kind, parseThreshold(entry, fallback))
	}

	return result
}

func parseThreshold(entry any, fallback domain.Threshold) domain.Threshold {
	values := decodeMap(entry)
	if values == nil {
		return fallback
	}

	result := fallback
	if v, ok := lookup(values, "green"); ok {
		if green, ok := toNumber(v); ok {
			result.Green = green
		}
	}
	if v, ok := lookup(values, "yellow"); ok {
		if yellow, ok := toNumber(v); ok {
			result.Yellow = yellow
		}
	}

	return result
}

// toMap aceita texto JSON além das formas estruturadas de decodeMap
func toMap(raw any) map[string]any {
	var text []byte

	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		text = []byte(v)
	default:
		rv := reflect.ValueOf(raw)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			text = rv.Bytes()
		}
	}

	if text == nil {
		return decodeMap(raw)
	}

	var fields map[string]any
	if err := json.Unmarshal(text, &fields); err != nil {
		return nil
	}
	return fields
}

func decodeMap(raw any) map[string]any {
	if raw == nil {
		return nil
	}
	if fields, ok := raw.(map[string]any); ok {
		return fields
	}

	rv := reflect.Indirect(reflect.ValueOf(raw))
	if rv.Kind() != reflect.Map && rv.Kind() != reflect.Struct {
		return nil
	}

	var fields map[string]any
	if err := mapstructure.Decode(raw, &fields); err != nil {
		return nil
	}
	return fields
}

// lookup procura a chave exata e, na falta dela, ignorando maiúsculas
func lookup(fields map[string]any, key string) (any, bool) {
	if v, ok := fields[key]; ok {
		return v, true
	}
	for k, v := range fields {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

func toNumber(v any) (float64, bool) {
	var (
		value float64
		err   error
	)

	switch n := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		var ok bool
		if value, ok = utils.ParseNumericStrict(n); !ok {
			return 0, false
		}
	default:
		if value, err = cast.ToFloat64E(v); err != nil {
			return 0, false
		}
	}

	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}
	return value, true
}

// configuredThresholds omite as métricas sem nenhum valor configurado,
// o que acontece quando a Config não passou por config.NewConfig
func configuredThresholds(t domain.ThresholdSet) map[string]any {
	fields := make(map[string]any, 3)
	for _, kind := range domain.AllMetricKinds() {
		threshold, _ := t.For(kind)
		if threshold == (domain.Threshold{}) {
			continue
		}
		fields[string(kind)] = map[string]any{
			"green":  threshold.Green,
			"yellow": threshold.Yellow,
		}
	}
	return fields
}

// Classify converte o valor em status de saúde conforme a direção da métrica.
// A fronteira pertence sempre ao lado melhor: um valor exatamente no limite
// verde é success, nunca warning. Métricas fora do enum são danger.
func Classify(value float64, kind domain.MetricKind, thresholds domain.ThresholdSet) domain.HealthStatus {
	threshold, ok := thresholds.For(kind)
	if !ok {
		return domain.HealthDanger
	}

	if kind.HigherIsBetter() {
		switch {
		case value >= threshold.Green:
			return domain.HealthSuccess
		case value >= threshold.Yellow:
			return domain.HealthWarning
		}
		return domain.HealthDanger
	}

	switch {
	case value <= threshold.Green:
		return domain.HealthSuccess
	case value <= threshold.Yellow:
		return domain.HealthWarning
	}
	return domain.HealthDanger
}

// ClassifyOptional retorna neutral quando ainda não há valor calculado
func ClassifyOptional(value *float64, kind domain.MetricKind, thresholds domain.ThresholdSet) domain.HealthStatus {
	if value == nil {
		return domain.HealthNeutral
	}
	return Classify(*value, kind, thresholds)
}

// ClassifySummary classifica ROAS, IC e CPC do resumo. Período sem registros fica neutral.
func ClassifySummary(summary domain.AggregateSummary, thresholds domain.ThresholdSet) map[domain.MetricKind]domain.HealthStatus {
	status := make(map[domain.MetricKind]domain.HealthStatus, len(domain.AllMetricKinds()))
	for _, kind := range domain.AllMetricKinds() {
		if summary.IsEmpty() {
			status[kind] = domain.HealthNeutral
			continue
		}
		status[kind] = Classify(summary.Value(kind), kind, thresholds)
	}
	return status
}
