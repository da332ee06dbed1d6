package insighting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/offer-health-engine/internal/config"
	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/internal/usecases/aggregating"
	"github.com/vfg2006/offer-health-engine/internal/usecases/periodizing"
	"github.com/vfg2006/offer-health-engine/internal/usecases/ranking"
	"github.com/vfg2006/offer-health-engine/internal/usecases/reconciling"
	"github.com/vfg2006/offer-health-engine/internal/usecases/thresholding"
	"github.com/vfg2006/offer-health-engine/pkg/apiErrors"
	"github.com/vfg2006/offer-health-engine/pkg/log"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

// Service liga o motor de regras aos colaboradores externos de leitura e gravação
type Service struct {
	fetcher    RecordFetcher
	writer     RecordWriter
	thresholds ThresholdProvider
	classifier thresholding.Classifier
	resolver   *periodizing.Resolver
	now        func() time.Time
}

type Option func(*Service)

// WithClock substitui o relógio usado para "hoje" e para os carimbos de data
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService cria uma nova instância do serviço de saúde das ofertas
func NewService(
	cfg *config.Config,
	fetcher RecordFetcher,
	writer RecordWriter,
	thresholds ThresholdProvider,
	opts ...Option,
) HealthInsighter {
	s := &Service{
		fetcher:    fetcher,
		writer:     writer,
		thresholds: thresholds,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.classifier = thresholding.NewService(cfg)
	s.resolver = periodizing.NewResolver(cfg, periodizing.WithClock(s.now))

	return s
}

// GetHealthReport obtém o resumo do período e a classificação de ROAS, IC e CPC de um sujeito
func (s *Service) GetHealthReport(ctx context.Context, request ReportRequest) (*domain.HealthReport, error) {
	if request.OfferID == "" {
		return nil, NewInsightError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if request.SubjectID == "" {
		return nil, NewInsightError(ErrSubjectIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"offer_id":   request.OfferID,
		"subject_id": request.SubjectID,
		"period":     request.Period,
	})

	window, err := s.resolveWindow(request)
	if err != nil {
		return nil, err
	}

	thresholds, err := s.loadThresholds(ctx, request.OfferID)
	if err != nil {
		return nil, err
	}

	records, err := s.fetcher.GetByDateRange(ctx, []string{request.SubjectID}, window)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar registros diários do período")
		return nil, externalError(err, "insighting: erro ao buscar registros")
	}

	summary := aggregating.Aggregate(records, window)

	logger.WithFields(log.Fields{
		"record_count": summary.Records,
		"record_roas":  utils.RoundWithTwoDecimalPlace(summary.ROAS),
		"start_date":   window.Start,
		"end_date":     window.End,
	}).Debug("Resumo do período calculado")

	return &domain.HealthReport{
		OfferID:    request.OfferID,
		SubjectID:  request.SubjectID,
		Period:     request.Period,
		Summary:    summary,
		Thresholds: thresholds,
		Status:     s.classifier.ClassifySummary(summary, thresholds),
	}, nil
}

// GetSubjectReports resume cada criativo da oferta com uma única busca de registros.
// Sujeitos sem registros no período aparecem com resumo vazio e status neutral.
func (s *Service) GetSubjectReports(ctx context.Context, request ReportRequest, subjectIDs []string) (map[string]*domain.HealthReport, error) {
	if request.OfferID == "" {
		return nil, NewInsightError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	reports := make(map[string]*domain.HealthReport, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return reports, nil
	}

	window, err := s.resolveWindow(request)
	if err != nil {
		return nil, err
	}

	thresholds, err := s.loadThresholds(ctx, request.OfferID)
	if err != nil {
		return nil, err
	}

	records, err := s.fetcher.GetByDateRange(ctx, subjectIDs, window)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"offer_id":      request.OfferID,
			"subject_count": len(subjectIDs),
			"period":        request.Period,
		}).Error("Erro ao buscar registros diários dos criativos")
		return nil, externalError(err, "insighting: erro ao buscar registros")
	}

	summaries := withEmptySubjects(aggregating.AggregateBySubject(records, window), subjectIDs, window)

	for _, subjectID := range subjectIDs {
		summary := summaries[subjectID]
		reports[subjectID] = &domain.HealthReport{
			OfferID:    request.OfferID,
			SubjectID:  subjectID,
			Period:     request.Period,
			Summary:    summary,
			Thresholds: thresholds,
			Status:     s.classifier.ClassifySummary(summary, thresholds),
		}
	}

	return reports, nil
}

// GetRanking ordena os criativos pela métrica e compara com o período anterior de mesma duração
func (s *Service) GetRanking(ctx context.Context, request ReportRequest, subjectIDs []string, kind domain.MetricKind) ([]*domain.SubjectRanking, error) {
	if request.OfferID == "" {
		return nil, NewInsightError(ErrOfferIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if !kind.Valid() {
		return nil, NewInsightError(ErrInvalidMetric, apiErrors.ErrInvalidFormat, string(kind))
	}
	if len(subjectIDs) == 0 {
		return []*domain.SubjectRanking{}, nil
	}

	window, err := s.resolveWindow(request)
	if err != nil {
		return nil, err
	}

	previous, err := periodizing.PreviousWindow(window)
	if err != nil {
		return nil, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	thresholds, err := s.loadThresholds(ctx, request.OfferID)
	if err != nil {
		return nil, err
	}

	// uma única busca cobre o período anterior e o atual
	records, err := s.fetcher.GetByDateRange(ctx, subjectIDs, domain.DateWindow{Start: previous.Start, End: window.End})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("offer_id", request.OfferID).Error("Erro ao buscar registros para o ranking")
		return nil, externalError(err, "insighting: erro ao buscar registros")
	}

	current := withEmptySubjects(aggregating.AggregateBySubject(records, window), subjectIDs, window)
	before := aggregating.AggregateBySubject(records, previous)

	return ranking.RankSubjects(current, before, kind, thresholds), nil
}

// SubmitMetrics busca o registro existente da chave, reconcilia a submissão e grava o resultado.
// Rejeições de validação são devolvidas sem alteração para o chamador exibir ao operador.
func (s *Service) SubmitMetrics(ctx context.Context, proposed domain.MetricSubmission, selected domain.FieldSet) (*domain.ReconcileResult, error) {
	key := domain.RecordKey{SubjectID: proposed.SubjectID, Date: utils.FormatLocalDate(proposed.Date)}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"subject_id":  key.SubjectID,
		"record_date": key.Date,
	})

	var existing *domain.DailyMetricRecord
	if key.SubjectID != "" && !proposed.Date.IsZero() {
		var err error
		existing, err = s.fetcher.GetByKey(ctx, key)
		if err != nil {
			logger.WithError(err).Error("Erro ao buscar registro existente")
			return nil, externalError(err, "insighting: erro ao buscar registro existente")
		}
	}

	result, err := reconciling.Reconcile(existing, proposed, selected)
	if err != nil {
		logRejection(logger, err, "Submissão de métricas rejeitada")
		return nil, err
	}

	now := s.now()
	if result.IsNew {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "insighting: erro ao gerar ID do registro")
		}
		result.Merged.ID = id
		result.Merged.CreatedAt = now
	}
	result.Merged.UpdatedAt = now

	if err := s.writer.SaveOrUpdate(ctx, result.Merged); err != nil {
		logger.WithError(err).Error("Erro ao gravar registro diário")
		return nil, externalError(err, "insighting: erro ao gravar registro")
	}

	logger.WithFields(log.Fields{
		"record_id":      result.Merged.ID,
		"record_is_new":  result.IsNew,
		"record_changes": len(result.Deltas),
	}).Info("Métricas registradas com sucesso")

	return result, nil
}

func (s *Service) resolveWindow(request ReportRequest) (domain.DateWindow, error) {
	window, err := s.resolver.ResolveAt(request.Period, s.resolver.Today(), request.Custom)
	if err != nil {
		return domain.DateWindow{}, NewInsightError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}
	return window, nil
}

func (s *Service) loadThresholds(ctx context.Context, offerID string) (domain.ThresholdSet, error) {
	raw, err := s.thresholds.GetOfferThresholds(ctx, offerID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("offer_id", offerID).Error("Erro ao buscar métricas esperadas da oferta")
		return domain.ThresholdSet{}, externalError(err, "insighting: erro ao buscar thresholds")
	}

	thresholds := s.classifier.Parse(raw)

	if inverted := thresholding.CheckDirection(thresholds); len(inverted) > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"offer_id": offerID,
			"metrics":  inverted,
		}).Warn("Métricas esperadas com faixas invertidas")
	}

	return thresholds, nil
}

func withEmptySubjects(summaries domain.SubjectSummaries, subjectIDs []string, window domain.DateWindow) domain.SubjectSummaries {
	for _, subjectID := range subjectIDs {
		if _, exists := summaries[subjectID]; !exists {
			summaries[subjectID] = domain.AggregateSummary{Window: window}
		}
	}
	return summaries
}

// logRejection registra erros corrigíveis pelo operador como aviso e os demais como erro
func logRejection(logger log.Logger, err error, message string) {
	apiErr := apiErrors.FromError(err, apiErrors.ErrInternalServer)
	entry := logger.WithError(err).WithField("error_code", apiErr.Code)

	if apiErrors.IsValidation(apiErr.Code) {
		entry.Warn(message)
		return
	}
	entry.Error(message)
}

// externalError marca falhas dos colaboradores com o código de serviço externo
func externalError(err error, message string) error {
	return NewInsightError(errors.Wrap(err, message), apiErrors.ErrExternalService, "")
}
