package insighting

import (
	"context"

	"github.com/vfg2006/offer-health-engine/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// RecordFetcher é a camada de acesso a dados que fornece os registros diários
type RecordFetcher interface {
	// GetByDateRange retorna os registros dos sujeitos dentro do período
	GetByDateRange(ctx context.Context, subjectIDs []string, window domain.DateWindow) ([]domain.DailyMetricRecord, error)
	// GetByKey retorna o registro da chave ou nil quando não existe
	GetByKey(ctx context.Context, key domain.RecordKey) (*domain.DailyMetricRecord, error)
}

// RecordWriter persiste o registro reconciliado. Conflitos de escrita concorrente
// (snapshot desatualizado) são responsabilidade de quem implementa.
type RecordWriter interface {
	SaveOrUpdate(ctx context.Context, record domain.DailyMetricRecord) error
}

// ThresholdProvider fornece a configuração de métricas esperadas de uma oferta
// no formato em que foi persistida
type ThresholdProvider interface {
	GetOfferThresholds(ctx context.Context, offerID string) (any, error)
}

// HealthInsighter é a interface completa do painel de saúde das ofertas
type HealthInsighter interface {
	// GetHealthReport resume e classifica um sujeito no período pedido
	GetHealthReport(ctx context.Context, request ReportRequest) (*domain.HealthReport, error)

	// GetSubjectReports resume e classifica cada sujeito separadamente
	GetSubjectReports(ctx context.Context, request ReportRequest, subjectIDs []string) (map[string]*domain.HealthReport, error)

	// GetRanking ordena os sujeitos pela métrica, comparando com o período anterior
	GetRanking(ctx context.Context, request ReportRequest, subjectIDs []string, kind domain.MetricKind) ([]*domain.SubjectRanking, error)

	// SubmitMetrics reconcilia e grava a submissão de métricas de um (sujeito, data)
	SubmitMetrics(ctx context.Context, proposed domain.MetricSubmission, selected domain.FieldSet) (*domain.ReconcileResult, error)
}

// ReportRequest identifica a oferta dona dos thresholds, o sujeito e o período
type ReportRequest struct {
	OfferID   string
	SubjectID string
	Period    domain.PeriodSelector
	Custom    *domain.CustomBounds
}
