package periodizing

import (
	"fmt"
	"time"

	"github.com/vfg2006/offer-health-engine/internal/config"
	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

// Resolve converte o seletor em datas concretas usando o calendário local de today.
// As datas são formatadas a partir de ano/mês/dia locais, nunca via UTC.
func Resolve(selector domain.PeriodSelector, today time.Time, custom *domain.CustomBounds) (domain.DateWindow, error) {
	return resolve(selector, today, custom, domain.SystemEpoch)
}

func resolve(selector domain.PeriodSelector, today time.Time, custom *domain.CustomBounds, epoch string) (domain.DateWindow, error) {
	end := utils.FormatLocalDate(today)

	switch selector {
	case domain.PeriodToday:
		return domain.DateWindow{Start: end, End: end}, nil
	case domain.PeriodLast7:
		return domain.DateWindow{Start: utils.FormatLocalDate(utils.AddDays(today, -6)), End: end}, nil
	case domain.PeriodLast30:
		return domain.DateWindow{Start: utils.FormatLocalDate(utils.AddDays(today, -29)), End: end}, nil
	case domain.PeriodAll:
		return domain.DateWindow{Start: epoch, End: end}, nil
	case domain.PeriodCustom:
		return resolveCustom(custom)
	}

	return domain.DateWindow{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, selector)
}

// resolveCustom repassa as datas sem ajuste; uma única data vira um período de um dia
func resolveCustom(custom *domain.CustomBounds) (domain.DateWindow, error) {
	if custom == nil || (custom.From.IsZero() && custom.To.IsZero()) {
		return domain.DateWindow{}, ErrCustomBoundsRequired
	}

	from, to := custom.From, custom.To
	if from.IsZero() {
		from = to
	}
	if to.IsZero() {
		to = from
	}

	return domain.DateWindow{
		Start: utils.FormatLocalDate(from),
		End:   utils.FormatLocalDate(to),
	}, nil
}

// Resolver guarda o seletor escolhido no painel. Apenas as datas do período
// personalizado são fixas; os demais seletores são recalculados a partir do
// relógio em cada chamada de Current, de modo que um painel aberto durante a
// virada do dia passa a refletir o novo "hoje".
//
// Não é seguro para uso concorrente; cada painel tem o seu.
type Resolver struct {
	epoch    string
	location *time.Location
	now      func() time.Time
	selector domain.PeriodSelector
	custom   *domain.CustomBounds
}

type Option func(*Resolver)

// WithClock substitui o relógio, útil em testes
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

func NewResolver(cfg *config.Config, opts ...Option) *Resolver {
	resolver := &Resolver{
		epoch:    domain.SystemEpoch,
		location: time.Local,
		now:      time.Now,
		selector: domain.PeriodToday,
	}

	if cfg != nil {
		if cfg.Period.EpochDate != "" {
			resolver.epoch = cfg.Period.EpochDate
		}
		if cfg.Period.Location != nil {
			resolver.location = cfg.Period.Location
		}
	}

	for _, opt := range opts {
		opt(resolver)
	}

	return resolver
}

// Today retorna o instante atual no calendário do painel
func (r *Resolver) Today() time.Time {
	return r.now().In(r.location)
}

// Select troca o seletor. Bounds só é guardado para o período personalizado.
func (r *Resolver) Select(selector domain.PeriodSelector, bounds *domain.CustomBounds) error {
	if !selector.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPeriod, selector)
	}

	if selector != domain.PeriodCustom {
		r.selector = selector
		r.custom = nil
		return nil
	}

	if _, err := resolveCustom(bounds); err != nil {
		return err
	}

	sticky := *bounds
	r.selector = selector
	r.custom = &sticky
	return nil
}

func (r *Resolver) Selector() domain.PeriodSelector {
	return r.selector
}

// Current resolve o seletor atual contra o relógio neste momento
func (r *Resolver) Current() domain.DateWindow {
	// seletor e datas já validados em Select
	window, _ := r.ResolveAt(r.selector, r.Today(), r.custom)
	return window
}

// ResolveAt resolve usando o início do histórico configurado
func (r *Resolver) ResolveAt(selector domain.PeriodSelector, today time.Time, custom *domain.CustomBounds) (domain.DateWindow, error) {
	return resolve(selector, today, custom, r.epoch)
}
