package periodizing

import (
	"fmt"
	"time"

	"github.com/vfg2006/offer-health-engine/internal/domain"
	"github.com/vfg2006/offer-health-engine/pkg/utils"
)

// PreviousWindow retorna o período de mesma duração imediatamente anterior a window.
// "last7" de 04 a 10/03 tem como anterior 26/02 a 03/03.
func PreviousWindow(window domain.DateWindow) (domain.DateWindow, error) {
	start, err := time.Parse(time.DateOnly, window.Start)
	if err != nil {
		return domain.DateWindow{}, fmt.Errorf("data inicial inválida %q: %w", window.Start, err)
	}

	end, err := time.Parse(time.DateOnly, window.End)
	if err != nil {
		return domain.DateWindow{}, fmt.Errorf("data final inválida %q: %w", window.End, err)
	}

	if start.After(end) {
		return domain.DateWindow{}, fmt.Errorf("período invertido: %s a %s", window.Start, window.End)
	}

	// datas sem fuso: a diferença é sempre um número inteiro de dias
	days := int(end.Sub(start).Hours()/24) + 1

	return domain.DateWindow{
		Start: utils.FormatLocalDate(start.AddDate(0, 0, -days)),
		End:   utils.FormatLocalDate(start.AddDate(0, 0, -1)),
	}, nil
}
