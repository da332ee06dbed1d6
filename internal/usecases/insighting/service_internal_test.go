package insighting

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/offer-health-engine/internal/usecases/reconciling"
	"github.com/vfg2006/offer-health-engine/pkg/apiErrors"
	"github.com/vfg2006/offer-health-engine/pkg/log"
)

func TestLogRejection(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	tests := []struct {
		name          string
		err           error
		expectedLevel logrus.Level
		expectedCode  string
	}{
		{
			name:          "erro de validação vira aviso",
			err:           &reconciling.ValidationError{Err: reconciling.ErrNoChangeDetected, Code: apiErrors.ErrNoChangeDetected},
			expectedLevel: logrus.WarnLevel,
			expectedCode:  apiErrors.ErrNoChangeDetected,
		},
		{
			name:          "erro sem código vira erro interno",
			err:           errors.New("falha inesperada"),
			expectedLevel: logrus.ErrorLevel,
			expectedCode:  apiErrors.ErrInternalServer,
		},
		{
			name:          "erro de colaborador externo vira erro",
			err:           externalError(errors.New("timeout"), "insighting: erro ao gravar registro"),
			expectedLevel: logrus.ErrorLevel,
			expectedCode:  apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook.Reset()

			logRejection(log.L, tt.err, "Submissão de métricas rejeitada")

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedCode, entry.Data["error_code"])
		})
	}
}
